package middleware

import (
	"context"
	"strconv"
	"strings"

	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenCookie is the cookie carrying the access token. When both
	// the cookie and the Authorization header are present, the cookie wins.
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie is the cookie carrying the refresh token.
	RefreshTokenCookie = "refresh_token"

	// TokenIssuer and TokenAudience are checked on every verified token.
	TokenIssuer   = "viewtube-api"
	TokenAudience = "viewtube-client"
)

// PrincipalResolver loads a user's non-secret profile by ID. It returns
// (nil, nil) when no such user exists.
type PrincipalResolver func(ctx context.Context, id uint) (*models.User, error)

// AuthRequired resolves the request's credential into an authenticated
// principal before any protected handler runs. The resolved user ID lands in
// c.Locals("userID") and the full profile in c.Locals("principal"); both are
// also mirrored into the request context for the structured logger.
//
// Missing credential and bad credential are distinct failures: no token at
// all yields "Authorization required", while a token that fails verification
// or references a deleted user yields "Invalid or expired token".
func AuthRequired(secret string, resolve PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(AccessTokenCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != TokenIssuer {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != TokenAudience {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid subject claim"))
		}
		userIDVal, err := strconv.ParseUint(sub, 10, 32)
		if err != nil || userIDVal == 0 {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid user ID in token"))
		}
		userID := uint(userIDVal)

		// The token may outlive its subject. A verified token for a deleted
		// account is still an invalid credential.
		user, err := resolve(c.UserContext(), userID)
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		if user == nil {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid or expired token"))
		}

		c.Locals("userID", userID)
		c.Locals("principal", user)
		ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
