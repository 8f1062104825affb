package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	ctx := c.UserContext()
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		return models.RespondWithError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, models.NewConflictError("Email already in use"))
	}
	if existing, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return models.RespondWithError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, models.NewConflictError("Username already taken"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes catch signups racing on the same name or email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.RespondWithError(c, models.NewConflictError("Username or email already in use"))
		}
		return models.RespondWithError(c, err)
	}

	token, err := s.issueTokens(c, user)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.Respond(c, fiber.StatusCreated, fiber.Map{
		"token": token,
		"user":  user,
	}, "Account created")
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Invalid credentials"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Invalid credentials"))
	}

	token, err := s.issueTokens(c, user)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	}, "Logged in")
}

// RefreshToken handles POST /api/auth/refresh. It mints a fresh access
// token from the refresh cookie; the refresh token itself is not rotated.
func (s *Server) RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies(middleware.RefreshTokenCookie)
	if refresh == "" {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Refresh token required"))
	}

	userID, err := s.verifyToken(refresh)
	if err != nil {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Invalid or expired token"))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Invalid or expired token"))
	}

	access, err := s.generateToken(user, accessTokenTTL)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	s.setTokenCookie(c, middleware.AccessTokenCookie, access, accessTokenTTL)

	return models.Respond(c, fiber.StatusOK, fiber.Map{"token": access}, "Token refreshed")
}

// Logout handles POST /api/auth/logout by expiring both token cookies.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearTokenCookie(c, middleware.AccessTokenCookie)
	s.clearTokenCookie(c, middleware.RefreshTokenCookie)
	return models.Respond(c, fiber.StatusOK, nil, "Logged out")
}

// issueTokens mints the access and refresh tokens, sets both cookies and
// returns the access token for clients that prefer the Authorization header.
func (s *Server) issueTokens(c *fiber.Ctx, user *models.User) (string, error) {
	access, err := s.generateToken(user, accessTokenTTL)
	if err != nil {
		return "", err
	}
	refresh, err := s.generateToken(user, refreshTokenTTL)
	if err != nil {
		return "", err
	}

	s.setTokenCookie(c, middleware.AccessTokenCookie, access, accessTokenTTL)
	s.setTokenCookie(c, middleware.RefreshTokenCookie, refresh, refreshTokenTTL)
	return access, nil
}

func (s *Server) setTokenCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   s.config.Env == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) clearTokenCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.config.Env == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// generateToken creates a signed JWT for the given user.
func (s *Server) generateToken(user *models.User, ttl time.Duration) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iss":      middleware.TokenIssuer,
		"aud":      middleware.TokenAudience,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// verifyToken checks a token's signature and registered claims and returns
// the subject user ID.
func (s *Server) verifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}
	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != middleware.TokenIssuer {
		return 0, fmt.Errorf("invalid issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != middleware.TokenAudience {
		return 0, fmt.Errorf("invalid audience")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid subject")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("invalid subject")
	}
	return uint(userID), nil
}
