package server

import (
	"strconv"
	"strings"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's ID set by the auth
// middleware. Handlers behind the protected group can rely on it.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// pageFromQuery reads page/limit query parameters. Missing or malformed
// values fall back to defaults at normalization time.
func pageFromQuery(c *fiber.Ctx) service.PageRequest {
	return service.PageRequest{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}
}

// optionalUserID extracts a user ID from the access cookie or the
// Authorization header without enforcing authentication. Public routes use
// it to personalize responses for logged-in viewers.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	tokenString := c.Cookies(middleware.AccessTokenCookie)
	if tokenString == "" {
		parts := strings.Split(c.Get("Authorization"), " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return 0, false
	}

	userID, err := s.verifyToken(tokenString)
	if err != nil {
		return 0, false
	}
	return userID, true
}
