package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetChannelStats handles GET /api/channels/:username/stats
func (s *Server) GetChannelStats(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	stats, err := s.dashboard.ChannelStats(c.UserContext(), c.Params("username"), viewerID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, stats, "Channel stats fetched")
}

// GetDashboardVideos handles GET /api/dashboard/videos. Unlike the public
// listing this includes the caller's unpublished drafts.
func (s *Server) GetDashboardVideos(c *fiber.Ctx) error {
	page, err := s.dashboard.ChannelVideos(c.UserContext(), currentUserID(c), pageFromQuery(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, page, "Channel videos fetched")
}
