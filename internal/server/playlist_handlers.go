package server

import (
	"viewtube/internal/models"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaylist handles POST /api/playlists
func (s *Server) CreatePlaylist(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlists.CreatePlaylist(c.UserContext(), service.CreatePlaylistInput{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, playlist, "Playlist created")
}

// GetMyPlaylists handles GET /api/playlists
func (s *Server) GetMyPlaylists(c *fiber.Ctx) error {
	playlists, err := s.playlists.ListUserPlaylists(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, playlists, "Playlists fetched")
}

// GetPlaylist handles GET /api/playlists/:id
func (s *Server) GetPlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	playlist, err := s.playlists.GetPlaylist(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, playlist, "Playlist fetched")
}

// UpdatePlaylist handles PATCH /api/playlists/:id
func (s *Server) UpdatePlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlists.UpdatePlaylist(c.UserContext(), service.UpdatePlaylistInput{
		UserID:      currentUserID(c),
		PlaylistID:  id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, playlist, "Playlist updated")
}

// DeletePlaylist handles DELETE /api/playlists/:id
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.playlists.DeletePlaylist(c.UserContext(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Playlist deleted")
}

// AddPlaylistVideo handles POST /api/playlists/:id/videos/:videoId
func (s *Server) AddPlaylistVideo(c *fiber.Ctx) error {
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	playlist, err := s.playlists.AddVideo(c.UserContext(), currentUserID(c), playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, playlist, "Video added to playlist")
}

// RemovePlaylistVideo handles DELETE /api/playlists/:id/videos/:videoId
func (s *Server) RemovePlaylistVideo(c *fiber.Ctx) error {
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	playlist, err := s.playlists.RemoveVideo(c.UserContext(), currentUserID(c), playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, playlist, "Video removed from playlist")
}
