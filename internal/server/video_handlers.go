package server

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/notifications"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListVideos handles GET /api/videos
func (s *Server) ListVideos(c *fiber.Ctx) error {
	input := service.ListVideosInput{
		Page:     pageFromQuery(c),
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortDesc: c.Query("sortType") != "asc",
	}
	if channelID := c.QueryInt("userId"); channelID > 0 {
		input.UserID = uint(channelID)
	}

	page, err := s.videos.ListVideos(c.UserContext(), input)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, page, "Videos fetched")
}

// GetVideo handles GET /api/videos/:id
func (s *Server) GetVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	// Anonymous viewers see published videos only; the owner also sees
	// drafts when a valid token rides along.
	viewerID, _ := s.optionalUserID(c)

	video, err := s.videos.GetVideo(c.UserContext(), viewerID, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Video fetched")
}

// CreateVideo handles POST /api/videos
func (s *Server) CreateVideo(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Duration    int    `json:"duration"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	video, err := s.videos.CreateVideo(c.UserContext(), service.CreateVideoInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Duration:    req.Duration,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, video, "Video created")
}

// UpdateVideo handles PATCH /api/videos/:id
func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	video, err := s.videos.UpdateVideo(c.UserContext(), service.UpdateVideoInput{
		UserID:      currentUserID(c),
		VideoID:     id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Video updated")
}

// DeleteVideo handles DELETE /api/videos/:id
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.videos.DeleteVideo(c.UserContext(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Video deleted")
}

// TogglePublish handles POST /api/videos/:id/publish-toggle
func (s *Server) TogglePublish(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	video, err := s.videos.TogglePublish(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if video.IsPublished {
		s.notifier.PublishToUser(context.WithoutCancel(c.UserContext()), video.UserID, notifications.Event{
			Kind:    notifications.EventVideoPublish,
			ActorID: video.UserID,
			VideoID: video.ID,
		})
	}

	message := "Video unpublished"
	if video.IsPublished {
		message = "Video published"
	}
	return models.Respond(c, fiber.StatusOK, video, message)
}

// UploadThumbnail handles POST /api/videos/:id/thumbnail
func (s *Server) UploadThumbnail(c *fiber.Ctx) error {
	if s.uploader == nil {
		return models.RespondWithError(c,
			&models.AppError{Code: models.CodeInternal, Message: "Media storage unavailable"})
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("thumbnail file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := s.uploader.Upload(c.UserContext(), "thumbnails", fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	video, err := s.videos.UpdateThumbnail(c.UserContext(), currentUserID(c), id, url)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Thumbnail updated")
}
