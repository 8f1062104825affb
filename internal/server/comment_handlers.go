package server

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/notifications"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/videos/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	page, err := s.comments.ListComments(c.UserContext(), videoID, pageFromQuery(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, page, "Comments fetched")
}

// CreateComment handles POST /api/videos/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	comment, err := s.comments.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  userID,
		VideoID: videoID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if video, verr := s.videoRepo.GetByID(c.UserContext(), videoID); verr == nil && video != nil && video.UserID != userID {
		s.notifier.PublishToUser(context.WithoutCancel(c.UserContext()), video.UserID, notifications.Event{
			Kind:    notifications.EventNewComment,
			ActorID: userID,
			VideoID: videoID,
		})
	}

	return models.Respond(c, fiber.StatusCreated, comment, "Comment created")
}

// UpdateComment handles PATCH /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.comments.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, comment, "Comment updated")
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comment, err := s.comments.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, comment, "Comment deleted")
}
