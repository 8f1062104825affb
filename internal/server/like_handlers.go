package server

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/notifications"
	"viewtube/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// ToggleVideoLike handles POST /api/videos/:id/like
func (s *Server) ToggleVideoLike(c *fiber.Ctx) error {
	return s.toggleLike(c, repository.LikeTargetVideo)
}

// ToggleCommentLike handles POST /api/comments/:id/like
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	return s.toggleLike(c, repository.LikeTargetComment)
}

// ToggleTweetLike handles POST /api/tweets/:id/like
func (s *Server) ToggleTweetLike(c *fiber.Ctx) error {
	return s.toggleLike(c, repository.LikeTargetTweet)
}

func (s *Server) toggleLike(c *fiber.Ctx, kind repository.LikeTargetKind) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	userID := currentUserID(c)
	liked, err := s.likes.Toggle(c.UserContext(), userID, kind, targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if liked && kind == repository.LikeTargetVideo {
		if video, verr := s.videoRepo.GetByID(c.UserContext(), targetID); verr == nil && video != nil && video.UserID != userID {
			s.notifier.PublishToUser(context.WithoutCancel(c.UserContext()), video.UserID, notifications.Event{
				Kind:    notifications.EventVideoLiked,
				ActorID: userID,
				VideoID: targetID,
			})
		}
	}

	message := "Like removed"
	if liked {
		message = "Liked"
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"liked": liked}, message)
}

// GetLikedVideos handles GET /api/likes/videos
func (s *Server) GetLikedVideos(c *fiber.Ctx) error {
	videos, err := s.likes.ListLikedVideos(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, videos, "Liked videos fetched")
}
