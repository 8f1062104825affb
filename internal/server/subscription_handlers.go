package server

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// ToggleSubscription handles POST /api/subscriptions/:channelId
func (s *Server) ToggleSubscription(c *fiber.Ctx) error {
	channelID, err := parseIDParam(c, "channelId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	userID := currentUserID(c)
	subscribed, err := s.subscriptions.Toggle(c.UserContext(), userID, channelID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if subscribed {
		s.notifier.PublishToUser(context.WithoutCancel(c.UserContext()), channelID, notifications.Event{
			Kind:    notifications.EventNewSubscriber,
			ActorID: userID,
		})
	}

	message := "Unsubscribed"
	if subscribed {
		message = "Subscribed"
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"subscribed": subscribed}, message)
}

// GetSubscribedChannels handles GET /api/subscriptions
func (s *Server) GetSubscribedChannels(c *fiber.Ctx) error {
	channels, err := s.subscriptions.ListSubscribedChannels(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, channels, "Subscriptions fetched")
}

// GetSubscribers handles GET /api/subscriptions/subscribers
func (s *Server) GetSubscribers(c *fiber.Ctx) error {
	subscribers, err := s.subscriptions.ListSubscribers(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, subscribers, "Subscribers fetched")
}
