package server

import (
	"viewtube/internal/models"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet handles POST /api/tweets
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweets.CreateTweet(c.UserContext(), service.CreateTweetInput{
		UserID:  currentUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, tweet, "Tweet created")
}

// GetUserTweets handles GET /api/users/:id/tweets
func (s *Server) GetUserTweets(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	page, err := s.tweets.ListUserTweets(c.UserContext(), userID, pageFromQuery(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, page, "Tweets fetched")
}

// UpdateTweet handles PATCH /api/tweets/:id
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweets.UpdateTweet(c.UserContext(), service.UpdateTweetInput{
		UserID:  currentUserID(c),
		TweetID: tweetID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, tweet, "Tweet updated")
}

// DeleteTweet handles DELETE /api/tweets/:id
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	tweet, err := s.tweets.DeleteTweet(c.UserContext(), service.DeleteTweetInput{
		UserID:  currentUserID(c),
		TweetID: tweetID,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, tweet, "Tweet deleted")
}
