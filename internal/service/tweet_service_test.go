package service

import (
	"context"
	"strings"
	"testing"

	"viewtube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetService_CreateTweet(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var created *models.Tweet
		tweetRepo := &stubTweetRepo{
			create: func(_ context.Context, tweet *models.Tweet) error {
				created = tweet
				return nil
			},
		}
		svc := NewTweetService(tweetRepo, &stubUserRepo{})

		_, err := svc.CreateTweet(context.Background(), CreateTweetInput{
			UserID:  1,
			Content: "hello world",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "hello world", created.Content)
	})

	t.Run("over-length content is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewTweetService(&stubTweetRepo{}, &stubUserRepo{})

		_, err := svc.CreateTweet(context.Background(), CreateTweetInput{
			UserID:  1,
			Content: strings.Repeat("a", 501),
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})
}

func TestTweetService_ListUserTweets_MissingUser(t *testing.T) {
	t.Parallel()

	userRepo := &stubUserRepo{
		getByID: func(_ context.Context, _ uint) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewTweetService(&stubTweetRepo{}, userRepo)

	_, err := svc.ListUserTweets(context.Background(), 404, PageRequest{})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestTweetService_DeleteTweet_Ownership(t *testing.T) {
	t.Parallel()

	tweetRepo := &stubTweetRepo{
		getByID: func(_ context.Context, id uint) (*models.Tweet, error) {
			return &models.Tweet{ID: id, UserID: 1, Content: "mine"}, nil
		},
		del: func(_ context.Context, _ uint) error {
			return nil
		},
	}
	svc := NewTweetService(tweetRepo, &stubUserRepo{})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := svc.DeleteTweet(context.Background(), DeleteTweetInput{UserID: 2, TweetID: 10})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	})

	t.Run("owner delete returns the tweet", func(t *testing.T) {
		tweet, err := svc.DeleteTweet(context.Background(), DeleteTweetInput{UserID: 1, TweetID: 10})
		require.NoError(t, err)
		assert.Equal(t, "mine", tweet.Content)
	})
}
