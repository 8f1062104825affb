package service

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/repository"
	"viewtube/internal/validation"
)

const maxTweetLen = 500

// TweetService implements the owner-scoped lifecycle of channel tweets.
// It follows the same shape as CommentService minus the parent entity.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

type CreateTweetInput struct {
	UserID  uint
	Content string
}

type UpdateTweetInput struct {
	UserID  uint
	TweetID uint
	Content string
}

type DeleteTweetInput struct {
	UserID  uint
	TweetID uint
}

// TweetPage is one page of a user's tweets plus paging metadata.
type TweetPage struct {
	Tweets []*models.Tweet `json:"tweets"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

func (s *TweetService) CreateTweet(ctx context.Context, in CreateTweetInput) (*models.Tweet, error) {
	content, err := validation.RequireText("Content", in.Content, maxTweetLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tweet := &models.Tweet{
		Content: content,
		UserID:  in.UserID,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// ListUserTweets returns one newest-first page of a user's tweets.
func (s *TweetService) ListUserTweets(ctx context.Context, userID uint, page PageRequest) (*TweetPage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}

	page = page.Normalize()
	tweets, total, err := s.tweetRepo.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []*models.Tweet{}
	}

	return &TweetPage{
		Tweets: tweets,
		Total:  total,
		Page:   page.Page,
		Pages:  TotalPages(total, page.Limit),
	}, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, in UpdateTweetInput) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, in.TweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, models.NewNotFoundError("Tweet")
	}
	if tweet.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own tweets")
	}

	content, err := validation.RequireText("Content", in.Content, maxTweetLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tweet.Content = content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, in DeleteTweetInput) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, in.TweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, models.NewNotFoundError("Tweet")
	}
	if tweet.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only delete your own tweets")
	}

	if err := s.tweetRepo.Delete(ctx, in.TweetID); err != nil {
		return nil, err
	}
	return tweet, nil
}
