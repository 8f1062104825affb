package service

import (
	"context"
	"errors"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/repository"

	"gorm.io/gorm"
)

// LikeService implements the create-or-delete toggle over likes. The
// record's existence is the liked state; the composite unique index on
// (user, target) is the backstop when the same user races itself.
type LikeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// Toggle flips the like state for (userID, target) and reports the
// resulting state. On the create branch the target must exist; a
// duplicate-key conflict means another request of the same user won the
// race, so the intended "on" state already holds and is reported as such.
func (s *LikeService) Toggle(
	ctx context.Context,
	userID uint,
	kind repository.LikeTargetKind,
	targetID uint,
) (bool, error) {
	existing, err := s.likeRepo.FindByTarget(ctx, userID, kind, targetID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	exists, err := s.targetExists(ctx, kind, targetID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, models.NewNotFoundError(kindLabel(kind))
	}

	if err := s.likeRepo.Create(ctx, repository.NewLike(userID, kind, targetID)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.ToggleRaces.WithLabelValues("like").Inc()
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ListLikedVideos returns the videos the user has liked, newest like first.
func (s *LikeService) ListLikedVideos(ctx context.Context, userID uint) ([]*models.Video, error) {
	videos, err := s.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return videos, nil
}

func (s *LikeService) targetExists(ctx context.Context, kind repository.LikeTargetKind, targetID uint) (bool, error) {
	switch kind {
	case repository.LikeTargetComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		return comment != nil, err
	case repository.LikeTargetTweet:
		tweet, err := s.tweetRepo.GetByID(ctx, targetID)
		return tweet != nil, err
	default:
		video, err := s.videoRepo.GetByID(ctx, targetID)
		return video != nil, err
	}
}

func kindLabel(kind repository.LikeTargetKind) string {
	switch kind {
	case repository.LikeTargetComment:
		return "Comment"
	case repository.LikeTargetTweet:
		return "Tweet"
	default:
		return "Video"
	}
}
