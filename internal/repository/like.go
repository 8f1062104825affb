package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// LikeTargetKind names the entity a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

func (k LikeTargetKind) column() string {
	switch k {
	case LikeTargetComment:
		return "comment_id"
	case LikeTargetTweet:
		return "tweet_id"
	default:
		return "video_id"
	}
}

// NewLike builds a like row for the given user and target.
func NewLike(userID uint, kind LikeTargetKind, targetID uint) *models.Like {
	like := &models.Like{UserID: userID}
	id := targetID
	switch kind {
	case LikeTargetComment:
		like.CommentID = &id
	case LikeTargetTweet:
		like.TweetID = &id
	default:
		like.VideoID = &id
	}
	return like
}

// LikeRepository defines interface for like records. Creation surfaces
// gorm.ErrDuplicatedKey when the (user, target) pair already exists, which
// the toggle service treats as a benign race, not a failure.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	FindByTarget(ctx context.Context, userID uint, kind LikeTargetKind, targetID uint) (*models.Like, error)
	Delete(ctx context.Context, id uint) error
	ListLikedVideos(ctx context.Context, userID uint) ([]*models.Video, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) FindByTarget(
	ctx context.Context,
	userID uint,
	kind LikeTargetKind,
	targetID uint,
) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND "+kind.column()+" = ?", userID, targetID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Like{}, id).Error
}

func (r *likeRepository) ListLikedVideos(ctx context.Context, userID uint) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.db.WithContext(ctx).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at desc").
		Preload("User").
		Find(&videos).Error
	return videos, err
}
