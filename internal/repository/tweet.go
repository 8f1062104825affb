package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines interface for tweet operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint) (*models.Tweet, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, int64, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, id uint) error
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new TweetRepository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).Preload("User").First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) ListByUser(
	ctx context.Context,
	userID uint,
	limit, offset int,
) ([]*models.Tweet, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []*models.Tweet
	err := q.Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	return tweets, total, err
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Save(tweet).Error
}

func (r *tweetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tweet{}, id).Error
}
