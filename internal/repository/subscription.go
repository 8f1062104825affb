package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines interface for subscription records. As
// with likes, Create surfaces gorm.ErrDuplicatedKey on a same-pair race.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	FindPair(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error)
	Delete(ctx context.Context, id uint) error
	ListSubscribers(ctx context.Context, channelID uint) ([]*models.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID uint) ([]*models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) FindPair(
	ctx context.Context,
	subscriberID, channelID uint,
) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Subscription{}, id).Error
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uint) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at desc").
		Preload("Subscriber").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uint) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at desc").
		Preload("Channel").
		Find(&subs).Error
	return subs, err
}
