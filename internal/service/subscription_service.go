package service

import (
	"context"
	"errors"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/repository"

	"gorm.io/gorm"
)

// SubscriptionService toggles and lists channel subscriptions. A channel
// is just a user; subscribing to yourself is rejected up front.
type SubscriptionService struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Toggle flips the subscription state of subscriberID against channelID
// and reports the resulting state.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	if subscriberID == channelID {
		return false, models.NewValidationError("You cannot subscribe to your own channel")
	}

	existing, err := s.subRepo.FindPair(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.subRepo.Delete(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	channel, err := s.userRepo.GetByID(ctx, channelID)
	if err != nil {
		return false, err
	}
	if channel == nil {
		return false, models.NewNotFoundError("Channel")
	}

	sub := &models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.ToggleRaces.WithLabelValues("subscription").Inc()
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ListSubscribers returns the users subscribed to the given channel.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID uint) ([]*models.User, error) {
	channel, err := s.userRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, models.NewNotFoundError("Channel")
	}

	subs, err := s.subRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(subs))
	for _, sub := range subs {
		users = append(users, &sub.Subscriber)
	}
	return users, nil
}

// ListSubscribedChannels returns the channels the given user follows.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID uint) ([]*models.User, error) {
	subscriber, err := s.userRepo.GetByID(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, models.NewNotFoundError("User")
	}

	subs, err := s.subRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	channels := make([]*models.User, 0, len(subs))
	for _, sub := range subs {
		channels = append(channels, &sub.Channel)
	}
	return channels, nil
}
