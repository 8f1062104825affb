package models

import "time"

// Subscription records that one user subscribes to another user's
// channel. Existence is the subscribed state; the (subscriber, channel)
// pair is unique. Hard-deleted on toggle-off.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_subscription_pair" json:"subscriber_id"`
	ChannelID    uint      `gorm:"not null;uniqueIndex:idx_subscription_pair" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`

	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}
