// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in ViewTube. Every user doubles as a channel:
// videos, playlists and subscriptions hang off the same record.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"unique;not null" json:"username"`
	Email      string         `gorm:"unique;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	FullName   string         `json:"full_name"`
	Bio        string         `json:"bio"`
	Avatar     string         `json:"avatar"`
	CoverImage string         `json:"cover_image"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Videos     []Video        `gorm:"foreignKey:UserID" json:"videos,omitempty"`
}
