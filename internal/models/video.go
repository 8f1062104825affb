// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Video represents an uploaded video on a user's channel.
// Drafts stay unpublished until the owner flips IsPublished.
type Video struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	VideoURL     string         `gorm:"size:500" json:"video_url"`
	ThumbnailURL string         `gorm:"size:500" json:"thumbnail_url"`
	Duration     int            `gorm:"default:0" json:"duration"` // seconds
	Views        int64          `gorm:"default:0" json:"views"`
	IsPublished  bool           `gorm:"default:false;index" json:"is_published"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
