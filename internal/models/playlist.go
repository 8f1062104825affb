package models

import (
	"time"

	"gorm.io/gorm"
)

// Playlist is an owner-scoped, named set of videos. Names are unique per
// owner, not globally. Membership is a set: the join table's composite
// primary key makes duplicate adds impossible.
type Playlist struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;uniqueIndex:idx_playlist_owner_name" json:"user_id"`
	Name        string         `gorm:"size:255;not null;uniqueIndex:idx_playlist_owner_name" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	User        User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Videos      []Video        `gorm:"many2many:playlist_videos" json:"videos,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// PlaylistVideo is the playlist membership join row.
type PlaylistVideo struct {
	PlaylistID uint      `gorm:"primaryKey" json:"playlist_id"`
	VideoID    uint      `gorm:"primaryKey" json:"video_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the join table shared with the many2many association.
func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
