package models

import "time"

// Like records that a user liked exactly one of a video, a comment or a
// tweet. The record's existence is the liked state; there is no flag and
// no counter column. Each (user, target) pair is unique at the storage
// layer, which is the correctness backstop for concurrent toggles from
// the same user.
//
// Likes are hard-deleted on toggle-off so the unique index never blocks
// a later re-like.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_video;uniqueIndex:idx_like_user_comment;uniqueIndex:idx_like_user_tweet" json:"user_id"`
	VideoID   *uint     `gorm:"uniqueIndex:idx_like_user_video" json:"video_id,omitempty"`
	CommentID *uint     `gorm:"uniqueIndex:idx_like_user_comment" json:"comment_id,omitempty"`
	TweetID   *uint     `gorm:"uniqueIndex:idx_like_user_tweet" json:"tweet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video   *Video   `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	Comment *Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
	Tweet   *Tweet   `gorm:"foreignKey:TweetID" json:"tweet,omitempty"`
}
