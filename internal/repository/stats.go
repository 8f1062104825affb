package repository

import (
	"context"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// StatsRepository computes channel dashboard aggregates.
type StatsRepository interface {
	// ChannelStats resolves a channel by username and returns its aggregate
	// counts plus per-video stat rows. viewerID (0 for anonymous) drives the
	// is_subscribed flag. Returns (nil, nil) when the channel does not exist.
	ChannelStats(ctx context.Context, username string, viewerID uint) (*models.ChannelStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// channelStatsQuery gathers every aggregate in one declarative statement so
// the counts are mutually consistent within a single snapshot.
const channelStatsQuery = `
SELECT
  u.id          AS user_id,
  u.username    AS username,
  u.full_name   AS full_name,
  u.email       AS email,
  u.avatar      AS avatar,
  u.cover_image AS cover_image,
  (SELECT count(*) FROM subscriptions s WHERE s.channel_id = u.id)    AS subscriber_count,
  (SELECT count(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_count,
  (SELECT count(*) FROM videos v
     WHERE v.user_id = u.id AND v.deleted_at IS NULL)                 AS video_count,
  (SELECT coalesce(sum(v.views), 0) FROM videos v
     WHERE v.user_id = u.id AND v.deleted_at IS NULL)                 AS total_views,
  (SELECT count(*) FROM likes l
     JOIN videos v ON v.id = l.video_id
     WHERE v.user_id = u.id AND v.deleted_at IS NULL)                 AS total_likes,
  (SELECT count(*) FROM comments c
     JOIN videos v ON v.id = c.video_id
     WHERE v.user_id = u.id AND v.deleted_at IS NULL
       AND c.deleted_at IS NULL)                                      AS total_comments,
  EXISTS (SELECT 1 FROM subscriptions s
     WHERE s.channel_id = u.id AND s.subscriber_id = ?)               AS is_subscribed
FROM users u
WHERE u.username = ? AND u.deleted_at IS NULL`

const channelVideoStatsQuery = `
SELECT
  v.id    AS id,
  v.title AS title,
  v.views AS views,
  (SELECT count(*) FROM likes l WHERE l.video_id = v.id)       AS like_count,
  (SELECT count(*) FROM comments c
     WHERE c.video_id = v.id AND c.deleted_at IS NULL)         AS comment_count
FROM videos v
WHERE v.user_id = ? AND v.deleted_at IS NULL
ORDER BY v.created_at DESC`

func (r *statsRepository) ChannelStats(
	ctx context.Context,
	username string,
	viewerID uint,
) (*models.ChannelStats, error) {
	var stats models.ChannelStats
	err := r.db.WithContext(ctx).
		Raw(channelStatsQuery, viewerID, username).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.UserID == 0 {
		// Raw+Scan does not produce ErrRecordNotFound; an empty result
		// leaves the zero value behind.
		return nil, nil
	}

	if err := r.db.WithContext(ctx).
		Raw(channelVideoStatsQuery, stats.UserID).
		Scan(&stats.Videos).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
