package models

// ChannelStats is the dashboard aggregate for one channel. It is computed
// by a single declarative query plus a per-video stat listing; none of the
// counts are stored anywhere.
type ChannelStats struct {
	UserID          uint        `json:"user_id"`
	Username        string      `json:"username"`
	FullName        string      `json:"full_name"`
	Email           string      `json:"email"`
	Avatar          string      `json:"avatar"`
	CoverImage      string      `json:"cover_image"`
	IsSubscribed    bool        `json:"is_subscribed"`
	SubscriberCount int64       `json:"subscriber_count"`
	SubscribedCount int64       `json:"subscribed_count"`
	VideoCount      int64       `json:"video_count"`
	TotalViews      int64       `json:"total_views"`
	TotalLikes      int64       `json:"total_likes"`
	TotalComments   int64       `json:"total_comments"`
	Videos          []VideoStat `json:"videos" gorm:"-"`
}

// VideoStat is one row of per-video engagement numbers in the dashboard.
type VideoStat struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Views        int64  `json:"views"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}
