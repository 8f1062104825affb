package service

import (
	"context"
	"strings"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// DashboardService serves channel-level aggregates for the owner dashboard
// and public channel pages.
type DashboardService struct {
	statsRepo repository.StatsRepository
	videoRepo repository.VideoRepository
}

func NewDashboardService(statsRepo repository.StatsRepository, videoRepo repository.VideoRepository) *DashboardService {
	return &DashboardService{statsRepo: statsRepo, videoRepo: videoRepo}
}

// ChannelStats returns the aggregate numbers for a channel looked up by
// username. viewerID may be 0 for anonymous viewers.
func (s *DashboardService) ChannelStats(ctx context.Context, username string, viewerID uint) (*models.ChannelStats, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, models.NewValidationError("username is required")
	}

	stats, err := s.statsRepo.ChannelStats(ctx, username, viewerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, models.NewNotFoundError("Channel")
	}
	return stats, nil
}

// ChannelVideos lists every video of the caller's own channel, drafts
// included, newest first.
func (s *DashboardService) ChannelVideos(ctx context.Context, ownerID uint, page PageRequest) (*VideoPage, error) {
	p := page.Normalize()

	videos, total, err := s.videoRepo.List(ctx, repository.VideoListOptions{
		UserID:   ownerID,
		SortBy:   "created_at",
		SortDesc: true,
		Limit:    p.Limit,
		Offset:   p.Offset(),
	})
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return &VideoPage{
		Videos: videos,
		Total:  total,
		Page:   p.Page,
		Pages:  TotalPages(total, p.Limit),
	}, nil
}
