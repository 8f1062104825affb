package service

import (
	"context"
	"strings"
	"testing"

	"viewtube/internal/models"
	"viewtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_ChannelStats_NormalizesUsername(t *testing.T) {
	t.Parallel()

	var captured string
	statsRepo := &stubStatsRepo{
		channelStats: func(_ context.Context, username string, _ uint) (*models.ChannelStats, error) {
			captured = username
			return &models.ChannelStats{Username: username, SubscriberCount: 3}, nil
		},
	}
	svc := NewDashboardService(statsRepo, &stubVideoRepo{})

	stats, err := svc.ChannelStats(context.Background(), "  AliceVlogs  ", 0)
	require.NoError(t, err)
	assert.Equal(t, "alicevlogs", captured)
	assert.Equal(t, int64(3), stats.SubscriberCount)
}

func TestDashboardService_ChannelStats_BlankUsername(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(&stubStatsRepo{}, &stubVideoRepo{})

	_, err := svc.ChannelStats(context.Background(), "   ", 0)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestDashboardService_ChannelStats_UnknownChannel(t *testing.T) {
	t.Parallel()

	statsRepo := &stubStatsRepo{
		channelStats: func(_ context.Context, _ string, _ uint) (*models.ChannelStats, error) {
			return nil, nil
		},
	}
	svc := NewDashboardService(statsRepo, &stubVideoRepo{})

	_, err := svc.ChannelStats(context.Background(), "ghost", 0)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.True(t, strings.Contains(appErr.Message, "Channel"))
}

func TestDashboardService_ChannelVideos_IncludesDrafts(t *testing.T) {
	t.Parallel()

	var captured repository.VideoListOptions
	videoRepo := &stubVideoRepo{
		list: func(_ context.Context, opts repository.VideoListOptions) ([]*models.Video, int64, error) {
			captured = opts
			return []*models.Video{
				{ID: 1, UserID: 7, IsPublished: false},
				{ID: 2, UserID: 7, IsPublished: true},
			}, 2, nil
		},
	}
	svc := NewDashboardService(&stubStatsRepo{}, videoRepo)

	page, err := svc.ChannelVideos(context.Background(), 7, PageRequest{})
	require.NoError(t, err)
	assert.False(t, captured.OnlyPublished)
	assert.Equal(t, uint(7), captured.UserID)
	assert.Len(t, page.Videos, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Pages)
}
