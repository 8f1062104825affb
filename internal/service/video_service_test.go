package service

import (
	"context"
	"testing"

	"viewtube/internal/models"
	"viewtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoService_ListVideos_SortWhitelist(t *testing.T) {
	t.Parallel()

	var captured repository.VideoListOptions
	videoRepo := &stubVideoRepo{
		list: func(_ context.Context, opts repository.VideoListOptions) ([]*models.Video, int64, error) {
			captured = opts
			return nil, 0, nil
		},
	}
	svc := NewVideoService(videoRepo)

	_, err := svc.ListVideos(context.Background(), ListVideosInput{
		SortBy: "password; DROP TABLE videos",
	})
	require.NoError(t, err)
	assert.Equal(t, "created_at", captured.SortBy)
	assert.True(t, captured.OnlyPublished)

	_, err = svc.ListVideos(context.Background(), ListVideosInput{SortBy: "views"})
	require.NoError(t, err)
	assert.Equal(t, "views", captured.SortBy)
}

func TestVideoService_ListVideos_EmptyPage(t *testing.T) {
	t.Parallel()

	videoRepo := &stubVideoRepo{
		list: func(_ context.Context, _ repository.VideoListOptions) ([]*models.Video, int64, error) {
			return nil, 0, nil
		},
	}
	svc := NewVideoService(videoRepo)

	page, err := svc.ListVideos(context.Background(), ListVideosInput{Page: PageRequest{Page: 50}})
	require.NoError(t, err)
	assert.NotNil(t, page.Videos)
	assert.Empty(t, page.Videos)
	assert.Equal(t, 50, page.Page)
	assert.Equal(t, 0, page.Pages)
}

func TestVideoService_GetVideo(t *testing.T) {
	t.Parallel()

	t.Run("draft hidden from non-owners", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id, UserID: 1, IsPublished: false}, nil
			},
		}
		svc := NewVideoService(videoRepo)

		_, err := svc.GetVideo(context.Background(), 2, 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("owner sees own draft without a view bump", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id, UserID: 1, IsPublished: false, Views: 3}, nil
			},
		}
		svc := NewVideoService(videoRepo)

		video, err := svc.GetVideo(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), video.Views)
	})

	t.Run("viewer fetch bumps views", func(t *testing.T) {
		t.Parallel()

		var bumped uint
		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id, UserID: 1, IsPublished: true, Views: 3}, nil
			},
			incrementViews: func(_ context.Context, id uint) error {
				bumped = id
				return nil
			},
		}
		svc := NewVideoService(videoRepo)

		video, err := svc.GetVideo(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, uint(10), bumped)
		assert.Equal(t, int64(4), video.Views)
	})
}

func TestVideoService_CreateVideo_StartsAsDraft(t *testing.T) {
	t.Parallel()

	var created *models.Video
	videoRepo := &stubVideoRepo{
		create: func(_ context.Context, video *models.Video) error {
			created = video
			return nil
		},
	}
	svc := NewVideoService(videoRepo)

	_, err := svc.CreateVideo(context.Background(), CreateVideoInput{
		UserID: 1,
		Title:  "My first video",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.IsPublished)
}

func TestVideoService_DeleteVideo(t *testing.T) {
	t.Parallel()

	t.Run("second delete reads as not found", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			deleteOwned: func(_ context.Context, _, _ uint) (bool, error) {
				return false, nil
			},
		}
		svc := NewVideoService(videoRepo)

		err := svc.DeleteVideo(context.Background(), 1, 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("owner delete succeeds", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			deleteOwned: func(_ context.Context, id, ownerID uint) (bool, error) {
				assert.Equal(t, uint(10), id)
				assert.Equal(t, uint(1), ownerID)
				return true, nil
			},
		}
		svc := NewVideoService(videoRepo)

		require.NoError(t, svc.DeleteVideo(context.Background(), 1, 10))
	})
}

func TestVideoService_TogglePublish(t *testing.T) {
	t.Parallel()

	t.Run("flips state", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id, UserID: 1, IsPublished: false}, nil
			},
			update: func(_ context.Context, _ *models.Video) error {
				return nil
			},
		}
		svc := NewVideoService(videoRepo)

		video, err := svc.TogglePublish(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, video.IsPublished)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		t.Parallel()

		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id, UserID: 1}, nil
			},
		}
		svc := NewVideoService(videoRepo)

		_, err := svc.TogglePublish(context.Background(), 2, 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	})
}
