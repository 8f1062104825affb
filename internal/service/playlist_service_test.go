package service

import (
	"context"
	"testing"

	"viewtube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_CreatePlaylist(t *testing.T) {
	t.Parallel()

	t.Run("success trims the name", func(t *testing.T) {
		t.Parallel()

		playlistRepo := &stubPlaylistRepo{
			getByOwnerAndName: func(_ context.Context, _ uint, _ string) (*models.Playlist, error) {
				return nil, nil
			},
			create: func(_ context.Context, playlist *models.Playlist) error {
				playlist.ID = 1
				return nil
			},
		}
		svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

		playlist, err := svc.CreatePlaylist(context.Background(), CreatePlaylistInput{
			UserID: 1,
			Name:   "  Watch Later  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Watch Later", playlist.Name)
		assert.Equal(t, uint(1), playlist.UserID)
	})

	t.Run("duplicate name for same owner is a conflict", func(t *testing.T) {
		t.Parallel()

		playlistRepo := &stubPlaylistRepo{
			getByOwnerAndName: func(_ context.Context, _ uint, name string) (*models.Playlist, error) {
				return &models.Playlist{ID: 7, Name: name}, nil
			},
		}
		svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

		_, err := svc.CreatePlaylist(context.Background(), CreatePlaylistInput{UserID: 1, Name: "Favorites"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewPlaylistService(&stubPlaylistRepo{}, &stubVideoRepo{})

		_, err := svc.CreatePlaylist(context.Background(), CreatePlaylistInput{UserID: 1, Name: "   "})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})
}

func TestPlaylistService_OwnershipChecks(t *testing.T) {
	t.Parallel()

	playlistRepo := &stubPlaylistRepo{
		getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
			if id == 404 {
				return nil, nil
			}
			return &models.Playlist{ID: id, UserID: 1, Name: "Mine"}, nil
		},
	}
	svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

	t.Run("missing playlist is not found", func(t *testing.T) {
		err := svc.DeletePlaylist(context.Background(), 1, 404)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := svc.DeletePlaylist(context.Background(), 2, 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	})
}

func TestPlaylistService_GetPlaylist_OwnerOnly(t *testing.T) {
	t.Parallel()

	playlistRepo := &stubPlaylistRepo{
		getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
			if id == 404 {
				return nil, nil
			}
			return &models.Playlist{ID: id, UserID: 1, Name: "Mine"}, nil
		},
	}
	svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

	t.Run("owner reads their playlist", func(t *testing.T) {
		playlist, err := svc.GetPlaylist(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint(10), playlist.ID)
	})

	t.Run("other users cannot read it", func(t *testing.T) {
		_, err := svc.GetPlaylist(context.Background(), 99, 10)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	})

	t.Run("missing playlist is not found", func(t *testing.T) {
		_, err := svc.GetPlaylist(context.Background(), 1, 404)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPlaylistService_AddVideo(t *testing.T) {
	t.Parallel()

	t.Run("adds and reloads the playlist", func(t *testing.T) {
		t.Parallel()

		added := false
		playlistRepo := &stubPlaylistRepo{
			getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
				playlist := &models.Playlist{ID: id, UserID: 1, Name: "Mine"}
				if added {
					playlist.Videos = []models.Video{{ID: 5}}
				}
				return playlist, nil
			},
			addVideo: func(_ context.Context, playlistID, videoID uint) error {
				assert.Equal(t, uint(10), playlistID)
				assert.Equal(t, uint(5), videoID)
				added = true
				return nil
			},
		}
		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, id uint) (*models.Video, error) {
				return &models.Video{ID: id}, nil
			},
		}
		svc := NewPlaylistService(playlistRepo, videoRepo)

		playlist, err := svc.AddVideo(context.Background(), 1, 10, 5)
		require.NoError(t, err)
		require.Len(t, playlist.Videos, 1)
	})

	t.Run("missing video is not found", func(t *testing.T) {
		t.Parallel()

		playlistRepo := &stubPlaylistRepo{
			getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
				return &models.Playlist{ID: id, UserID: 1}, nil
			},
		}
		videoRepo := &stubVideoRepo{
			getByID: func(_ context.Context, _ uint) (*models.Video, error) {
				return nil, nil
			},
		}
		svc := NewPlaylistService(playlistRepo, videoRepo)

		_, err := svc.AddVideo(context.Background(), 1, 10, 999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

// Removing a non-member is a no-op at the repository layer, so the service
// reports success either way.
func TestPlaylistService_RemoveVideo_AbsentIsNoop(t *testing.T) {
	t.Parallel()

	playlistRepo := &stubPlaylistRepo{
		getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
			return &models.Playlist{ID: id, UserID: 1}, nil
		},
		removeVideo: func(_ context.Context, _, _ uint) error {
			return nil
		},
	}
	svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

	playlist, err := svc.RemoveVideo(context.Background(), 1, 10, 999)
	require.NoError(t, err)
	assert.NotNil(t, playlist)
}

func TestPlaylistService_UpdatePlaylist_RenameConflict(t *testing.T) {
	t.Parallel()

	playlistRepo := &stubPlaylistRepo{
		getByID: func(_ context.Context, id uint) (*models.Playlist, error) {
			return &models.Playlist{ID: id, UserID: 1, Name: "Old"}, nil
		},
		getByOwnerAndName: func(_ context.Context, _ uint, name string) (*models.Playlist, error) {
			if name == "Taken" {
				return &models.Playlist{ID: 99, Name: name}, nil
			}
			return nil, nil
		},
	}
	svc := NewPlaylistService(playlistRepo, &stubVideoRepo{})

	name := "Taken"
	_, err := svc.UpdatePlaylist(context.Background(), UpdatePlaylistInput{
		UserID:     1,
		PlaylistID: 10,
		Name:       &name,
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}
