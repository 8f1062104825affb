package service

import (
	"context"
	"errors"

	"viewtube/internal/models"
	"viewtube/internal/repository"
	"viewtube/internal/validation"

	"gorm.io/gorm"
)

const (
	maxPlaylistNameLen = 100
	maxPlaylistDescLen = 1000
)

// PlaylistService manages owner-scoped named video collections.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
}

func NewPlaylistService(playlistRepo repository.PlaylistRepository, videoRepo repository.VideoRepository) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

// CreatePlaylistInput carries the fields for a new playlist.
type CreatePlaylistInput struct {
	UserID      uint
	Name        string
	Description string
}

// CreatePlaylist makes a new empty playlist. Names are unique per owner;
// a second playlist with the same name is a conflict, not an error swallow.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*models.Playlist, error) {
	name, err := validation.RequireText("name", input.Name, maxPlaylistNameLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.playlistRepo.GetByOwnerAndName(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You already have a playlist with this name")
	}

	playlist := &models.Playlist{
		UserID:      input.UserID,
		Name:        name,
		Description: input.Description,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("You already have a playlist with this name")
		}
		return nil, err
	}
	return playlist, nil
}

// GetPlaylist returns an owned playlist with its videos.
func (s *PlaylistService) GetPlaylist(ctx context.Context, userID, playlistID uint) (*models.Playlist, error) {
	return s.loadOwned(ctx, userID, playlistID, "view")
}

// ListUserPlaylists returns all playlists owned by the given user.
func (s *PlaylistService) ListUserPlaylists(ctx context.Context, ownerID uint) ([]*models.Playlist, error) {
	playlists, err := s.playlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []*models.Playlist{}
	}
	return playlists, nil
}

// UpdatePlaylistInput carries a playlist edit. Nil fields are left unchanged.
type UpdatePlaylistInput struct {
	UserID      uint
	PlaylistID  uint
	Name        *string
	Description *string
}

// UpdatePlaylist renames or re-describes an owned playlist.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, input UpdatePlaylistInput) (*models.Playlist, error) {
	playlist, err := s.loadOwned(ctx, input.UserID, input.PlaylistID, "update")
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validation.RequireText("name", *input.Name, maxPlaylistNameLen)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if name != playlist.Name {
			existing, err := s.playlistRepo.GetByOwnerAndName(ctx, input.UserID, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, models.NewConflictError("You already have a playlist with this name")
			}
		}
		playlist.Name = name
	}
	if input.Description != nil {
		if len(*input.Description) > maxPlaylistDescLen {
			return nil, models.NewValidationError("description is too long")
		}
		playlist.Description = *input.Description
	}

	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("You already have a playlist with this name")
		}
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes an owned playlist and its membership rows. The
// videos themselves are untouched.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID uint) error {
	playlist, err := s.loadOwned(ctx, userID, playlistID, "delete")
	if err != nil {
		return err
	}
	return s.playlistRepo.Delete(ctx, playlist.ID)
}

// AddVideo puts a video into an owned playlist. Adding a video that is
// already a member leaves the playlist unchanged.
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.Playlist, error) {
	if _, err := s.loadOwned(ctx, userID, playlistID, "modify"); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, models.NewNotFoundError("Video")
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}

// RemoveVideo takes a video out of an owned playlist. Removing a video
// that is not a member is a no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.Playlist, error) {
	if _, err := s.loadOwned(ctx, userID, playlistID, "modify"); err != nil {
		return nil, err
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}

func (s *PlaylistService) loadOwned(ctx context.Context, userID, playlistID uint, verb string) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, models.NewNotFoundError("Playlist")
	}
	if playlist.UserID != userID {
		return nil, models.NewForbiddenError("You can only " + verb + " your own playlists")
	}
	return playlist, nil
}
