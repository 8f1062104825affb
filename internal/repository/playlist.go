package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaylistRepository defines interface for playlist operations. Membership
// is a set: AddVideo is an ON CONFLICT DO NOTHING insert and RemoveVideo of
// a non-member is a no-op; neither reports an error.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	GetByID(ctx context.Context, id uint) (*models.Playlist, error)
	GetByOwnerAndName(ctx context.Context, ownerID uint, name string) (*models.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Playlist, error)
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uint) error
	AddVideo(ctx context.Context, playlistID, videoID uint) error
	RemoveVideo(ctx context.Context, playlistID, videoID uint) error
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new PlaylistRepository
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("videos.created_at desc")
		}).
		First(&playlist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) GetByOwnerAndName(
	ctx context.Context,
	ownerID uint,
	name string,
) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", ownerID, name).
		First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Playlist, error) {
	var playlists []*models.Playlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&playlists).Error
	return playlists, err
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Save(playlist).Error
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(&models.Playlist{ID: id}).Error
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	member := models.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	return r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error
}
