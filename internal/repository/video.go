package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// VideoListOptions filters and pages a video listing.
type VideoListOptions struct {
	UserID        uint   // 0 means any channel
	OnlyPublished bool
	TitleQuery    string // case-insensitive substring match
	SortBy        string // validated by the service layer
	SortDesc      bool
	Limit         int
	Offset        int
}

// VideoRepository defines interface for video operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	List(ctx context.Context, opts VideoListOptions) ([]*models.Video, int64, error)
	Update(ctx context.Context, video *models.Video) error
	// DeleteOwned removes the video only when owned by ownerID and reports
	// whether a row was actually deleted.
	DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Select(`videos.*,
			(SELECT count(*) FROM likes WHERE likes.video_id = videos.id) AS likes_count,
			(SELECT count(*) FROM comments WHERE comments.video_id = videos.id AND comments.deleted_at IS NULL) AS comments_count`).
		Preload("User").
		First(&video, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context, opts VideoListOptions) ([]*models.Video, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Video{})
	if opts.UserID != 0 {
		q = q.Where("user_id = ?", opts.UserID)
	}
	if opts.OnlyPublished {
		q = q.Where("is_published = ?", true)
	}
	if opts.TitleQuery != "" {
		q = q.Where("title ILIKE ?", "%"+opts.TitleQuery+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := sortBy
	if opts.SortDesc {
		order += " desc"
	}

	var videos []*models.Video
	err := q.Preload("User").
		Order(order).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&videos).Error
	return videos, total, err
}

func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Video{})
	return res.RowsAffected > 0, res.Error
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
