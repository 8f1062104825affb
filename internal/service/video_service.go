package service

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/repository"
	"viewtube/internal/validation"
)

const (
	maxVideoTitleLen = 255
	maxVideoDescLen  = 5000
)

// videoSortColumns is the whitelist of sortable columns. Anything else
// falls back to created_at so request input never reaches the ORDER BY.
var videoSortColumns = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

// VideoService manages the video lifecycle: drafts, publishing, metadata
// edits, listing and deletion.
type VideoService struct {
	videoRepo repository.VideoRepository
}

func NewVideoService(videoRepo repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

// ListVideosInput selects and orders a page of published videos.
type ListVideosInput struct {
	Page     PageRequest
	UserID   uint   // 0 means any channel
	Query    string // title substring
	SortBy   string
	SortDesc bool
}

// VideoPage is one page of a video listing.
type VideoPage struct {
	Videos []*models.Video `json:"videos"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

// ListVideos returns a page of published videos. Unknown sort columns are
// coerced to created_at rather than rejected.
func (s *VideoService) ListVideos(ctx context.Context, input ListVideosInput) (*VideoPage, error) {
	page := input.Page.Normalize()

	sortBy := input.SortBy
	if !videoSortColumns[sortBy] {
		sortBy = "created_at"
	}

	videos, total, err := s.videoRepo.List(ctx, repository.VideoListOptions{
		UserID:        input.UserID,
		OnlyPublished: true,
		TitleQuery:    input.Query,
		SortBy:        sortBy,
		SortDesc:      input.SortDesc,
		Limit:         page.Limit,
		Offset:        page.Offset(),
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
		Page:   page.Page,
		Pages:  TotalPages(total, page.Limit),
	}, nil
}

// GetVideo fetches one video and bumps its view count. Unpublished drafts
// are visible only to their owner; everyone else sees not found rather
// than a hint that the draft exists.
func (s *VideoService) GetVideo(ctx context.Context, viewerID, videoID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil || (!video.IsPublished && video.UserID != viewerID) {
		return nil, models.NewNotFoundError("Video")
	}

	if video.UserID != viewerID {
		if err := s.videoRepo.IncrementViews(ctx, video.ID); err != nil {
			return nil, err
		}
		video.Views++
	}
	return video, nil
}

// CreateVideoInput carries the fields for a new draft.
type CreateVideoInput struct {
	UserID      uint
	Title       string
	Description string
	VideoURL    string
	Duration    int
}

// CreateVideo records a new unpublished draft.
func (s *VideoService) CreateVideo(ctx context.Context, input CreateVideoInput) (*models.Video, error) {
	title, err := validation.RequireText("title", input.Title, maxVideoTitleLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if len(input.Description) > maxVideoDescLen {
		return nil, models.NewValidationError("description is too long")
	}
	if input.Duration < 0 {
		return nil, models.NewValidationError("duration cannot be negative")
	}

	video := &models.Video{
		UserID:      input.UserID,
		Title:       title,
		Description: input.Description,
		VideoURL:    input.VideoURL,
		Duration:    input.Duration,
		IsPublished: false,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// UpdateVideoInput carries a metadata edit. Nil fields are left unchanged.
type UpdateVideoInput struct {
	UserID      uint
	VideoID     uint
	Title       *string
	Description *string
}

// UpdateVideo edits the metadata of an owned video.
func (s *VideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*models.Video, error) {
	video, err := s.loadOwned(ctx, input.UserID, input.VideoID, "update")
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validation.RequireText("title", *input.Title, maxVideoTitleLen)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		video.Title = title
	}
	if input.Description != nil {
		if len(*input.Description) > maxVideoDescLen {
			return nil, models.NewValidationError("description is too long")
		}
		video.Description = *input.Description
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// UpdateThumbnail points an owned video at a freshly uploaded thumbnail.
func (s *VideoService) UpdateThumbnail(ctx context.Context, userID, videoID uint, thumbnailURL string) (*models.Video, error) {
	video, err := s.loadOwned(ctx, userID, videoID, "update")
	if err != nil {
		return nil, err
	}
	video.ThumbnailURL = thumbnailURL
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo removes an owned video. The delete is scoped to the owner in
// a single query, so someone else's video id reads as not found.
func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID uint) error {
	deleted, err := s.videoRepo.DeleteOwned(ctx, videoID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Video")
	}
	return nil
}

// TogglePublish flips the published state of an owned video and returns
// the video in its new state.
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID uint) (*models.Video, error) {
	video, err := s.loadOwned(ctx, userID, videoID, "publish")
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) loadOwned(ctx context.Context, userID, videoID uint, verb string) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, models.NewNotFoundError("Video")
	}
	if video.UserID != userID {
		return nil, models.NewForbiddenError("You can only " + verb + " your own videos")
	}
	return video, nil
}
