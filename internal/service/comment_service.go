package service

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/repository"
	"viewtube/internal/validation"
)

const maxCommentLen = 10000

// CommentService implements the owner-scoped lifecycle of video comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

type CreateCommentInput struct {
	UserID  uint
	VideoID uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

// CommentPage is one page of a video's comments plus paging metadata.
type CommentPage struct {
	Comments []*models.Comment `json:"comments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	videoRepo repository.VideoRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

// ListComments returns one newest-first page of a video's comments. An
// empty page is a normal result, not an error.
func (s *CommentService) ListComments(ctx context.Context, videoID uint, page PageRequest) (*CommentPage, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, models.NewNotFoundError("Video")
	}

	page = page.Normalize()
	comments, total, err := s.commentRepo.ListByVideo(ctx, videoID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return &CommentPage{
		Comments: comments,
		Total:    total,
		Page:     page.Page,
		Pages:    TotalPages(total, page.Limit),
	}, nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	video, err := s.videoRepo.GetByID(ctx, in.VideoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, models.NewNotFoundError("Video")
	}

	content, err := validation.RequireText("Content", in.Content, maxCommentLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		Content: content,
		UserID:  in.UserID,
		VideoID: in.VideoID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// UpdateComment edits a comment's content. Existence is checked before
// ownership, so a missing comment reads as 404 and someone else's as 403.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment")
	}
	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	content, err := validation.RequireText("Content", in.Content, maxCommentLen)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment and returns the deleted record. Deleting
// an already-deleted ID yields 404.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment")
	}
	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return comment, nil
}
