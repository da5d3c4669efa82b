package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LatestNewsLimit is how many entries the public feed shows
const LatestNewsLimit = 10

// NewsService manages home page announcements
type NewsService struct {
	news      repository.NewsRepositoryInterface
	validator *validator.Validate
}

// Ensure NewsService implements NewsServiceInterface
var _ NewsServiceInterface = (*NewsService)(nil)

// NewNewsService creates a new news service
func NewNewsService(news repository.NewsRepositoryInterface, validator *validator.Validate) *NewsService {
	return &NewsService{
		news:      news,
		validator: validator,
	}
}

// NewsRequest represents a news create or full update
type NewsRequest struct {
	Title   string  `json:"title" validate:"required,max=200" example:"Si parte!"`
	Content string  `json:"content" validate:"required" example:"Il mercato è aperto fino a venerdì."`
	Image   *string `json:"image,omitempty" validate:"omitempty,max=500"`
}

// GetLatest returns the public feed
func (s *NewsService) GetLatest(ctx context.Context) ([]models.News, error) {
	items, err := s.news.GetLatest(LatestNewsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return items, nil
}

// ListNews returns every entry for the admin console
func (s *NewsService) ListNews(ctx context.Context, actor Actor) ([]models.News, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	items, err := s.news.GetLatest(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

// CreateNews publishes an entry authored by the actor
func (s *NewsService) CreateNews(ctx context.Context, actor Actor, req *NewsRequest) (*models.News, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	news := &models.News{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Image:    req.Image,
		AuthorID: actor.idPtr(),
	}
	if err := s.news.Create(news); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	return news, nil
}

// UpdateNews rewrites an entry
func (s *NewsService) UpdateNews(ctx context.Context, actor Actor, id uuid.UUID, req *NewsRequest) (*models.News, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	news, err := s.news.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	news.Title = strings.TrimSpace(req.Title)
	news.Content = req.Content
	news.Image = req.Image
	if err := s.news.Update(news); err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	return news, nil
}

// DeleteNews removes an entry
func (s *NewsService) DeleteNews(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.news.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return fmt.Errorf("failed to delete news: %w", err)
	}
	return nil
}
