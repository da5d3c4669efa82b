package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtistService provides artist catalogue logic. Removal goes through LedgerService.
type ArtistService struct {
	artists    repository.ArtistRepositoryInterface
	users      repository.UserRepositoryInterface
	notifier   Notifier
	validator  *validator.Validate
	background func(func())
}

// Ensure ArtistService implements ArtistServiceInterface
var _ ArtistServiceInterface = (*ArtistService)(nil)

// NewArtistService creates a new artist service
func NewArtistService(artists repository.ArtistRepositoryInterface, users repository.UserRepositoryInterface, notifier Notifier, validator *validator.Validate) *ArtistService {
	return &ArtistService{
		artists:    artists,
		users:      users,
		notifier:   notifier,
		validator:  validator,
		background: func(f func()) { go f() },
	}
}

// WithInlineNotifications sends announcements on the calling goroutine
func (s *ArtistService) WithInlineNotifications() *ArtistService {
	s.background = func(f func()) { f() }
	return s
}

// CreateArtistRequest represents the request to add an artist
type CreateArtistRequest struct {
	Name  string  `json:"name" validate:"required,max=100" example:"Gaudenzi"`
	Cost  *int    `json:"cost" validate:"required,gte=0" example:"30"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=500"`
}

// UpdateArtistRequest represents a partial artist update. The score is never editable.
type UpdateArtistRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Cost  *int    `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=500"`
}

// ListArtists returns every active artist, most expensive first
func (s *ArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.artists.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// GetLeaderboard returns the artists ranked by total score with their events
func (s *ArtistService) GetLeaderboard(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.artists.GetLeaderboard()
	if err != nil {
		return nil, fmt.Errorf("failed to get artist leaderboard: %w", err)
	}
	return artists, nil
}

// CreateArtist adds an artist with a zero score and announces it to every user
func (s *ArtistService) CreateArtist(ctx context.Context, actor Actor, req *CreateArtistRequest) (*models.Artist, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	artist := &models.Artist{
		Name:  name,
		Cost:  *req.Cost,
		Image: req.Image,
	}
	if err := s.artists.Create(artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
		"cost":      artist.Cost,
	}).Info("Created artist")

	s.announce(ctx, artist)
	return artist, nil
}

// UpdateArtist changes name, cost or image
func (s *ArtistService) UpdateArtist(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateArtistRequest) (*models.Artist, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "is required")
		}
		updates["name"] = name
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) > 0 {
		if err := s.artists.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrArtistNotFound
			}
			return nil, fmt.Errorf("failed to update artist: %w", err)
		}
	}

	artist, err := s.artists.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return artist, nil
}

// announce mails every user after the artist is committed. Failures are only logged.
func (s *ArtistService) announce(ctx context.Context, artist *models.Artist) {
	if s.notifier == nil {
		return
	}
	log := logger.WithContext(ctx).WithField("artist_id", artist.ID)
	snapshot := *artist

	s.background(func() {
		recipients, err := s.users.GetEmails()
		if err != nil {
			log.WithError(err).Warn("Failed to load recipients for new artist email")
			return
		}
		if err := s.notifier.NotifyNewArtist(context.Background(), recipients, &snapshot); err != nil {
			log.WithError(err).Warn("Failed to notify users about new artist")
		}
	})
}
