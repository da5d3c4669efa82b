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

// SponsorService manages footer sponsors
type SponsorService struct {
	sponsors  repository.SponsorRepositoryInterface
	validator *validator.Validate
}

// Ensure SponsorService implements SponsorServiceInterface
var _ SponsorServiceInterface = (*SponsorService)(nil)

// NewSponsorService creates a new sponsor service
func NewSponsorService(sponsors repository.SponsorRepositoryInterface, validator *validator.Validate) *SponsorService {
	return &SponsorService{
		sponsors:  sponsors,
		validator: validator,
	}
}

// SponsorRequest represents the request to add a sponsor
type SponsorRequest struct {
	Name    string `json:"name" validate:"required,max=100" example:"Pasticceria Centrale"`
	LogoURL string `json:"logoUrl" validate:"required,url,max=500" example:"https://cdn.example.com/logo.png"`
}

// ListSponsors returns sponsors oldest first
func (s *SponsorService) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	sponsors, err := s.sponsors.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}

// CreateSponsor adds a sponsor
func (s *SponsorService) CreateSponsor(ctx context.Context, actor Actor, req *SponsorRequest) (*models.Sponsor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	sponsor := &models.Sponsor{
		Name:    strings.TrimSpace(req.Name),
		LogoURL: strings.TrimSpace(req.LogoURL),
	}
	if err := s.sponsors.Create(sponsor); err != nil {
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return sponsor, nil
}

// DeleteSponsor removes a sponsor
func (s *SponsorService) DeleteSponsor(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.sponsors.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSponsorNotFound
		}
		return fmt.Errorf("failed to delete sponsor: %w", err)
	}
	return nil
}
