package service

import (
	"context"
	"fmt"
	"time"

	"fantapiazza-backend/internal/database/models"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/repository"
)

// SettingsService reads and changes the game-wide settings
type SettingsService struct {
	settings repository.SettingsRepositoryInterface
}

// Ensure SettingsService implements SettingsServiceInterface
var _ SettingsServiceInterface = (*SettingsService)(nil)

// NewSettingsService creates a new settings service
func NewSettingsService(settings repository.SettingsRepositoryInterface) *SettingsService {
	return &SettingsService{settings: settings}
}

// UpdateSettingsRequest represents a settings change. A null deadline reopens the draft.
type UpdateSettingsRequest struct {
	DraftDeadline *time.Time `json:"draftDeadline" example:"2026-05-30T20:00:00Z"`
}

// GetSettings returns the settings row
func (s *SettingsService) GetSettings(ctx context.Context) (*models.SystemSettings, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings sets or clears the draft deadline
func (s *SettingsService) UpdateSettings(ctx context.Context, actor Actor, req *UpdateSettingsRequest) (*models.SystemSettings, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var deadline *time.Time
	if req.DraftDeadline != nil {
		utc := req.DraftDeadline.UTC()
		deadline = &utc
	}

	settings, err := s.settings.SetDraftDeadline(deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	logger.WithContext(ctx).WithField("draft_deadline", deadline).Info("Updated draft deadline")
	return settings, nil
}
