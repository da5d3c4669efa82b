package repository

import (
	"errors"
	"time"

	"fantapiazza-backend/internal/database/models"

	"gorm.io/gorm"
)

// SettingsRepository reads and writes the single system settings row
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, creating an empty one on first use
func (r *SettingsRepository) Get() (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := r.db.
		Where(models.SystemSettings{Key: models.SettingsKey}).
		FirstOrCreate(&settings).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the race to create the row
		err = r.db.Where(models.SystemSettings{Key: models.SettingsKey}).First(&settings).Error
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetDraftDeadline stores the deadline; nil clears it and reopens the draft
func (r *SettingsRepository) SetDraftDeadline(deadline *time.Time) (*models.SystemSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(settings).Update("draft_deadline", deadline).Error; err != nil {
		return nil, err
	}
	settings.DraftDeadline = deadline
	return settings, nil
}
