package repository

import (
	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SponsorRepository handles database operations for sponsors
type SponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository creates a new sponsor repository
func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

// Create creates a sponsor
func (r *SponsorRepository) Create(sponsor *models.Sponsor) error {
	return r.db.Create(sponsor).Error
}

// GetByID retrieves a sponsor by ID
func (r *SponsorRepository) GetByID(id uuid.UUID) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := r.db.First(&sponsor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// GetAll retrieves sponsors in insertion order
func (r *SponsorRepository) GetAll() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	if err := r.db.Order("created_at ASC").Find(&sponsors).Error; err != nil {
		return nil, err
	}
	return sponsors, nil
}

// Delete deletes a sponsor
func (r *SponsorRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Sponsor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
