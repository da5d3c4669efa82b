package repository

import (
	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtistRepository handles database operations for artists.
// Soft-deleted artists are excluded from every query here.
type ArtistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create creates a new artist
func (r *ArtistRepository) Create(artist *models.Artist) error {
	return r.db.Omit("Events").Create(artist).Error
}

// GetByID retrieves an artist by ID
func (r *ArtistRepository) GetByID(id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.First(&artist, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetByIDs retrieves the artists matching ids; missing ids are silently skipped
func (r *ArtistRepository) GetByIDs(ids []uuid.UUID) ([]models.Artist, error) {
	var artists []models.Artist
	if len(ids) == 0 {
		return artists, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// GetAll retrieves all artists, most expensive first
func (r *ArtistRepository) GetAll() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("cost DESC").Order("name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// GetLeaderboard retrieves all artists by total score with their events, newest event first
func (r *ArtistRepository) GetLeaderboard() ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("total_score DESC").Order("name").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// Update applies partial updates to an artist.
// total_score is owned by the ledger and is never accepted here.
func (r *ArtistRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	delete(updates, "total_score")
	res := r.db.Model(&models.Artist{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
