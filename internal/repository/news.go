package repository

import (
	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsRepository handles database operations for news
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a news entry
func (r *NewsRepository) Create(news *models.News) error {
	return r.db.Omit("Author").Create(news).Error
}

// GetByID retrieves a news entry by ID
func (r *NewsRepository) GetByID(id uuid.UUID) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").First(&news, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetLatest retrieves the newest entries; limit <= 0 returns all of them
func (r *NewsRepository) GetLatest(limit int) ([]models.News, error) {
	var items []models.News
	query := r.db.Preload("Author").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a news entry
func (r *NewsRepository) Update(news *models.News) error {
	return r.db.Omit("Author").Save(news).Error
}

// Delete deletes a news entry
func (r *NewsRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.News{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
