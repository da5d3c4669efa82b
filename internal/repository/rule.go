package repository

import (
	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository handles database operations for rule definitions.
// Deletion goes through LedgerRepository.RevertRuleAndDelete.
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create creates a new rule
func (r *RuleRepository) Create(rule *models.RuleDefinition) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a rule by ID
func (r *RuleRepository) GetByID(id uuid.UUID) (*models.RuleDefinition, error) {
	var rule models.RuleDefinition
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves all rules grouped by category, biggest bonus first
func (r *RuleRepository) GetAll() ([]models.RuleDefinition, error) {
	var rules []models.RuleDefinition
	if err := r.db.Order("category ASC").Order("points DESC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Update updates a rule
func (r *RuleRepository) Update(rule *models.RuleDefinition) error {
	return r.db.Save(rule).Error
}
