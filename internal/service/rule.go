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

// RuleService manages the scoring rule catalogue. Deletion cascades through LedgerService.
type RuleService struct {
	rules     repository.RuleRepositoryInterface
	validator *validator.Validate
}

// Ensure RuleService implements RuleServiceInterface
var _ RuleServiceInterface = (*RuleService)(nil)

// NewRuleService creates a new rule service
func NewRuleService(rules repository.RuleRepositoryInterface, validator *validator.Validate) *RuleService {
	return &RuleService{
		rules:     rules,
		validator: validator,
	}
}

// RuleRequest represents a rule create or full update
type RuleRequest struct {
	Category    string `json:"category" validate:"required,max=50" example:"BONUS"`
	Title       string `json:"title" validate:"required,max=200" example:"A cappella"`
	Description string `json:"description" validate:"max=1000" example:"Canta almeno una strofa senza musica"`
	Points      *int   `json:"points" validate:"required" example:"15"`
}

// ListRules returns the catalogue grouped by category, biggest bonus first
func (s *RuleService) ListRules(ctx context.Context) ([]models.RuleDefinition, error) {
	rules, err := s.rules.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// CreateRule adds a rule to the catalogue
func (s *RuleService) CreateRule(ctx context.Context, actor Actor, req *RuleRequest) (*models.RuleDefinition, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	rule := &models.RuleDefinition{}
	applyRule(rule, req)
	if err := s.rules.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// UpdateRule rewrites a rule. Points already awarded under it are not touched.
func (s *RuleService) UpdateRule(ctx context.Context, actor Actor, id uuid.UUID, req *RuleRequest) (*models.RuleDefinition, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	rule, err := s.rules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	applyRule(rule, req)
	if err := s.rules.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return rule, nil
}

func applyRule(rule *models.RuleDefinition, req *RuleRequest) {
	rule.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	rule.Title = strings.TrimSpace(req.Title)
	rule.Description = strings.TrimSpace(req.Description)
	rule.Points = *req.Points
}
