package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/metrics"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService records and reverts bonus/malus events. Every score change it makes
// reaches the artist total and the league scores of the teams holding the artist
// in the same transaction.
type LedgerService struct {
	ledger    repository.LedgerRepositoryInterface
	rules     repository.RuleRepositoryInterface
	validator *validator.Validate
}

// Ensure LedgerService implements LedgerServiceInterface
var _ LedgerServiceInterface = (*LedgerService)(nil)

// NewLedgerService creates a new ledger service
func NewLedgerService(ledger repository.LedgerRepositoryInterface, rules repository.RuleRepositoryInterface, validator *validator.Validate) *LedgerService {
	return &LedgerService{
		ledger:    ledger,
		rules:     rules,
		validator: validator,
	}
}

// RecordEventRequest represents the request to award or deduct points.
// With a rule set, a missing description or points value is taken from the rule.
type RecordEventRequest struct {
	ArtistID    uuid.UUID  `json:"artistId" validate:"required" example:"6f1c2b9e-3d4a-4b8e-9f2a-1c2d3e4f5a6b"`
	Points      *int       `json:"points,omitempty" example:"15"`
	Description string     `json:"description" validate:"max=500" example:"Cambio d'abito durante l'esibizione"`
	RuleID      *uuid.UUID `json:"ruleId,omitempty"`
}

// EventResponse represents a recorded or reverted event
type EventResponse struct {
	Event               *models.BonusMalusEvent `json:"event"`
	LeagueScoresUpdated int64                   `json:"leagueScoresUpdated"`
}

// RuleDeletionResponse represents the outcome of deleting a rule and its events
type RuleDeletionResponse struct {
	*repository.RuleRevertResult
	Message string `json:"message"`
}

// ArtistDeletionResponse represents the outcome of removing an artist
type ArtistDeletionResponse struct {
	*repository.ArtistRemovalResult
	Message string `json:"message"`
}

// RecordEvent applies a bonus or malus to an artist
func (s *LedgerService) RecordEvent(ctx context.Context, actor Actor, req *RecordEventRequest) (*EventResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	points := req.Points
	description := strings.TrimSpace(req.Description)
	if req.RuleID != nil {
		rule, err := s.rules.GetByID(*req.RuleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRuleNotFound
			}
			return nil, fmt.Errorf("failed to get rule: %w", err)
		}
		if points == nil {
			points = &rule.Points
		}
		if description == "" {
			description = rule.Title
		}
	}

	if points == nil {
		return nil, apperrors.NewValidationError("points", "is required")
	}
	if description == "" {
		return nil, apperrors.ErrEmptyEventDescription
	}

	event := &models.BonusMalusEvent{
		ArtistID:    req.ArtistID,
		Points:      *points,
		Description: description,
		RuleID:      req.RuleID,
		CreatedByID: actor.idPtr(),
	}

	start := time.Now()
	changed, err := s.ledger.RecordEvent(ctx, event)
	if err != nil {
		metrics.RecordLedgerOperation("record", 0, time.Since(start), err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.missingReference(event)
		}
		return nil, fmt.Errorf("failed to record event: %w", err)
	}
	metrics.RecordLedgerOperation("record", event.Points, time.Since(start), nil)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       event.ID,
		"artist_id":      event.ArtistID,
		"points":         event.Points,
		"league_updates": changed,
	}).Info("Recorded bonus/malus event")

	return &EventResponse{Event: event, LeagueScoresUpdated: changed}, nil
}

// RevertEvent undoes an event and deletes it
func (s *LedgerService) RevertEvent(ctx context.Context, actor Actor, eventID uuid.UUID) (*EventResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	start := time.Now()
	event, err := s.ledger.RevertEvent(ctx, eventID)
	if err != nil {
		metrics.RecordLedgerOperation("revert", 0, time.Since(start), err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to revert event: %w", err)
	}
	metrics.RecordLedgerOperation("revert", -event.Points, time.Since(start), nil)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":  event.ID,
		"artist_id": event.ArtistID,
		"points":    event.Points,
	}).Info("Reverted bonus/malus event")

	return &EventResponse{Event: event}, nil
}

// DeleteRule reverts every event recorded under the rule, then deletes the rule
func (s *LedgerService) DeleteRule(ctx context.Context, actor Actor, ruleID uuid.UUID) (*RuleDeletionResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.ledger.RevertRuleAndDelete(ctx, ruleID)
	if err != nil {
		metrics.RecordLedgerOperation("delete_rule", 0, time.Since(start), err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to delete rule: %w", err)
	}
	metrics.RecordLedgerOperation("delete_rule", -result.PointsReverted, time.Since(start), nil)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"rule_id":         ruleID,
		"events_reverted": result.EventsReverted,
		"points_reverted": result.PointsReverted,
	}).Info("Deleted rule")

	return &RuleDeletionResponse{
		RuleRevertResult: result,
		Message:          fmt.Sprintf("rule deleted, %d events reverted", result.EventsReverted),
	}, nil
}

// DeleteArtist takes the artist off every roster and soft-deletes it
func (s *LedgerService) DeleteArtist(ctx context.Context, actor Actor, artistID uuid.UUID) (*ArtistDeletionResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.ledger.DeleteArtist(ctx, artistID)
	if err != nil {
		metrics.RecordLedgerOperation("delete_artist", 0, time.Since(start), err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to delete artist: %w", err)
	}
	metrics.RecordLedgerOperation("delete_artist", 0, time.Since(start), nil)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"artist_id":        artistID,
		"teams_affected":   result.TeamsAffected,
		"captains_cleared": result.CaptainsCleared,
	}).Info("Deleted artist")

	return &ArtistDeletionResponse{
		ArtistRemovalResult: result,
		Message:             "artist removed from every team",
	}, nil
}

// ListEvents returns every event, newest first
func (s *LedgerService) ListEvents(ctx context.Context, actor Actor) ([]models.BonusMalusEvent, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	events, err := s.ledger.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// missingReference tells apart a vanished rule from a missing artist after the
// repository reported a not-found inside the transaction.
func (s *LedgerService) missingReference(event *models.BonusMalusEvent) error {
	if event.RuleID != nil {
		if _, err := s.rules.GetByID(*event.RuleID); errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleNotFound
		}
	}
	return apperrors.ErrArtistNotFound
}
