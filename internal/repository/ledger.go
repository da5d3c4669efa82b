package repository

import (
	"context"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RuleRevertResult summarises a rule deletion cascade
type RuleRevertResult struct {
	RuleID         uuid.UUID `json:"ruleId"`
	EventsReverted int       `json:"eventsReverted"`
	PointsReverted int       `json:"pointsReverted"`
}

// ArtistRemovalResult summarises an artist deletion
type ArtistRemovalResult struct {
	ArtistID        uuid.UUID `json:"artistId"`
	TotalScore      int       `json:"totalScore"`
	TeamsAffected   int64     `json:"teamsAffected"`
	CaptainsCleared int64     `json:"captainsCleared"`
}

// LedgerRepository owns every write to artists.total_score and team_leagues.score
// that originates from a bonus/malus event. Each method runs in one transaction.
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// RecordEvent inserts the event and propagates its points to the artist and to every
// league score of the teams holding the artist. It returns the team_leagues rows changed.
// gorm.ErrRecordNotFound means the artist (or the rule, when set) does not exist.
func (r *LedgerRepository) RecordEvent(ctx context.Context, event *models.BonusMalusEvent) (int64, error) {
	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event.RuleID != nil {
			var rule models.RuleDefinition
			if err := tx.Clauses(clause.Locking{Strength: "KEY SHARE"}).
				First(&rule, "id = ?", *event.RuleID).Error; err != nil {
				return err
			}
		}

		// live artists only: a deleted artist can no longer score
		var artist models.Artist
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			First(&artist, "id = ?", event.ArtistID).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(event).Error; err != nil {
			return err
		}

		n, err := applyArtistDelta(tx, event.ArtistID, event.Points)
		if err != nil {
			return err
		}
		changed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// RevertEvent undoes the event's effect on the artist and on the teams that hold the
// artist now, then deletes the event. The deleted event is returned.
func (r *LedgerRepository) RevertEvent(ctx context.Context, id uuid.UUID) (*models.BonusMalusEvent, error) {
	var event models.BonusMalusEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			First(&event, "id = ?", id).Error; err != nil {
			return err
		}

		if _, err := lockArtistForUpdate(tx, event.ArtistID); err != nil {
			return err
		}

		if _, err := applyArtistDelta(tx, event.ArtistID, -event.Points); err != nil {
			return err
		}

		return tx.Delete(&models.BonusMalusEvent{}, "id = ?", event.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// RevertRuleAndDelete reverts every event recorded under the rule and deletes the rule,
// all or nothing.
func (r *LedgerRepository) RevertRuleAndDelete(ctx context.Context, ruleID uuid.UUID) (*RuleRevertResult, error) {
	result := &RuleRevertResult{RuleID: ruleID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rule models.RuleDefinition
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			First(&rule, "id = ?", ruleID).Error; err != nil {
			return err
		}

		// ordered by artist so artist locks follow the global ordering
		var events []models.BonusMalusEvent
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("rule_id = ?", ruleID).
			Order("artist_id").Order("id").
			Find(&events).Error; err != nil {
			return err
		}

		for _, event := range events {
			if _, err := lockArtistForUpdate(tx, event.ArtistID); err != nil {
				return err
			}
			if _, err := applyArtistDelta(tx, event.ArtistID, -event.Points); err != nil {
				return err
			}
			result.EventsReverted++
			result.PointsReverted += event.Points
		}

		if err := tx.Where("rule_id = ?", ruleID).Delete(&models.BonusMalusEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RuleDefinition{}, "id = ?", ruleID).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteArtist soft-deletes the artist after taking it off every roster. The artist's
// total is subtracted from the affected league scores so they keep matching the remaining
// roster, and captaincies pointing at the artist are cleared. Events are kept.
func (r *LedgerRepository) DeleteArtist(ctx context.Context, artistID uuid.UUID) (*ArtistRemovalResult, error) {
	result := &ArtistRemovalResult{ArtistID: artistID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// teams come before artists in the lock order
		var teamIDs []uuid.UUID
		holders := tx.Model(&models.TeamArtist{}).Select("team_id").Where("artist_id = ?", artistID)
		if err := tx.Model(&models.Team{}).
			Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id IN (?) OR captain_id = ?", holders, artistID).
			Order("id").
			Pluck("id", &teamIDs).Error; err != nil {
			return err
		}

		var artist models.Artist
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			First(&artist, "id = ?", artistID).Error; err != nil {
			return err
		}
		result.TotalScore = artist.TotalScore

		holders = tx.Model(&models.TeamArtist{}).Select("team_id").Where("artist_id = ?", artistID)
		res := tx.Model(&models.TeamLeague{}).
			Where("team_id IN (?)", holders).
			Update("score", gorm.Expr("score - ?", artist.TotalScore))
		if res.Error != nil {
			return res.Error
		}
		result.TeamsAffected = res.RowsAffected

		res = tx.Model(&models.Team{}).
			Where("captain_id = ?", artistID).
			Update("captain_id", nil)
		if res.Error != nil {
			return res.Error
		}
		result.CaptainsCleared = res.RowsAffected

		if err := tx.Where("artist_id = ?", artistID).Delete(&models.TeamArtist{}).Error; err != nil {
			return err
		}

		return tx.Delete(&artist).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves an event by ID
func (r *LedgerRepository) GetByID(id uuid.UUID) (*models.BonusMalusEvent, error) {
	var event models.BonusMalusEvent
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves every event, newest first, with artist (deleted ones too), rule and author
func (r *LedgerRepository) GetAll() ([]models.BonusMalusEvent, error) {
	var events []models.BonusMalusEvent
	err := r.db.
		Preload("Artist", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("Rule").
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
