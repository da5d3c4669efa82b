package repository

import (
	"context"
	"time"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByVerificationToken(token string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetEmails() ([]string, error)
	Update(user *models.User) error
}

// ArtistRepositoryInterface defines the interface for artist repository operations
type ArtistRepositoryInterface interface {
	Create(artist *models.Artist) error
	GetByID(id uuid.UUID) (*models.Artist, error)
	GetByIDs(ids []uuid.UUID) ([]models.Artist, error)
	GetAll() ([]models.Artist, error)
	GetLeaderboard() ([]models.Artist, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByUserID(userID uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	CreateWithRoster(ctx context.Context, team *models.Team, artistIDs []uuid.UUID) (int, error)
	UpdateRoster(ctx context.Context, team *models.Team, artistIDs []uuid.UUID) (int, error)
}

// LeagueRepositoryInterface defines the interface for league repository operations
type LeagueRepositoryInterface interface {
	CreateAndEnroll(ctx context.Context, league *models.League) (int64, error)
	GetByName(name string) (*models.League, error)
	GetAll() ([]models.League, error)
	GetLeaderboards() ([]models.League, error)
}

// LedgerRepositoryInterface defines the score-changing operations on bonus/malus events
type LedgerRepositoryInterface interface {
	RecordEvent(ctx context.Context, event *models.BonusMalusEvent) (int64, error)
	RevertEvent(ctx context.Context, id uuid.UUID) (*models.BonusMalusEvent, error)
	RevertRuleAndDelete(ctx context.Context, ruleID uuid.UUID) (*RuleRevertResult, error)
	DeleteArtist(ctx context.Context, artistID uuid.UUID) (*ArtistRemovalResult, error)
	GetByID(id uuid.UUID) (*models.BonusMalusEvent, error)
	GetAll() ([]models.BonusMalusEvent, error)
}

// ScoreRepositoryInterface defines the interface for league score reconciliation
type ScoreRepositoryInterface interface {
	FindDrift(ctx context.Context) ([]ScoreDrift, int64, error)
	Repair(ctx context.Context, drift ScoreDrift) (bool, error)
}

// RuleRepositoryInterface defines the interface for rule repository operations
type RuleRepositoryInterface interface {
	Create(rule *models.RuleDefinition) error
	GetByID(id uuid.UUID) (*models.RuleDefinition, error)
	GetAll() ([]models.RuleDefinition, error)
	Update(rule *models.RuleDefinition) error
}

// SettingsRepositoryInterface defines the interface for the settings singleton
type SettingsRepositoryInterface interface {
	Get() (*models.SystemSettings, error)
	SetDraftDeadline(deadline *time.Time) (*models.SystemSettings, error)
}

// NewsRepositoryInterface defines the interface for news repository operations
type NewsRepositoryInterface interface {
	Create(news *models.News) error
	GetByID(id uuid.UUID) (*models.News, error)
	GetLatest(limit int) ([]models.News, error)
	Update(news *models.News) error
	Delete(id uuid.UUID) error
}

// SponsorRepositoryInterface defines the interface for sponsor repository operations
type SponsorRepositoryInterface interface {
	Create(sponsor *models.Sponsor) error
	GetByID(id uuid.UUID) (*models.Sponsor, error)
	GetAll() ([]models.Sponsor, error)
	Delete(id uuid.UUID) error
}
