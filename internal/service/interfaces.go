package service

import (
	"context"

	"fantapiazza-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LedgerServiceInterface defines the score-changing operations
type LedgerServiceInterface interface {
	RecordEvent(ctx context.Context, actor Actor, req *RecordEventRequest) (*EventResponse, error)
	RevertEvent(ctx context.Context, actor Actor, eventID uuid.UUID) (*EventResponse, error)
	DeleteRule(ctx context.Context, actor Actor, ruleID uuid.UUID) (*RuleDeletionResponse, error)
	DeleteArtist(ctx context.Context, actor Actor, artistID uuid.UUID) (*ArtistDeletionResponse, error)
	ListEvents(ctx context.Context, actor Actor) ([]models.BonusMalusEvent, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	UpdateTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	GetMyTeam(ctx context.Context, userID uuid.UUID) (*TeamResponse, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamResponse, error)
	ListTeams(ctx context.Context, actor Actor) ([]TeamResponse, error)
}

// ArtistServiceInterface defines the interface for artist service
type ArtistServiceInterface interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	GetLeaderboard(ctx context.Context) ([]models.Artist, error)
	CreateArtist(ctx context.Context, actor Actor, req *CreateArtistRequest) (*models.Artist, error)
	UpdateArtist(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateArtistRequest) (*models.Artist, error)
}

// RuleServiceInterface defines the interface for rule service
type RuleServiceInterface interface {
	ListRules(ctx context.Context) ([]models.RuleDefinition, error)
	CreateRule(ctx context.Context, actor Actor, req *RuleRequest) (*models.RuleDefinition, error)
	UpdateRule(ctx context.Context, actor Actor, id uuid.UUID, req *RuleRequest) (*models.RuleDefinition, error)
}

// LeagueServiceInterface defines the interface for league service
type LeagueServiceInterface interface {
	ListLeagues(ctx context.Context) ([]models.League, error)
	CreateLeague(ctx context.Context, actor Actor, req *CreateLeagueRequest) (*LeagueResponse, error)
	GetLeaderboards(ctx context.Context) ([]LeaderboardResponse, error)
}

// ReconcileServiceInterface defines the league score repair job
type ReconcileServiceInterface interface {
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}

// SettingsServiceInterface defines the interface for system settings
type SettingsServiceInterface interface {
	GetSettings(ctx context.Context) (*models.SystemSettings, error)
	UpdateSettings(ctx context.Context, actor Actor, req *UpdateSettingsRequest) (*models.SystemSettings, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	ListUsers(ctx context.Context, actor Actor) ([]AdminUserResponse, error)
}

// NewsServiceInterface defines the interface for news service
type NewsServiceInterface interface {
	GetLatest(ctx context.Context) ([]models.News, error)
	ListNews(ctx context.Context, actor Actor) ([]models.News, error)
	CreateNews(ctx context.Context, actor Actor, req *NewsRequest) (*models.News, error)
	UpdateNews(ctx context.Context, actor Actor, id uuid.UUID, req *NewsRequest) (*models.News, error)
	DeleteNews(ctx context.Context, actor Actor, id uuid.UUID) error
}

// SponsorServiceInterface defines the interface for sponsor service
type SponsorServiceInterface interface {
	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
	CreateSponsor(ctx context.Context, actor Actor, req *SponsorRequest) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, actor Actor, id uuid.UUID) error
}

// Notifier delivers best-effort emails
type Notifier interface {
	SendVerification(ctx context.Context, to, link string) error
	NotifyNewArtist(ctx context.Context, recipients []string, artist *models.Artist) error
}
