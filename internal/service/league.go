package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueService manages leagues and their rankings
type LeagueService struct {
	leagues   repository.LeagueRepositoryInterface
	validator *validator.Validate
}

// Ensure LeagueService implements LeagueServiceInterface
var _ LeagueServiceInterface = (*LeagueService)(nil)

// NewLeagueService creates a new league service
func NewLeagueService(leagues repository.LeagueRepositoryInterface, validator *validator.Validate) *LeagueService {
	return &LeagueService{
		leagues:   leagues,
		validator: validator,
	}
}

// CreateLeagueRequest represents the request to open a league
type CreateLeagueRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Generale"`
}

// LeagueResponse represents a newly created league
type LeagueResponse struct {
	*models.League
	TeamsEnrolled int64 `json:"teamsEnrolled"`
}

// LeaderboardEntry is one team's position in a league
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	TeamID   uuid.UUID `json:"teamId"`
	TeamName string    `json:"teamName"`
	Image    *string   `json:"image,omitempty"`
	Score    int       `json:"score"`
}

// LeaderboardResponse is the ranking of one league
type LeaderboardResponse struct {
	LeagueID   uuid.UUID          `json:"leagueId"`
	LeagueName string             `json:"leagueName"`
	Teams      []LeaderboardEntry `json:"teams"`
}

// ListLeagues returns every league by name
func (s *LeagueService) ListLeagues(ctx context.Context) ([]models.League, error) {
	leagues, err := s.leagues.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

// CreateLeague opens a league and enrols every existing team at its current roster score
func (s *LeagueService) CreateLeague(ctx context.Context, actor Actor, req *CreateLeagueRequest) (*LeagueResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	if _, err := s.leagues.GetByName(name); err == nil {
		return nil, apperrors.ErrLeagueExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check league name: %w", err)
	}

	league := &models.League{Name: name}
	enrolled, err := s.leagues.CreateAndEnroll(ctx, league)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLeagueExists
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"league_id": league.ID,
		"name":      league.Name,
		"enrolled":  enrolled,
	}).Info("Created league")

	return &LeagueResponse{League: league, TeamsEnrolled: enrolled}, nil
}

// GetLeaderboards returns every league with its teams ranked by score
func (s *LeagueService) GetLeaderboards(ctx context.Context) ([]LeaderboardResponse, error) {
	leagues, err := s.leagues.GetLeaderboards()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboards: %w", err)
	}

	boards := make([]LeaderboardResponse, len(leagues))
	for i, league := range leagues {
		board := LeaderboardResponse{
			LeagueID:   league.ID,
			LeagueName: league.Name,
			Teams:      make([]LeaderboardEntry, 0, len(league.Teams)),
		}
		for j, tl := range league.Teams {
			entry := LeaderboardEntry{
				Rank:   rankAt(league.Teams, j),
				TeamID: tl.TeamID,
				Score:  tl.Score,
			}
			if tl.Team != nil {
				entry.TeamName = tl.Team.Name
				entry.Image = tl.Team.Image
			}
			board.Teams = append(board.Teams, entry)
		}
		boards[i] = board
	}
	return boards, nil
}

// rankAt gives tied scores the same rank (1, 2, 2, 4)
func rankAt(rows []models.TeamLeague, i int) int {
	for i > 0 && rows[i-1].Score == rows[i].Score {
		i--
	}
	return i + 1
}
