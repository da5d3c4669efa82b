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

// TeamRules holds the composition limits applied to every roster
type TeamRules struct {
	Budget int
	Size   int
}

// DefaultTeamRules are the limits of the game: five artists within 100 armoni
var DefaultTeamRules = TeamRules{Budget: 100, Size: 5}

// TeamService provides team-related business logic
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	artists   repository.ArtistRepositoryInterface
	settings  repository.SettingsRepositoryInterface
	validator *validator.Validate
	rules     TeamRules
	now       func() time.Time
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(
	teams repository.TeamRepositoryInterface,
	artists repository.ArtistRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	validator *validator.Validate,
	rules TeamRules,
) *TeamService {
	return &TeamService{
		teams:     teams,
		artists:   artists,
		settings:  settings,
		validator: validator,
		rules:     rules,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for the draft deadline check
func (s *TeamService) WithClock(now func() time.Time) *TeamService {
	s.now = now
	return s
}

// TeamRequest represents the roster submitted on create and update
type TeamRequest struct {
	TeamName  string      `json:"teamName" validate:"required,max=50" example:"I Bardi"`
	ArtistIDs []uuid.UUID `json:"artistIds" validate:"required,unique"`
	CaptainID *uuid.UUID  `json:"captainId,omitempty"`
	Image     *string     `json:"image,omitempty" validate:"omitempty,max=500"`
}

// TeamOwner is the public identity of a team's owner
type TeamOwner struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name,omitempty"`
}

// TeamLeagueScore is a team's standing in one league
type TeamLeagueScore struct {
	LeagueID   uuid.UUID `json:"leagueId"`
	LeagueName string    `json:"leagueName"`
	Score      int       `json:"score"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	CaptainID *uuid.UUID        `json:"captainId,omitempty"`
	Image     *string           `json:"image,omitempty"`
	Owner     *TeamOwner        `json:"owner,omitempty"`
	Artists   []models.Artist   `json:"artists"`
	TotalCost int               `json:"totalCost"`
	Leagues   []TeamLeagueScore `json:"leagues"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CreateTeam creates the caller's team and enrols it in every league
func (s *TeamService) CreateTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	resp, err := s.createTeam(ctx, userID, req)
	metrics.RecordTeamWrite("create", err)
	return resp, err
}

func (s *TeamService) createTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	name, err := s.checkRoster(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.teams.GetByUserID(userID); err == nil {
		return nil, apperrors.ErrTeamAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}

	if _, err := s.teams.GetByName(name); err == nil {
		return nil, apperrors.ErrTeamNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team := &models.Team{
		Name:      name,
		UserID:    userID,
		CaptainID: req.CaptainID,
		Image:     req.Image,
	}
	score, err := s.teams.CreateWithRoster(ctx, team, req.ArtistIDs)
	if err != nil {
		return nil, s.translateWriteError(err, "create")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       team.ID,
		"team_name":     team.Name,
		"initial_score": score,
	}).Info("Created team")

	return s.reload(team.ID)
}

// UpdateTeam replaces the caller's roster and recomputes its league scores
func (s *TeamService) UpdateTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	resp, err := s.updateTeam(ctx, userID, req)
	metrics.RecordTeamWrite("update", err)
	return resp, err
}

func (s *TeamService) updateTeam(ctx context.Context, userID uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	name, err := s.checkRoster(req)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if other, err := s.teams.GetByName(name); err == nil {
		if other.ID != team.ID {
			return nil, apperrors.ErrTeamNameTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team.Name = name
	team.CaptainID = req.CaptainID
	if req.Image != nil {
		team.Image = req.Image
	}

	score, err := s.teams.UpdateRoster(ctx, team, req.ArtistIDs)
	if err != nil {
		return nil, s.translateWriteError(err, "update")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": team.ID,
		"score":   score,
	}).Info("Updated team roster")

	return s.reload(team.ID)
}

// GetMyTeam returns the caller's team, or nil when they have none yet
func (s *TeamService) GetMyTeam(ctx context.Context, userID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

// GetTeam returns the public page of a team
func (s *TeamService) GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamResponse, error) {
	return s.reload(teamID)
}

// ListTeams returns every team for the admin console
func (s *TeamService) ListTeams(ctx context.Context, actor Actor) ([]TeamResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}
	return responses, nil
}

// checkRoster runs the checks that do not depend on the caller's current team
// and returns the trimmed team name.
func (s *TeamService) checkRoster(req *TeamRequest) (string, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return "", err
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		return "", apperrors.NewValidationError("teamName", "is required")
	}
	if len(req.ArtistIDs) != s.rules.Size {
		return "", apperrors.NewTeamSizeError(s.rules.Size)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.DraftClosed(s.now()) {
		return "", apperrors.ErrDraftDeadlinePassed
	}

	artists, err := s.artists.GetByIDs(req.ArtistIDs)
	if err != nil {
		return "", fmt.Errorf("failed to get artists: %w", err)
	}
	if len(artists) != len(req.ArtistIDs) {
		return "", apperrors.ErrUnknownArtists
	}

	cost := 0
	for _, a := range artists {
		cost += a.Cost
	}
	if cost > s.rules.Budget {
		return "", apperrors.ErrBudgetExceeded
	}

	if req.CaptainID != nil && !containsID(req.ArtistIDs, *req.CaptainID) {
		return "", apperrors.ErrCaptainNotInTeam
	}

	return name, nil
}

func (s *TeamService) translateWriteError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrUnknownArtists
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrTeamConflict
	default:
		return fmt.Errorf("failed to %s team: %w", op, err)
	}
}

func (s *TeamService) reload(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

func toTeamResponse(team *models.Team) TeamResponse {
	resp := TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CaptainID: team.CaptainID,
		Image:     team.Image,
		Artists:   team.Artists,
		Leagues:   make([]TeamLeagueScore, 0, len(team.Leagues)),
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
	if resp.Artists == nil {
		resp.Artists = []models.Artist{}
	}
	if team.User != nil {
		resp.Owner = &TeamOwner{ID: team.User.ID, Name: team.User.Name}
	}
	for _, a := range team.Artists {
		resp.TotalCost += a.Cost
	}
	for _, tl := range team.Leagues {
		entry := TeamLeagueScore{LeagueID: tl.LeagueID, Score: tl.Score}
		if tl.League != nil {
			entry.LeagueName = tl.League.Name
		}
		resp.Leagues = append(resp.Leagues, entry)
	}
	return resp
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
