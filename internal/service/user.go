package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fantapiazza-backend/internal/auth"
	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService provides profile and account listing logic
type UserService struct {
	users        repository.UserRepositoryInterface
	teams        repository.TeamRepositoryInterface
	validator    *validator.Validate
	passwordCost int
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface, teams repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		users:        users,
		teams:        teams,
		validator:    validator,
		passwordCost: auth.PasswordCost,
	}
}

// WithPasswordCost overrides the bcrypt cost used for password changes
func (s *UserService) WithPasswordCost(cost int) *UserService {
	s.passwordCost = cost
	return s
}

// ProfileResponse represents the caller's own account
type ProfileResponse struct {
	ID              uuid.UUID     `json:"id"`
	Email           string        `json:"email"`
	Name            *string       `json:"name,omitempty"`
	Role            models.Role   `json:"role"`
	EmailVerifiedAt *time.Time    `json:"emailVerifiedAt,omitempty"`
	Team            *TeamResponse `json:"team,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// UpdateProfileRequest represents a profile change. A new password needs the current one.
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty" validate:"omitempty,min=8,max=72"`
}

// AdminUserTeam is the short team summary shown in the user listing
type AdminUserTeam struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

// AdminUserResponse represents a user in the admin listing
type AdminUserResponse struct {
	ID              uuid.UUID      `json:"id"`
	Email           string         `json:"email"`
	Name            *string        `json:"name,omitempty"`
	Role            models.Role    `json:"role"`
	EmailVerifiedAt *time.Time     `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	Team            *AdminUserTeam `json:"team,omitempty"`
}

// GetProfile returns the caller's account with their team
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}
	return s.profile(user)
}

// UpdateProfile changes name, email or password of the caller
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if req.Email != nil {
		email := auth.NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if req.NewPassword != nil {
		if err := auth.CheckPasswordLength("newPassword", *req.NewPassword); err != nil {
			return nil, err
		}
	}

	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			user.Name = nil
		} else {
			user.Name = &name
		}
	}

	if req.Email != nil {
		email := *req.Email
		if email != user.Email {
			existing, err := s.users.GetByEmail(email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if existing != nil && existing.ID != user.ID {
				return nil, apperrors.ErrUserExists
			}
			user.Email = email
		}
	}

	if req.NewPassword != nil {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return nil, apperrors.NewValidationError("currentPassword", "is required to set a new password")
		}
		if !auth.CheckPassword(user.PasswordHash, *req.CurrentPassword) {
			return nil, apperrors.ErrWrongPassword
		}
		hash, err := auth.HashPassword(*req.NewPassword, s.passwordCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("Updated profile")
	return s.profile(user)
}

// ListUsers returns every account with a summary of its team
func (s *UserService) ListUsers(ctx context.Context, actor Actor) ([]AdminUserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	byOwner := make(map[uuid.UUID]*AdminUserTeam, len(teams))
	for _, t := range teams {
		summary := &AdminUserTeam{ID: t.ID, Name: t.Name}
		// every membership carries the same roster score
		if len(t.Leagues) > 0 {
			summary.Score = t.Leagues[0].Score
		}
		byOwner[t.UserID] = summary
	}

	responses := make([]AdminUserResponse, len(users))
	for i, u := range users {
		responses[i] = AdminUserResponse{
			ID:              u.ID,
			Email:           u.Email,
			Name:            u.Name,
			Role:            u.Role,
			EmailVerifiedAt: u.EmailVerifiedAt,
			CreatedAt:       u.CreatedAt,
			Team:            byOwner[u.ID],
		}
	}
	return responses, nil
}

func (s *UserService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) profile(user *models.User) (*ProfileResponse, error) {
	resp := &ProfileResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            user.Role,
		EmailVerifiedAt: user.EmailVerifiedAt,
		CreatedAt:       user.CreatedAt,
	}

	team, err := s.teams.GetByUserID(user.ID)
	switch {
	case err == nil:
		t := toTeamResponse(team)
		resp.Team = &t
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return resp, nil
}
