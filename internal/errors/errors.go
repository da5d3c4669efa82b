package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	kind    *ValidationError
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is matches another ValidationError with the same field and message,
// or the sentinel the error was built from
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if e.kind != nil && e.kind == t {
		return true
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors.
// A closed draft window is reported with this type as well.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrArtistNotFound  = &NotFoundError{Entity: "artist"}
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrLeagueNotFound  = &NotFoundError{Entity: "league"}
	ErrEventNotFound   = &NotFoundError{Entity: "bonus/malus event"}
	ErrRuleNotFound    = &NotFoundError{Entity: "rule"}
	ErrNewsNotFound    = &NotFoundError{Entity: "news"}
	ErrSponsorNotFound = &NotFoundError{Entity: "sponsor"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamAlreadyExists = &AlreadyExistsError{Entity: "team", Context: "for this user"}
	ErrTeamNameTaken     = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrLeagueExists      = &AlreadyExistsError{Entity: "league", Context: "with this name"}
	ErrTeamConflict      = &AlreadyExistsError{Entity: "team", Context: "with this name or owner"}
)

// Team composition errors
var (
	ErrBudgetExceeded        = &ValidationError{Field: "artistIds", Message: "Armoni insufficienti: total cost exceeds the budget"}
	ErrWrongTeamSize         = &ValidationError{Field: "artistIds", Message: "a team must have the required number of distinct artists"}
	ErrUnknownArtists        = &ValidationError{Field: "artistIds", Message: "one or more artists do not exist"}
	ErrCaptainNotInTeam      = &ValidationError{Field: "captainId", Message: "captain must be one of the selected artists"}
	ErrDraftDeadlinePassed   = &AuthorizationError{Message: "draft deadline has passed, teams can no longer be changed"}
	ErrEmptyEventDescription = &ValidationError{Field: "description", Message: "description is required"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &ValidationError{Field: "token", Message: "invalid or expired verification token"}
	ErrWrongPassword      = &AuthenticationError{Message: "current password is incorrect"}
	ErrEmailNotVerified   = &AuthorizationError{Message: "email address has not been verified"}
	ErrAdminRequired      = &AuthorizationError{Message: "administrator role required"}
)

// Configuration Errors
var (
	ErrMailNotConfigured = &ConfigurationError{Message: "SMTP_HOST is not configured"}
	ErrInvalidSchedule   = errors.New("invalid reconcile schedule")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewTeamSizeError reports a roster of the wrong size. It matches ErrWrongTeamSize.
func NewTeamSizeError(size int) error {
	return &ValidationError{
		Field:   "artistIds",
		Message: fmt.Sprintf("a team must have exactly %d distinct artists", size),
		kind:    ErrWrongTeamSize,
	}
}
