package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/repository"
	"fantapiazza-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt cost used for new password hashes
const PasswordCost = 12

// MaxPasswordBytes is the longest input bcrypt will hash
const MaxPasswordBytes = 72

// VerificationMailer delivers the email confirmation link to a new user
type VerificationMailer interface {
	SendVerification(ctx context.Context, to, link string) error
}

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	mailer    VerificationMailer
	validator *validator.Validate

	cost       int
	now        func() time.Time
	background func(func())
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID   `json:"userId" example:"6f1c2b9e-3d4a-4b8e-9f2a-1c2d3e4f5a6b"`
	Email                string      `json:"email" example:"mario.rossi@example.com"`
	Role                 models.Role `json:"role" example:"USER"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"mario.rossi@example.com"`
	Password string  `json:"password" validate:"required,min=8,max=72" example:"correct-horse"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100" example:"Mario"`
}

// LoginRequest represents the credentials login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"mario.rossi@example.com"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
}

// UserProfile is the public view of the authenticated account
type UserProfile struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Name  *string     `json:"name,omitempty"`
	Role  models.Role `json:"role"`
}

// RegisterResponse represents the response for a new account
type RegisterResponse struct {
	UserProfile
	Message string `json:"message" example:"check your inbox to verify your email"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string      `json:"tokenType" example:"bearer"`
	ExpiresIn   int64       `json:"expiresIn" example:"86400"`
	Profile     UserProfile `json:"profile"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// Option customises an AuthService
type Option func(*AuthService)

// WithPasswordCost overrides the bcrypt cost
func WithPasswordCost(cost int) Option {
	return func(s *AuthService) { s.cost = cost }
}

// WithClock overrides the time source used for tokens and verification stamps
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

// WithInlineDelivery sends verification mail on the calling goroutine
func WithInlineDelivery() Option {
	return func(s *AuthService) { s.background = func(f func()) { f() } }
}

// NewAuthService creates a new authentication service.
// mailer may be nil, in which case no verification email is sent.
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, mailer VerificationMailer, validator *validator.Validate, opts ...Option) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	s := &AuthService{
		config:     config,
		users:      users,
		mailer:     mailer,
		validator:  validator,
		cost:       PasswordCost,
		now:        time.Now,
		background: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register creates a USER account with a pending verification token
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := CheckPasswordLength("password", req.Password); err != nil {
		return nil, err
	}

	email := req.Email
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := HashPassword(req.Password, s.cost)
	if err != nil {
		return nil, err
	}
	token, err := s.generateRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Email:             email,
		PasswordHash:      hash,
		Name:              trimmed(req.Name),
		Role:              models.RoleUser,
		VerificationToken: &token,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerification(ctx, user.Email, token)

	return &RegisterResponse{
		UserProfile: profileOf(user),
		Message:     "check your inbox to verify your email",
	}, nil
}

// VerifyEmail confirms the address holding the token and clears the token
func (s *AuthService) VerifyEmail(token string) (*UserProfile, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.NewValidationError("token", "is required")
	}

	user, err := s.users.GetByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}

	now := s.now()
	user.EmailVerifiedAt = &now
	user.VerificationToken = nil
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	profile := profileOf(user)
	return &profile, nil
}

// Login checks the credentials and issues an access token.
// Accounts created before email verification existed have no token and are verified here.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.EmailVerifiedAt == nil {
		if user.VerificationToken != nil {
			return nil, apperrors.ErrEmailNotVerified
		}
		now := s.now()
		user.EmailVerifiedAt = &now
		if err := s.users.Update(user); err != nil {
			return nil, fmt.Errorf("failed to verify legacy user: %w", err)
		}
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		Profile:     profileOf(user),
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.UserID == uuid.Nil {
			return nil, fmt.Errorf("token has no user")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordLength rejects passwords longer than bcrypt's byte limit.
// Validator length tags count runes, so multi-byte input needs this check.
func CheckPasswordLength(field, password string) error {
	if len(password) > MaxPasswordBytes {
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
	return nil
}

// NormalizeEmail trims and lowercases an address before lookup or storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) sendVerification(ctx context.Context, to, token string) {
	if s.mailer == nil {
		return
	}
	link := s.config.VerificationLink(token)
	log := logger.WithContext(ctx).WithField("to", to)

	// the request context ends with the response; delivery must outlive it
	s.background(func() {
		if err := s.mailer.SendVerification(context.Background(), to, link); err != nil {
			log.WithError(err).Warn("Failed to send verification email")
		}
	})
}

func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
