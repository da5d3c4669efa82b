package auth

import (
	"fmt"
	"strings"
	"time"

	"fantapiazza-backend/internal/config"
)

const (
	defaultIssuer   = "fantapiazza-backend"
	defaultTokenTTL = 24 * time.Hour
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
	// PublicBaseURL prefixes the links sent by email; empty means links point at the API itself
	PublicBaseURL string
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ttl := time.Duration(cfg.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      ttl,
		Issuer:        defaultIssuer,
		PublicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}

// VerificationLink returns the address a user follows to confirm their email
func (c *AuthConfig) VerificationLink(token string) string {
	return c.PublicBaseURL + "/api/auth/verify?token=" + token
}
