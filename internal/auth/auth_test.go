package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fantapiazza-backend/internal/config"
	"fantapiazza-backend/internal/database/models"
	"fantapiazza-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...Option) *AuthService {
	t.Helper()
	svc, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		TokenTTL:  time.Hour,
		Issuer:    defaultIssuer,
	}, nil, nil, validation.New(), opts...)
	require.NoError(t, err)
	return svc
}

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{
			JWTSecret:     "secret",
			JWTTTLHours:   2,
			PublicBaseURL: "https://fantapiazza.it/",
		})
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.Equal(t, defaultIssuer, cfg.Issuer)
		assert.Equal(t, "https://fantapiazza.it/api/auth/verify?token=abc", cfg.VerificationLink("abc"))
		assert.NoError(t, cfg.ValidateConfig())
	})

	t.Run("non positive ttl falls back to a day", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "secret"})
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &AuthConfig{TokenTTL: time.Hour}
		err := cfg.ValidateConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing ttl", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "secret"}
		assert.Error(t, cfg.ValidateConfig())
	})
}

func TestJWTOperations(t *testing.T) {
	svc := newTestService(t)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "mario.rossi@example.com",
		Role:      models.RoleAdmin,
	}

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, models.RoleAdmin, claims.Role)
		assert.Equal(t, user.ID.String(), claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key", TokenTTL: time.Hour}, nil, nil, validation.New())
		require.NoError(t, err)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    defaultIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	issued := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	svc := newTestService(t, WithClock(func() time.Time { return clock }))

	token, err := svc.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "a@b.it",
		Role:      models.RoleUser,
	})
	require.NoError(t, err)

	clock = issued.Add(59 * time.Minute)
	_, err = svc.ValidateJWT(token)
	assert.NoError(t, err)

	clock = issued.Add(61 * time.Minute)
	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)
	assert.True(t, CheckPassword(hash, "correct-horse"))
	assert.False(t, CheckPassword(hash, "wrong-horse"))
}

type stubValidator struct {
	claims *AuthClaims
	err    error
}

func (s stubValidator) ValidateJWT(string) (*AuthClaims, error) {
	return s.claims, s.err
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	userClaims := &AuthClaims{UserID: userID, Email: "u@fantapiazza.it", Role: models.RoleUser}

	newRouter := func(v TokenValidator, extra ...gin.HandlerFunc) *gin.Engine {
		m := NewAuthMiddleware(v)
		r := gin.New()
		handlers := append([]gin.HandlerFunc{m.RequireAuth()}, extra...)
		handlers = append(handlers, func(c *gin.Context) {
			id, _ := GetUserID(c)
			role, _ := GetUserRole(c)
			email, _ := GetUserEmail(c)
			c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "email": email})
		})
		r.GET("/protected", handlers...)
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(stubValidator{claims: userClaims}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("not a bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		newRouter(stubValidator{claims: userClaims}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		newRouter(stubValidator{err: assert.AnError}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		newRouter(stubValidator{claims: userClaims}).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["id"])
		assert.Equal(t, "USER", body["role"])
		assert.Equal(t, "u@fantapiazza.it", body["email"])
	})

	t.Run("role gate rejects users", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{claims: userClaims})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		newRouter(stubValidator{claims: userClaims}, m.RequireRole(models.RoleAdmin)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role gate admits admins", func(t *testing.T) {
		admin := &AuthClaims{UserID: userID, Email: "a@fantapiazza.it", Role: models.RoleAdmin}
		m := NewAuthMiddleware(stubValidator{claims: admin})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		newRouter(stubValidator{claims: admin}, m.RequireRole(models.RoleAdmin)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("optional auth passes anonymous callers", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{err: assert.AnError})
		r := gin.New()
		r.GET("/open", m.OptionalAuth(), func(c *gin.Context) {
			_, ok := GetAuthClaims(c)
			c.JSON(http.StatusOK, gin.H{"authenticated": ok})
		})

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})
}
