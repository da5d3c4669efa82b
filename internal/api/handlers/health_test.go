package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"fantapiazza-backend/internal/api/handlers"
	"fantapiazza-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupHealth(t *testing.T) (sqlmock.Sqlmock, *testutils.HTTPTestSuite) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	h := handlers.NewHealthHandler(db)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)
	return mock, httpSuite
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		mock, httpSuite := setupHealth(t)
		mock.ExpectPing()

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "healthy", got.Services["database"])
		assert.Equal(t, handlers.Version, got.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		mock, httpSuite := setupHealth(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &got)
		assert.Equal(t, "unhealthy", got.Status)
		assert.Contains(t, got.Services["database"], "connection refused")
	})

	t.Run("not ready", func(t *testing.T) {
		mock, httpSuite := setupHealth(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		var got map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &got)
		assert.Equal(t, false, got["ready"])
	})

	t.Run("live never touches the database", func(t *testing.T) {
		mock, httpSuite := setupHealth(t)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
