package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLedgerOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(ledgerOperations.WithLabelValues("record", "ok"))
	errBefore := testutil.ToFloat64(ledgerOperations.WithLabelValues("record", "error"))
	bonusBefore := testutil.ToFloat64(ledgerPoints.WithLabelValues("bonus"))
	malusBefore := testutil.ToFloat64(ledgerPoints.WithLabelValues("malus"))

	RecordLedgerOperation("record", 15, 2*time.Millisecond, nil)
	RecordLedgerOperation("record", -7, 0, nil)
	RecordLedgerOperation("record", 40, time.Millisecond, errors.New("boom"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ledgerOperations.WithLabelValues("record", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ledgerOperations.WithLabelValues("record", "error")))
	assert.Equal(t, bonusBefore+15, testutil.ToFloat64(ledgerPoints.WithLabelValues("bonus")))
	assert.Equal(t, malusBefore+7, testutil.ToFloat64(ledgerPoints.WithLabelValues("malus")))
}

func TestRecordReconcile(t *testing.T) {
	repairedBefore := testutil.ToFloat64(reconcileRepaired)
	failedBefore := testutil.ToFloat64(reconcileRuns.WithLabelValues("false"))

	RecordReconcile(3, nil)
	RecordReconcile(0, errors.New("db down"))

	assert.Equal(t, repairedBefore+3, testutil.ToFloat64(reconcileRepaired))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(reconcileRuns.WithLabelValues("false")))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/v1/teams/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/teams/:id", "204"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/teams/abc", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/v1/teams/:id", "204")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "fantapiazza_http_requests_total"))
}
