package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportSource exposes the outcome of the last scheduled reconcile run
type ReportSource interface {
	LastReport() *service.ReconcileReport
}

// ReconcileHandler handles the league score repair endpoints
type ReconcileHandler struct {
	reconciler service.ReconcileServiceInterface
	reports    ReportSource
}

// NewReconcileHandler creates a new reconcile handler. reports may be nil when no schedule is configured.
func NewReconcileHandler(reconciler service.ReconcileServiceInterface, reports ReportSource) *ReconcileHandler {
	return &ReconcileHandler{
		reconciler: reconciler,
		reports:    reports,
	}
}

// RunReconcile handles POST /admin/reconcile
// @Summary Repair league scores
// @Description Recompute every team's league score from its current artists and fix the rows that drifted
// @Tags admin
// @Produce json
// @Success 200 {object} service.ReconcileReport "Reconcile report"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Security BearerAuth
// @Router /admin/reconcile [post]
func (h *ReconcileHandler) RunReconcile(c *gin.Context) {
	if actorFrom(c).Role != models.RoleAdmin {
		respondError(c, apperrors.ErrAdminRequired, "Failed to reconcile league scores")
		return
	}

	report, err := h.reconciler.Reconcile(c)
	if err != nil {
		respondError(c, err, "Failed to reconcile league scores")
		return
	}
	c.JSON(http.StatusOK, report)
}

// LastReport handles GET /admin/reconcile/last
// @Summary Last scheduled reconcile
// @Tags admin
// @Produce json
// @Success 200 {object} service.ReconcileReport "Report of the last scheduled run"
// @Failure 404 {object} ErrorResponse "No scheduled run yet"
// @Security BearerAuth
// @Router /admin/reconcile/last [get]
func (h *ReconcileHandler) LastReport(c *gin.Context) {
	var report *service.ReconcileReport
	if h.reports != nil {
		report = h.reports.LastReport()
	}
	if report == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No scheduled reconcile has completed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
