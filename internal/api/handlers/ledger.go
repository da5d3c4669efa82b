package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BonusMalusHandler handles HTTP requests for score events
type BonusMalusHandler struct {
	ledger service.LedgerServiceInterface
}

// NewBonusMalusHandler creates a new bonus/malus handler
func NewBonusMalusHandler(ledger service.LedgerServiceInterface) *BonusMalusHandler {
	return &BonusMalusHandler{ledger: ledger}
}

// ListEvents handles GET /admin/bonus-malus
// @Summary List bonus/malus events
// @Description Get every recorded event, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.BonusMalusEvent "Events"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Security BearerAuth
// @Router /admin/bonus-malus [get]
func (h *BonusMalusHandler) ListEvents(c *gin.Context) {
	events, err := h.ledger.ListEvents(c, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// RecordEvent handles POST /admin/bonus-malus
// @Summary Record a bonus or malus
// @Description Award or deduct points. The artist total and every league score of the teams holding the artist change in one transaction.
// @Description With ruleId set, missing points and description are taken from the rule.
// @Tags admin
// @Accept json
// @Produce json
// @Param event body service.RecordEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Recorded event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Artist or rule not found"
// @Security BearerAuth
// @Router /admin/bonus-malus [post]
func (h *BonusMalusHandler) RecordEvent(c *gin.Context) {
	var req service.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.ledger.RecordEvent(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to record event")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RevertEvent handles DELETE /admin/bonus-malus/:id
// @Summary Revert a bonus or malus
// @Description Undo the event's points on the artist and on the teams holding the artist now, then delete it
// @Tags admin
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.EventResponse "Reverted event"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /admin/bonus-malus/{id} [delete]
func (h *BonusMalusHandler) RevertEvent(c *gin.Context) {
	id, ok := parseID(c, "id", "event")
	if !ok {
		return
	}

	resp, err := h.ledger.RevertEvent(c, actorFrom(c), id)
	if err != nil {
		respondError(c, err, "Failed to revert event")
		return
	}
	c.JSON(http.StatusOK, resp)
}
