package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for system settings
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /settings
// @Summary Get system settings
// @Description Get the draft deadline. A null deadline means teams can always be changed.
// @Tags settings
// @Produce json
// @Success 200 {object} models.SystemSettings "Settings"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c)
	if err != nil {
		respondError(c, err, "Failed to get settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /admin/settings
// @Summary Update system settings
// @Tags admin
// @Accept json
// @Produce json
// @Param settings body service.UpdateSettingsRequest true "Settings"
// @Success 200 {object} models.SystemSettings "Updated settings"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Security BearerAuth
// @Router /admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
