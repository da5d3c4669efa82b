package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SponsorHandler handles HTTP requests for sponsors
type SponsorHandler struct {
	sponsorService service.SponsorServiceInterface
}

// NewSponsorHandler creates a new sponsor handler
func NewSponsorHandler(sponsorService service.SponsorServiceInterface) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

// ListSponsors handles GET /sponsors
// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {array} models.Sponsor "Sponsors"
// @Router /sponsors [get]
func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.sponsorService.ListSponsors(c)
	if err != nil {
		respondError(c, err, "Failed to list sponsors")
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

// CreateSponsor handles POST /admin/sponsors
// @Summary Add a sponsor
// @Tags admin
// @Accept json
// @Produce json
// @Param sponsor body service.SponsorRequest true "Sponsor"
// @Success 201 {object} models.Sponsor "Created sponsor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /admin/sponsors [post]
func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var req service.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	sponsor, err := h.sponsorService.CreateSponsor(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create sponsor")
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}

// DeleteSponsor handles DELETE /admin/sponsors/:id
// @Summary Remove a sponsor
// @Tags admin
// @Produce json
// @Param id path string true "Sponsor ID (UUID)"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} ErrorResponse "Sponsor not found"
// @Security BearerAuth
// @Router /admin/sponsors/{id} [delete]
func (h *SponsorHandler) DeleteSponsor(c *gin.Context) {
	id, ok := parseID(c, "id", "sponsor")
	if !ok {
		return
	}

	if err := h.sponsorService.DeleteSponsor(c, actorFrom(c), id); err != nil {
		respondError(c, err, "Failed to delete sponsor")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Sponsor deleted"})
}
