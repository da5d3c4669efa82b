package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ArtistHandler handles HTTP requests for the artist catalogue
type ArtistHandler struct {
	artistService service.ArtistServiceInterface
	ledger        service.LedgerServiceInterface
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(artistService service.ArtistServiceInterface, ledger service.LedgerServiceInterface) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
		ledger:        ledger,
	}
}

// ListArtists handles GET /artists
// @Summary List artists
// @Description Get every active artist, most expensive first
// @Tags artists
// @Produce json
// @Success 200 {array} models.Artist "Artists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.artistService.ListArtists(c)
	if err != nil {
		respondError(c, err, "Failed to list artists")
		return
	}
	c.JSON(http.StatusOK, artists)
}

// GetLeaderboard handles GET /artists/leaderboard
// @Summary Artist leaderboard
// @Description Get the artists ranked by total score, each with its bonus/malus history
// @Tags artists
// @Produce json
// @Success 200 {array} models.Artist "Ranked artists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /artists/leaderboard [get]
func (h *ArtistHandler) GetLeaderboard(c *gin.Context) {
	artists, err := h.artistService.GetLeaderboard(c)
	if err != nil {
		respondError(c, err, "Failed to get artist leaderboard")
		return
	}
	c.JSON(http.StatusOK, artists)
}

// CreateArtist handles POST /admin/artists
// @Summary Create an artist
// @Description Add an artist with a zero score. Every user is notified by email.
// @Tags admin
// @Accept json
// @Produce json
// @Param artist body service.CreateArtistRequest true "Artist data"
// @Success 201 {object} models.Artist "Created artist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/artists [post]
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req service.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	artist, err := h.artistService.CreateArtist(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create artist")
		return
	}
	c.JSON(http.StatusCreated, artist)
}

// UpdateArtist handles PUT /admin/artists/:id
// @Summary Update an artist
// @Description Change the name, cost or image of an artist. Scores change only through bonus/malus events.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Artist ID (UUID)"
// @Param artist body service.UpdateArtistRequest true "Fields to change"
// @Success 200 {object} models.Artist "Updated artist"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Artist not found"
// @Security BearerAuth
// @Router /admin/artists/{id} [put]
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := parseID(c, "id", "artist")
	if !ok {
		return
	}

	var req service.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	artist, err := h.artistService.UpdateArtist(c, actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update artist")
		return
	}
	c.JSON(http.StatusOK, artist)
}

// DeleteArtist handles DELETE /admin/artists/:id
// @Summary Delete an artist
// @Description Remove the artist from every roster, subtract its score from the league scores of those teams and clear it as captain
// @Tags admin
// @Produce json
// @Param id path string true "Artist ID (UUID)"
// @Success 200 {object} service.ArtistDeletionResponse "Artist removed"
// @Failure 400 {object} ErrorResponse "Invalid artist ID"
// @Failure 404 {object} ErrorResponse "Artist not found"
// @Security BearerAuth
// @Router /admin/artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, ok := parseID(c, "id", "artist")
	if !ok {
		return
	}

	result, err := h.ledger.DeleteArtist(c, actorFrom(c), id)
	if err != nil {
		respondError(c, err, "Failed to delete artist")
		return
	}
	c.JSON(http.StatusOK, result)
}
