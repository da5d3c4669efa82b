package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeagueHandler handles HTTP requests for leagues and leaderboards
type LeagueHandler struct {
	leagueService service.LeagueServiceInterface
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueService service.LeagueServiceInterface) *LeagueHandler {
	return &LeagueHandler{leagueService: leagueService}
}

// ListLeagues handles GET /leagues
// @Summary List leagues
// @Tags leagues
// @Produce json
// @Success 200 {array} models.League "Leagues"
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	leagues, err := h.leagueService.ListLeagues(c)
	if err != nil {
		respondError(c, err, "Failed to list leagues")
		return
	}
	c.JSON(http.StatusOK, leagues)
}

// GetLeaderboards handles GET /leaderboards
// @Summary League leaderboards
// @Description Get every league with its teams ranked by score. Tied teams share a rank.
// @Tags leagues
// @Produce json
// @Success 200 {array} service.LeaderboardResponse "Leaderboards"
// @Router /leaderboards [get]
func (h *LeagueHandler) GetLeaderboards(c *gin.Context) {
	boards, err := h.leagueService.GetLeaderboards(c)
	if err != nil {
		respondError(c, err, "Failed to get leaderboards")
		return
	}
	c.JSON(http.StatusOK, boards)
}

// CreateLeague handles POST /admin/leagues
// @Summary Create a league
// @Description Create a league and enrol every existing team with its current artist score
// @Tags admin
// @Accept json
// @Produce json
// @Param league body service.CreateLeagueRequest true "League data"
// @Success 201 {object} service.LeagueResponse "Created league"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "League name taken"
// @Security BearerAuth
// @Router /admin/leagues [post]
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req service.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	league, err := h.leagueService.CreateLeague(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create league")
		return
	}
	c.JSON(http.StatusCreated, league)
}
