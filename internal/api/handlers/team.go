package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for fantasy teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetMyTeam handles GET /team
// @Summary Get my team
// @Description Get the caller's team, or null when they have not drafted one yet
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamResponse "The caller's team or null"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /team [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetMyTeam(c, userID)
	if err != nil {
		respondError(c, err, "Failed to get team")
		return
	}
	if team == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /team
// @Summary Draft a team
// @Description Create the caller's team: exactly five distinct artists within the budget, before the draft deadline.
// @Description The team joins every league with a starting score equal to the sum of its artists' scores.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Roster"
// @Success 201 {object} service.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Invalid roster"
// @Failure 403 {object} ErrorResponse "Draft deadline passed"
// @Failure 409 {object} ErrorResponse "Team exists or name taken"
// @Security BearerAuth
// @Router /team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(c, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create team")
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /team
// @Summary Change my team
// @Description Replace the caller's roster. League scores are recomputed from the new artists.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Roster"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid roster"
// @Failure 403 {object} ErrorResponse "Draft deadline passed"
// @Failure 404 {object} ErrorResponse "No team yet"
// @Failure 409 {object} ErrorResponse "Name taken"
// @Security BearerAuth
// @Router /team [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	team, err := h.teamService.UpdateTeam(c, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update team")
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c, id)
	if err != nil {
		respondError(c, err, "Failed to get team")
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /admin/teams
// @Summary List all teams
// @Tags admin
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Security BearerAuth
// @Router /admin/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to list teams")
		return
	}
	c.JSON(http.StatusOK, teams)
}
