package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RuleHandler handles HTTP requests for scoring rules
type RuleHandler struct {
	ruleService service.RuleServiceInterface
	ledger      service.LedgerServiceInterface
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService service.RuleServiceInterface, ledger service.LedgerServiceInterface) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
		ledger:      ledger,
	}
}

// ListRules handles GET /rules
// @Summary List scoring rules
// @Description Get the rule catalogue by category
// @Tags rules
// @Produce json
// @Success 200 {array} models.RuleDefinition "Rules"
// @Router /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	rules, err := h.ruleService.ListRules(c)
	if err != nil {
		respondError(c, err, "Failed to list rules")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateRule handles POST /admin/rules
// @Summary Create a scoring rule
// @Tags admin
// @Accept json
// @Produce json
// @Param rule body service.RuleRequest true "Rule data"
// @Success 201 {object} models.RuleDefinition "Created rule"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /admin/rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req service.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	rule, err := h.ruleService.CreateRule(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create rule")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// UpdateRule handles PUT /admin/rules/:id
// @Summary Update a scoring rule
// @Description Rewrite a rule. Points already awarded under it are not changed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param rule body service.RuleRequest true "Rule data"
// @Success 200 {object} models.RuleDefinition "Updated rule"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /admin/rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, ok := parseID(c, "id", "rule")
	if !ok {
		return
	}

	var req service.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	rule, err := h.ruleService.UpdateRule(c, actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /admin/rules/:id
// @Summary Delete a scoring rule
// @Description Revert every event recorded under the rule, then delete it
// @Tags admin
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.RuleDeletionResponse "Rule deleted"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /admin/rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, ok := parseID(c, "id", "rule")
	if !ok {
		return
	}

	result, err := h.ledger.DeleteRule(c, actorFrom(c), id)
	if err != nil {
		respondError(c, err, "Failed to delete rule")
		return
	}
	c.JSON(http.StatusOK, result)
}
