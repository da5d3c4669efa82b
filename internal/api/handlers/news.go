package handlers

import (
	"net/http"

	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsHandler handles HTTP requests for the news feed
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// GetLatest handles GET /news
// @Summary Latest news
// @Tags news
// @Produce json
// @Success 200 {array} models.News "Latest entries"
// @Router /news [get]
func (h *NewsHandler) GetLatest(c *gin.Context) {
	items, err := h.newsService.GetLatest(c)
	if err != nil {
		respondError(c, err, "Failed to get news")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListNews handles GET /admin/news
// @Summary List all news
// @Tags admin
// @Produce json
// @Success 200 {array} models.News "Entries"
// @Security BearerAuth
// @Router /admin/news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.newsService.ListNews(c, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to list news")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateNews handles POST /admin/news
// @Summary Publish news
// @Tags admin
// @Accept json
// @Produce json
// @Param news body service.NewsRequest true "Entry"
// @Success 201 {object} models.News "Created entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /admin/news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	item, err := h.newsService.CreateNews(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create news")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateNews handles PUT /admin/news/:id
// @Summary Update news
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Param news body service.NewsRequest true "Entry"
// @Success 200 {object} models.News "Updated entry"
// @Failure 404 {object} ErrorResponse "News not found"
// @Security BearerAuth
// @Router /admin/news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c, "id", "news")
	if !ok {
		return
	}

	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	item, err := h.newsService.UpdateNews(c, actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update news")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteNews handles DELETE /admin/news/:id
// @Summary Delete news
// @Tags admin
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} ErrorResponse "News not found"
// @Security BearerAuth
// @Router /admin/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c, "id", "news")
	if !ok {
		return
	}

	if err := h.newsService.DeleteNews(c, actorFrom(c), id); err != nil {
		respondError(c, err, "Failed to delete news")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "News deleted"})
}
