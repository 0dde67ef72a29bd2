package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/repository"
	"github.com/content-planner-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles the article-plan CRUD endpoints
type ArticleHandler struct {
	planner service.PlannerService
	log     zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(planner service.PlannerService, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		planner: planner,
		log:     log.With().Str("handler", "articles").Logger(),
	}
}

// List handles GET /api/articles. It always responds 200: a failed or
// unready store yields an empty array so the dashboard can render.
func (h *ArticleHandler) List(c *gin.Context) {
	plans, err := h.planner.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list article plans")
		c.JSON(http.StatusOK, []models.ArticlePlan{})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	plan, err := h.planner.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Upsert handles POST /api/articles: insert-or-merge on article_id
func (h *ArticleHandler) Upsert(c *gin.Context) {
	var in models.ArticleUpsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.Upsert(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Patch handles PATCH /api/articles/:id with a subset of {status, notes, week}
func (h *ArticleHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.Patch(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /api/articles/:id. Deleting a nonexistent id
// still reports success.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.planner.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BulkUpsert handles POST /api/articles/bulk as one all-or-nothing batch
func (h *ArticleHandler) BulkUpsert(c *gin.Context) {
	var req models.BulkUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.planner.BulkUpsert(c.Request.Context(), req.Articles)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Stats handles GET /api/stats. The service guarantees zero counts
// instead of errors, so this always responds 200.
func (h *ArticleHandler) Stats(c *gin.Context) {
	stats, _ := h.planner.Stats(c.Request.Context())
	if stats == nil {
		stats = &models.PlanStats{}
	}
	c.JSON(http.StatusOK, stats)
}

// pathID parses the :id segment, writing a 400 on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// writeError maps the store error taxonomy onto HTTP statuses
func (h *ArticleHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
