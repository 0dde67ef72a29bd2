package api

import (
	"net/http"

	"github.com/content-planner-api/internal/planner"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DashboardHandler renders the planning view server-side
type DashboardHandler struct {
	view *planner.View
	log  zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(view *planner.View, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		view: view,
		log:  log.With().Str("handler", "dashboard").Logger(),
	}
}

// Render handles GET /api/dashboard. Query parameters select the view
// mode and the five filter predicates; unset parameters match all. The
// refresh triggers the one-time seed protocol on an empty store and
// degrades to the last snapshot or the in-memory fallback, so this
// endpoint always returns a renderable state.
func (h *DashboardHandler) Render(c *gin.Context) {
	mode := planner.ViewMode(c.DefaultQuery("mode", string(planner.ModeFlat)))
	if !planner.ValidMode(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be one of: flat, calendar, category"})
		return
	}

	if err := h.view.Refresh(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("Dashboard refresh failed, serving cached data")
	}

	filter := planner.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Funnel:   c.Query("funnel"),
		Status:   c.Query("status"),
	}

	c.JSON(http.StatusOK, gin.H{
		"view":     h.view.Render(filter, mode),
		"stats":    h.view.Stats(),
		"fallback": h.view.UsingFallback(),
	})
}
