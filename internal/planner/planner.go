// Package planner holds the planning-view logic: multi-predicate
// filtering of the fetched plan list and the three interchangeable
// projections of it (flat, by-week calendar, by-category). Rendering is
// a pure function into a ViewModel so any UI layer can consume it.
package planner

import (
	"github.com/content-planner-api/internal/models"
)

// ViewMode selects one of the three projections
type ViewMode string

const (
	ModeFlat     ViewMode = "flat"
	ModeCalendar ViewMode = "calendar"
	ModeCategory ViewMode = "category"
)

// ValidMode reports whether m names a known projection
func ValidMode(m ViewMode) bool {
	return m == ModeFlat || m == ModeCalendar || m == ModeCategory
}

// Group is one rendered bucket of records. Week and Quarter are set in
// calendar mode only; Label carries the group heading in all modes.
type Group struct {
	Label   string               `json:"label"`
	Week    int                  `json:"week,omitempty"`
	Quarter int                  `json:"quarter,omitempty"`
	Count   int                  `json:"count"`
	Records []models.ArticlePlan `json:"records"`
}

// ViewModel is the rendered output for one mode. When no records match
// the current filter, Empty is set and Groups is nil; all three modes
// share that placeholder state.
type ViewModel struct {
	Mode   ViewMode `json:"mode"`
	Empty  bool     `json:"empty"`
	Total  int      `json:"total"`
	Groups []Group  `json:"groups,omitempty"`
}

// Quarter derives the display quarter from a planning week, thirteen
// weeks per quarter.
func Quarter(week int) int {
	if week < 1 {
		return 1
	}
	return (week + 12) / 13
}
