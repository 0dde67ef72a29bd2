package planner

import (
	"strings"

	"github.com/content-planner-api/internal/models"
)

// Filter holds the five independent predicates. The zero value matches
// every record: an unset dimension places no constraint.
type Filter struct {
	// Search matches case-insensitively as a substring of title,
	// keyword or description (OR across the three fields).
	Search   string
	Category string
	Priority string
	Funnel   string
	Status   string
}

// Match reports whether a record satisfies all five predicates
func (f Filter) Match(p models.ArticlePlan) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Keyword), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Priority != "" && p.Priority != f.Priority {
		return false
	}
	if f.Funnel != "" && p.Funnel != f.Funnel {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the records matching the filter, preserving order.
// The result is recomputed in full on every call; the dataset is small
// by design and incremental diffing would not pay for itself.
func Apply(plans []models.ArticlePlan, f Filter) []models.ArticlePlan {
	visible := make([]models.ArticlePlan, 0, len(plans))
	for _, p := range plans {
		if f.Match(p) {
			visible = append(visible, p)
		}
	}
	return visible
}
