package planner_test

import (
	"testing"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/planner"
	"github.com/stretchr/testify/assert"
)

var filterFixtures = []models.ArticlePlan{
	{ArticleID: "CP-001", Category: "A", Priority: "High", Funnel: "TOFU", Status: "planned", Title: "Widget", Keyword: "widgets", Description: "all about widgets"},
	{ArticleID: "CP-002", Category: "B", Priority: "Low", Funnel: "MOFU", Status: "written", Title: "Gadget", Keyword: "gadgets", Description: "all about gadgets"},
}

func ids(plans []models.ArticlePlan) []string {
	out := make([]string, 0, len(plans))
	for _, p := range plans {
		out = append(out, p.ArticleID)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	visible := planner.Apply(filterFixtures, planner.Filter{Category: "A"})
	assert.Equal(t, []string{"CP-001"}, ids(visible))
}

func TestFilterFreeTextCaseInsensitive(t *testing.T) {
	for _, needle := range []string{"widg", "WIDG", "Widg"} {
		visible := planner.Apply(filterFixtures, planner.Filter{Search: needle})
		assert.Equal(t, []string{"CP-001"}, ids(visible), "search %q", needle)
	}
}

func TestFilterFreeTextMatchesKeywordAndDescription(t *testing.T) {
	// Keyword hit
	visible := planner.Apply(filterFixtures, planner.Filter{Search: "gadgets"})
	assert.Equal(t, []string{"CP-002"}, ids(visible))

	// Description hit shared by both records
	visible = planner.Apply(filterFixtures, planner.Filter{Search: "all about"})
	assert.Equal(t, []string{"CP-001", "CP-002"}, ids(visible))
}

func TestFilterConjunction(t *testing.T) {
	// category=B AND text "widg" yields nothing
	visible := planner.Apply(filterFixtures, planner.Filter{Category: "B", Search: "widg"})
	assert.Empty(t, visible)

	// All five predicates set and satisfied by one record
	visible = planner.Apply(filterFixtures, planner.Filter{
		Search:   "gadget",
		Category: "B",
		Priority: "Low",
		Funnel:   "MOFU",
		Status:   "written",
	})
	assert.Equal(t, []string{"CP-002"}, ids(visible))
}

func TestUnsetFilterMatchesEverything(t *testing.T) {
	visible := planner.Apply(filterFixtures, planner.Filter{})
	assert.Len(t, visible, len(filterFixtures))
}

func TestFilterPreservesOrder(t *testing.T) {
	plans := []models.ArticlePlan{
		{ArticleID: "CP-003", Week: 1, Priority: "High"},
		{ArticleID: "CP-001", Week: 2, Priority: "High"},
		{ArticleID: "CP-002", Week: 3, Priority: "Low"},
	}
	visible := planner.Apply(plans, planner.Filter{Priority: "High"})
	assert.Equal(t, []string{"CP-003", "CP-001"}, ids(visible))
}
