package planner_test

import (
	"testing"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarterDerivation(t *testing.T) {
	cases := map[int]int{1: 1, 12: 1, 13: 1, 14: 2, 26: 2, 27: 3, 52: 4}
	for week, want := range cases {
		assert.Equal(t, want, planner.Quarter(week), "week %d", week)
	}
}

func TestRenderFlatKeepsOrder(t *testing.T) {
	plans := []models.ArticlePlan{
		{ArticleID: "CP-001", Week: 1},
		{ArticleID: "CP-002", Week: 1},
		{ArticleID: "CP-003", Week: 2},
	}

	vm := planner.Render(plans, planner.ModeFlat)

	require.Len(t, vm.Groups, 1)
	assert.False(t, vm.Empty)
	assert.Equal(t, 3, vm.Total)
	assert.Equal(t, 3, vm.Groups[0].Count)
	assert.Equal(t, plans, vm.Groups[0].Records)
}

func TestRenderCalendarGroupsByWeekAscending(t *testing.T) {
	plans := []models.ArticlePlan{
		{ArticleID: "CP-001", Week: 5},
		{ArticleID: "CP-002", Week: 1},
		{ArticleID: "CP-003", Week: 5},
		{ArticleID: "CP-004", Week: 13},
	}

	vm := planner.Render(plans, planner.ModeCalendar)

	require.Len(t, vm.Groups, 3)
	assert.Equal(t, []int{1, 5, 13}, []int{vm.Groups[0].Week, vm.Groups[1].Week, vm.Groups[2].Week})

	// Week 13 is still quarter 1; week 14 would start quarter 2
	assert.Equal(t, 1, vm.Groups[2].Quarter)
	assert.Equal(t, 2, planner.Quarter(14))

	// Records keep incoming relative order within a group
	week5 := vm.Groups[1]
	require.Equal(t, 2, week5.Count)
	assert.Equal(t, "CP-001", week5.Records[0].ArticleID)
	assert.Equal(t, "CP-003", week5.Records[1].ArticleID)

	assert.Equal(t, "Week 1", vm.Groups[0].Label)
}

func TestRenderCategoryGroupsLexicographically(t *testing.T) {
	plans := []models.ArticlePlan{
		{ArticleID: "CP-001", Category: "Strategy"},
		{ArticleID: "CP-002", Category: "Analytics"},
		{ArticleID: "CP-003", Category: "Process"},
		{ArticleID: "CP-004", Category: "Analytics"},
	}

	vm := planner.Render(plans, planner.ModeCategory)

	require.Len(t, vm.Groups, 3)
	assert.Equal(t, "Analytics", vm.Groups[0].Label)
	assert.Equal(t, "Process", vm.Groups[1].Label)
	assert.Equal(t, "Strategy", vm.Groups[2].Label)

	assert.Equal(t, 2, vm.Groups[0].Count)
	assert.Equal(t, "CP-002", vm.Groups[0].Records[0].ArticleID)
	assert.Equal(t, "CP-004", vm.Groups[0].Records[1].ArticleID)
}

func TestRenderEmptyIsSharedAcrossModes(t *testing.T) {
	modes := []planner.ViewMode{planner.ModeFlat, planner.ModeCalendar, planner.ModeCategory}
	for _, mode := range modes {
		vm := planner.Render(nil, mode)
		assert.True(t, vm.Empty, "mode %s", mode)
		assert.Equal(t, mode, vm.Mode)
		assert.Zero(t, vm.Total)
		assert.Nil(t, vm.Groups)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	plans := []models.ArticlePlan{
		{ArticleID: "CP-001", Week: 2, Category: "SEO"},
		{ArticleID: "CP-002", Week: 1, Category: "SEO"},
	}

	first := planner.Render(plans, planner.ModeCalendar)
	second := planner.Render(plans, planner.ModeCalendar)
	assert.Equal(t, first, second)
}
