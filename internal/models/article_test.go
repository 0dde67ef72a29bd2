package models_test

import (
	"testing"
	"time"

	"github.com/content-planner-api/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func baseline(now time.Time) models.ArticlePlan {
	return models.ArticlePlan{
		ID:          7,
		ArticleID:   "CP-042",
		Title:       "Old title",
		Keyword:     "old keyword",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "SEO",
		Description: "old description",
		Priority:    "Low",
		WordCount:   900,
		Week:        4,
		Status:      "written",
		Notes:       "keep these notes",
		CreatedAt:   now.Add(-48 * time.Hour),
		UpdatedAt:   now.Add(-48 * time.Hour),
	}
}

func TestMergeUpsertReplacesDescriptiveFields(t *testing.T) {
	now := time.Now()
	existing := baseline(now)

	merged := models.MergeUpsert(existing, models.ArticleUpsert{
		ArticleID:   "CP-042",
		Title:       "New title",
		Keyword:     "new keyword",
		Intent:      "commercial",
		Funnel:      "MOFU",
		Category:    "Product",
		Description: "new description",
		Priority:    "High",
		WordCount:   1500,
		Week:        9,
	}, now)

	assert.Equal(t, "New title", merged.Title)
	assert.Equal(t, "Product", merged.Category)
	assert.Equal(t, 9, merged.Week)
	assert.Equal(t, now, merged.UpdatedAt)

	// Omitted status and notes keep the stored values
	assert.Equal(t, "written", merged.Status)
	assert.Equal(t, "keep these notes", merged.Notes)

	// Identity and creation time never move
	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
}

func TestMergeUpsertReplacesStatusAndNotesWhenSupplied(t *testing.T) {
	now := time.Now()
	existing := baseline(now)

	merged := models.MergeUpsert(existing, models.ArticleUpsert{
		ArticleID: "CP-042",
		Title:     "New title",
		Status:    strPtr("published"),
		Notes:     strPtr("fresh notes"),
	}, now)

	assert.Equal(t, "published", merged.Status)
	assert.Equal(t, "fresh notes", merged.Notes)
}

func TestNewFromUpsertDefaultsStatusToPlanned(t *testing.T) {
	now := time.Now()

	plan := models.NewFromUpsert(models.ArticleUpsert{
		ArticleID: "CP-100",
		Title:     "Fresh plan",
		Week:      2,
	}, now)

	assert.Equal(t, models.StatusPlanned, plan.Status)
	assert.Empty(t, plan.Notes)
	assert.Equal(t, now, plan.CreatedAt)

	withStatus := models.NewFromUpsert(models.ArticleUpsert{
		ArticleID: "CP-101",
		Title:     "Already moving",
		Status:    strPtr("in_progress"),
	}, now)
	assert.Equal(t, "in_progress", withStatus.Status)
}

func TestApplyPatchTouchesOnlySuppliedFields(t *testing.T) {
	now := time.Now()
	existing := baseline(now)

	patched := models.ApplyPatch(existing, models.ArticlePatch{Status: strPtr("published")}, now)

	// Only status and updated_at may differ from the original
	want := existing
	want.Status = "published"
	want.UpdatedAt = now
	if diff := cmp.Diff(want, patched); diff != "" {
		t.Errorf("ApplyPatch changed unexpected fields (-want +got):\n%s", diff)
	}
}

func TestApplyPatchWeekAndNotes(t *testing.T) {
	now := time.Now()
	existing := baseline(now)

	patched := models.ApplyPatch(existing, models.ArticlePatch{
		Notes: strPtr(""),
		Week:  intPtr(12),
	}, now)

	assert.Equal(t, "", patched.Notes, "explicit empty string clears notes")
	assert.Equal(t, 12, patched.Week)
	assert.Equal(t, existing.Status, patched.Status)
}

func TestApplyPatchEmptyIsTimestampOnly(t *testing.T) {
	now := time.Now()
	existing := baseline(now)

	patched := models.ApplyPatch(existing, models.ArticlePatch{}, now)

	want := existing
	want.UpdatedAt = now
	if diff := cmp.Diff(want, patched); diff != "" {
		t.Errorf("empty patch changed fields (-want +got):\n%s", diff)
	}
}
