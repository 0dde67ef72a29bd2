package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/repository"
)

// MockArticleRepository is an in-memory implementation of
// ArticleRepository. It shares the merge rules with the SQL
// implementation through models.MergeUpsert and models.ApplyPatch.
type MockArticleRepository struct {
	Plans       map[int64]models.ArticlePlan
	ByArticleID map[string]int64
	NextID      int64

	// UpsertErr fails every upsert when set
	UpsertErr error
	// FailArticleID fails the upsert of one specific record, for
	// exercising bulk rollback
	FailArticleID string
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Plans:       make(map[int64]models.ArticlePlan),
		ByArticleID: make(map[string]int64),
		NextID:      1,
	}
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.ArticlePlan, error) {
	plans := make([]models.ArticlePlan, 0, len(m.Plans))
	for _, p := range m.Plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Week != plans[j].Week {
			return plans[i].Week < plans[j].Week
		}
		return plans[i].ArticleID < plans[j].ArticleID
	})
	return plans, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticlePlan, error) {
	p, ok := m.Plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *MockArticleRepository) Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error) {
	return m.upsertInto(m.Plans, m.ByArticleID, in)
}

func (m *MockArticleRepository) upsertInto(plans map[int64]models.ArticlePlan, byArticleID map[string]int64, in models.ArticleUpsert) (*models.ArticlePlan, error) {
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}
	if m.FailArticleID != "" && in.ArticleID == m.FailArticleID {
		return nil, fmt.Errorf("failed to write article plan %q: constraint violation", in.ArticleID)
	}

	now := time.Now()
	if id, ok := byArticleID[in.ArticleID]; ok {
		merged := models.MergeUpsert(plans[id], in, now)
		plans[id] = merged
		return &merged, nil
	}

	plan := models.NewFromUpsert(in, now)
	plan.ID = m.NextID
	m.NextID++
	plans[plan.ID] = plan
	byArticleID[plan.ArticleID] = plan.ID
	return &plan, nil
}

func (m *MockArticleRepository) Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error) {
	existing, ok := m.Plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patched := models.ApplyPatch(existing, p, time.Now())
	m.Plans[id] = patched
	return &patched, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	if p, ok := m.Plans[id]; ok {
		delete(m.ByArticleID, p.ArticleID)
		delete(m.Plans, id)
	}
	return nil
}

// BulkUpsert applies the batch against a scratch copy and commits only
// when every record succeeds, mirroring the SQL transaction.
func (m *MockArticleRepository) BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error) {
	plans := make(map[int64]models.ArticlePlan, len(m.Plans))
	for id, p := range m.Plans {
		plans[id] = p
	}
	byArticleID := make(map[string]int64, len(m.ByArticleID))
	for k, v := range m.ByArticleID {
		byArticleID[k] = v
	}

	savedNextID := m.NextID
	applied := 0
	for _, rec := range in {
		if _, err := m.upsertInto(plans, byArticleID, rec); err != nil {
			m.NextID = savedNextID
			return 0, err
		}
		applied++
	}

	m.Plans = plans
	m.ByArticleID = byArticleID
	return applied, nil
}

func (m *MockArticleRepository) Stats(ctx context.Context) (*models.PlanStats, error) {
	var s models.PlanStats
	s.Total = len(m.Plans)
	for _, p := range m.Plans {
		switch p.Priority {
		case "High":
			s.HighPriority++
		case "Medium":
			s.MediumPriority++
		case "Low":
			s.LowPriority++
		}
		switch p.Status {
		case "planned":
			s.Planned++
		case "in_progress":
			s.InProgress++
		case "written":
			s.Written++
		case "published":
			s.Published++
		}
	}
	return &s, nil
}
