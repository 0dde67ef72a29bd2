package mocks

import (
	"context"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/planner"
	"github.com/content-planner-api/internal/service"
)

// MockPlannerService is an in-memory implementation of PlannerService
// with the readiness contract built in: when Unavailable is set, reads
// degrade and writes fail, matching the real service. It also satisfies
// planner.Store for view tests.
type MockPlannerService struct {
	Repo        *MockArticleRepository
	Unavailable bool

	ListCalls  int
	BulkCalls  int
	PatchCalls int
}

// Verify interface compliance
var (
	_ service.PlannerService = (*MockPlannerService)(nil)
	_ planner.Store          = (*MockPlannerService)(nil)
)

func NewMockPlannerService() *MockPlannerService {
	return &MockPlannerService{Repo: NewMockArticleRepository()}
}

func (m *MockPlannerService) List(ctx context.Context) ([]models.ArticlePlan, error) {
	m.ListCalls++
	if m.Unavailable {
		return []models.ArticlePlan{}, nil
	}
	return m.Repo.List(ctx)
}

func (m *MockPlannerService) Get(ctx context.Context, id int64) (*models.ArticlePlan, error) {
	if m.Unavailable {
		return nil, service.ErrStoreUnavailable
	}
	return m.Repo.GetByID(ctx, id)
}

func (m *MockPlannerService) Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error) {
	if m.Unavailable {
		return nil, service.ErrStoreUnavailable
	}
	return m.Repo.Upsert(ctx, in)
}

func (m *MockPlannerService) Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error) {
	m.PatchCalls++
	if m.Unavailable {
		return nil, service.ErrStoreUnavailable
	}
	return m.Repo.Patch(ctx, id, p)
}

func (m *MockPlannerService) Delete(ctx context.Context, id int64) error {
	if m.Unavailable {
		return service.ErrStoreUnavailable
	}
	return m.Repo.Delete(ctx, id)
}

func (m *MockPlannerService) BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error) {
	m.BulkCalls++
	if m.Unavailable {
		return 0, service.ErrStoreUnavailable
	}
	return m.Repo.BulkUpsert(ctx, in)
}

func (m *MockPlannerService) Stats(ctx context.Context) (*models.PlanStats, error) {
	if m.Unavailable {
		return &models.PlanStats{}, nil
	}
	return m.Repo.Stats(ctx)
}
