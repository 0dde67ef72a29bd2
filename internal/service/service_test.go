package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/content-planner-api/internal/mocks"
	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/repository"
	"github.com/content-planner-api/internal/service"
	"github.com/rs/zerolog"
)

// fixedReadiness stands in for the database readiness state
type fixedReadiness bool

func (r fixedReadiness) Ready() bool { return bool(r) }

func strPtr(s string) *string { return &s }

func newService(ready bool) (service.PlannerService, *mocks.MockArticleRepository) {
	repo := mocks.NewMockArticleRepository()
	repos := &repository.Repositories{Article: repo}
	services := service.NewServices(repos, fixedReadiness(ready), zerolog.Nop())
	return services.Planner, repo
}

func seedOne(t *testing.T, svc service.PlannerService) *models.ArticlePlan {
	t.Helper()
	plan, err := svc.Upsert(context.Background(), models.ArticleUpsert{
		ArticleID: "CP-001",
		Title:     "Seeded",
		Priority:  "High",
		Week:      1,
	})
	if err != nil {
		t.Fatalf("Seed upsert failed: %v", err)
	}
	return plan
}

func TestUnreadyListDegradesToEmpty(t *testing.T) {
	svc, repo := newService(false)

	// Data in the repo must not leak through while unready
	repo.Plans[1] = models.ArticlePlan{ID: 1, ArticleID: "CP-001", Week: 1}

	plans, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List while unready must not error, got %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("Expected empty list while unready, got %d records", len(plans))
	}
}

func TestUnreadyStatsDegradesToZeros(t *testing.T) {
	svc, _ := newService(false)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats while unready must not error, got %v", err)
	}
	if stats.Total != 0 || stats.HighPriority != 0 || stats.Planned != 0 {
		t.Errorf("Expected zero counts, got %+v", stats)
	}
}

func TestUnreadyWritesFailWithServiceUnavailable(t *testing.T) {
	svc, _ := newService(false)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, models.ArticleUpsert{ArticleID: "CP-001", Title: "X"})
	if !errors.Is(err, service.ErrStoreUnavailable) {
		t.Errorf("Upsert: expected ErrStoreUnavailable, got %v", err)
	}

	_, err = svc.Patch(ctx, 1, models.ArticlePatch{Status: strPtr("written")})
	if !errors.Is(err, service.ErrStoreUnavailable) {
		t.Errorf("Patch: expected ErrStoreUnavailable, got %v", err)
	}

	if err := svc.Delete(ctx, 1); !errors.Is(err, service.ErrStoreUnavailable) {
		t.Errorf("Delete: expected ErrStoreUnavailable, got %v", err)
	}

	_, err = svc.BulkUpsert(ctx, []models.ArticleUpsert{{ArticleID: "CP-001", Title: "X"}})
	if !errors.Is(err, service.ErrStoreUnavailable) {
		t.Errorf("BulkUpsert: expected ErrStoreUnavailable, got %v", err)
	}

	_, err = svc.Get(ctx, 1)
	if !errors.Is(err, service.ErrStoreUnavailable) {
		t.Errorf("Get: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestReadyServicePassesThrough(t *testing.T) {
	svc, _ := newService(true)
	ctx := context.Background()

	created := seedOne(t, svc)

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ArticleID != "CP-001" {
		t.Errorf("Expected CP-001, got %s", got.ArticleID)
	}

	plans, err := svc.List(ctx)
	if err != nil || len(plans) != 1 {
		t.Errorf("Expected 1 plan, got %d (err %v)", len(plans), err)
	}

	stats, _ := svc.Stats(ctx)
	if stats.Total != 1 || stats.HighPriority != 1 {
		t.Errorf("Stats wrong: %+v", stats)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc, _ := newService(true)

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStatsSwallowsRepoErrors(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	repos := &repository.Repositories{Article: failingStatsRepo{repo}}
	services := service.NewServices(repos, fixedReadiness(true), zerolog.Nop())

	stats, err := services.Planner.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats must never error, got %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("Expected zero counts on repo failure, got %+v", stats)
	}
}

// failingStatsRepo makes the stats query fail underneath the service
type failingStatsRepo struct {
	*mocks.MockArticleRepository
}

func (f failingStatsRepo) Stats(ctx context.Context) (*models.PlanStats, error) {
	return nil, errors.New("connection reset")
}
