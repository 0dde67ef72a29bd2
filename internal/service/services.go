package service

import (
	"context"
	"errors"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrStoreUnavailable is returned by point and mutating operations while
// the backing store is not ready. List and Stats never return it; they
// degrade to empty results so the dashboard can always render.
var ErrStoreUnavailable = errors.New("store unavailable")

// Readiness reports whether the backing store can serve operations.
// database.DB satisfies it; tests substitute a fixed value.
type Readiness interface {
	Ready() bool
}

// PlannerService defines the store facade consumed by the HTTP layer
// and the planning view
type PlannerService interface {
	List(ctx context.Context) ([]models.ArticlePlan, error)
	Get(ctx context.Context, id int64) (*models.ArticlePlan, error)
	Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error)
	Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error)
	Delete(ctx context.Context, id int64) error
	BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error)
	Stats(ctx context.Context) (*models.PlanStats, error)
}

// Services holds all service interfaces
type Services struct {
	Planner PlannerService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, readiness Readiness, log zerolog.Logger) *Services {
	return &Services{
		Planner: newPlannerService(repos.Article, readiness, log),
	}
}
