package service

import (
	"context"

	"github.com/content-planner-api/internal/models"
	"github.com/content-planner-api/internal/repository"
	"github.com/rs/zerolog"
)

// plannerService wraps the repository with the readiness contract:
// reads degrade, writes fail.
type plannerService struct {
	repo      repository.ArticleRepository
	readiness Readiness
	log       zerolog.Logger
}

func newPlannerService(repo repository.ArticleRepository, readiness Readiness, log zerolog.Logger) PlannerService {
	return &plannerService{
		repo:      repo,
		readiness: readiness,
		log:       log.With().Str("service", "planner").Logger(),
	}
}

// List returns all plans ordered by (week, article_id). While the store
// is not ready it returns an empty slice rather than an error, so the
// dashboard renders an empty state instead of failing.
func (s *plannerService) List(ctx context.Context) ([]models.ArticlePlan, error) {
	if !s.readiness.Ready() {
		s.log.Debug().Msg("Store not ready, serving empty plan list")
		return []models.ArticlePlan{}, nil
	}
	return s.repo.List(ctx)
}

func (s *plannerService) Get(ctx context.Context, id int64) (*models.ArticlePlan, error) {
	if !s.readiness.Ready() {
		return nil, ErrStoreUnavailable
	}
	return s.repo.GetByID(ctx, id)
}

func (s *plannerService) Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error) {
	if !s.readiness.Ready() {
		return nil, ErrStoreUnavailable
	}
	plan, err := s.repo.Upsert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("article_id", plan.ArticleID).
		Int64("id", plan.ID).
		Msg("Article plan upserted")
	return plan, nil
}

func (s *plannerService) Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error) {
	if !s.readiness.Ready() {
		return nil, ErrStoreUnavailable
	}
	plan, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return nil, err
	}
	event := s.log.Info().Int64("id", id)
	if p.Status != nil {
		event = event.Str("status", *p.Status)
	}
	event.Msg("Article plan patched")
	return plan, nil
}

// Delete removes a plan. Missing ids are a silent no-op per the
// idempotent delete contract.
func (s *plannerService) Delete(ctx context.Context, id int64) error {
	if !s.readiness.Ready() {
		return ErrStoreUnavailable
	}
	return s.repo.Delete(ctx, id)
}

func (s *plannerService) BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error) {
	if !s.readiness.Ready() {
		return 0, ErrStoreUnavailable
	}
	count, err := s.repo.BulkUpsert(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Int("batch_size", len(in)).Msg("Bulk upsert rolled back")
		return 0, err
	}
	s.log.Info().Int("count", count).Msg("Bulk upsert applied")
	return count, nil
}

// Stats returns the dashboard counters. It never returns an error:
// an unready store or a failed query both yield all-zero counts.
func (s *plannerService) Stats(ctx context.Context) (*models.PlanStats, error) {
	if !s.readiness.Ready() {
		return &models.PlanStats{}, nil
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Stats query failed, serving zero counts")
		return &models.PlanStats{}, nil
	}
	return stats, nil
}
