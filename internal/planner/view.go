package planner

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/content-planner-api/internal/models"
	"github.com/rs/zerolog"
)

// Store is the subset of store operations the view needs. The planner
// service satisfies it directly.
type Store interface {
	List(ctx context.Context) ([]models.ArticlePlan, error)
	BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error)
	Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error)
	Stats(ctx context.Context) (*models.PlanStats, error)
}

// View holds the last successfully loaded snapshot of the plan list and
// stats. Visible state is only ever a function of that snapshot: every
// mutation goes through the store and is followed by a full reload, no
// optimistic local edits. When the store cannot be seeded the view falls
// back to rendering the built-in dataset from memory.
type View struct {
	store       Store
	log         zerolog.Logger
	seedOnEmpty bool

	mu            sync.Mutex
	all           []models.ArticlePlan
	stats         models.PlanStats
	seedAttempted bool
	usingFallback bool
}

// NewView creates a planning view over the given store
func NewView(store Store, seedOnEmpty bool, log zerolog.Logger) *View {
	return &View{
		store:       store,
		seedOnEmpty: seedOnEmpty,
		log:         log.With().Str("component", "planner_view").Logger(),
	}
}

// Refresh reloads the full list and stats from the store. On the first
// load that comes back empty it pushes the fallback dataset via bulk
// upsert and re-fetches; if that push fails (store unavailable) the
// fallback dataset is served from memory instead. A failed fetch keeps
// the last-known snapshot, so the dashboard always has something to
// render.
func (v *View) Refresh(ctx context.Context) error {
	plans, err := v.store.List(ctx)
	if err != nil {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.log.Error().Err(err).Msg("Failed to load plans, keeping last snapshot")
		if v.all == nil {
			v.all = fallbackRecords()
			v.stats = fallbackStats(v.all)
			v.usingFallback = true
		}
		return err
	}

	if len(plans) == 0 && v.seedOnEmpty && v.trySeedOnce() {
		if _, err := v.store.BulkUpsert(ctx, FallbackPlans); err != nil {
			v.log.Warn().Err(err).Msg("Seeding failed, serving fallback dataset from memory")
			v.mu.Lock()
			v.all = fallbackRecords()
			v.usingFallback = true
			v.stats = fallbackStats(v.all)
			v.mu.Unlock()
			return nil
		}
		v.log.Info().Int("count", len(FallbackPlans)).Msg("Seeded empty store with fallback dataset")
		if reloaded, err := v.store.List(ctx); err == nil {
			plans = reloaded
		}
	}

	stats := models.PlanStats{}
	if s, err := v.store.Stats(ctx); err == nil && s != nil {
		stats = *s
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(plans) == 0 && v.usingFallback {
		// Store still has nothing for us, keep serving the fallback
		return nil
	}
	v.all = plans
	v.stats = stats
	v.usingFallback = false
	return nil
}

// trySeedOnce flips the one-shot seed guard. It returns true the first
// time only; the seed protocol is a best-effort convenience and must
// not retry on every load.
func (v *View) trySeedOnce() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seedAttempted {
		return false
	}
	v.seedAttempted = true
	return true
}

// Render filters the current snapshot and projects it into the given
// mode. Filtering is recomputed in full on every call.
func (v *View) Render(f Filter, mode ViewMode) ViewModel {
	v.mu.Lock()
	snapshot := v.all
	v.mu.Unlock()
	return Render(Apply(snapshot, f), mode)
}

// Stats returns the counters from the last refresh
func (v *View) Stats() models.PlanStats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stats
}

// UsingFallback reports whether the view is serving the in-memory
// fallback dataset rather than store data
func (v *View) UsingFallback() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.usingFallback
}

// SetStatus issues a status patch and then reloads the entire list and
// stats. The visible state never diverges from the store: on patch
// failure nothing changes locally.
func (v *View) SetStatus(ctx context.Context, id int64, status string) error {
	if _, err := v.store.Patch(ctx, id, models.ArticlePatch{Status: &status}); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// fallbackRecords materializes the fallback dataset as full records,
// ordered the way the store would return them.
func fallbackRecords() []models.ArticlePlan {
	now := time.Now()
	plans := make([]models.ArticlePlan, 0, len(FallbackPlans))
	for i, in := range FallbackPlans {
		p := models.NewFromUpsert(in, now)
		p.ID = int64(i + 1)
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Week != plans[j].Week {
			return plans[i].Week < plans[j].Week
		}
		return plans[i].ArticleID < plans[j].ArticleID
	})
	return plans
}

// fallbackStats counts the in-memory dataset so the counters render
// even with no store at all
func fallbackStats(plans []models.ArticlePlan) models.PlanStats {
	var s models.PlanStats
	s.Total = len(plans)
	for _, p := range plans {
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
	return s
}
