package repository

import (
	"context"
	"errors"

	"github.com/content-planner-api/internal/database"
	"github.com/content-planner-api/internal/models"
)

// ErrNotFound is returned by point operations when no record has the
// given internal id.
var ErrNotFound = errors.New("article plan not found")

// ArticleRepository defines the interface for article-plan data operations
type ArticleRepository interface {
	// List returns all records ordered by (week, article_id). An empty
	// store yields an empty slice, not an error.
	List(ctx context.Context) ([]models.ArticlePlan, error)

	// GetByID retrieves a record by internal id, ErrNotFound if absent
	GetByID(ctx context.Context, id int64) (*models.ArticlePlan, error)

	// Upsert inserts or merges on article_id and returns the result
	Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error)

	// Patch updates only the supplied subset of {status, notes, week},
	// ErrNotFound if the id does not exist
	Patch(ctx context.Context, id int64, p models.ArticlePatch) (*models.ArticlePlan, error)

	// Delete removes a record; a missing id is a no-op, not an error
	Delete(ctx context.Context, id int64) error

	// BulkUpsert applies Upsert for each record in a single transaction.
	// Any failure rolls the whole batch back and returns the error.
	BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error)

	// Stats returns total and per-priority/per-status counts
	Stats(ctx context.Context) (*models.PlanStats, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
	}
}
