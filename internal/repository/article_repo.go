package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/content-planner-api/internal/database"
	"github.com/content-planner-api/internal/models"
	"github.com/lib/pq"
)

// articleRepo is the concrete PostgreSQL implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article-plan repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const planColumns = `id, article_id, title, keyword, intent, funnel, category, description,
	priority, word_count, week, status, notes, created_at, updated_at`

// upsertQuery mirrors models.MergeUpsert: descriptive fields replace
// unconditionally, status/notes only when the bound value is non-null.
const upsertQuery = `
	INSERT INTO article_plans
		(article_id, title, keyword, intent, funnel, category, description,
		 priority, word_count, week, status, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		COALESCE($11, 'planned'), COALESCE($12, ''))
	ON CONFLICT (article_id) DO UPDATE SET
		title = EXCLUDED.title,
		keyword = EXCLUDED.keyword,
		intent = EXCLUDED.intent,
		funnel = EXCLUDED.funnel,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		priority = EXCLUDED.priority,
		word_count = EXCLUDED.word_count,
		week = EXCLUDED.week,
		status = COALESCE($11, article_plans.status),
		notes = COALESCE($12, article_plans.notes),
		updated_at = now()
	RETURNING ` + planColumns

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*models.ArticlePlan, error) {
	var p models.ArticlePlan
	err := row.Scan(
		&p.ID, &p.ArticleID, &p.Title, &p.Keyword, &p.Intent, &p.Funnel,
		&p.Category, &p.Description, &p.Priority, &p.WordCount, &p.Week,
		&p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves all records ordered by (week, article_id)
func (r *articleRepo) List(ctx context.Context) ([]models.ArticlePlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM article_plans ORDER BY week, article_id`, planColumns)

	rows, err := r.db.Conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list article plans: %w", err)
	}
	defer rows.Close()

	plans := []models.ArticlePlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// GetByID retrieves a record by internal id
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticlePlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM article_plans WHERE id = $1`, planColumns)

	p, err := scanPlan(r.db.Conn().QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Upsert inserts or merges a record on its article_id natural key
func (r *articleRepo) Upsert(ctx context.Context, in models.ArticleUpsert) (*models.ArticlePlan, error) {
	p, err := scanPlan(r.db.Conn().QueryRowContext(ctx, upsertQuery,
		in.ArticleID, in.Title, in.Keyword, in.Intent, in.Funnel,
		in.Category, in.Description, in.Priority, in.WordCount, in.Week,
		in.Status, in.Notes,
	))
	if err != nil {
		return nil, wrapWriteError(in.ArticleID, err)
	}
	return p, nil
}

// Patch updates only the supplied subset of {status, notes, week}
func (r *articleRepo) Patch(ctx context.Context, id int64, patch models.ArticlePatch) (*models.ArticlePlan, error) {
	query := fmt.Sprintf(`
		UPDATE article_plans SET
			status = COALESCE($2, status),
			notes = COALESCE($3, notes),
			week = COALESCE($4, week),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, planColumns)

	p, err := scanPlan(r.db.Conn().QueryRowContext(ctx, query, id, patch.Status, patch.Notes, patch.Week))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a record. Deleting a nonexistent id is a no-op.
func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Conn().ExecContext(ctx, `DELETE FROM article_plans WHERE id = $1`, id)
	return err
}

// BulkUpsert applies the upsert for each record inside one transaction.
// A failure on any record rolls back the entire batch.
func (r *articleRepo) BulkUpsert(ctx context.Context, in []models.ArticleUpsert) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}

	tx, err := r.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin bulk upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertQuery)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	applied := 0
	for _, rec := range in {
		_, err := scanPlan(stmt.QueryRowContext(ctx,
			rec.ArticleID, rec.Title, rec.Keyword, rec.Intent, rec.Funnel,
			rec.Category, rec.Description, rec.Priority, rec.WordCount, rec.Week,
			rec.Status, rec.Notes,
		))
		if err != nil {
			return 0, wrapWriteError(rec.ArticleID, err)
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bulk upsert: %w", err)
	}
	return applied, nil
}

// Stats counts records in total and per fixed priority and status value
func (r *articleRepo) Stats(ctx context.Context) (*models.PlanStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE priority = 'High'),
			COUNT(*) FILTER (WHERE priority = 'Medium'),
			COUNT(*) FILTER (WHERE priority = 'Low'),
			COUNT(*) FILTER (WHERE status = 'planned'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'written'),
			COUNT(*) FILTER (WHERE status = 'published')
		FROM article_plans`

	var s models.PlanStats
	err := r.db.Conn().QueryRowContext(ctx, query).Scan(
		&s.Total, &s.HighPriority, &s.MediumPriority, &s.LowPriority,
		&s.Planned, &s.InProgress, &s.Written, &s.Published,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// wrapWriteError surfaces constraint detail from the driver when present
func wrapWriteError(articleID string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("failed to write article plan %q: %s", articleID, pqErr.Message)
	}
	return fmt.Errorf("failed to write article plan %q: %w", articleID, err)
}
