package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/content-planner-api/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// State describes whether the backing store can serve reads and writes.
type State int

const (
	// StateUninitialized means no connection string was configured.
	// The store stays in this state for the life of the process.
	StateUninitialized State = iota
	// StateReady means the last ping succeeded.
	StateReady
	// StateUnavailable means a connection exists but the engine is
	// unreachable. A later ping may flip it back to ready.
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// DB wraps the sql.DB connection with an explicit readiness state
type DB struct {
	conn *sql.DB
	log  zerolog.Logger

	mu    sync.RWMutex
	state State
}

// Connect opens the database connection and reports the resulting
// readiness. Unlike a typical bootstrap this never treats failure as
// fatal: the dashboard must render (empty) even with no database, so a
// missing URL yields an uninitialized store and an unreachable engine
// yields an unavailable one.
func Connect(cfg *config.DatabaseConfig, log zerolog.Logger) *DB {
	db := &DB{
		log:   log.With().Str("component", "database").Logger(),
		state: StateUninitialized,
	}

	if cfg.URL == "" {
		db.log.Warn().Msg("DATABASE_URL not set, store will serve empty reads and reject writes")
		return db
	}

	conn, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		db.log.Warn().Err(err).Msg("Failed to open database connection")
		return db
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.MaxLifetime)

	db.conn = conn
	db.state = StateUnavailable

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		db.log.Warn().Err(err).Msg("Database unreachable, store starts unavailable")
		return db
	}

	db.state = StateReady
	db.log.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database connection established")

	return db
}

// Conn exposes the underlying connection for the repository layer.
// Nil when the store is uninitialized.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// State returns the current readiness state
func (db *DB) State() State {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.state
}

// Ready reports whether the store can serve reads and writes
func (db *DB) Ready() bool {
	return db.State() == StateReady
}

// Ping re-checks the backing engine and updates the readiness state.
// An unavailable store that comes back is promoted to ready; an
// uninitialized store stays uninitialized.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return errors.New("no database configured")
	}

	err := db.conn.PingContext(ctx)

	db.mu.Lock()
	prev := db.state
	if err != nil {
		db.state = StateUnavailable
	} else {
		db.state = StateReady
	}
	next := db.state
	db.mu.Unlock()

	if prev != next {
		db.log.Info().
			Stringer("from", prev).
			Stringer("to", next).
			Msg("Database readiness changed")
	}

	return err
}

// Close releases the underlying connection
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// RunMigrations executes all pending migrations using golang-migrate
func (db *DB) RunMigrations(migrationsPath string) error {
	if !db.Ready() {
		return fmt.Errorf("cannot run migrations, store is %s", db.State())
	}

	db.log.Info().Str("path", migrationsPath).Msg("Running database migrations")

	driver, err := postgres.WithInstance(db.conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	db.log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations completed")

	return nil
}

// MigrateDown rolls back the last migration
func (db *DB) MigrateDown(migrationsPath string) error {
	if !db.Ready() {
		return fmt.Errorf("cannot roll back migrations, store is %s", db.State())
	}

	db.log.Info().Str("path", migrationsPath).Msg("Rolling back last migration")

	driver, err := postgres.WithInstance(db.conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	db.log.Info().Msg("Migration rolled back")
	return nil
}
