// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/server/migrations"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/passes"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/proofs"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/usage"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Passes returns a passes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Passes(db dbx.DBTX) passes.Repository {
	return passes.NewPostgresRepository(db)
}

// Proofs returns a proofs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Proofs(db dbx.DBTX) proofs.Repository {
	return proofs.NewPostgresRepository(db)
}

// Usage returns the PostgreSQL usage counter bound to the provided DBTX.
func (m *PostgresRepositoryManager) Usage(db dbx.DBTX) usage.Repository {
	return usage.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
