package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/timex"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, identity string, day time.Time) (int, error) {
	query := `
		SELECT count FROM daily_usage
		WHERE identity = $1 AND day = $2
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, identity, timex.Day(day)).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Increment(ctx context.Context, identity string, day time.Time) (int, error) {
	query := `
		INSERT INTO daily_usage (identity, day, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (identity, day)
		DO UPDATE SET count = daily_usage.count + 1
		RETURNING count
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, identity, timex.Day(day)).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
