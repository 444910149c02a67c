// Package passes stores minted ownership passes in PostgreSQL.
package passes

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts pass. The caller assigns the ID.
func (r *PostgresRepository) Create(ctx context.Context, pass *models.Pass) error {
	query := `
		INSERT INTO passes (id, owner, tier, scope_id, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		pass.ID, pass.Owner, pass.Tier, pass.ScopeID, pass.IssuedAt, pass.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByOwner returns the passes of owner that are still valid at activeAt,
// newest first. Expired passes are filtered here so the ledger view stays
// small; the resolver still applies its own expiry check.
func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string, activeAt time.Time) ([]*models.Pass, error) {
	query := `
		SELECT id, owner, tier, scope_id, issued_at, expires_at
		FROM passes
		WHERE owner = $1 AND expires_at > $2
		ORDER BY issued_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, owner, activeAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Pass{}
	for rows.Next() {
		var p models.Pass
		if err := rows.Scan(&p.ID, &p.Owner, &p.Tier, &p.ScopeID, &p.IssuedAt, &p.ExpiresAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
