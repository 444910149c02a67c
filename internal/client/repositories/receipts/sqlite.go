package receipts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// timeLayout is fixed width so created_at orders lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const columns = `proof_id, owner, uri, session_hash, report_hash, tx_handle, model, is_fallback, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(s scanner) (*models.Receipt, error) {
	var (
		r       models.Receipt
		created string
	)
	if err := s.Scan(&r.ProofID, &r.Owner, &r.URI, &r.SessionHash, &r.ReportHash, &r.TxHandle, &r.Model, &r.IsFallback, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return &r, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, rc *models.Receipt) error {
	query := `INSERT INTO receipts (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(proof_id) DO UPDATE SET
			uri = excluded.uri,
			tx_handle = excluded.tx_handle,
			model = excluded.model,
			is_fallback = excluded.is_fallback`

	_, err := r.db.ExecContext(ctx, query,
		rc.ProofID, rc.Owner, rc.URI, rc.SessionHash, rc.ReportHash, rc.TxHandle, rc.Model, rc.IsFallback,
		rc.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, proofID string) (*models.Receipt, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM receipts WHERE proof_id = ?`, proofID)
	rc, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return rc, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Receipt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columns+` FROM receipts WHERE owner = ? ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select receipts: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Receipt, 0)
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		result = append(result, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}
	return result, nil
}
