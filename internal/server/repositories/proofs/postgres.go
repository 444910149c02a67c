// Package proofs stores published fingerprint pairs in PostgreSQL.
package proofs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/common"
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

const proofColumns = `id, owner, session_hash, report_hash, uri, tx_handle, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProof(s scanner) (*models.Proof, error) {
	var p models.Proof
	if err := s.Scan(&p.ID, &p.Owner, &p.SessionHash, &p.ReportHash, &p.URI, &p.TxHandle, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts proof. CreatedAt is assigned by the caller.
func (r *PostgresRepository) Create(ctx context.Context, proof *models.Proof) error {
	query := `
		INSERT INTO proofs (` + proofColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		proof.ID, proof.Owner, proof.SessionHash, proof.ReportHash, proof.URI, proof.TxHandle, proof.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns common.ErrorNotFound when no proof has id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Proof, error) {
	query := `SELECT ` + proofColumns + ` FROM proofs WHERE id = $1`

	p, err := scanProof(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// FindByReportHash returns common.ErrorNotFound when owner never published
// reportHash.
func (r *PostgresRepository) FindByReportHash(ctx context.Context, owner, reportHash string) (*models.Proof, error) {
	query := `SELECT ` + proofColumns + ` FROM proofs WHERE owner = $1 AND report_hash = $2`

	p, err := scanProof(r.db.QueryRowContext(ctx, query, owner, reportHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Proof, error) {
	query := `SELECT ` + proofColumns + ` FROM proofs WHERE owner = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Proof{}
	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
