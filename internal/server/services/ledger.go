package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/repomanager"
)

// now is a test seam for pass issuance and proof timestamps.
var now = time.Now

// LedgerService records passes and published proofs. It plays the role of
// the public ledger for clients.
type LedgerService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	passDuration time.Duration
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager, passDuration time.Duration) *LedgerService {
	return &LedgerService{db: db, repomanager: m, passDuration: passDuration}
}

func toRecord(p *models.Pass) entitlement.OwnershipRecord {
	return entitlement.OwnershipRecord{
		ID:        p.ID,
		Tier:      entitlement.Tier(p.Tier),
		ScopeID:   p.ScopeID,
		IssuedAt:  p.IssuedAt.UTC(),
		ExpiresAt: p.ExpiresAt.UTC(),
	}
}

// ListOwnershipRecords returns the unexpired passes of owner. An owner with
// no passes gets an empty slice.
func (s *LedgerService) ListOwnershipRecords(ctx context.Context, owner string) ([]entitlement.OwnershipRecord, error) {
	list, err := s.repomanager.Passes(s.db).ListByOwner(ctx, owner, now())
	if err != nil {
		return nil, err
	}

	records := make([]entitlement.OwnershipRecord, 0, len(list))
	for _, p := range list {
		records = append(records, toRecord(p))
	}
	return records, nil
}

// MintPass issues a pass of tier for owner, valid from now for the
// configured pass duration.
func (s *LedgerService) MintPass(ctx context.Context, owner string, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, error) {
	issued := now().UTC()
	record := entitlement.OwnershipRecord{
		ID:        uuid.NewString(),
		Tier:      tier,
		ScopeID:   scopeID,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.passDuration),
	}
	if err := record.Validate(); err != nil {
		return entitlement.OwnershipRecord{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	pass := &models.Pass{
		ID:        record.ID,
		Owner:     owner,
		Tier:      string(record.Tier),
		ScopeID:   record.ScopeID,
		IssuedAt:  record.IssuedAt,
		ExpiresAt: record.ExpiresAt,
	}
	if err := s.repomanager.Passes(s.db).Create(ctx, pass); err != nil {
		return entitlement.OwnershipRecord{}, err
	}
	return record, nil
}

// PublishFingerprints records a proof for owner. Publishing the same report
// fingerprint again with the same session fingerprint and URI returns the
// existing proof; any other reuse of a report fingerprint is rejected.
func (s *LedgerService) PublishFingerprints(ctx context.Context, owner string, session, report fingerprint.Fingerprint, uri string) (*models.Proof, error) {
	if !session.Valid() || !report.Valid() {
		return nil, fmt.Errorf("%w: malformed fingerprint", common.ErrValidation)
	}
	if uri == "" {
		return nil, fmt.Errorf("%w: empty uri", common.ErrValidation)
	}

	var result *models.Proof
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Proofs(tx)

		existing, err := repo.FindByReportHash(ctx, owner, string(report))
		switch {
		case err == nil:
			if existing.SessionHash != string(session) || existing.URI != uri {
				return fmt.Errorf("%w: report fingerprint already published", common.ErrValidation)
			}
			result = existing
			return nil
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		id := uuid.NewString()
		proof := &models.Proof{
			ID:          id,
			Owner:       owner,
			SessionHash: string(session),
			ReportHash:  string(report),
			URI:         uri,
			TxHandle:    "ledger:" + id,
			CreatedAt:   now().UTC(),
		}
		if err := repo.Create(ctx, proof); err != nil {
			return err
		}
		result = proof
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetProof looks a proof up by id. Malformed ids are a validation error.
func (s *LedgerService) GetProof(ctx context.Context, id string) (*models.Proof, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed proof id", common.ErrValidation)
	}
	return s.repomanager.Proofs(s.db).GetByID(ctx, id)
}

func (s *LedgerService) ListProofs(ctx context.Context, owner string) ([]*models.Proof, error) {
	return s.repomanager.Proofs(s.db).ListByOwner(ctx, owner)
}
