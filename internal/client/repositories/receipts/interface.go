// Package receipts stores the local list of readings this client sealed and
// published, so a user can find their proofs again without a ledger scan.
package receipts

import (
	"context"

	"github.com/dmitrijs2005/astroproof/internal/client/models"
)

type Repository interface {
	// Save inserts r or replaces the receipt with the same proof id.
	Save(ctx context.Context, r *models.Receipt) error
	// Get returns common.ErrorNotFound for an unknown proof id.
	Get(ctx context.Context, proofID string) (*models.Receipt, error)
	// ListByOwner returns the owner's receipts, newest first.
	ListByOwner(ctx context.Context, owner string) ([]*models.Receipt, error)
}
