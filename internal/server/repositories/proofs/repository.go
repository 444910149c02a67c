package proofs

import (
	"context"

	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, proof *models.Proof) error
	GetByID(ctx context.Context, id string) (*models.Proof, error)
	FindByReportHash(ctx context.Context, owner, reportHash string) (*models.Proof, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Proof, error)
}
