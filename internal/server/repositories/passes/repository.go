package passes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, pass *models.Pass) error
	ListByOwner(ctx context.Context, owner string, activeAt time.Time) ([]*models.Pass, error)
}
