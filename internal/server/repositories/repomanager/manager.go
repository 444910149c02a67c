package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/passes"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/proofs"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/usage"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Passes(db dbx.DBTX) passes.Repository
	Proofs(db dbx.DBTX) proofs.Repository
	Usage(db dbx.DBTX) usage.Repository
}
