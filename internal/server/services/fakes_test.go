package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/dbx"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/passes"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/proofs"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/usage"
)

type fakePassesRepo struct {
	created  []*models.Pass
	list     []*models.Pass
	activeAt time.Time
	err      error
}

func (f *fakePassesRepo) Create(_ context.Context, p *models.Pass) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePassesRepo) ListByOwner(_ context.Context, _ string, activeAt time.Time) ([]*models.Pass, error) {
	f.activeAt = activeAt
	return f.list, f.err
}

type fakeProofsRepo struct {
	byID      map[string]*models.Proof
	createErr error
	findErr   error
}

func newFakeProofsRepo() *fakeProofsRepo {
	return &fakeProofsRepo{byID: map[string]*models.Proof{}}
}

func (f *fakeProofsRepo) Create(_ context.Context, p *models.Proof) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProofsRepo) GetByID(_ context.Context, id string) (*models.Proof, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeProofsRepo) FindByReportHash(_ context.Context, owner, report string) (*models.Proof, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, p := range f.byID {
		if p.Owner == owner && p.ReportHash == report {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProofsRepo) ListByOwner(_ context.Context, owner string) ([]*models.Proof, error) {
	out := []*models.Proof{}
	for _, p := range f.byID {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUsageRepo struct {
	counts map[string]int
	err    error
}

func (f *fakeUsageRepo) key(identity string, day time.Time) string {
	return identity + "/" + day.UTC().Format(common.DayLayout)
}

func (f *fakeUsageRepo) Get(_ context.Context, identity string, day time.Time) (int, error) {
	return f.counts[f.key(identity, day)], f.err
}

func (f *fakeUsageRepo) Increment(_ context.Context, identity string, day time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[f.key(identity, day)]++
	return f.counts[f.key(identity, day)], nil
}

type fakeRepoManager struct {
	passes *fakePassesRepo
	proofs *fakeProofsRepo
	usage  *fakeUsageRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Passes(dbx.DBTX) passes.Repository          { return m.passes }
func (m *fakeRepoManager) Proofs(dbx.DBTX) proofs.Repository          { return m.proofs }
func (m *fakeRepoManager) Usage(dbx.DBTX) usage.Repository            { return m.usage }

type fakeEnvelopeStore struct {
	objects map[string]*cryptox.Envelope
	err     error
}

func (f *fakeEnvelopeStore) Put(_ context.Context, env *cryptox.Envelope) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	uri := "s3://readings/" + env.Salt
	f.objects[uri] = env
	return uri, nil
}

func (f *fakeEnvelopeStore) Get(_ context.Context, uri string) (*cryptox.Envelope, error) {
	env, ok := f.objects[uri]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return env, nil
}
