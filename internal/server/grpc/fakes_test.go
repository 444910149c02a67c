package grpc

import (
	"context"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type fakeIdentity struct {
	token string
	err   error
}

func (f *fakeIdentity) Connect(_ context.Context, _ string) (string, error) {
	return f.token, f.err
}

type fakeLedger struct {
	records   []entitlement.OwnershipRecord
	minted    entitlement.OwnershipRecord
	proof     *models.Proof
	proofs    []*models.Proof
	err       error
	lastOwner string
	lastTier  entitlement.Tier
	lastScope string
}

func (f *fakeLedger) ListOwnershipRecords(_ context.Context, owner string) ([]entitlement.OwnershipRecord, error) {
	f.lastOwner = owner
	return f.records, f.err
}

func (f *fakeLedger) MintPass(_ context.Context, owner string, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, error) {
	f.lastOwner, f.lastTier, f.lastScope = owner, tier, scopeID
	return f.minted, f.err
}

func (f *fakeLedger) PublishFingerprints(_ context.Context, owner string, _, _ fingerprint.Fingerprint, _ string) (*models.Proof, error) {
	f.lastOwner = owner
	return f.proof, f.err
}

func (f *fakeLedger) GetProof(_ context.Context, id string) (*models.Proof, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.proof == nil || f.proof.ID != id {
		return nil, common.ErrorNotFound
	}
	return f.proof, nil
}

func (f *fakeLedger) ListProofs(_ context.Context, owner string) ([]*models.Proof, error) {
	f.lastOwner = owner
	return f.proofs, f.err
}

type fakeUsage struct {
	counts map[string]int
	err    error
}

func (f *fakeUsage) Today(_ context.Context, identity string) (string, int, error) {
	return "2025-06-01", f.counts[identity], f.err
}

func (f *fakeUsage) Increment(_ context.Context, identity string) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[identity]++
	return "2025-06-01", f.counts[identity], nil
}

type fakeBlobs struct {
	stored map[string]*cryptox.Envelope
	err    error
}

func (f *fakeBlobs) Put(_ context.Context, env *cryptox.Envelope) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if env == nil {
		return "", common.ErrValidation
	}
	if f.stored == nil {
		f.stored = map[string]*cryptox.Envelope{}
	}
	uri := "s3://readings/envelopes/test.json"
	f.stored[uri] = env
	return uri, nil
}

func (f *fakeBlobs) Get(_ context.Context, uri string) (*cryptox.Envelope, error) {
	if f.err != nil {
		return nil, f.err
	}
	env, ok := f.stored[uri]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return env, nil
}

type fixture struct {
	identity *fakeIdentity
	ledger   *fakeLedger
	usage    *fakeUsage
	blobs    *fakeBlobs
}

func newTestServer(secret string) (*GRPCServer, *fixture) {
	f := &fixture{
		identity: &fakeIdentity{},
		ledger:   &fakeLedger{},
		usage:    &fakeUsage{},
		blobs:    &fakeBlobs{},
	}
	s := NewGRPCServer("bufnet", logging.NewNop(), f.identity, f.ledger, f.usage, f.blobs, secret)
	return s, f
}
