package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
)

type fakeLedger struct {
	mu      sync.Mutex
	records []entitlement.OwnershipRecord
	listErr error
	proofs  map[string]*models.Proof
	pubErr  error
	mintErr error
	minted  []entitlement.OwnershipRecord
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{proofs: map[string]*models.Proof{}}
}

func (f *fakeLedger) ListOwnershipRecords(_ context.Context, _ string) ([]entitlement.OwnershipRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeLedger) PublishFingerprints(_ context.Context, session, report fingerprint.Fingerprint, uri string) (models.Publication, error) {
	if f.pubErr != nil {
		return models.Publication{}, f.pubErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("proof-%d", len(f.proofs)+1)
	f.proofs[id] = &models.Proof{
		ID:          id,
		Owner:       "0xabc",
		SessionHash: string(session),
		ReportHash:  string(report),
		URI:         uri,
		TxHandle:    "ledger:" + id,
	}
	return models.Publication{ProofID: id, TxHandle: "ledger:" + id}, nil
}

func (f *fakeLedger) GetProof(_ context.Context, id string) (*models.Proof, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proofs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeLedger) ListProofs(_ context.Context) ([]*models.Proof, error) {
	out := make([]*models.Proof, 0, len(f.proofs))
	for _, p := range f.proofs {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeLedger) MintPass(_ context.Context, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, string, error) {
	if f.mintErr != nil {
		return entitlement.OwnershipRecord{}, "", f.mintErr
	}
	r := entitlement.OwnershipRecord{ID: "pass-1", Tier: tier, ScopeID: scopeID}
	f.minted = append(f.minted, r)
	return r, "ledger:pass-1", nil
}

type fakeUsage struct {
	mu       sync.Mutex
	count    int
	getErr   error
	incErr   error
	incCalls int
}

func (f *fakeUsage) GetTodayCount(_ context.Context, _ string) (int, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, nil
}

func (f *fakeUsage) IncrementToday(_ context.Context, _ string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incCalls++
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.count++
	return f.count, nil
}

type fakeBlobs struct {
	mu     sync.Mutex
	items  map[string]*cryptox.Envelope
	putErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{items: map[string]*cryptox.Envelope{}}
}

func (f *fakeBlobs) Put(_ context.Context, env *cryptox.Envelope) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	uri := fmt.Sprintf("s3://bucket/%d.json", len(f.items)+1)
	f.items[uri] = env
	return uri, nil
}

func (f *fakeBlobs) Get(_ context.Context, uri string) (*cryptox.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	env, ok := f.items[uri]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return env, nil
}

type fakeReceipts struct {
	saved   []*models.Receipt
	saveErr error
}

func (f *fakeReceipts) Save(_ context.Context, r *models.Receipt) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeReceipts) Get(_ context.Context, id string) (*models.Receipt, error) {
	for _, r := range f.saved {
		if r.ProofID == id {
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeReceipts) ListByOwner(_ context.Context, owner string) ([]*models.Receipt, error) {
	out := []*models.Receipt{}
	for _, r := range f.saved {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSessionClient struct {
	connectErr error
	pingErr    error
	closed     bool
	identity   string
	token      string
}

func (f *fakeSessionClient) Connect(_ context.Context, identity string) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.identity = identity
	f.token = "token-for-" + identity
	return nil
}

func (f *fakeSessionClient) Resume(identity, token string) {
	f.identity = identity
	f.token = token
}

func (f *fakeSessionClient) Session() (string, string) {
	return f.identity, f.token
}

func (f *fakeSessionClient) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeSessionClient) Close() error {
	f.closed = true
	return nil
}
