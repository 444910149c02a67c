package client

import (
	"context"

	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
)

// LedgerReader lists ownership records. An identity without passes yields an
// empty slice, never an error.
type LedgerReader interface {
	ListOwnershipRecords(ctx context.Context, identity string) ([]entitlement.OwnershipRecord, error)
}

// LedgerPublisher anchors a fingerprint pair together with the envelope URI.
type LedgerPublisher interface {
	PublishFingerprints(ctx context.Context, session, report fingerprint.Fingerprint, uri string) (models.Publication, error)
}

type ProofReader interface {
	GetProof(ctx context.Context, proofID string) (*models.Proof, error)
	ListProofs(ctx context.Context) ([]*models.Proof, error)
}

// PassMinter buys a pass for the connected identity. The second result is
// the ledger's transaction handle.
type PassMinter interface {
	MintPass(ctx context.Context, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, string, error)
}

// BlobStore persists sealed envelopes and returns an opaque URI.
type BlobStore interface {
	Put(ctx context.Context, env *cryptox.Envelope) (string, error)
	Get(ctx context.Context, uri string) (*cryptox.Envelope, error)
}

// UsageCounter counts free operations per identity per UTC day.
type UsageCounter interface {
	GetTodayCount(ctx context.Context, identity string) (int, error)
	IncrementToday(ctx context.Context, identity string) (int, error)
}

type Client interface {
	LedgerReader
	LedgerPublisher
	ProofReader
	PassMinter
	BlobStore
	UsageCounter

	Connect(ctx context.Context, identity string) error
	// Resume restores a session saved from an earlier Connect.
	Resume(identity, accessToken string)
	Session() (identity, accessToken string)
	Ping(ctx context.Context) error
	Close() error
}
