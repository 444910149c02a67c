package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
)

// EnvelopeStore is where sealed envelopes live.
type EnvelopeStore interface {
	Put(ctx context.Context, env *cryptox.Envelope) (string, error)
	Get(ctx context.Context, uri string) (*cryptox.Envelope, error)
}

// BlobService stores envelopes after a shape check. It never sees
// plaintext.
type BlobService struct {
	store EnvelopeStore
}

func NewBlobService(store EnvelopeStore) *BlobService {
	return &BlobService{store: store}
}

func checkEnvelope(env *cryptox.Envelope) error {
	switch {
	case env == nil:
		return fmt.Errorf("%w: empty envelope", common.ErrValidation)
	case env.Ciphertext == "" || env.IV == "" || env.Salt == "":
		return fmt.Errorf("%w: incomplete envelope", common.ErrValidation)
	case env.Algorithm != cryptox.AlgorithmAESGCM:
		return fmt.Errorf("%w: unsupported algorithm %q", common.ErrValidation, env.Algorithm)
	}
	return nil
}

func (s *BlobService) Put(ctx context.Context, env *cryptox.Envelope) (string, error) {
	if err := checkEnvelope(env); err != nil {
		return "", err
	}
	return s.store.Put(ctx, env)
}

func (s *BlobService) Get(ctx context.Context, uri string) (*cryptox.Envelope, error) {
	return s.store.Get(ctx, uri)
}
