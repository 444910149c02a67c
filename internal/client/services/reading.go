package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/client/repositories/receipts"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
	"github.com/dmitrijs2005/astroproof/internal/proof"
	"github.com/dmitrijs2005/astroproof/internal/textgen"
)

// ReadingService runs a reading from raw inputs to a published, sealed
// bundle, and verifies bundles against their published fingerprints.
type ReadingService struct {
	generator textgen.Generator
	cipher    *cryptox.Cipher
	blobs     client.BlobStore
	publisher client.LedgerPublisher
	proofs    client.ProofReader
	receipts  receipts.Repository
	logger    logging.Logger
	now       func() time.Time
}

func NewReadingService(g textgen.Generator, c *cryptox.Cipher, b client.BlobStore, p client.LedgerPublisher,
	pr client.ProofReader, r receipts.Repository, logger logging.Logger) *ReadingService {
	return &ReadingService{
		generator: g,
		cipher:    c,
		blobs:     b,
		publisher: p,
		proofs:    pr,
		receipts:  r,
		logger:    logger.With("module", "reading"),
		now:       time.Now,
	}
}

// Draft normalizes raw, generates the reading in the voice of the guru
// serving scope and fingerprints both. Nothing leaves the process.
func (s *ReadingService) Draft(ctx context.Context, scope string, raw normalize.RawInputs) (*proof.ReadingBundle, error) {
	in, err := normalize.Normalize(raw)
	if err != nil {
		return nil, err
	}

	gen, err := s.generator.Generate(ctx, textgen.ReadingPrompt(in).WithScope(scope))
	if err != nil {
		return nil, fmt.Errorf("generate reading: %w", err)
	}

	bundle := proof.NewBundle(in, gen.Text, gen.Model, gen.IsFallback, s.now())
	bundle.Scope = scope
	return bundle, nil
}

// Seal encrypts bundle under passphrase, stores the envelope and publishes
// the fingerprints with the envelope URI. A receipt is kept locally; failing
// to write it does not undo the publication.
func (s *ReadingService) Seal(ctx context.Context, owner string, bundle *proof.ReadingBundle, passphrase string) (*models.Receipt, error) {
	if bundle == nil {
		return nil, fmt.Errorf("%w: empty bundle", common.ErrValidation)
	}
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase is required", common.ErrValidation)
	}

	env, err := s.cipher.Encrypt(bundle, passphrase)
	if err != nil {
		return nil, fmt.Errorf("encrypt bundle: %w", err)
	}

	uri, err := s.blobs.Put(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("store envelope: %w", err)
	}

	pub, err := s.publisher.PublishFingerprints(ctx, bundle.Hashes.SessionHash, bundle.Hashes.ReportHash, uri)
	if err != nil {
		return nil, fmt.Errorf("publish fingerprints: %w", err)
	}

	rc := &models.Receipt{
		ProofID:     pub.ProofID,
		Owner:       owner,
		URI:         uri,
		SessionHash: string(bundle.Hashes.SessionHash),
		ReportHash:  string(bundle.Hashes.ReportHash),
		TxHandle:    pub.TxHandle,
		Model:       bundle.Model,
		IsFallback:  bundle.IsFallback,
		CreatedAt:   bundle.CreatedAt,
	}
	if err := s.receipts.Save(ctx, rc); err != nil {
		s.logger.Warn(ctx, "failed to save receipt", "proof_id", rc.ProofID, "error", err)
	}

	s.logger.Info(ctx, "reading sealed", "proof_id", rc.ProofID, "tx", rc.TxHandle)
	return rc, nil
}

// Verify fetches the proof and its envelope, opens the envelope with
// passphrase and checks the bundle against the published fingerprints.
// A wrong passphrase is common.ErrDecryption; a mismatch is a result.
func (s *ReadingService) Verify(ctx context.Context, proofID, passphrase string) (*proof.ReadingBundle, proof.VerificationResult, error) {
	p, err := s.proofs.GetProof(ctx, proofID)
	if err != nil {
		return nil, proof.VerificationResult{}, fmt.Errorf("get proof: %w", err)
	}

	env, err := s.blobs.Get(ctx, p.URI)
	if err != nil {
		return nil, proof.VerificationResult{}, fmt.Errorf("get envelope: %w", err)
	}

	var bundle proof.ReadingBundle
	if err := cryptox.DecryptInto(env, passphrase, &bundle); err != nil {
		return nil, proof.VerificationResult{}, err
	}

	res := proof.Verify(&bundle, fingerprint.Fingerprint(p.SessionHash), fingerprint.Fingerprint(p.ReportHash))
	return &bundle, res, nil
}

// VerifyPublic returns what anyone may see of a proof: its fingerprints,
// owner and timestamps. Fingerprints that are not well formed are reported
// as a validation error alongside the proof.
func (s *ReadingService) VerifyPublic(ctx context.Context, proofID string) (*models.Proof, error) {
	p, err := s.proofs.GetProof(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("get proof: %w", err)
	}

	if !fingerprint.Fingerprint(p.SessionHash).Valid() || !fingerprint.Fingerprint(p.ReportHash).Valid() {
		return p, fmt.Errorf("%w: malformed fingerprint on proof %s", common.ErrValidation, proofID)
	}
	return p, nil
}

// Receipts lists locally saved receipts of owner, newest first.
func (s *ReadingService) Receipts(ctx context.Context, owner string) ([]*models.Receipt, error) {
	return s.receipts.ListByOwner(ctx, owner)
}
