package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/logging"
)

// AccessService resolves what the connected identity may do and gates new
// operations.
type AccessService struct {
	ledger       client.LedgerReader
	usage        client.UsageCounter
	minter       client.PassMinter
	policy       entitlement.Policy
	pricing      entitlement.Pricing
	passDuration time.Duration
	logger       logging.Logger
	now          func() time.Time
}

func NewAccessService(l client.LedgerReader, u client.UsageCounter, m client.PassMinter,
	policy entitlement.Policy, pricing entitlement.Pricing, passDuration time.Duration, logger logging.Logger) *AccessService {
	return &AccessService{
		ledger:       l,
		usage:        u,
		minter:       m,
		policy:       policy,
		pricing:      pricing,
		passDuration: passDuration,
		logger:       logger.With("module", "access"),
		now:          time.Now,
	}
}

func (s *AccessService) Policy() entitlement.Policy {
	return s.policy
}

// Resolve fetches ownership records and today's usage concurrently and
// resolves them. A failed records lookup degrades to the FREE tier with
// nothing used. A failed usage lookup alone keeps the records and counts
// zero free readings, so pass holders are never downgraded by it. Failures
// are logged, never returned.
func (s *AccessService) Resolve(ctx context.Context, identity string) entitlement.EffectiveAccess {
	if identity == "" {
		return entitlement.Free(0, s.policy)
	}

	var (
		records            []entitlement.OwnershipRecord
		used               int
		recordsErr, useErr error
	)

	// Lookups run independently so a usage outage cannot cancel the ledger call.
	var g errgroup.Group
	g.Go(func() error {
		records, recordsErr = s.ledger.ListOwnershipRecords(ctx, identity)
		return nil
	})
	g.Go(func() error {
		used, useErr = s.usage.GetTodayCount(ctx, identity)
		return nil
	})
	_ = g.Wait()

	if recordsErr != nil {
		s.logger.Warn(ctx, "ownership lookup failed, using free tier", "identity", identity, "error", recordsErr)
		return entitlement.Free(0, s.policy)
	}
	if useErr != nil {
		s.logger.Warn(ctx, "usage lookup failed, counting zero free readings", "identity", identity, "error", useErr)
		used = 0
	}

	valid := make([]entitlement.OwnershipRecord, 0, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			s.logger.Warn(ctx, "skipping malformed ownership record", "record", r.ID, "error", err)
			continue
		}
		valid = append(valid, r)
	}

	return entitlement.Resolve(valid, used, s.policy, s.now())
}

// CheckOperation reports whether identity may start an operation in scopeID
// without consuming any allowance.
func (s *AccessService) CheckOperation(ctx context.Context, identity, scopeID string) (entitlement.EffectiveAccess, error) {
	if identity == "" {
		return entitlement.Free(0, s.policy), client.ErrNotConnected
	}

	access := s.Resolve(ctx, identity)

	if !entitlement.CanAccessScope(access, scopeID, s.policy) {
		return access, fmt.Errorf("%w: %s", ErrScopeNotCovered, scopeID)
	}
	if !entitlement.CanStartOperation(access) {
		return access, ErrFreeLimitReached
	}
	return access, nil
}

// BeginOperation repeats CheckOperation and, for the FREE tier only,
// consumes one unit of today's allowance. The counter is incremented strictly
// after the check succeeds. A failing increment is logged and the operation
// proceeds.
func (s *AccessService) BeginOperation(ctx context.Context, identity, scopeID string) (entitlement.EffectiveAccess, error) {
	access, err := s.CheckOperation(ctx, identity, scopeID)
	if err != nil {
		return access, err
	}
	if access.Tier != entitlement.TierFree {
		return access, nil
	}

	n, err := s.usage.IncrementToday(ctx, identity)
	if err != nil {
		s.logger.Warn(ctx, "usage increment failed", "identity", identity, "error", err)
		return access, nil
	}
	return entitlement.Free(n, s.policy), nil
}

func (s *AccessService) Describe(access entitlement.EffectiveAccess) string {
	return entitlement.Describe(access)
}

func (s *AccessService) UpgradeOptions(access entitlement.EffectiveAccess) []entitlement.UpgradeOption {
	return entitlement.UpgradeOptions(access, s.pricing, s.passDuration)
}

// PurchasePass mints a pass for the connected identity after checking the
// tier and scope combination locally.
func (s *AccessService) PurchasePass(ctx context.Context, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, string, error) {
	now := s.now()
	candidate := entitlement.OwnershipRecord{Tier: tier, ScopeID: scopeID, IssuedAt: now, ExpiresAt: now.Add(s.passDuration)}
	if err := candidate.Validate(); err != nil {
		return entitlement.OwnershipRecord{}, "", fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	rec, tx, err := s.minter.MintPass(ctx, tier, scopeID)
	if err != nil {
		return entitlement.OwnershipRecord{}, "", fmt.Errorf("mint pass: %w", err)
	}

	s.logger.Info(ctx, "pass purchased", "tier", rec.Tier, "scope", rec.ScopeID, "tx", tx)
	return rec, tx, nil
}
