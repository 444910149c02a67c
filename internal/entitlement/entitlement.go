// Package entitlement resolves the access tier a caller holds from their
// time-boxed ownership records and today's free usage.
package entitlement

import (
	"fmt"
	"time"
)

// Tier is an access level.
type Tier string

const (
	TierFree      Tier = "FREE"
	TierOneScope  Tier = "ONE_SCOPE"
	TierAllScopes Tier = "ALL_SCOPES"
)

// ParseTier validates a tier name coming from the wire or the ledger.
// Only pass tiers are accepted; FREE is never minted.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case TierOneScope, TierAllScopes:
		return t, nil
	default:
		return "", fmt.Errorf("unknown pass tier %q", s)
	}
}

// OwnershipRecord is a pass held by one identity. Records are never mutated;
// they stop counting once ExpiresAt is not after now.
type OwnershipRecord struct {
	ID        string    `json:"id,omitempty"`
	Tier      Tier      `json:"tier"`
	ScopeID   string    `json:"scope_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate checks that ScopeID is set exactly when the tier needs one.
func (r OwnershipRecord) Validate() error {
	switch r.Tier {
	case TierOneScope:
		if r.ScopeID == "" {
			return fmt.Errorf("%s pass requires a scope", r.Tier)
		}
	case TierAllScopes:
		if r.ScopeID != "" {
			return fmt.Errorf("%s pass must not carry a scope", r.Tier)
		}
	default:
		return fmt.Errorf("unknown pass tier %q", r.Tier)
	}
	if !r.ExpiresAt.After(r.IssuedAt) {
		return fmt.Errorf("pass expires before it is issued")
	}
	return nil
}

// Active reports whether r is still valid at now. A record expiring exactly
// at now is already expired.
func (r OwnershipRecord) Active(now time.Time) bool {
	return r.ExpiresAt.After(now)
}

// Policy carries the externally configured inputs of the resolver.
type Policy struct {
	// DailyFreeLimit is the number of free operations per identity per day.
	DailyFreeLimit int
	// FreeScopeID names the scope every tier may use.
	FreeScopeID string
}

// EffectiveAccess is the resolved, never persisted view of a caller's rights.
type EffectiveAccess struct {
	Tier          Tier       `json:"tier"`
	ScopeID       string     `json:"scope_id,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	FreeUsed      int        `json:"free_used"`
	FreeRemaining int        `json:"free_remaining"`
}

// Resolve computes the effective access at now.
//
// Among active records an ALL_SCOPES pass always wins and reports the latest
// expiry among ALL_SCOPES passes. Otherwise the ONE_SCOPE pass with the latest
// expiry wins, ties going to the most recently issued. Without any active pass
// the caller is FREE with the remaining daily allowance.
func Resolve(records []OwnershipRecord, freeUsed int, policy Policy, now time.Time) EffectiveAccess {
	var all, one *OwnershipRecord

	for i := range records {
		r := &records[i]
		if !r.Active(now) {
			continue
		}

		switch r.Tier {
		case TierAllScopes:
			if all == nil || r.ExpiresAt.After(all.ExpiresAt) {
				all = r
			}
		case TierOneScope:
			if one == nil || laterOneScope(r, one) {
				one = r
			}
		}
	}

	if all != nil {
		exp := all.ExpiresAt
		return EffectiveAccess{Tier: TierAllScopes, ExpiresAt: &exp}
	}

	if one != nil {
		exp := one.ExpiresAt
		return EffectiveAccess{Tier: TierOneScope, ScopeID: one.ScopeID, ExpiresAt: &exp}
	}

	return Free(freeUsed, policy)
}

func laterOneScope(candidate, current *OwnershipRecord) bool {
	if !candidate.ExpiresAt.Equal(current.ExpiresAt) {
		return candidate.ExpiresAt.After(current.ExpiresAt)
	}
	return candidate.IssuedAt.After(current.IssuedAt)
}

// Free is the FREE tier with freeUsed operations already consumed today.
func Free(freeUsed int, policy Policy) EffectiveAccess {
	if freeUsed < 0 {
		freeUsed = 0
	}
	return EffectiveAccess{
		Tier:          TierFree,
		FreeUsed:      freeUsed,
		FreeRemaining: max(0, policy.DailyFreeLimit-freeUsed),
	}
}

// CanAccessScope reports whether access allows talking to scopeID.
func CanAccessScope(access EffectiveAccess, scopeID string, policy Policy) bool {
	switch access.Tier {
	case TierAllScopes:
		return true
	case TierOneScope:
		return scopeID == access.ScopeID || scopeID == policy.FreeScopeID
	case TierFree:
		return scopeID == policy.FreeScopeID
	default:
		return false
	}
}

// CanStartOperation reports whether access allows starting a new operation.
func CanStartOperation(access EffectiveAccess) bool {
	switch access.Tier {
	case TierAllScopes, TierOneScope:
		return true
	case TierFree:
		return access.FreeRemaining > 0
	default:
		return false
	}
}
