package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	exp := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "Unlimited access to all gurus until 2025-06-02 09:30 UTC",
		Describe(EffectiveAccess{Tier: TierAllScopes, ExpiresAt: &exp}))
	assert.Equal(t, "Unlimited access to vedic-sage until 2025-06-02 09:30 UTC",
		Describe(EffectiveAccess{Tier: TierOneScope, ScopeID: "vedic-sage", ExpiresAt: &exp}))
	assert.Equal(t, "2 free chats remaining today",
		Describe(EffectiveAccess{Tier: TierFree, FreeUsed: 1, FreeRemaining: 2}))
	assert.Equal(t, "No access", Describe(EffectiveAccess{}))
}

func TestUpgradeOptions(t *testing.T) {
	pricing := Pricing{OneScope: "0.20", AllScopes: "0.50", Currency: "APT"}

	free := UpgradeOptions(EffectiveAccess{Tier: TierFree}, pricing, 24*time.Hour)
	require.Len(t, free, 2)
	assert.Equal(t, TierOneScope, free[0].Tier)
	assert.Equal(t, "0.20 APT", free[0].Price)
	assert.Contains(t, free[0].Description, "24 hours")
	assert.Equal(t, TierAllScopes, free[1].Tier)
	assert.Equal(t, "0.50 APT", free[1].Price)

	one := UpgradeOptions(EffectiveAccess{Tier: TierOneScope, ScopeID: "x"}, pricing, 24*time.Hour)
	require.Len(t, one, 1)
	assert.Equal(t, TierAllScopes, one[0].Tier)

	assert.Empty(t, UpgradeOptions(EffectiveAccess{Tier: TierAllScopes}, pricing, 24*time.Hour))
}
