package entitlement

import (
	"fmt"
	"time"
)

// Pricing lists pass prices as display strings in the ledger currency.
type Pricing struct {
	OneScope  string
	AllScopes string
	Currency  string
}

// UpgradeOption is a pass the caller could buy to improve their access.
type UpgradeOption struct {
	Tier        Tier
	Title       string
	Description string
	Price       string
}

// Describe renders access as a one-line human summary.
func Describe(access EffectiveAccess) string {
	switch access.Tier {
	case TierAllScopes:
		return fmt.Sprintf("Unlimited access to all gurus until %s", formatExpiry(access.ExpiresAt))
	case TierOneScope:
		return fmt.Sprintf("Unlimited access to %s until %s", access.ScopeID, formatExpiry(access.ExpiresAt))
	case TierFree:
		return fmt.Sprintf("%d free chats remaining today", access.FreeRemaining)
	default:
		return "No access"
	}
}

func formatExpiry(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}

// UpgradeOptions lists the passes that would raise access, cheapest first.
// FREE callers may buy either pass, ONE_SCOPE callers only ALL_SCOPES,
// ALL_SCOPES callers nothing.
func UpgradeOptions(access EffectiveAccess, pricing Pricing, passDuration time.Duration) []UpgradeOption {
	hours := int(passDuration.Hours())
	var options []UpgradeOption

	if access.Tier == TierFree {
		options = append(options, UpgradeOption{
			Tier:        TierOneScope,
			Title:       "One Guru Day Pass",
			Description: fmt.Sprintf("Unlimited chats with one chosen guru for %d hours", hours),
			Price:       pricing.OneScope + " " + pricing.Currency,
		})
	}

	if access.Tier != TierAllScopes {
		options = append(options, UpgradeOption{
			Tier:        TierAllScopes,
			Title:       "All Gurus Day Pass",
			Description: fmt.Sprintf("Unlimited chats with any guru for %d hours", hours),
			Price:       pricing.AllScopes + " " + pricing.Currency,
		})
	}

	return options
}
