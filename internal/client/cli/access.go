package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
)

// Access prints the current tier and what can be bought on top of it.
func (a *App) Access(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	access := a.access.Resolve(ctx, a.session.Identity())
	fmt.Fprintln(a.out, a.access.Describe(access))

	for _, o := range a.access.UpgradeOptions(access) {
		fmt.Fprintf(a.out, "  %-10s %s: %s (%s)\n", o.Tier, o.Title, o.Description, o.Price)
	}
	return nil
}

// Buy mints a pass for the connected identity.
func (a *App) Buy(ctx context.Context) error {
	if !a.isConnected() {
		return a.fail(client.ErrNotConnected)
	}

	s, err := getSimpleText(a.reader, fmt.Sprintf("Tier (%s or %s)", entitlement.TierOneScope, entitlement.TierAllScopes), a.out)
	if err != nil {
		return err
	}
	tier, err := entitlement.ParseTier(s)
	if err != nil {
		return a.fail(fmt.Errorf("%w: %v", common.ErrValidation, err))
	}

	scope := ""
	if tier == entitlement.TierOneScope {
		if scope, err = getSimpleText(a.reader, "Guru id", a.out); err != nil {
			return err
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rec, tx, err := a.access.PurchasePass(ctx, tier, scope)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Pass %s bought, valid until %s (tx %s)\n", rec.Tier, rec.ExpiresAt.Format("2006-01-02 15:04 MST"), tx)
	return nil
}
