package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

func (a *App) askInputs() (normalize.RawInputs, error) {
	var raw normalize.RawInputs
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name (optional)", &raw.Name},
		{"Date of birth (YYYY-MM-DD)", &raw.DOB},
		{"Time of birth (HH:MM)", &raw.Time},
		{"Place of birth (City, Country)", &raw.Place},
		{"Your question (optional)", &raw.Question},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return raw, err
		}
		*f.dst = v
	}
	return raw, nil
}

// askPassphrase reads a passphrase, twice when confirm is set.
func (a *App) askPassphrase(confirm bool) (string, error) {
	p1, err := getPassword(a.out, "Enter passphrase")
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(p1)

	if len(p1) == 0 {
		return "", fmt.Errorf("%w: passphrase is required", common.ErrValidation)
	}

	if confirm {
		p2, err := getPassword(a.out, "Repeat passphrase")
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(p2)
		if string(p1) != string(p2) {
			return "", fmt.Errorf("%w: passphrases do not match", common.ErrValidation)
		}
	}

	return string(p1), nil
}

// askScope reads the guru a reading is for. Empty input selects the free
// scope.
func (a *App) askScope() (string, error) {
	free := a.access.Policy().FreeScopeID
	scope, err := getSimpleText(a.reader, fmt.Sprintf("Guru (empty for %s)", free), a.out)
	if err != nil {
		return "", err
	}
	if scope == "" {
		return free, nil
	}
	return scope, nil
}

// Read runs a full reading for one guru. Inputs are validated and access is
// checked before generation; the allowance is consumed only once a reading
// exists, right before it is shown. The user may then seal and publish it.
func (a *App) Read(ctx context.Context) error {
	identity := a.session.Identity()
	if identity == "" {
		return a.fail(client.ErrNotConnected)
	}

	scope, err := a.askScope()
	if err != nil {
		return err
	}
	raw, err := a.askInputs()
	if err != nil {
		return err
	}
	if _, err := normalize.Normalize(raw); err != nil {
		return a.fail(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.access.CheckOperation(ctx, identity, scope); err != nil {
		return a.fail(err)
	}

	bundle, err := a.readings.Draft(ctx, scope, raw)
	if err != nil {
		return a.fail(err)
	}

	access, err := a.access.BeginOperation(ctx, identity, scope)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "[%s]\n", bundle.Scope)
	fmt.Fprintln(a.out, bundle.Reading)
	fmt.Fprintln(a.out)
	if bundle.IsFallback {
		fmt.Fprintln(a.out, "(generated offline by the built-in reader)")
	}
	fmt.Fprintf(a.out, "Session fingerprint: %s\n", FormatHash(string(bundle.Hashes.SessionHash)))
	fmt.Fprintf(a.out, "Report fingerprint:  %s\n", FormatHash(string(bundle.Hashes.ReportHash)))
	fmt.Fprintln(a.out, a.access.Describe(access))

	ok, err := Confirm(a.reader, "Seal and publish this reading?", a.out)
	if err != nil || !ok {
		return err
	}

	passphrase, err := a.askPassphrase(true)
	if err != nil {
		return a.fail(err)
	}

	// a fresh deadline; the passphrase prompt may have taken a while
	sctx, scancel := a.withTimeout(context.WithoutCancel(ctx))
	defer scancel()

	rc, err := a.readings.Seal(sctx, identity, bundle, passphrase)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Published proof %s (tx %s)\n", rc.ProofID, rc.TxHandle)
	fmt.Fprintf(a.out, "Sealed envelope: %s\n", rc.URI)
	return nil
}

// Verify opens a sealed reading by proof id and checks it against the
// published fingerprints.
func (a *App) Verify(ctx context.Context) error {
	proofID, err := getSimpleText(a.reader, "Proof id", a.out)
	if err != nil {
		return err
	}
	passphrase, err := a.askPassphrase(false)
	if err != nil {
		return a.fail(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	bundle, res, err := a.readings.Verify(ctx, proofID, passphrase)
	if err != nil {
		return a.fail(err)
	}

	if !res.Authentic {
		fmt.Fprintf(a.out, "NOT AUTHENTIC: %s\n", res.Reason)
		return nil
	}

	fmt.Fprintln(a.out, "Authentic reading")
	if !res.SessionChecked {
		fmt.Fprintln(a.out, "(inputs were not embedded, only the reading text was checked)")
	}
	fmt.Fprintf(a.out, "Generated %s by %s\n", bundle.CreatedAt.Format(common.DayLayout), bundle.Model)
	if bundle.Scope != "" {
		fmt.Fprintf(a.out, "Guru: %s\n", bundle.Scope)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, bundle.Reading)
	return nil
}

// Proof shows the public part of a proof. No passphrase is needed.
func (a *App) Proof(ctx context.Context) error {
	proofID, err := getSimpleText(a.reader, "Proof id", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.readings.VerifyPublic(ctx, proofID)
	if p == nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Proof %s\n", p.ID)
	fmt.Fprintf(a.out, "  owner:   %s\n", MaskAddress(p.Owner))
	fmt.Fprintf(a.out, "  session: %s\n", FormatHash(p.SessionHash))
	fmt.Fprintf(a.out, "  report:  %s\n", FormatHash(p.ReportHash))
	fmt.Fprintf(a.out, "  tx:      %s\n", p.TxHandle)
	fmt.Fprintf(a.out, "  created: %s\n", p.CreatedAt.Format(common.DayLayout))
	if errors.Is(err, common.ErrValidation) {
		fmt.Fprintln(a.out, "  warning: the published fingerprints are malformed")
	}
	return err
}

// List prints the readings sealed from this machine by the connected identity.
func (a *App) List(ctx context.Context) error {
	identity := a.session.Identity()
	if identity == "" {
		return a.fail(client.ErrNotConnected)
	}

	items, err := a.readings.Receipts(ctx, identity)
	if err != nil {
		return a.fail(err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No readings yet")
		return nil
	}

	for _, r := range items {
		note := ""
		if r.IsFallback {
			note = " (offline reader)"
		}
		fmt.Fprintf(a.out, "%s  %s  %s%s\n", r.CreatedAt.Format(common.DayLayout), r.ProofID, FormatHash(r.ReportHash), note)
	}
	return nil
}
