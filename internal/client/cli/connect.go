package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Connect asks for an identity and opens a session for it.
func (a *App) Connect(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter wallet address", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.session.Connect(ctx, identity); err != nil {
		return a.fail(err)
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Connected as %s\n", MaskAddress(a.session.Identity()))
	return nil
}

// Disconnect forgets the saved session.
func (a *App) Disconnect(ctx context.Context) error {
	if err := a.session.Disconnect(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Disconnected")
	return nil
}
