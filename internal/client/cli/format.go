package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/client/services"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

// FormatHash renders a fingerprint for display.
func FormatHash(h string) string {
	return fingerprint.Fingerprint(h).Short()
}

// MaskAddress shortens an identity to "0x1234...abcd". Short values are
// returned unchanged.
func MaskAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// userMessage turns err into a line fit for the terminal.
func userMessage(err error) string {
	var verr *normalize.ValidationError

	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("invalid %s: %s", verr.Field, verr.Message)
	case errors.Is(err, common.ErrDecryption):
		return "wrong passphrase or corrupted data"
	case errors.Is(err, services.ErrFreeLimitReached):
		return "daily free limit reached, type 'access' to see upgrade options"
	case errors.Is(err, services.ErrScopeNotCovered):
		return "your pass does not cover this guru, type 'access' to see upgrade options"
	case errors.Is(err, client.ErrNotConnected):
		return "not connected, type 'connect' first"
	case errors.Is(err, common.ErrorUnauthorized):
		return "session rejected by the server, type 'connect' again"
	case errors.Is(err, common.ErrFetch):
		return "server unavailable, please try again later"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	default:
		return "error: " + err.Error()
	}
}
