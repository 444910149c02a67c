// Package fingerprint computes content digests that stand in for reading
// requests and reading bodies on the public ledger.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

// Fingerprint is a lowercase hex SHA-256 digest.
type Fingerprint string

// Size is the length of a Fingerprint in hex characters.
const Size = sha256.Size * 2

func sum(s string) Fingerprint {
	h := sha256.Sum256([]byte(s))
	return Fingerprint(hex.EncodeToString(h[:]))
}

// Session fingerprints normalized inputs over their stable serialization.
func Session(in normalize.NormalizedInputs) Fingerprint {
	return sum(normalize.StableString(in))
}

// Report fingerprints a reading body. Surrounding whitespace, as
// normalize.IsSpace defines it, is ignored.
func Report(text string) Fingerprint {
	return sum(normalize.TrimSpace(text))
}

// Valid reports whether f looks like a Fingerprint.
func (f Fingerprint) Valid() bool {
	if len(f) != Size {
		return false
	}
	for _, c := range f {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Short renders f as "abcd1234...wxyz7890" for display.
func (f Fingerprint) Short() string {
	if len(f) <= 16 {
		return string(f)
	}
	return string(f[:8]) + "..." + string(f[len(f)-8:])
}

func (f Fingerprint) String() string {
	return string(f)
}
