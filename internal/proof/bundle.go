// Package proof assembles reading bundles and checks them against the
// fingerprints published for them.
package proof

import (
	"time"

	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

// BundleVersion is the layout version written into new bundles.
const BundleVersion = "1.0"

// Hashes carries the two fingerprints of a reading.
type Hashes struct {
	SessionHash fingerprint.Fingerprint `json:"session_hash"`
	ReportHash  fingerprint.Fingerprint `json:"report_hash"`
}

// ReadingBundle is the payload that gets sealed into an envelope.
type ReadingBundle struct {
	Version          string                      `json:"version"`
	CreatedAt        time.Time                   `json:"createdAt"`
	Model            string                      `json:"model"`
	NormalizedInputs *normalize.NormalizedInputs `json:"normalizedInputs,omitempty"`
	Reading          string                      `json:"reading"`
	Hashes           Hashes                      `json:"hashes"`
	IsFallback       bool                        `json:"isFallback"`
	Scope            string                      `json:"scope,omitempty"`
}

// NewBundle fingerprints in and reading and packs them with generation
// metadata.
func NewBundle(in normalize.NormalizedInputs, reading, model string, isFallback bool, createdAt time.Time) *ReadingBundle {
	return &ReadingBundle{
		Version:          BundleVersion,
		CreatedAt:        createdAt.UTC(),
		Model:            model,
		NormalizedInputs: &in,
		Reading:          reading,
		Hashes: Hashes{
			SessionHash: fingerprint.Session(in),
			ReportHash:  fingerprint.Report(reading),
		},
		IsFallback: isFallback,
	}
}
