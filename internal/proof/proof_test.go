package proof

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

var (
	inputs = normalize.NormalizedInputs{DOB: "2024-01-05", Time: "09:30", Place: "paris, FR"}
	at     = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func TestNewBundle(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.\n", "gpt-4o-mini", false, at)

	assert.Equal(t, BundleVersion, b.Version)
	assert.Equal(t, fingerprint.Session(inputs), b.Hashes.SessionHash)
	assert.Equal(t, fingerprint.Fingerprint("b3a5d0e68e799deb5658959f71f9cb56470cf9b836cda247abbcc0e3b3c5ee8e"), b.Hashes.ReportHash)
	require.NotNil(t, b.NormalizedInputs)
	assert.Equal(t, inputs, *b.NormalizedInputs)
}

func TestBundle_JSONLayout(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "deterministic", true, at)

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"version", "createdAt", "model", "normalizedInputs", "reading", "hashes", "isFallback"} {
		assert.Contains(t, m, key)
	}

	var hashes map[string]string
	require.NoError(t, json.Unmarshal(m["hashes"], &hashes))
	assert.Contains(t, hashes, "session_hash")
	assert.Contains(t, hashes, "report_hash")
}

func TestBundle_ScopeOmittedWhenEmpty(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "m", false, at)
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"scope"`)

	b.Scope = "vedic-sage"
	data, err = json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scope":"vedic-sage"`)
}

func TestVerify_Authentic(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "m", false, at)

	got := Verify(b, b.Hashes.SessionHash, b.Hashes.ReportHash)
	assert.True(t, got.Authentic)
	assert.True(t, got.SessionChecked)
	assert.Empty(t, got.Reason)
}

func TestVerify_SurroundingWhitespaceIgnored(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.  \n", "m", false, at)
	published := b.Hashes.ReportHash

	b.Reading = "Trust the timing."
	assert.True(t, Verify(b, b.Hashes.SessionHash, published).Authentic)
}

func TestVerify_WordChangeDetected(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "m", false, at)
	published := b.Hashes.ReportHash

	b.Reading = "Trust the moment."
	got := Verify(b, b.Hashes.SessionHash, published)
	assert.False(t, got.Authentic)
	assert.NotEmpty(t, got.Reason)
}

func TestVerify_InputsTampered(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "m", false, at)
	session := b.Hashes.SessionHash

	b.NormalizedInputs.Place = "lyon, FR"
	got := Verify(b, session, b.Hashes.ReportHash)
	assert.False(t, got.Authentic)
	assert.True(t, got.SessionChecked)
}

func TestVerify_WithoutInputsChecksReportOnly(t *testing.T) {
	b := NewBundle(inputs, "Trust the timing.", "m", false, at)
	b.NormalizedInputs = nil

	got := Verify(b, "unrelated", b.Hashes.ReportHash)
	assert.True(t, got.Authentic)
	assert.False(t, got.SessionChecked)
}

func TestVerify_NilBundle(t *testing.T) {
	assert.False(t, Verify(nil, "", "").Authentic)
}
