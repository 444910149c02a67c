package proof

import (
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
)

// VerificationResult is the outcome of Verify. Reason is set when the
// bundle is not authentic.
type VerificationResult struct {
	Authentic      bool
	SessionChecked bool
	Reason         string
}

// Verify recomputes the fingerprints of bundle and compares them with the
// published ones. The session fingerprint is only checked when the bundle
// embeds normalized inputs. A mismatch is a result, not an error.
func Verify(bundle *ReadingBundle, session, report fingerprint.Fingerprint) VerificationResult {
	if bundle == nil {
		return VerificationResult{Reason: "empty bundle"}
	}

	if got := fingerprint.Report(bundle.Reading); got != report {
		return VerificationResult{Reason: "reading does not match the published report fingerprint"}
	}

	if bundle.NormalizedInputs == nil {
		return VerificationResult{Authentic: true}
	}

	if got := fingerprint.Session(*bundle.NormalizedInputs); got != session {
		return VerificationResult{
			SessionChecked: true,
			Reason:         "inputs do not match the published session fingerprint",
		}
	}

	return VerificationResult{Authentic: true, SessionChecked: true}
}
