// Package models defines client-side data models used by the AstroProof CLI.
package models

import "time"

// Proof is a published fingerprint pair as the ledger reports it.
type Proof struct {
	ID          string
	Owner       string
	SessionHash string
	ReportHash  string
	URI         string
	TxHandle    string
	CreatedAt   time.Time
}

// Publication is the ledger's acknowledgement of a publish call.
type Publication struct {
	ProofID  string
	TxHandle string
}

// Receipt is the local record of a reading this client sealed.
type Receipt struct {
	ProofID     string
	Owner       string
	URI         string
	SessionHash string
	ReportHash  string
	TxHandle    string
	Model       string
	IsFallback  bool
	CreatedAt   time.Time
}
