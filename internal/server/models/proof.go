package models

import "time"

// Proof is a published pair of fingerprints pointing at a sealed envelope.
type Proof struct {
	ID          string    `db:"id"`
	Owner       string    `db:"owner"`
	SessionHash string    `db:"session_hash"`
	ReportHash  string    `db:"report_hash"`
	URI         string    `db:"uri"`
	TxHandle    string    `db:"tx_handle"`
	CreatedAt   time.Time `db:"created_at"`
}
