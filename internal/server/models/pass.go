package models

import "time"

// Pass is a minted ownership record. ScopeID is empty for ALL_SCOPES passes.
type Pass struct {
	ID        string    `db:"id"`
	Owner     string    `db:"owner"`
	Tier      string    `db:"tier"`
	ScopeID   string    `db:"scope_id"`
	IssuedAt  time.Time `db:"issued_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
