// Package metadata keeps small client-side settings, such as the connected
// identity and its access token, in the local database.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyIdentity    = "identity"
	KeyAccessToken = "access_token"
)

// Repository is a string key/value store. Get returns ("", false, nil) for
// an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
