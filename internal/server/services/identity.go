// Package services contains server-side business logic: identity tokens,
// the pass and proof ledger, free-usage counting and envelope storage.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/server/auth"
)

var identityPattern = regexp.MustCompile(`^0x[0-9a-f]{1,64}$`)

// NormalizeIdentity lower-cases a ledger address and checks its shape.
func NormalizeIdentity(identity string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(identity))
	if !identityPattern.MatchString(id) {
		return "", fmt.Errorf("%w: malformed identity %q", common.ErrValidation, identity)
	}
	return id, nil
}

// IdentityService issues access tokens bound to a ledger identity.
type IdentityService struct {
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewIdentityService(secretKey string, validity time.Duration) *IdentityService {
	return &IdentityService{jwtSecret: []byte(secretKey), accessTokenValidityDuration: validity}
}

// Connect returns an access token for identity.
func (s *IdentityService) Connect(_ context.Context, identity string) (string, error) {
	id, err := NormalizeIdentity(identity)
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(id, s.jwtSecret, s.accessTokenValidityDuration)
}
