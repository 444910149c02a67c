// Package services contains application services for the AstroProof client:
// session handling, access resolution and the reading lifecycle (draft,
// seal, publish, verify).
package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/common"
)

var (
	ErrScopeNotCovered  = fmt.Errorf("scope not covered by current access: %w", common.ErrorUnauthorized)
	ErrFreeLimitReached = fmt.Errorf("daily free limit reached: %w", common.ErrorUnauthorized)
	ErrNoSession        = errors.New("no saved session")
)
