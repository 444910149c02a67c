package client

import (
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/common"
)

var (
	ErrUnavailable  = fmt.Errorf("server unavailable: %w", common.ErrFetch)
	ErrUnauthorized = fmt.Errorf("unauthorized: %w", common.ErrorUnauthorized)
	ErrNotConnected = fmt.Errorf("not connected: %w", common.ErrorUnauthorized)
)
