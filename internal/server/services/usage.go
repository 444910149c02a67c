package services

import (
	"context"

	"github.com/dmitrijs2005/astroproof/internal/server/repositories/usage"
	"github.com/dmitrijs2005/astroproof/internal/timex"
)

// UsageService counts free operations per identity and UTC day.
type UsageService struct {
	repo usage.Repository
}

func NewUsageService(repo usage.Repository) *UsageService {
	return &UsageService{repo: repo}
}

// Today returns the current UTC day and the count recorded for it.
func (s *UsageService) Today(ctx context.Context, identity string) (string, int, error) {
	t := now()
	count, err := s.repo.Get(ctx, identity, t)
	if err != nil {
		return "", 0, err
	}
	return timex.Day(t), count, nil
}

// Increment adds one to today's count and returns the new value.
func (s *UsageService) Increment(ctx context.Context, identity string) (string, int, error) {
	t := now()
	count, err := s.repo.Increment(ctx, identity, t)
	if err != nil {
		return "", 0, err
	}
	return timex.Day(t), count, nil
}
