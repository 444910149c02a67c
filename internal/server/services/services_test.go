package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/server/auth"
)

func TestNormalizeIdentity(t *testing.T) {
	id, err := NormalizeIdentity("  0xABCdef01 ")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef01", id)

	for _, bad := range []string{"", "abc", "0x", "0xzz", "0x" + strings.Repeat("a", 65)} {
		_, err := NormalizeIdentity(bad)
		assert.ErrorIs(t, err, common.ErrValidation, bad)
	}
}

func TestIdentityService_Connect(t *testing.T) {
	svc := NewIdentityService("k", time.Hour)

	tok, err := svc.Connect(context.Background(), "0xABC")
	require.NoError(t, err)

	id, err := auth.GetIdentityFromToken(tok, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "0xabc", id)

	_, err = svc.Connect(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUsageService_KeysByUTCDay(t *testing.T) {
	orig := now
	t.Cleanup(func() { now = orig })

	repo := &fakeUsageRepo{counts: map[string]int{}}
	svc := NewUsageService(repo)
	ctx := context.Background()

	now = func() time.Time { return time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC) }
	day, count, err := svc.Increment(ctx, "0xa")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", day)
	assert.Equal(t, 1, count)

	_, count, err = svc.Increment(ctx, "0xa")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	now = func() time.Time { return time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC) }
	day, count, err = svc.Today(ctx, "0xa")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", day)
	assert.Zero(t, count)
}

func TestUsageService_Errors(t *testing.T) {
	svc := NewUsageService(&fakeUsageRepo{counts: map[string]int{}, err: errors.New("redis down")})

	_, _, err := svc.Today(context.Background(), "0xa")
	assert.Error(t, err)
	_, _, err = svc.Increment(context.Background(), "0xa")
	assert.Error(t, err)
}

func TestBlobService(t *testing.T) {
	store := &fakeEnvelopeStore{objects: map[string]*cryptox.Envelope{}}
	svc := NewBlobService(store)
	ctx := context.Background()

	env := &cryptox.Envelope{Ciphertext: "c", IV: "i", Salt: "s", Algorithm: cryptox.AlgorithmAESGCM, Version: 1}
	uri, err := svc.Put(ctx, env)
	require.NoError(t, err)

	got, err := svc.Get(ctx, uri)
	require.NoError(t, err)
	assert.Equal(t, env, got)

	_, err = svc.Get(ctx, "s3://readings/missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestBlobService_RejectsMalformed(t *testing.T) {
	svc := NewBlobService(&fakeEnvelopeStore{objects: map[string]*cryptox.Envelope{}})

	for _, env := range []*cryptox.Envelope{
		nil,
		{IV: "i", Salt: "s", Algorithm: cryptox.AlgorithmAESGCM},
		{Ciphertext: "c", IV: "i", Salt: "s", Algorithm: "AES-CBC"},
	} {
		_, err := svc.Put(context.Background(), env)
		assert.ErrorIs(t, err, common.ErrValidation)
	}
}
