package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	pb "github.com/dmitrijs2005/astroproof/internal/proto"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

const owner = "0xabc"

func withIdentity(id string) context.Context {
	return context.WithValue(context.Background(), identityKey, id)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", code)
	}
	if st, _ := status.FromError(err); st.Code() != code {
		t.Fatalf("expected %v, got %v (%v)", code, st.Code(), err)
	}
}

func TestToStatus_MapsSentinels(t *testing.T) {
	s, _ := newTestServer("secret")
	ctx := context.Background()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrValidation, codes.InvalidArgument},
		{errors.Join(common.ErrValidation, errors.New("bad scope")), codes.InvalidArgument},
		{common.ErrorNotFound, codes.NotFound},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrTokenExpired, codes.Unauthenticated},
		{errors.New("db error: boom"), codes.Internal},
	}
	for _, tc := range cases {
		wantCode(t, s.toStatus(ctx, tc.err), tc.code)
	}
}

func TestConnect_ReturnsToken(t *testing.T) {
	s, f := newTestServer("secret")
	f.identity.token = "tok"

	resp, err := s.Connect(context.Background(), &pb.ConnectRequest{Identity: owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "tok" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
}

func TestConnect_InvalidIdentity(t *testing.T) {
	s, f := newTestServer("secret")
	f.identity.err = common.ErrValidation

	_, err := s.Connect(context.Background(), &pb.ConnectRequest{Identity: "nope"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestHandlers_RequireIdentity(t *testing.T) {
	s, _ := newTestServer("secret")
	ctx := context.Background()

	_, err := s.ListOwnershipRecords(ctx, &pb.ListOwnershipRecordsRequest{})
	wantCode(t, err, codes.Unauthenticated)

	_, err = s.MintPass(ctx, &pb.MintPassRequest{Tier: "ALL_SCOPES"})
	wantCode(t, err, codes.Unauthenticated)

	_, err = s.IncrementUsage(ctx, &pb.IncrementUsageRequest{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestListOwnershipRecords_UsesCallerIdentity(t *testing.T) {
	s, f := newTestServer("secret")
	exp := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	f.ledger.records = []entitlement.OwnershipRecord{
		{ID: "p1", Tier: entitlement.TierOneScope, ScopeID: "astro-chatbot", ExpiresAt: exp},
	}

	resp, err := s.ListOwnershipRecords(withIdentity(owner), &pb.ListOwnershipRecordsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ledger.lastOwner != owner {
		t.Fatalf("owner not propagated: %q", f.ledger.lastOwner)
	}
	if len(resp.Records) != 1 || resp.Records[0].Tier != "ONE_SCOPE" || resp.Records[0].ScopeId != "astro-chatbot" {
		t.Fatalf("unexpected records: %+v", resp.Records)
	}
	if !resp.Records[0].GetExpiresAt().AsTime().Equal(exp) {
		t.Fatalf("unexpected expiry: %v", resp.Records[0].GetExpiresAt())
	}
}

func TestMintPass_UnknownTier(t *testing.T) {
	s, _ := newTestServer("secret")

	_, err := s.MintPass(withIdentity(owner), &pb.MintPassRequest{Tier: "GOLD"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestMintPass_OK(t *testing.T) {
	s, f := newTestServer("secret")
	f.ledger.minted = entitlement.OwnershipRecord{ID: "p9", Tier: entitlement.TierAllScopes}

	resp, err := s.MintPass(withIdentity(owner), &pb.MintPassRequest{Tier: "ALL_SCOPES"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ledger.lastTier != entitlement.TierAllScopes {
		t.Fatalf("tier not propagated: %q", f.ledger.lastTier)
	}
	if resp.Record.Id != "p9" || resp.TxHandle != "ledger:p9" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPublishFingerprints_Conflict(t *testing.T) {
	s, f := newTestServer("secret")
	f.ledger.err = common.ErrValidation

	_, err := s.PublishFingerprints(withIdentity(owner), &pb.PublishFingerprintsRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetProof_PublicAndNotFound(t *testing.T) {
	s, f := newTestServer("secret")
	f.ledger.proof = &models.Proof{ID: "id1", Owner: owner, ReportHash: "r", TxHandle: "ledger:id1"}

	resp, err := s.GetProof(context.Background(), &pb.GetProofRequest{ProofId: "id1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Proof.Owner != owner || resp.Proof.TxHandle != "ledger:id1" {
		t.Fatalf("unexpected proof: %+v", resp.Proof)
	}

	_, err = s.GetProof(context.Background(), &pb.GetProofRequest{ProofId: "other"})
	wantCode(t, err, codes.NotFound)
}

func TestEnvelope_PutThenGet(t *testing.T) {
	s, _ := newTestServer("secret")
	env := &pb.Envelope{Ciphertext: "Y3Q=", Iv: "aXY=", Salt: "c2FsdA==", Algo: cryptox.AlgorithmAESGCM, V: 1}

	put, err := s.PutEnvelope(withIdentity(owner), &pb.PutEnvelopeRequest{Envelope: env})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.GetEnvelope(context.Background(), &pb.GetEnvelopeRequest{Uri: put.Uri})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !proto.Equal(got.Envelope, env) {
		t.Fatalf("envelope mismatch: %+v vs %+v", got.Envelope, env)
	}
}

func TestUsage_IncrementThenToday(t *testing.T) {
	s, _ := newTestServer("secret")
	ctx := withIdentity(owner)

	for i := 1; i <= 2; i++ {
		resp, err := s.IncrementUsage(ctx, &pb.IncrementUsageRequest{})
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if resp.Count != int64(i) {
			t.Fatalf("expected %d, got %d", i, resp.Count)
		}
	}

	resp, err := s.GetTodayUsage(ctx, &pb.GetTodayUsageRequest{})
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if resp.Count != 2 || resp.Day != "2025-06-01" {
		t.Fatalf("unexpected usage: %+v", resp)
	}
}

func TestUsage_BackendFailureIsInternal(t *testing.T) {
	s, f := newTestServer("secret")
	f.usage.err = errors.New("redis down")

	_, err := s.GetTodayUsage(withIdentity(owner), &pb.GetTodayUsageRequest{})
	wantCode(t, err, codes.Internal)
}
