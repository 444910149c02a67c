package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	pb "github.com/dmitrijs2005/astroproof/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ProofServiceClient

	mu          sync.RWMutex
	identity    string
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) Session() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.accessToken
}

func (s *GRPCClient) Resume(identity, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = strings.ToLower(identity)
	s.accessToken = accessToken
}

// accessTokenInterceptor attaches the current token. When the server reports
// it expired, the interceptor reconnects the same identity once and retries.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	identity, token := s.Session()
	if token != "" {
		ctx = withAccessToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || method == pb.ProofService_Connect_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if identity == "" {
		return err
	}

	resp, err := s.client.Connect(ctx, &pb.ConnectRequest{Identity: identity})
	if err != nil {
		return err
	}
	s.Resume(identity, resp.AccessToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewAstroProofClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewProofServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("rpc error: %w: %w", common.ErrFetch, err)
	}
}

// requireIdentity checks that identity-bound calls are made for the
// connected identity; the server only ever answers for the token holder.
func (s *GRPCClient) requireIdentity(identity string) error {
	current, token := s.Session()
	if current == "" || token == "" {
		return ErrNotConnected
	}
	if identity != "" && !strings.EqualFold(identity, current) {
		return fmt.Errorf("%w: connected as %s", ErrUnauthorized, current)
	}
	return nil
}

func (s *GRPCClient) Connect(ctx context.Context, identity string) error {
	resp, err := s.client.Connect(ctx, &pb.ConnectRequest{Identity: identity})
	if err != nil {
		return s.mapError(err)
	}
	s.Resume(identity, resp.AccessToken)
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func recordFromPB(r *pb.OwnershipRecord) (entitlement.OwnershipRecord, error) {
	tier, err := entitlement.ParseTier(r.Tier)
	if err != nil {
		return entitlement.OwnershipRecord{}, err
	}
	return entitlement.OwnershipRecord{
		ID:        r.Id,
		Tier:      tier,
		ScopeID:   r.ScopeId,
		IssuedAt:  r.GetIssuedAt().AsTime(),
		ExpiresAt: r.GetExpiresAt().AsTime(),
	}, nil
}

func proofFromPB(p *pb.Proof) *models.Proof {
	return &models.Proof{
		ID:          p.Id,
		Owner:       p.Owner,
		SessionHash: p.SessionHash,
		ReportHash:  p.ReportHash,
		URI:         p.Uri,
		TxHandle:    p.TxHandle,
		CreatedAt:   p.GetCreatedAt().AsTime(),
	}
}

func (s *GRPCClient) ListOwnershipRecords(ctx context.Context, identity string) ([]entitlement.OwnershipRecord, error) {
	if err := s.requireIdentity(identity); err != nil {
		return nil, err
	}

	resp, err := s.client.ListOwnershipRecords(ctx, &pb.ListOwnershipRecordsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	records := make([]entitlement.OwnershipRecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		rec, err := recordFromPB(r)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.Id, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *GRPCClient) MintPass(ctx context.Context, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, string, error) {
	if err := s.requireIdentity(""); err != nil {
		return entitlement.OwnershipRecord{}, "", err
	}

	resp, err := s.client.MintPass(ctx, &pb.MintPassRequest{Tier: string(tier), ScopeId: scopeID})
	if err != nil {
		return entitlement.OwnershipRecord{}, "", s.mapError(err)
	}
	if resp.Record == nil {
		return entitlement.OwnershipRecord{}, "", fmt.Errorf("%w: empty mint response", common.ErrFetch)
	}

	rec, err := recordFromPB(resp.Record)
	if err != nil {
		return entitlement.OwnershipRecord{}, "", err
	}
	return rec, resp.TxHandle, nil
}

func (s *GRPCClient) PublishFingerprints(ctx context.Context, session, report fingerprint.Fingerprint, uri string) (models.Publication, error) {
	if err := s.requireIdentity(""); err != nil {
		return models.Publication{}, err
	}

	resp, err := s.client.PublishFingerprints(ctx, &pb.PublishFingerprintsRequest{
		SessionHash: string(session),
		ReportHash:  string(report),
		Uri:         uri,
	})
	if err != nil {
		return models.Publication{}, s.mapError(err)
	}
	return models.Publication{ProofID: resp.ProofId, TxHandle: resp.TxHandle}, nil
}

func (s *GRPCClient) GetProof(ctx context.Context, proofID string) (*models.Proof, error) {
	resp, err := s.client.GetProof(ctx, &pb.GetProofRequest{ProofId: proofID})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Proof == nil {
		return nil, common.ErrorNotFound
	}
	return proofFromPB(resp.Proof), nil
}

func (s *GRPCClient) ListProofs(ctx context.Context) ([]*models.Proof, error) {
	if err := s.requireIdentity(""); err != nil {
		return nil, err
	}

	resp, err := s.client.ListProofs(ctx, &pb.ListProofsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	proofs := make([]*models.Proof, 0, len(resp.Proofs))
	for _, p := range resp.Proofs {
		proofs = append(proofs, proofFromPB(p))
	}
	return proofs, nil
}

func (s *GRPCClient) Put(ctx context.Context, env *cryptox.Envelope) (string, error) {
	if err := s.requireIdentity(""); err != nil {
		return "", err
	}
	if env == nil {
		return "", fmt.Errorf("%w: empty envelope", common.ErrValidation)
	}

	resp, err := s.client.PutEnvelope(ctx, &pb.PutEnvelopeRequest{Envelope: &pb.Envelope{
		Ciphertext: env.Ciphertext,
		Iv:         env.IV,
		Salt:       env.Salt,
		Algo:       env.Algorithm,
		V:          int32(env.Version),
	}})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Uri, nil
}

func (s *GRPCClient) Get(ctx context.Context, uri string) (*cryptox.Envelope, error) {
	resp, err := s.client.GetEnvelope(ctx, &pb.GetEnvelopeRequest{Uri: uri})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Envelope == nil {
		return nil, common.ErrorNotFound
	}
	e := resp.Envelope
	return &cryptox.Envelope{Ciphertext: e.Ciphertext, IV: e.Iv, Salt: e.Salt, Algorithm: e.Algo, Version: int(e.V)}, nil
}

func (s *GRPCClient) GetTodayCount(ctx context.Context, identity string) (int, error) {
	if err := s.requireIdentity(identity); err != nil {
		return 0, err
	}

	resp, err := s.client.GetTodayUsage(ctx, &pb.GetTodayUsageRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.Count), nil
}

func (s *GRPCClient) IncrementToday(ctx context.Context, identity string) (int, error) {
	if err := s.requireIdentity(identity); err != nil {
		return 0, err
	}

	resp, err := s.client.IncrementUsage(ctx, &pb.IncrementUsageRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.Count), nil
}
