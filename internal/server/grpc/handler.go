package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	pb "github.com/dmitrijs2005/astroproof/internal/proto"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) identity(ctx context.Context) (string, error) {
	id, ok := identityFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "no identity in context")
	}
	return id, nil
}

func recordToPB(r entitlement.OwnershipRecord) *pb.OwnershipRecord {
	return &pb.OwnershipRecord{
		Id:        r.ID,
		Tier:      string(r.Tier),
		ScopeId:   r.ScopeID,
		IssuedAt:  timestamppb.New(r.IssuedAt),
		ExpiresAt: timestamppb.New(r.ExpiresAt),
	}
}

func proofToPB(p *models.Proof) *pb.Proof {
	return &pb.Proof{
		Id:          p.ID,
		Owner:       p.Owner,
		SessionHash: p.SessionHash,
		ReportHash:  p.ReportHash,
		Uri:         p.URI,
		TxHandle:    p.TxHandle,
		CreatedAt:   timestamppb.New(p.CreatedAt),
	}
}

func envelopeFromPB(e *pb.Envelope) *cryptox.Envelope {
	if e == nil {
		return nil
	}
	return &cryptox.Envelope{Ciphertext: e.Ciphertext, IV: e.Iv, Salt: e.Salt, Algorithm: e.Algo, Version: int(e.V)}
}

func envelopeToPB(e *cryptox.Envelope) *pb.Envelope {
	return &pb.Envelope{Ciphertext: e.Ciphertext, Iv: e.IV, Salt: e.Salt, Algo: e.Algorithm, V: int32(e.Version)}
}

func (s *GRPCServer) Connect(ctx context.Context, req *pb.ConnectRequest) (*pb.ConnectResponse, error) {
	token, err := s.identities.Connect(ctx, req.Identity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "identity connected", "identity", req.Identity)
	return &pb.ConnectResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ListOwnershipRecords(ctx context.Context, req *pb.ListOwnershipRecordsRequest) (*pb.ListOwnershipRecordsResponse, error) {
	owner, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.ledger.ListOwnershipRecords(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListOwnershipRecordsResponse{Records: make([]*pb.OwnershipRecord, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, recordToPB(r))
	}
	return resp, nil
}

func (s *GRPCServer) MintPass(ctx context.Context, req *pb.MintPassRequest) (*pb.MintPassResponse, error) {
	owner, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	tier, err := entitlement.ParseTier(req.Tier)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	record, err := s.ledger.MintPass(ctx, owner, tier, req.ScopeId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "pass minted", "owner", owner, "tier", record.Tier, "scope", record.ScopeID)
	return &pb.MintPassResponse{Record: recordToPB(record), TxHandle: "ledger:" + record.ID}, nil
}

func (s *GRPCServer) PublishFingerprints(ctx context.Context, req *pb.PublishFingerprintsRequest) (*pb.PublishFingerprintsResponse, error) {
	owner, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	proof, err := s.ledger.PublishFingerprints(ctx, owner,
		fingerprint.Fingerprint(req.SessionHash), fingerprint.Fingerprint(req.ReportHash), req.Uri)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "proof published", "proof_id", proof.ID, "owner", owner)
	return &pb.PublishFingerprintsResponse{ProofId: proof.ID, TxHandle: proof.TxHandle}, nil
}

func (s *GRPCServer) GetProof(ctx context.Context, req *pb.GetProofRequest) (*pb.GetProofResponse, error) {
	proof, err := s.ledger.GetProof(ctx, req.ProofId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProofResponse{Proof: proofToPB(proof)}, nil
}

func (s *GRPCServer) ListProofs(ctx context.Context, req *pb.ListProofsRequest) (*pb.ListProofsResponse, error) {
	owner, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	proofs, err := s.ledger.ListProofs(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListProofsResponse{Proofs: make([]*pb.Proof, 0, len(proofs))}
	for _, p := range proofs {
		resp.Proofs = append(resp.Proofs, proofToPB(p))
	}
	return resp, nil
}

func (s *GRPCServer) PutEnvelope(ctx context.Context, req *pb.PutEnvelopeRequest) (*pb.PutEnvelopeResponse, error) {
	if _, err := s.identity(ctx); err != nil {
		return nil, err
	}

	uri, err := s.blobs.Put(ctx, envelopeFromPB(req.Envelope))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PutEnvelopeResponse{Uri: uri}, nil
}

func (s *GRPCServer) GetEnvelope(ctx context.Context, req *pb.GetEnvelopeRequest) (*pb.GetEnvelopeResponse, error) {
	env, err := s.blobs.Get(ctx, req.Uri)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetEnvelopeResponse{Envelope: envelopeToPB(env)}, nil
}

func (s *GRPCServer) GetTodayUsage(ctx context.Context, req *pb.GetTodayUsageRequest) (*pb.UsageResponse, error) {
	identity, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	day, count, err := s.usage.Today(ctx, identity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UsageResponse{Day: day, Count: int64(count)}, nil
}

func (s *GRPCServer) IncrementUsage(ctx context.Context, req *pb.IncrementUsageRequest) (*pb.UsageResponse, error) {
	identity, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	day, count, err := s.usage.Increment(ctx, identity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UsageResponse{Day: day, Count: int64(count)}, nil
}
