package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/astroproof/internal/common"
	pb "github.com/dmitrijs2005/astroproof/internal/proto"
	"github.com/dmitrijs2005/astroproof/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// identityBound lists the methods that act on behalf of the caller.
var identityBound = map[string]struct{}{
	pb.ProofService_ListOwnershipRecords_FullMethodName: {},
	pb.ProofService_MintPass_FullMethodName:             {},
	pb.ProofService_PublishFingerprints_FullMethodName:  {},
	pb.ProofService_ListProofs_FullMethodName:           {},
	pb.ProofService_PutEnvelope_FullMethodName:          {},
	pb.ProofService_GetTodayUsage_FullMethodName:        {},
	pb.ProofService_IncrementUsage_FullMethodName:       {},
}

func identityFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	return id, ok && id != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := identityBound[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	identity, err := auth.GetIdentityFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, identityKey, identity), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
