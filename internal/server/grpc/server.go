package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/fingerprint"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	pb "github.com/dmitrijs2005/astroproof/internal/proto"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type identitySvc interface {
	Connect(ctx context.Context, identity string) (string, error)
}

type ledgerSvc interface {
	ListOwnershipRecords(ctx context.Context, owner string) ([]entitlement.OwnershipRecord, error)
	MintPass(ctx context.Context, owner string, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, error)
	PublishFingerprints(ctx context.Context, owner string, session, report fingerprint.Fingerprint, uri string) (*models.Proof, error)
	GetProof(ctx context.Context, id string) (*models.Proof, error)
	ListProofs(ctx context.Context, owner string) ([]*models.Proof, error)
}

type usageSvc interface {
	Today(ctx context.Context, identity string) (string, int, error)
	Increment(ctx context.Context, identity string) (string, int, error)
}

type blobSvc interface {
	Put(ctx context.Context, env *cryptox.Envelope) (string, error)
	Get(ctx context.Context, uri string) (*cryptox.Envelope, error)
}

type GRPCServer struct {
	pb.UnimplementedProofServiceServer
	address    string
	identities identitySvc
	ledger     ledgerSvc
	usage      usageSvc
	blobs      blobSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, is identitySvc, ls ledgerSvc, us usageSvc, bs blobSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		identities: is,
		ledger:     ls,
		usage:      us,
		blobs:      bs,
		jwtSecret:  []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterProofServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
