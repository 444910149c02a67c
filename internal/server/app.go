// Package server wires the AstroProof backend: Postgres-backed ledger,
// usage counters, S3 envelope storage, the gRPC ProofService and the
// public HTTP verification API. It also handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/server/blobstore"
	"github.com/dmitrijs2005/astroproof/internal/server/config"
	"github.com/dmitrijs2005/astroproof/internal/server/httpapi"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/astroproof/internal/server/repositories/usage"
	"github.com/dmitrijs2005/astroproof/internal/server/services"

	gs "github.com/dmitrijs2005/astroproof/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	redis    *redis.Client
	identity *services.IdentityService
	ledger   *services.LedgerService
	usage    *services.UsageService
	blobs    *services.BlobService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	var usageRepo usage.Repository
	switch c.UsageBackend {
	case config.UsageBackendRedis:
		app.redis = redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.close()
			return nil, fmt.Errorf("redis ping error: %w", err)
		}
		usageRepo = usage.NewRedisRepository(app.redis, c.RedisNamespace)
	case config.UsageBackendPostgres:
		usageRepo = rm.Usage(db)
	default:
		app.close()
		return nil, fmt.Errorf("unknown usage backend %q", c.UsageBackend)
	}

	store, err := blobstore.NewS3Store(ctx, blobstore.Options{
		User:         c.S3RootUser,
		Password:     c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		app.close()
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	app.identity = services.NewIdentityService(c.SecretKey, c.AccessTokenValidityDuration)
	app.ledger = services.NewLedgerService(db, rm, c.PassDuration)
	app.usage = services.NewUsageService(usageRepo)
	app.blobs = services.NewBlobService(store)

	return app, nil
}

func (app *App) close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	if app.db != nil {
		_ = app.db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.identity, app.ledger, app.usage, app.blobs, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.ledger, app.blobs, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, h, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
}
