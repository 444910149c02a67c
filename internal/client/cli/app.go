package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/client/client"
	"github.com/dmitrijs2005/astroproof/internal/client/config"
	"github.com/dmitrijs2005/astroproof/internal/client/models"
	"github.com/dmitrijs2005/astroproof/internal/client/repositories/receipts"
	"github.com/dmitrijs2005/astroproof/internal/client/services"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/entitlement"
	"github.com/dmitrijs2005/astroproof/internal/filex"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
	"github.com/dmitrijs2005/astroproof/internal/proof"
	"github.com/dmitrijs2005/astroproof/internal/textgen"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type sessionService interface {
	Connect(ctx context.Context, identity string) error
	Restore(ctx context.Context) (string, error)
	Disconnect(ctx context.Context) error
	Identity() string
	Ping(ctx context.Context) error
	Close() error
}

type accessService interface {
	Policy() entitlement.Policy
	Resolve(ctx context.Context, identity string) entitlement.EffectiveAccess
	CheckOperation(ctx context.Context, identity, scopeID string) (entitlement.EffectiveAccess, error)
	BeginOperation(ctx context.Context, identity, scopeID string) (entitlement.EffectiveAccess, error)
	Describe(access entitlement.EffectiveAccess) string
	UpgradeOptions(access entitlement.EffectiveAccess) []entitlement.UpgradeOption
	PurchasePass(ctx context.Context, tier entitlement.Tier, scopeID string) (entitlement.OwnershipRecord, string, error)
}

type readingService interface {
	Draft(ctx context.Context, scope string, raw normalize.RawInputs) (*proof.ReadingBundle, error)
	Seal(ctx context.Context, owner string, bundle *proof.ReadingBundle, passphrase string) (*models.Receipt, error)
	Verify(ctx context.Context, proofID, passphrase string) (*proof.ReadingBundle, proof.VerificationResult, error)
	VerifyPublic(ctx context.Context, proofID string) (*models.Proof, error)
	Receipts(ctx context.Context, owner string) ([]*models.Receipt, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  sessionService
	access   accessService
	readings readingService
	reader   *bufio.Reader
	out      io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, c.DBFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewAstroProofClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cipher, err := cryptox.NewCipher(c.EnvelopeVersion)
	if err != nil {
		_ = db.Close()
		_ = apiClient.Close()
		return nil, err
	}

	var primary textgen.Generator
	if c.CompletionURL != "" {
		primary = textgen.NewCompletion(c.CompletionURL, c.CompletionAPIKey, c.CompletionModel)
	}
	generator := textgen.WithFallback(primary, textgen.Deterministic{}, logger)

	policy := entitlement.Policy{DailyFreeLimit: c.DailyFreeLimit, FreeScopeID: c.FreeScopeID}
	pricing := entitlement.Pricing{OneScope: c.PriceOneScope, AllScopes: c.PriceAllScopes, Currency: c.Currency}

	return &App{
		config:   c,
		logger:   logger,
		session:  services.NewSessionService(apiClient, db),
		access:   services.NewAccessService(apiClient, apiClient, apiClient, policy, pricing, c.PassDuration, logger),
		readings: services.NewReadingService(generator, cipher, apiClient, apiClient, apiClient, receipts.NewSQLiteRepository(db), logger),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isConnected() bool {
	return a.session.Identity() != ""
}

func (a *App) getStatus() string {
	s := ""
	if id := a.session.Identity(); id != "" {
		s = MaskAddress(id) + " "
	}
	s += string(a.getMode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, userMessage(err))
	return err
}

// Run resumes a saved session if there is one, starts the connectivity
// watcher and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.session.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to AstroProof (type 'help' for commands)")

	id, err := a.session.Restore(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Resumed session for %s\n", MaskAddress(id))
	case !errors.Is(err, services.ErrNoSession):
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// StartOnlineStatusWatcher pings the backend every interval and flips the
// displayed mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.session.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
