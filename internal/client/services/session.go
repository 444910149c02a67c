package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/astroproof/internal/dbx"
)

type sessionClient interface {
	Connect(ctx context.Context, identity string) error
	Resume(identity, accessToken string)
	Session() (string, string)
	Ping(ctx context.Context) error
	Close() error
}

// SessionService connects an identity to the backend and keeps the session
// in the local database so the next start can resume it.
type SessionService struct {
	client sessionClient
	db     *sql.DB
}

func NewSessionService(c sessionClient, db *sql.DB) *SessionService {
	return &SessionService{client: c, db: db}
}

func (s *SessionService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Connect obtains an access token for identity and saves the session.
func (s *SessionService) Connect(ctx context.Context, identity string) error {
	if err := s.client.Connect(ctx, identity); err != nil {
		return fmt.Errorf("connect error: %w", err)
	}

	id, token := s.client.Session()
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getMetadataRepo(tx)
		if err := repo.Set(ctx, metadata.KeyIdentity, id); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyAccessToken, token)
	})
}

// Restore resumes a saved session. It returns ErrNoSession when nothing was
// saved. The token may have expired since; the client reconnects lazily.
func (s *SessionService) Restore(ctx context.Context) (string, error) {
	repo := s.getMetadataRepo(s.db)

	identity, ok, err := repo.Get(ctx, metadata.KeyIdentity)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSession
	}
	token, ok, err := repo.Get(ctx, metadata.KeyAccessToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSession
	}

	s.client.Resume(identity, token)
	return identity, nil
}

// Disconnect forgets the session locally and in the client.
func (s *SessionService) Disconnect(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getMetadataRepo(tx)
		if err := repo.Delete(ctx, metadata.KeyIdentity); err != nil {
			return err
		}
		return repo.Delete(ctx, metadata.KeyAccessToken)
	})
	if err != nil {
		return err
	}
	s.client.Resume("", "")
	return nil
}

func (s *SessionService) Identity() string {
	id, _ := s.client.Session()
	return id
}

func (s *SessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SessionService) Close() error {
	return s.client.Close()
}
