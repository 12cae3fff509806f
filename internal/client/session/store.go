package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vibecli/internal/client/repositories/state"
	"github.com/dmitrijs2005/vibecli/internal/common"
	"github.com/dmitrijs2005/vibecli/internal/dbx"
)

// Store is the durable token cell. It holds at most one token (plus the
// username it was issued for) under fixed keys in the client database and
// survives restarts. It also serves as the api.TokenSource consulted before
// every outgoing request.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) state.Repository {
	return state.NewSQLiteRepository(db)
}

// Token returns the stored bearer token, or "" when anonymous.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.repo(s.db).Get(ctx, common.TokenStateKey)
}

// Username returns the username the stored token was issued for, or "".
func (s *Store) Username(ctx context.Context) (string, error) {
	return s.repo(s.db).Get(ctx, common.UsernameStateKey)
}

// Save overwrites the stored token and username in one transaction, so a
// crash between the two writes cannot leave them disagreeing.
func (s *Store) Save(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.TokenStateKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.UsernameStateKey, username)
	})
}

// Clear wipes the stored token and username. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}
