package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/projectboard/internal/client/migrations"
	"github.com/dmitrijs2005/projectboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/projectboard/internal/common"
	"github.com/dmitrijs2005/projectboard/internal/cryptox"
	"github.com/dmitrijs2005/projectboard/internal/filex"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a throwaway in-memory database.
const MemoryDSN = ":memory:"

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the token sealed with AES-GCM in the metadata table.
type SQLiteStore struct {
	repo metadata.Repository
	key  []byte
	db   *sql.DB
}

// NewSQLiteStore wraps an existing repository. key must be a 32-byte AES key.
func NewSQLiteStore(repo metadata.Repository, key []byte) *SQLiteStore {
	return &SQLiteStore{repo: repo, key: key}
}

// OpenSQLite opens (creating if needed) the database at dsn, applies
// migrations and derives the sealing key from the device secret at keyPath.
func OpenSQLite(ctx context.Context, dsn, keyPath string) (*SQLiteStore, error) {
	if dsn != MemoryDSN {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	secret, err := cryptox.LoadOrCreateDeviceSecret(keyPath)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	defer common.WipeByteArray(secret)

	key, err := cryptox.DeriveKey(secret, common.AccessTokenKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := NewSQLiteStore(metadata.NewSQLiteRepository(db), key)
	s.db = db
	return s, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (string, bool, error) {
	sealed, err := s.repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", false, err
	}
	if sealed == nil {
		return "", false, nil
	}

	plain, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", common.ErrCorruptedValue, err)
	}
	return string(plain), true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	sealed, err := cryptox.Seal(s.key, []byte(token))
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	return s.repo.Set(ctx, common.AccessTokenKey, sealed)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.AccessTokenKey)
}

// Close releases the database opened by OpenSQLite. It is a no-op for
// stores built with NewSQLiteStore.
func (s *SQLiteStore) Close() error {
	common.WipeByteArray(s.key)
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
