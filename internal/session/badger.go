package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"filesmanager/internal/config"
)

// BadgerStore keeps sessions in an embedded Badger database using per-entry TTLs,
// so expiry needs no sweeper.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

var _ Store = (*BadgerStore)(nil)

// OpenBadger opens (or creates) the session database described by cfg.
func OpenBadger(cfg config.SessionConfig) (*BadgerStore, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("session path is required")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &BadgerStore{db: db, ttl: cfg.TTL}, nil
}

func (s *BadgerStore) Get(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(token))
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		userID = string(v)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

func (s *BadgerStore) Set(ctx context.Context, token, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(Key(token), []byte(userID)).WithTTL(s.ttl))
	})
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *BadgerStore) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(Key(token))
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New("session store is closed")
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
