package bolt

import (
	"context"
	"fmt"

	bbolt "go.etcd.io/bbolt"
)

// TokenStore keeps the session token under a fixed key in BucketSession.
type TokenStore struct {
	db  *bbolt.DB
	key []byte
}

func NewTokenStore(db *bbolt.DB, key string) *TokenStore {
	return &TokenStore{db: db, key: []byte(key)}
}

func (s *TokenStore) Load(_ context.Context) (string, error) {
	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(BucketSession).Get(s.key); v != nil {
			token = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Save(_ context.Context, token string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(BucketSession).Put(s.key, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(_ context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(BucketSession).Delete(s.key)
	})
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
