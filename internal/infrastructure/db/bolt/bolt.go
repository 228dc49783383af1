package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
)

const (
	fileName    = "console.db"
	openTimeout = time.Second
)

// BucketSession holds the persisted session token.
var BucketSession = []byte("session")

// Open creates dataDir if needed, opens the console database inside it and
// makes sure every bucket exists.
func Open(dataDir string) (*bbolt.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(BucketSession); err != nil {
			return fmt.Errorf("create bucket %s: %w", BucketSession, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
