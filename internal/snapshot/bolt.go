package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("snapshots")

// Bolt stores snapshot records in a bbolt database, one bucket, one key per
// record.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt database at the given path. The open
// times out quickly so a second instance fails fast instead of hanging on
// the file lock.
func OpenBolt(path string) (*Bolt, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Get returns the record value, or found=false when absent.
func (b *Bolt) Get(_ context.Context, name string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(name))
		if raw == nil {
			return nil
		}
		// Bytes returned by bbolt are only valid inside the transaction.
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

// Put writes the record, replacing any previous value.
func (b *Bolt) Put(_ context.Context, name string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(name), value)
	})
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
