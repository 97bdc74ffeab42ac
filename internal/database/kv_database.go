package database

import (
	"context"
	"errors"
	"time"

	"github.com/tidwall/buntdb"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the small key/value surface the progress store needs
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type BuntDB struct {
	path string
	db   *buntdb.DB
}

// NewBuntDB opens a buntdb file; ":memory:" keeps everything in RAM
func NewBuntDB(path string) (*BuntDB, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}

	return &BuntDB{path: path, db: db}, nil
}

func (d *BuntDB) Get(_ context.Context, key string) (string, error) {
	var value string
	err := d.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", ErrKeyNotFound
	}
	return value, err
}

func (d *BuntDB) Set(_ context.Context, key, value string, ttl time.Duration) error {
	var opts *buntdb.SetOptions
	if ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: ttl}
	}

	return d.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, opts)
		return err
	})
}

func (d *BuntDB) Delete(_ context.Context, key string) error {
	err := d.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil
	}
	return err
}

func (d *BuntDB) Close() error {
	return d.db.Close()
}
