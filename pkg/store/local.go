package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// LegacyKey holds the flat JSON list written by earlier releases.
const LegacyKey = "north_star_entries"

// Local is a small string-keyed value store kept beside the entry table.
type Local interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, val []byte) error
	// Remove deletes key; removing a missing key is not an error.
	Remove(key string) error
}

// LoadLocal opens the value store under cfg's base path.
func LoadLocal(cfg Config) (Local, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.BasePath() == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &local{d: diskv.New(diskv.Options{
		BasePath:     filepath.Join(cfg.BasePath(), localDir),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type local struct {
	d *diskv.Diskv
}

func (l *local) Get(key string) ([]byte, bool, error) {
	if !l.d.Has(key) {
		return nil, false, nil
	}
	val, err := l.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (l *local) Set(key string, val []byte) error {
	return l.d.Write(key, val)
}

func (l *local) Remove(key string) error {
	if !l.d.Has(key) {
		return nil
	}
	return l.d.Erase(key)
}
