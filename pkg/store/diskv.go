package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/entry"
)

var (
	// ErrDuplicateKey is returned when an entry's createdAt is already stored.
	ErrDuplicateKey = errors.New("store: entry key already exists")
	// ErrMissingKey is returned for an entry without a createdAt.
	ErrMissingKey = errors.New("store: entry has no createdAt")
	// ErrNotFound is returned by Get for an unknown key.
	ErrNotFound = errors.New("store: entry not found")
)

// Persistence is the append-only record table of journal entries, keyed by
// createdAt.
type Persistence interface {
	// Add stores a new entry. It fails with ErrDuplicateKey when the key is
	// taken.
	Add(e *entry.Entry) error
	// AddAll stores every entry or none of them.
	AddAll(entries []*entry.Entry) error
	// ListAll returns every readable entry, newest key first.
	ListAll(ctx context.Context) ([]*entry.Entry, error)
	Get(ctx context.Context, createdAt string) (*entry.Entry, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	entriesDir = "entries"
	localDir   = "local"
	miscBucket = "misc"
)

// Load opens the entry table under cfg's base path.
func Load(cfg Config, logger *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path unknown")
	}
	dir := filepath.Join(basePath, entriesDir)
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: dir,
		log:      logger.Named("store"),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.CreatedAt == "" {
		e.CreatedAt = key
	}
	return e, nil
}

func (p *persistence) Add(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	if e.CreatedAt == "" {
		return ErrMissingKey
	}
	if p.d.Has(e.CreatedAt) {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, e.CreatedAt)
	}
	return p.write(e)
}

func (p *persistence) AddAll(entries []*entry.Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == nil {
			return errors.New("store: nil entry")
		}
		if e.CreatedAt == "" {
			return ErrMissingKey
		}
		if _, dup := seen[e.CreatedAt]; dup || p.d.Has(e.CreatedAt) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, e.CreatedAt)
		}
		seen[e.CreatedAt] = struct{}{}
	}

	written := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := p.write(e); err != nil {
			for _, key := range written {
				if rerr := p.d.Erase(key); rerr != nil {
					p.log.Warn("rollback failed", zap.String("key", key), zap.Error(rerr))
				}
			}
			return err
		}
		written = append(written, e.CreatedAt)
	}
	return nil
}

func (p *persistence) write(e *entry.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := p.d.Write(e.CreatedAt, data); err != nil {
		return fmt.Errorf("store: write %s: %w", e.CreatedAt, err)
	}
	p.log.Debug("stored entry", zap.String("key", e.CreatedAt), zap.String("date", e.Date))
	return nil
}

func (p *persistence) ListAll(ctx context.Context) ([]*entry.Entry, error) {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		e, err := p.read(key)
		if err != nil {
			p.log.Warn("skipping unreadable entry", zap.String("key", key), zap.Error(err))
			continue
		}
		all = append(all, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortNewestFirst(all)
	return all, nil
}

func (p *persistence) Get(ctx context.Context, createdAt string) (*entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if createdAt == "" || !p.d.Has(createdAt) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, createdAt)
	}
	return p.read(createdAt)
}

func sortNewestFirst(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
}

// keyToPathTransform buckets records by the month prefix of their key and
// encodes the key itself into a filesystem-safe file name.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{bucketFor(key)},
		FileName: base64.RawURLEncoding.EncodeToString([]byte(key)),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	key, err := base64.RawURLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		return ""
	}
	return string(key)
}

func bucketFor(key string) string {
	if len(key) < len(entry.LayoutMonth) {
		return miscBucket
	}
	prefix := key[:len(entry.LayoutMonth)]
	if strings.ContainsAny(prefix, `/\.`) {
		return miscBucket
	}
	return prefix
}
