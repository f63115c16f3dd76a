package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
)

// MigrationResult reports what a legacy migration did.
type MigrationResult struct {
	Migrated int `json:"migrated"`
	// Skipped counts legacy records whose key was already stored, e.g. by
	// an earlier run that stopped before removing the list.
	Skipped int `json:"skipped"`
	// Discarded is set when unreadable legacy data was thrown away.
	Discarded bool `json:"discarded"`
}

// Migrate moves entries from the legacy flat list into the entry table and
// then deletes the list. It is safe to call on every start: once the list
// is gone there is nothing left to move. Unreadable legacy data is deleted
// rather than blocking startup. If the copy fails the list is kept and the
// entry table is left as it was.
func (s *Service) Migrate(ctx context.Context) (MigrationResult, error) {
	var result MigrationResult
	if s.Local == nil {
		return result, nil
	}
	if s.Persistence == nil {
		return result, ErrNoPersistence
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	raw, ok, err := s.Local.Get(store.LegacyKey)
	switch {
	case err != nil:
		s.log().Warn("discarding unreadable legacy entries", zap.Error(err))
		result.Discarded = true
		return result, s.Local.Remove(store.LegacyKey)
	case !ok:
		return result, nil
	}

	var legacy []*entry.Entry
	if err := json.Unmarshal(raw, &legacy); err != nil {
		s.log().Warn("discarding unreadable legacy entries", zap.Error(err))
		result.Discarded = true
		return result, s.Local.Remove(store.LegacyKey)
	}

	batch := make([]*entry.Entry, 0, len(legacy))
	seen := make(map[string]struct{}, len(legacy))
	for _, e := range legacy {
		if e == nil {
			continue
		}
		if e.CreatedAt == "" {
			e.CreatedAt = syntheticCreatedAt(e.Date)
		}
		if _, dup := seen[e.CreatedAt]; dup {
			result.Skipped++
			continue
		}
		seen[e.CreatedAt] = struct{}{}
		switch _, err := s.Persistence.Get(ctx, e.CreatedAt); {
		case err == nil:
			s.log().Debug("legacy entry already stored", zap.String("createdAt", e.CreatedAt))
			result.Skipped++
			continue
		case !errors.Is(err, store.ErrNotFound):
			return result, fmt.Errorf("app: check legacy entry %s: %w", e.CreatedAt, err)
		}
		batch = append(batch, e)
	}

	if len(batch) > 0 {
		if err := s.Persistence.AddAll(batch); err != nil {
			return result, fmt.Errorf("app: migrate legacy entries: %w", err)
		}
	}
	if err := s.Local.Remove(store.LegacyKey); err != nil {
		return result, fmt.Errorf("app: remove legacy entries: %w", err)
	}
	result.Migrated = len(batch)
	if result.Migrated > 0 {
		s.log().Info("migrated legacy entries", zap.Int("count", result.Migrated))
	}
	return result, nil
}

// syntheticCreatedAt derives a unique key from an entry date: midnight of
// that day followed by a random suffix.
func syntheticCreatedAt(date string) string {
	prefix := date
	if day, err := entry.ParseDate(date); err == nil {
		prefix = entry.FormatCreated(day)
	}
	return prefix + "-" + uuid.NewString()
}
