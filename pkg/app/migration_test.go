package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
)

const legacyJSON = `[
  {"date":"2026-01-01","theme":"Health/Fitness","responses":{"q1":"ran"},"actionItem":"Run","createdAt":"2026-01-01T10:00:00Z"},
  {"date":"2026-01-01","theme":"Faith","responses":{},"actionItem":"Pray"},
  {"date":"2025-12-31","theme":"Reflection","responses":{},"actionItem":"Reflect"},
  null
]`

func newDiskService(t *testing.T) *Service {
	t.Helper()
	base := store.PathConfig(t.TempDir())
	p, err := store.Load(base, nil)
	require.NoError(t, err)
	l, err := store.LoadLocal(base)
	require.NoError(t, err)
	return &Service{Persistence: p, Local: l}
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	svc := newDiskService(t)
	require.NoError(t, svc.Local.Set(store.LegacyKey, []byte(legacyJSON)))

	res, err := svc.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Migrated)
	assert.False(t, res.Discarded)

	_, ok, err := svc.Local.Get(store.LegacyKey)
	require.NoError(t, err)
	assert.False(t, ok, "legacy list should be removed")

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	keys := map[string]bool{}
	for _, e := range all {
		keys[e.CreatedAt] = true
		switch e.ActionItem {
		case "Run":
			assert.Equal(t, "2026-01-01T10:00:00Z", e.CreatedAt)
			assert.Equal(t, "ran", e.Responses.Answer("q1"))
		case "Pray":
			assert.True(t, strings.HasPrefix(e.CreatedAt, "2026-01-01T00:00:00.000Z-"), e.CreatedAt)
		case "Reflect":
			assert.True(t, strings.HasPrefix(e.CreatedAt, "2025-12-31T00:00:00.000Z-"), e.CreatedAt)
			assert.Equal(t, "Reflection", e.Theme)
		default:
			t.Fatalf("unexpected entry %+v", e)
		}
	}
	assert.Len(t, keys, 3)

	again, err := svc.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Migrated)
	all, err = svc.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "second run must not duplicate entries")
}

func TestMigrateNothingToDo(t *testing.T) {
	svc := newDiskService(t)
	res, err := svc.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{}, res)
}

func TestMigrateWithoutLocal(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	res, err := svc.Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Migrated)
}

func TestMigrateDiscardsCorruptLegacy(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"truncated": `[{"date":"2026-01-01"`,
		"object":    `{"date":"2026-01-01"}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newDiskService(t)
			require.NoError(t, svc.Local.Set(store.LegacyKey, []byte(raw)))

			res, err := svc.Migrate(ctx)
			require.NoError(t, err)
			assert.True(t, res.Discarded)
			assert.Zero(t, res.Migrated)

			_, ok, _ := svc.Local.Get(store.LegacyKey)
			assert.False(t, ok)
			all, err := svc.Entries(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestMigrateEmptyList(t *testing.T) {
	svc := newDiskService(t)
	require.NoError(t, svc.Local.Set(store.LegacyKey, []byte(`[]`)))
	res, err := svc.Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Migrated)
	_, ok, _ := svc.Local.Get(store.LegacyKey)
	assert.False(t, ok)
}

func TestMigrateKeepsLegacyOnFailure(t *testing.T) {
	l, err := store.LoadLocal(store.PathConfig(t.TempDir()))
	require.NoError(t, err)
	mp := newMemoryPersistence()
	mp.failAdd = errors.New("disk full")
	svc := &Service{Persistence: mp, Local: l}
	require.NoError(t, l.Set(store.LegacyKey, []byte(legacyJSON)))

	_, err = svc.Migrate(context.Background())
	require.Error(t, err)

	_, ok, err := l.Get(store.LegacyKey)
	require.NoError(t, err)
	assert.True(t, ok, "legacy list must survive a failed copy")
	all, _ := mp.ListAll(context.Background())
	assert.Empty(t, all)
}

func TestMigrateResumesAfterInterruptedRun(t *testing.T) {
	ctx := context.Background()
	svc := newDiskService(t)
	// An earlier run copied this record but stopped before removing the list.
	require.NoError(t, svc.Persistence.Add(&entry.Entry{
		Date:       "2026-01-01",
		Theme:      "Health/Fitness",
		ActionItem: "Run",
		CreatedAt:  "2026-01-01T10:00:00Z",
	}))
	require.NoError(t, svc.Local.Set(store.LegacyKey, []byte(legacyJSON)))

	res, err := svc.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Migrated)
	assert.Equal(t, 1, res.Skipped)

	_, ok, err := svc.Local.Get(store.LegacyKey)
	require.NoError(t, err)
	assert.False(t, ok, "legacy list should be removed")

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMigrateSkipsRepeatedLegacyKeys(t *testing.T) {
	svc := newDiskService(t)
	legacy := `[
  {"date":"2026-01-01","theme":"Faith","responses":{},"actionItem":"a","createdAt":"2026-01-01T10:00:00Z"},
  {"date":"2026-01-01","theme":"Faith","responses":{},"actionItem":"b","createdAt":"2026-01-01T10:00:00Z"}
]`
	require.NoError(t, svc.Local.Set(store.LegacyKey, []byte(legacy)))

	res, err := svc.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Migrated)
	assert.Equal(t, 1, res.Skipped)

	e, err := svc.Entry(context.Background(), "2026-01-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "a", e.ActionItem)
}
