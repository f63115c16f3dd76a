package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/northstar/pkg/entry"
)

func newTestPersistence(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(PathConfig(base), nil)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, base
}

func sample(date, createdAt string) *entry.Entry {
	return &entry.Entry{
		Date:       date,
		Theme:      "Faith",
		Responses:  entry.Responses{"q1": "answer for " + date},
		ActionItem: "act on " + date,
		CreatedAt:  createdAt,
	}
}

func TestAddAndListNewestFirst(t *testing.T) {
	p, _ := newTestPersistence(t)
	ctx := context.Background()

	for _, e := range []*entry.Entry{
		sample("2026-01-02", "2026-01-02T08:00:00.000Z"),
		sample("2026-02-01", "2026-02-01T08:00:00.000Z"),
		sample("2026-01-03", "2026-01-03T08:00:00.000Z"),
	} {
		if err := p.Add(e); err != nil {
			t.Fatalf("add %s: %v", e.CreatedAt, err)
		}
	}

	all, err := p.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2026-02-01T08:00:00.000Z", "2026-01-03T08:00:00.000Z", "2026-01-02T08:00:00.000Z"}
	if len(all) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(all))
	}
	for i, e := range all {
		if e.CreatedAt != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], e.CreatedAt)
		}
	}
	if all[0].Responses.Answer("q1") != "answer for 2026-02-01" {
		t.Fatalf("responses did not round trip: %#v", all[0].Responses)
	}
}

func TestAddRejectsDuplicateKey(t *testing.T) {
	p, _ := newTestPersistence(t)
	e := sample("2026-01-02", "2026-01-02T08:00:00.000Z")
	if err := p.Add(e); err != nil {
		t.Fatalf("add: %v", err)
	}
	dup := sample("2026-01-02", e.CreatedAt)
	dup.ActionItem = "overwrite"
	if err := p.Add(dup); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	got, err := p.Get(context.Background(), e.CreatedAt)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ActionItem != e.ActionItem {
		t.Fatalf("stored entry was modified: %q", got.ActionItem)
	}
}

func TestAddRequiresKey(t *testing.T) {
	p, _ := newTestPersistence(t)
	if err := p.Add(sample("2026-01-02", "")); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestSameDayEntriesAllowed(t *testing.T) {
	p, _ := newTestPersistence(t)
	if err := p.Add(sample("2026-01-02", "2026-01-02T08:00:00.000Z")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := p.Add(sample("2026-01-02", "2026-01-02T20:00:00.000Z")); err != nil {
		t.Fatalf("second entry on the same day: %v", err)
	}
	all, err := p.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
}

func TestAddAllIsAllOrNothing(t *testing.T) {
	p, _ := newTestPersistence(t)
	ctx := context.Background()
	existing := sample("2026-01-05", "2026-01-05T08:00:00.000Z")
	if err := p.Add(existing); err != nil {
		t.Fatalf("add: %v", err)
	}

	batch := []*entry.Entry{
		sample("2026-01-01", "2026-01-01T08:00:00.000Z"),
		sample("2026-01-05", existing.CreatedAt),
	}
	if err := p.AddAll(batch); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	all, _ := p.ListAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected store untouched, got %d entries", len(all))
	}

	inBatch := []*entry.Entry{
		sample("2026-01-01", "2026-01-01T08:00:00.000Z"),
		sample("2026-01-01", "2026-01-01T08:00:00.000Z"),
	}
	if err := p.AddAll(inBatch); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for in-batch collision, got %v", err)
	}

	ok := []*entry.Entry{
		sample("2026-01-01", "2026-01-01T08:00:00.000Z"),
		sample("2026-01-02", "2026-01-02T00:00:00.000Z-5f0c"),
	}
	if err := p.AddAll(ok); err != nil {
		t.Fatalf("add all: %v", err)
	}
	all, _ = p.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
}

func TestGetNotFound(t *testing.T) {
	p, _ := newTestPersistence(t)
	if _, err := p.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAllSkipsCorruptRecords(t *testing.T) {
	p, base := newTestPersistence(t)
	if err := p.Add(sample("2026-01-02", "2026-01-02T08:00:00.000Z")); err != nil {
		t.Fatalf("add: %v", err)
	}
	pk := keyToPathTransform("2026-01-09T08:00:00.000Z")
	dir := filepath.Join(base, entriesDir, pk.Path[0])
	if err := os.WriteFile(filepath.Join(dir, pk.FileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	all, err := p.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected the corrupt record to be skipped, got %d entries", len(all))
	}
}

func TestListAllCancelled(t *testing.T) {
	p, _ := newTestPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.ListAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	for _, key := range []string{
		"2026-01-02T08:00:00.000Z",
		"2025-12-31T00:00:00.000Z-0b8a4c9e-4a5e-4f7b-9a59-6c3f2a1d7e10",
		"x",
		"../../etc",
	} {
		pk := keyToPathTransform(key)
		if got := pathToKeyTransform(pk); got != key {
			t.Fatalf("round trip %q: got %q", key, got)
		}
	}
	if pk := keyToPathTransform("../../etc"); pk.Path[0] != miscBucket {
		t.Fatalf("expected misc bucket, got %q", pk.Path[0])
	}
}
