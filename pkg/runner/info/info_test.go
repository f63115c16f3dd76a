package info

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv("NORTHSTAR_CONFIG_PATH", "")
	cfg := store.PathConfig(t.TempDir())
	p, err := store.Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	l, err := store.LoadLocal(cfg)
	if err != nil {
		t.Fatalf("load local: %v", err)
	}
	if err := p.AddAll([]*entry.Entry{
		{Date: "2026-01-01", CreatedAt: "2026-01-01T07:00:00.000Z"},
		{Date: "2026-01-02", CreatedAt: "2026-01-02T07:00:00.000Z"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := l.Set(store.LegacyKey, []byte("[]")); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	var out strings.Builder
	n := Info{Config: cfg, Service: &app.Service{Persistence: p, Local: l}, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{
		"NORTHSTAR_CONFIG_PATH env var not set",
		"Config.path: " + string(cfg),
		"Entries: 2",
		"newest: 2026-01-02T07:00:00.000Z",
		"oldest: 2026-01-01T07:00:00.000Z",
		"Legacy entries: pending migration",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}

func TestInfoWithoutService(t *testing.T) {
	n := Info{Config: store.PathConfig(t.TempDir()), Out: &strings.Builder{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a service")
	}
}
