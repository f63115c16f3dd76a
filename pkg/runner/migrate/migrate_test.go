package migrate

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/store"
)

func newService(t *testing.T, legacy string) *app.Service {
	t.Helper()
	cfg := store.PathConfig(t.TempDir())
	p, err := store.Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	l, err := store.LoadLocal(cfg)
	if err != nil {
		t.Fatalf("load local: %v", err)
	}
	if legacy != "" {
		if err := l.Set(store.LegacyKey, []byte(legacy)); err != nil {
			t.Fatalf("seed legacy: %v", err)
		}
	}
	return &app.Service{Persistence: p, Local: l}
}

func run(t *testing.T, svc *app.Service, json bool) string {
	t.Helper()
	var out strings.Builder
	m := Migrate{Service: svc, JSON: json, Out: &out}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return out.String()
}

func TestMigrate(t *testing.T) {
	svc := newService(t, `[{"date":"2026-01-01","theme":"Health/Fitness","responses":{"q1":"ran"},"actionItem":"stretch"}]`)
	if got := run(t, svc, false); !strings.Contains(got, "(1 migrated)") {
		t.Fatalf("unexpected output %q", got)
	}
	if got := run(t, svc, false); got != "Nothing to migrate.\n" {
		t.Fatalf("expected second run to be a no-op, got %q", got)
	}
}

func TestMigrateDiscarded(t *testing.T) {
	svc := newService(t, `{not json`)
	if got := run(t, svc, false); !strings.Contains(got, "discarded") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMigrateJSON(t *testing.T) {
	svc := newService(t, "")
	if got := run(t, svc, true); !strings.Contains(got, `"migrated": 0`) {
		t.Fatalf("unexpected output %q", got)
	}
}
