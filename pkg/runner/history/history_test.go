package history

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()), zap.NewNop())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	err = p.AddAll([]*entry.Entry{
		{Date: "2026-01-01", Theme: "Health/Fitness", ActionItem: "stretch", CreatedAt: "2026-01-01T07:00:00.000Z"},
		{Date: "2026-01-02", Theme: "Faith", CreatedAt: "2026-01-02T07:00:00.000Z"},
		{Date: "2026-01-13", Theme: "Health/Fitness", ActionItem: "swim", CreatedAt: "2026-01-13T07:00:00.000Z"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return &app.Service{
		Persistence: p,
		Now:         func() time.Time { return time.Date(2026, time.January, 13, 20, 0, 0, 0, time.UTC) },
	}
}

func TestHistory(t *testing.T) {
	color.NoColor = true
	var out strings.Builder
	h := History{Service: newService(t), Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "History - 3 entries\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if strings.Index(got, "2026-01-13") > strings.Index(got, "2026-01-01") {
		t.Fatalf("expected newest first:\n%s", got)
	}
}

func TestHistoryThemeAndWindow(t *testing.T) {
	color.NoColor = true
	var out strings.Builder
	h := History{Service: newService(t), Theme: "health_fitness", Days: 7, Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "History · Health/Fitness · last 1w - 1 entry\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "swim") || strings.Contains(got, "stretch") {
		t.Fatalf("unexpected rows:\n%s", got)
	}
}

func TestHistoryJSON(t *testing.T) {
	var out strings.Builder
	h := History{Service: newService(t), Theme: "faith", JSON: true, Out: &out}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	var got []entry.Entry
	if err := json.Unmarshal([]byte(out.String()), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Theme != "Faith" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestHistoryUnknownTheme(t *testing.T) {
	h := History{Service: newService(t), Theme: "gardening", Out: &strings.Builder{}}
	if err := h.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
