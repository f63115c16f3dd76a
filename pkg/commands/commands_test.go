package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	require.NoError(t, cmd.ExecuteContext(context.Background()), "northstar %s\n%s", strings.Join(args, " "), out.String())
	return out.String()
}

func journal(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("NORTHSTAR_PATH", dir)
	t.Setenv("NORTHSTAR_CONFIG_PATH", dir)
	return dir
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"today", "write", "history", "show", "stats", "streak", "export",
		"calendar", "themes", "migrate", "mcp", "info", "completion", "version",
	} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestWriteHistoryShow(t *testing.T) {
	journal(t)

	out := run(t, "write", "--q1", "ran 5k", "--q3", "my family", "--action", "stretch after work")
	assert.Contains(t, out, "Entry saved.")

	out = run(t, "history", "--json")
	var entries []entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ran 5k", entries[0].Responses["q1"])
	assert.Equal(t, "stretch after work", entries[0].ActionItem)

	out = run(t, "show", entries[0].CreatedAt)
	assert.Contains(t, out, "my family")

	out = run(t, "streak")
	assert.Equal(t, "Current Streak: 1 day\n", out)

	out = run(t, "calendar")
	assert.Equal(t, "https://calendar.google.com/calendar/render?action=TEMPLATE&text=stretch%20after%20work\n", out)
}

func TestExportToStdout(t *testing.T) {
	journal(t)
	run(t, "write", "--q2", "email", "--action", "inbox zero")

	out := run(t, "export", "txt", "--dir", "-")
	assert.Contains(t, out, "2. email")
	assert.Contains(t, out, "Action Item:\ninbox zero")

	out = run(t, "export", "csv", "--dir", "-")
	assert.True(t, strings.HasPrefix(out, "Date,Theme,Question 1,"), out)
}

func TestExportToDir(t *testing.T) {
	journal(t)
	run(t, "write", "--q4", "patience")
	dir := filepath.Join(t.TempDir(), "out")

	out := run(t, "export", "md", "--dir", dir)
	require.True(t, strings.HasPrefix(out, "Wrote "), out)
	path := strings.TrimSpace(strings.TrimPrefix(out, "Wrote "))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "patience")
}

func TestMigrateOnStart(t *testing.T) {
	dir := journal(t)
	l, err := store.LoadLocal(store.PathConfig(dir))
	require.NoError(t, err)
	require.NoError(t, l.Set(store.LegacyKey, []byte(`[{"date":"2025-12-30","theme":"Hobbies","responses":{"q1":"guitar"},"actionItem":"restring"}]`)))

	out := run(t, "history", "--json")
	var entries []entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Hobbies", entries[0].Theme)
	assert.True(t, strings.HasPrefix(entries[0].CreatedAt, "2025-12-30T00:00:00.000Z-"), entries[0].CreatedAt)

	assert.Equal(t, "Nothing to migrate.\n", run(t, "migrate"))
}

func TestUnknownTheme(t *testing.T) {
	journal(t)

	cmd := New()
	cmd.SetArgs([]string{"history", "--theme", "gardening"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))

	// With --json the error is reported as a JSON document instead.
	run(t, "history", "--theme", "gardening", "--json")
}

func TestThemes(t *testing.T) {
	journal(t)
	out := run(t, "themes", "--on", "2026-1-2")
	assert.Contains(t, out, "Faith")
	assert.Contains(t, out, "today")
}
