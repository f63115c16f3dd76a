package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/store"
	"tableflip.dev/northstar/pkg/theme"
)

// Service provides the journal operations shared by every command. It owns
// the store handles that the commands would otherwise keep as globals.
type Service struct {
	Persistence store.Persistence
	// Local holds legacy data awaiting migration. Optional.
	Local  store.Local
	Logger *zap.Logger
	// Now is the clock; time.Now when nil.
	Now func() time.Time
}

var ErrNoPersistence = errors.New("app: no persistence configured")

// Day describes the calendar day the journal is writing for.
type Day struct {
	Date      string    `json:"date"`
	Time      time.Time `json:"-"`
	Theme     string    `json:"theme"`
	Scripture string    `json:"scripture"`
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Today returns the date and scheduled theme for the current day.
func (s *Service) Today() Day {
	now := s.now()
	t := theme.ForDate(now)
	return Day{
		Date:      entry.FormatDate(now),
		Time:      now,
		Theme:     t.Name,
		Scripture: t.Scripture,
	}
}

// Record stores today's entry built from the given answers.
func (s *Service) Record(ctx context.Context, responses entry.Responses, actionItem string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := entry.New(s.now(), responses, actionItem)
	if err := s.Persistence.Add(e); err != nil {
		return nil, fmt.Errorf("app: record entry: %w", err)
	}
	s.log().Debug("recorded entry", zap.String("createdAt", e.CreatedAt), zap.String("theme", e.Theme))
	return e, nil
}

// Entries lists every entry, newest first.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.ListAll(ctx)
}

// History lists entries, newest first, keeping only those with the given
// theme. theme.All (or "") keeps everything.
func (s *Service) History(ctx context.Context, filter string) ([]*entry.Entry, error) {
	name, err := theme.Parse(filter)
	if err != nil {
		return nil, err
	}
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if name == theme.All {
		return all, nil
	}
	out := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if e.Theme == name {
			out = append(out, e)
		}
	}
	return out, nil
}

// Recent keeps the entries dated within the last days calendar days,
// today included. days <= 0 keeps everything.
func (s *Service) Recent(entries []*entry.Entry, days int) []*entry.Entry {
	if days <= 0 {
		return entries
	}
	now := s.now()
	since := entry.DaysBefore(now, days-1)
	until := entry.FormatDate(now)
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= since && e.Date <= until {
			out = append(out, e)
		}
	}
	return out
}

// Entry returns the entry with the given createdAt.
func (s *Service) Entry(ctx context.Context, createdAt string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Get(ctx, createdAt)
}

// Latest returns the most recently created entry, or nil for an empty
// journal.
func (s *Service) Latest(ctx context.Context) (*entry.Entry, error) {
	all, err := s.Entries(ctx)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}
