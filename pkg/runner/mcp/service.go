// Package mcp provides the Model Context Protocol server integration for
// northstar.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/export"
	"tableflip.dev/northstar/pkg/store"
)

// Service adapts the journal to transport-friendly values.
type Service struct {
	Journal *app.Service
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	CreatedAt  string            `json:"createdAt"`
	Date       string            `json:"date"`
	Theme      string            `json:"theme"`
	Scripture  string            `json:"scripture,omitempty"`
	Responses  map[string]string `json:"responses"`
	Answers    []QA              `json:"answers"`
	ActionItem string            `json:"actionItem,omitempty"`
	Calendar   string            `json:"calendarUrl,omitempty"`
}

// QA pairs a question with its answer.
type QA struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RecordOptions are the answers for a new entry.
type RecordOptions struct {
	Q1         string `json:"q1"`
	Q2         string `json:"q2"`
	Q3         string `json:"q3"`
	Q4         string `json:"q4"`
	Q5         string `json:"q5"`
	ActionItem string `json:"actionItem"`
}

func (o RecordOptions) responses() entry.Responses {
	return entry.Responses{
		"q1": o.Q1,
		"q2": o.Q2,
		"q3": o.Q3,
		"q4": o.Q4,
		"q5": o.Q5,
	}
}

func (o RecordOptions) empty() bool {
	for _, v := range o.responses() {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return strings.TrimSpace(o.ActionItem) == ""
}

// NewService wraps a journal.
func NewService(journal *app.Service) *Service {
	return &Service{Journal: journal}
}

func (s *Service) journal() (*app.Service, error) {
	if s.Journal == nil || s.Journal.Persistence == nil {
		return nil, errors.New("journal is not configured")
	}
	return s.Journal, nil
}

// Today returns the current day with its theme and streak.
func (s *Service) Today(ctx context.Context) (map[string]any, error) {
	j, err := s.journal()
	if err != nil {
		return nil, err
	}
	streak, err := j.Streak(ctx)
	if err != nil {
		return nil, err
	}
	day := j.Today()
	return map[string]any{
		"date":      day.Date,
		"theme":     day.Theme,
		"scripture": day.Scripture,
		"streak":    streak,
		"questions": entry.Prompts,
	}, nil
}

// ListEntries lists entries newest first, filtered by theme and limited to
// the last days calendar days when days > 0.
func (s *Service) ListEntries(ctx context.Context, themeFilter string, days int) ([]EntryDTO, error) {
	j, err := s.journal()
	if err != nil {
		return nil, err
	}
	entries, err := j.History(ctx, themeFilter)
	if err != nil {
		return nil, err
	}
	entries = j.Recent(entries, days)
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out, nil
}

// Entry fetches a single entry by createdAt.
func (s *Service) Entry(ctx context.Context, createdAt string) (EntryDTO, error) {
	j, err := s.journal()
	if err != nil {
		return EntryDTO{}, err
	}
	e, err := j.Entry(ctx, strings.TrimSpace(createdAt))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return EntryDTO{}, fmt.Errorf("entry %q not found", createdAt)
		}
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

// Record saves today's entry.
func (s *Service) Record(ctx context.Context, opts RecordOptions) (EntryDTO, error) {
	j, err := s.journal()
	if err != nil {
		return EntryDTO{}, err
	}
	if opts.empty() {
		return EntryDTO{}, errors.New("at least one answer or an action item is required")
	}
	e, err := j.Record(ctx, opts.responses(), opts.ActionItem)
	if err != nil {
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

// Summary returns streak and weekly and monthly summaries.
func (s *Service) Summary(ctx context.Context) (app.Summary, error) {
	j, err := s.journal()
	if err != nil {
		return app.Summary{}, err
	}
	return j.Summary(ctx)
}

func toDTO(e *entry.Entry) EntryDTO {
	dto := EntryDTO{
		CreatedAt:  e.CreatedAt,
		Date:       e.Date,
		Theme:      e.Theme,
		Scripture:  e.Scripture(),
		Responses:  make(map[string]string, len(entry.Questions)),
		ActionItem: e.ActionItem,
	}
	for i, q := range entry.Questions {
		answer := e.Responses.Answer(q)
		dto.Responses[q] = answer
		dto.Answers = append(dto.Answers, QA{Key: q, Question: entry.Prompts[i], Answer: answer})
	}
	if link, err := export.CalendarURL(e.ActionItem); err == nil {
		dto.Calendar = link
	}
	return dto
}
