package app

import (
	"context"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/stats"
)

// Summary bundles the statistics shown with the history.
type Summary struct {
	Today   Day                 `json:"today"`
	Streak  int                 `json:"streak"`
	Total   int                 `json:"total"`
	Weekly  stats.WeeklySummary `json:"weekly"`
	Monthly []stats.Month       `json:"monthly"`
}

// Streak counts consecutive journaled days ending today.
func (s *Service) Streak(ctx context.Context) (int, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Streak(all, s.now()), nil
}

// Summary computes the streak plus the weekly and monthly summaries from a
// single read of the store.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return Summary{}, err
	}
	return s.Summarize(all), nil
}

// Summarize derives the summary from entries already read, so callers that
// also render the entries see one consistent snapshot.
func (s *Service) Summarize(all []*entry.Entry) Summary {
	now := s.now()
	return Summary{
		Today:   s.Today(),
		Streak:  stats.Streak(all, now),
		Total:   len(all),
		Weekly:  stats.Weekly(all, now),
		Monthly: stats.Monthly(all),
	}
}
