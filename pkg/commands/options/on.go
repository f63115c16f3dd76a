package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`View the journal as of a date, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn returns the requested day, or nil when no date was given. A short
// date without a year means its most recent occurrence, this year or last.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	// Midday keeps the calendar day stable under any later zone shift.
	t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, now.Location())
	return &t, nil
}
