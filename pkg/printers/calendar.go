package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar grid for the month of then, highlighting the days
// present in journaled (YYYY-MM-DD keys).
func (pp *PrettyPrint) Month(then time.Time, journaled map[string]struct{}) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := then.Format("January 2006")
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	d := StartDay(then)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < DaysIn(then); i++ {
		key := first.AddDate(0, 0, i).Format("2006-01-02")
		if _, ok := journaled[key]; ok {
			_, _ = l2.Fprintf(w, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
