package export

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoActionItem is returned when there is no action item to schedule.
var ErrNoActionItem = errors.New("export: add an action item first")

const calendarBase = "https://calendar.google.com/calendar/render?action=TEMPLATE&text="

// CalendarURL links to a new calendar event titled with the action item.
func CalendarURL(action string) (string, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return "", ErrNoActionItem
	}
	return calendarBase + encodeComponent(action), nil
}

// encodeComponent escapes s for use as a query value, writing spaces as
// %20 and leaving the unreserved marks !'()* intact.
func encodeComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return strings.NewReplacer("%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*").Replace(escaped)
}
