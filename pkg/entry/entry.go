package entry

import (
	"strings"
	"time"

	"tableflip.dev/northstar/pkg/theme"
)

// Questions are the response keys every entry answers, in display order.
var Questions = []string{"q1", "q2", "q3", "q4", "q5"}

// Responses maps a question key to the written answer.
type Responses map[string]string

// Answer returns the response for key, or "" when unanswered.
func (r Responses) Answer(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Ordered returns the answers for q1..q5.
func (r Responses) Ordered() []string {
	out := make([]string, len(Questions))
	for i, q := range Questions {
		out[i] = r.Answer(q)
	}
	return out
}

// Entry is one day's reflection. CreatedAt identifies the record; once
// stored an entry is never changed.
type Entry struct {
	Date       string    `json:"date"`
	Theme      string    `json:"theme"`
	Responses  Responses `json:"responses"`
	ActionItem string    `json:"actionItem"`
	CreatedAt  string    `json:"createdAt"`
}

// New builds the entry for the day of now, with the theme scheduled for it.
func New(now time.Time, responses Responses, actionItem string) *Entry {
	r := make(Responses, len(Questions))
	for _, q := range Questions {
		r[q] = strings.TrimSpace(responses.Answer(q))
	}
	return &Entry{
		Date:       FormatDate(now),
		Theme:      theme.ForDate(now).Name,
		Responses:  r,
		ActionItem: strings.TrimSpace(actionItem),
		CreatedAt:  FormatCreated(now),
	}
}

// Scripture is the reference paired with the entry's theme.
func (e *Entry) Scripture() string {
	return theme.Scripture(e.Theme)
}

func (e *Entry) Title() string {
	return e.Date + " — " + e.Theme
}

// Day parses Date as a calendar day at UTC midnight.
func (e *Entry) Day() (time.Time, error) {
	return ParseDate(e.Date)
}

// Prompts are the reflection questions behind q1..q5.
var Prompts = []string{
	"What did I do today that moved me toward this focus?",
	"Where did I fall short, and what got in the way?",
	"What am I grateful for today?",
	"What did I learn or notice?",
	"What will I do differently tomorrow?",
}
