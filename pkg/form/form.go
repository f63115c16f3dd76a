package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/northstar/pkg/entry"
)

// ErrCancelled is returned when the user leaves the form without saving.
var ErrCancelled = errors.New("form: cancelled")

var (
	focusColor  = lipgloss.Color("212")
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	subtleStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(focusColor)
)

// Answers is what the form collected.
type Answers struct {
	Responses  entry.Responses
	ActionItem string
}

// Model is a tea.Model with one line input per question plus the action
// item. Enter moves to the next field and submits from the last one.
type Model struct {
	title    string
	subtitle string
	labels   []string
	inputs   []textinput.Model
	focus    int

	submitted bool
	cancelled bool
}

// New builds the form. prompts label q1..q5; missing prompts fall back to
// the question number.
func New(title, subtitle string, prompts []string) *Model {
	m := &Model{title: title, subtitle: subtitle}
	for i := range entry.Questions {
		label := fmt.Sprintf("Q%d", i+1)
		if i < len(prompts) {
			label = fmt.Sprintf("Q%d. %s", i+1, prompts[i])
		}
		m.labels = append(m.labels, label)
		m.inputs = append(m.inputs, newInput("…"))
	}
	m.labels = append(m.labels, "Action Item")
	m.inputs = append(m.inputs, newInput("One thing to do tomorrow"))
	m.inputs[0].Focus()
	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.Width = 72
	return in
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter", "tab", "down":
			if key.String() == "enter" && m.focus == len(m.inputs)-1 {
				m.submitted = true
				return m, tea.Quit
			}
			return m, m.move(1)
		case "shift+tab", "up":
			return m, m.move(-1)
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) tea.Cmd {
	next := m.focus + delta
	if next < 0 || next >= len(m.inputs) {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = next
	return m.inputs[m.focus].Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(subtleStyle.Render(m.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = activeStyle
		}
		b.WriteString(style.Render(m.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(subtleStyle.Render("enter next/save · shift+tab back · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Answers returns the current field values.
func (m *Model) Answers() Answers {
	a := Answers{Responses: make(entry.Responses, len(entry.Questions))}
	for i, q := range entry.Questions {
		a.Responses[q] = strings.TrimSpace(m.inputs[i].Value())
	}
	a.ActionItem = strings.TrimSpace(m.inputs[len(m.inputs)-1].Value())
	return a
}

// Submitted reports whether the form was completed.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Run shows the form on the given terminal streams until it is submitted
// or cancelled.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) (Answers, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return Answers{}, fmt.Errorf("form: %w", err)
	}
	if !m.submitted {
		return Answers{}, ErrCancelled
	}
	return m.Answers(), nil
}
