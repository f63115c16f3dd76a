package printers

import (
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const barWidth = 20

var (
	lowColor, _  = colorful.Hex("#d7263d")
	highColor, _ = colorful.Hex("#2e933c")
)

// Profile is the colour support of w, or termenv.Ascii when colour is
// switched off.
func Profile(w io.Writer) termenv.Profile {
	if color.NoColor {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).Profile
}

// MarkdownStyle picks the glamour style that suits w.
func MarkdownStyle(w io.Writer) string {
	out := termenv.NewOutput(w)
	if color.NoColor || out.Profile == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Bar draws a meter filled to ratio, tinted from red at empty to green at
// full.
func Bar(ratio float64, p termenv.Profile) string {
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * barWidth))
	s := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if p == termenv.Ascii {
		return s
	}
	c := lowColor.BlendLuv(highColor, ratio).Clamped()
	return termenv.String(s).Foreground(p.Color(c.Hex())).String()
}
