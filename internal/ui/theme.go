package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + glyphs + borders.
// All renderers pull from Current() unless handed a theme explicitly.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Dragging, Done, Help               lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	Cursor, Handle, Edit     string
}

var current = Classic()

// SetTheme switches the process-wide theme. Unknown names fall back to classic.
func SetTheme(name string) {
	current = Named(name)
}

// Current returns the active theme.
func Current() Theme { return current }

// Named resolves a theme by name without changing the active one.
func Named(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Neon()
	case "mono":
		return Mono()
	default:
		return Classic()
	}
}

func Classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Dragging: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		BoxUnchecked: "☐", BoxChecked: "☑",
		Cursor: ">", Handle: "≡", Edit: "✎",
	}
}

func Neon() Theme {
	t := Classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Dragging = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Handle = "⠿"
	return t
}

func Mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
		Selected: plain.Reverse(true), Dragging: plain.Bold(true), Done: plain, Help: plain,

		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		Cursor: ">", Handle: "=", Edit: "e",
	}
}
