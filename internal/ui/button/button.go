// Package button is a thin label-plus-click wrapper rendered with lipgloss.
package button

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Variant picks the button's look.
type Variant int

const (
	Text Variant = iota
	Primary
)

var (
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	focusStyle   = lipgloss.NewStyle().Underline(true)
	offStyle     = lipgloss.NewStyle().Faint(true)
)

// Model is a single-line button. Activation is left to the owner: it checks
// Hit for clicks and its own key bindings for the keyboard.
// A disabled button still takes its space but never reports a hit.
type Model struct {
	Label    string
	Variant  Variant
	Focused  bool
	Disabled bool
}

func New(label string, v Variant) Model {
	return Model{Label: label, Variant: v}
}

func (m Model) View() string {
	st := textStyle
	if m.Variant == Primary {
		st = primaryStyle
	}
	switch {
	case m.Disabled:
		st = offStyle
		if m.Variant == Primary {
			st = st.Padding(0, 1)
		}
	case m.Focused:
		st = st.Inherit(focusStyle)
	}
	return st.Render(m.Label)
}

// Width is the rendered width in cells.
func (m Model) Width() int { return ansi.StringWidth(m.View()) }

// Hit reports whether column x (relative to the button's left edge) is on it.
func (m Model) Hit(x int) bool { return !m.Disabled && x >= 0 && x < m.Width() }
