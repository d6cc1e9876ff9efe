package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OK and Fail are the CLI's one-line status reports.
func OK(msg string)   { fmt.Println(current.Success.Render("✔ " + msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg)) }

// ProgressBar renders a Unicode progress bar with a done/total counter.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}

// PanelStyle is the framed box used around every top-level view.
func PanelStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Panel prints lines inside a framed box using the current theme.
func Panel(lines []string) {
	fmt.Println(PanelStyle(current).Render(strings.Join(lines, "\n")))
}
