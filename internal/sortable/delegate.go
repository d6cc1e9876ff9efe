package sortable

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/sortable/internal/ui"
)

// row adapts one caller item to bubbles/list.Item.
type row struct {
	key   string
	label string
}

func (r row) FilterValue() string { return r.label }

func rows[T any](listName string, items []T, label func(T) string) []list.Item {
	out := make([]list.Item, 0, len(items))
	for i, it := range items {
		var l string
		if label != nil {
			l = label(it)
		}
		out = append(out, row{key: RowKey(listName, i), label: l})
	}
	return out
}

// layout is the column geometry shared by rendering and hit testing.
type layout struct {
	cursorW, handleW, editW int
}

func newLayout(t ui.Theme) layout {
	return layout{
		cursorW: ansi.StringWidth(t.Cursor),
		handleW: ansi.StringWidth(t.Handle),
		editW:   ansi.StringWidth(t.Edit),
	}
}

// handleEnd is the first column past the drag handle; the cursor marker
// counts as part of the handle.
func (l layout) handleEnd() int { return l.cursorW + 1 + l.handleW }

func (l layout) editStart(width int) int { return width - l.editW }

func (l layout) labelWidth(width int) int {
	w := width - l.handleEnd() - 1 - 1 - l.editW
	if w < 1 {
		return 1
	}
	return w
}

// delegate renders rows as: cursor, drag handle, label, edit icon.
type delegate struct {
	theme    ui.Theme
	layout   layout
	dragging bool
	over     int
}

func (d delegate) Height() int                               { return 1 }
func (d delegate) Spacing() int                              { return 0 }
func (d delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(row)
	t := d.theme

	lw := d.layout.labelWidth(m.Width())
	label := ansi.Truncate(r.label, lw, "…")
	label += strings.Repeat(" ", max(0, lw-ansi.StringWidth(label)))

	marker := strings.Repeat(" ", d.layout.cursorW)
	if index == m.Index() {
		marker = t.Selected.Render(t.Cursor)
	}
	handle := t.Muted.Render(t.Handle)
	edit := t.Accent.Render(t.Edit)

	if d.dragging && index == d.over {
		handle = t.Dragging.Render(t.Handle)
		label = t.Dragging.Render(label)
	}
	fmt.Fprintf(w, "%s %s %s %s", marker, handle, label, edit)
}
