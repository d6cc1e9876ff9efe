// Package dnd recognizes drag gestures over a vertical list of rows and
// reports completed drags as DropMsg values. It owns the gesture state only;
// the rows themselves belong to whoever renders them.
package dnd

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sortable/internal/reorder"
)

// DropMsg is emitted when a drag gesture completes. Group identifies the
// surface that produced it so several lists can share one program.
type DropMsg struct {
	Group        string
	RemovedIndex int
	AddedIndex   int
}

// HitFunc maps a mouse position to a row index (-1 when outside every row)
// and whether the position is on that row's drag handle.
type HitFunc func(x, y int) (index int, onHandle bool)

// KeyMap is the keyboard side of the gesture.
type KeyMap struct {
	Grab   key.Binding
	Up     key.Binding
	Down   key.Binding
	Drop   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns space to grab and drop, arrows or j/k to move and esc
// to cancel.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Grab:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Drop:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Surface tracks one drag gesture at a time.
type Surface struct {
	Group  string
	KeyMap KeyMap

	active bool
	mouse  bool // gesture started with the mouse
	from   int
	over   int
}

// New returns an idle surface whose drops are tagged with group.
func New(group string) Surface {
	return Surface{Group: group, KeyMap: DefaultKeyMap()}
}

// Active reports whether a drag is in flight.
func (s Surface) Active() bool { return s.active }

// From is the index of the grabbed row. Only meaningful while Active.
func (s Surface) From() int { return s.from }

// Over is the index the grabbed row would land on if dropped now.
func (s Surface) Over() int { return s.over }

// Begin starts a drag of row i out of n rows. Out-of-range rows are ignored.
func (s Surface) Begin(i, n int) Surface {
	if i < 0 || i >= n {
		return s
	}
	s.active, s.mouse = true, false
	s.from, s.over = i, i
	return s
}

// Cancel abandons the current drag without emitting anything.
func (s Surface) Cancel() Surface {
	s.active, s.mouse = false, false
	return s
}

// Drop ends the current drag and returns the command carrying its DropMsg.
func (s Surface) Drop() (Surface, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	msg := DropMsg{Group: s.Group, RemovedIndex: s.from, AddedIndex: s.over}
	s = s.Cancel()
	return s, func() tea.Msg { return msg }
}

// Update feeds a key or mouse message into the gesture. cursor is the row
// the keyboard currently points at and n the number of rows displayed.
// hit may be nil when mouse input is not wired.
func (s Surface) Update(msg tea.Msg, cursor, n int, hit HitFunc) (Surface, tea.Cmd) {
	if s.active && s.from >= n {
		// the grabbed row went away underneath us
		return s.Cancel(), nil
	}
	if s.active && s.over >= n {
		s.over = n - 1
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.updateKey(msg, cursor, n)
	case tea.MouseMsg:
		if hit == nil {
			return s, nil
		}
		return s.updateMouse(msg, n, hit)
	}
	return s, nil
}

func (s Surface) updateKey(msg tea.KeyMsg, cursor, n int) (Surface, tea.Cmd) {
	if !s.active {
		if key.Matches(msg, s.KeyMap.Grab) {
			return s.Begin(cursor, n), nil
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, s.KeyMap.Cancel):
		return s.Cancel(), nil
	case key.Matches(msg, s.KeyMap.Drop):
		return s.Drop()
	case key.Matches(msg, s.KeyMap.Up):
		if s.over > 0 {
			s.over--
		}
	case key.Matches(msg, s.KeyMap.Down):
		if s.over < n-1 {
			s.over++
		}
	}
	return s, nil
}

func (s Surface) updateMouse(msg tea.MouseMsg, n int, hit HitFunc) (Surface, tea.Cmd) {
	idx, onHandle := hit(msg.X, msg.Y)

	if !s.active {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && onHandle {
			s = s.Begin(idx, n)
			s.mouse = s.active
		}
		return s, nil
	}
	if !s.mouse {
		return s, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if idx >= 0 && idx < n {
			s.over = idx
		}
	case tea.MouseActionRelease:
		if idx >= 0 && idx < n {
			s.over = idx
		}
		return s.Drop()
	}
	return s, nil
}

// Preview returns the order to display while s is dragging over items.
// With no drag in flight it returns items as given.
func Preview[T any](items []T, s Surface) []T {
	if !s.active {
		return items
	}
	return reorder.Move(items, s.from, s.over)
}
