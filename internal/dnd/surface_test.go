package dnd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// rows are one line tall starting at y=0; the handle is column 0.
func rowHit(n int) HitFunc {
	return func(x, y int) (int, bool) {
		if y < 0 || y >= n {
			return -1, false
		}
		return y, x == 0
	}
}

func dropOf(t *testing.T, cmd tea.Cmd) DropMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(DropMsg)
	require.True(t, ok)
	return msg
}

func TestKeyboardDrag(t *testing.T) {
	s := New("todos")

	s, cmd := s.Update(keyMsg(" "), 0, 3, nil)
	require.Nil(t, cmd)
	require.True(t, s.Active())
	require.Equal(t, 0, s.From())

	s, _ = s.Update(keyMsg("down"), 0, 3, nil)
	s, _ = s.Update(keyMsg("j"), 0, 3, nil)
	s, _ = s.Update(keyMsg("j"), 0, 3, nil) // clamped at the last row
	require.Equal(t, 2, s.Over())
	require.Equal(t, []string{"B", "C", "A"}, Preview([]string{"A", "B", "C"}, s))

	s, cmd = s.Update(keyMsg("enter"), 0, 3, nil)
	require.False(t, s.Active())
	require.Equal(t, DropMsg{Group: "todos", RemovedIndex: 0, AddedIndex: 2}, dropOf(t, cmd))
}

func TestKeyboardCancel(t *testing.T) {
	s := New("todos")
	s, _ = s.Update(keyMsg(" "), 2, 3, nil)
	s, _ = s.Update(keyMsg("up"), 2, 3, nil)
	s, cmd := s.Update(keyMsg("esc"), 2, 3, nil)

	require.Nil(t, cmd)
	require.False(t, s.Active())
	require.Equal(t, []string{"A", "B", "C"}, Preview([]string{"A", "B", "C"}, s))
}

func TestGrabOnEmptyListIsIgnored(t *testing.T) {
	s, _ := New("todos").Update(keyMsg(" "), 0, 0, nil)
	require.False(t, s.Active())
}

func TestMouseDrag(t *testing.T) {
	s := New("todos")
	hit := rowHit(3)

	// pressing on the label is not a grab
	s, _ = s.Update(tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 0, 3, hit)
	require.False(t, s.Active())

	s, _ = s.Update(tea.MouseMsg{X: 0, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 0, 3, hit)
	require.True(t, s.Active())

	s, _ = s.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 0, 3, hit)
	s, _ = s.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 0, 3, hit)
	require.Equal(t, 0, s.Over())

	// released below the rows: dropped at the last placeholder
	s, cmd := s.Update(tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionRelease}, 0, 3, hit)
	require.False(t, s.Active())
	require.Equal(t, DropMsg{Group: "todos", RemovedIndex: 2, AddedIndex: 0}, dropOf(t, cmd))
}

func TestShrinkingListCancelsDrag(t *testing.T) {
	s := New("todos").Begin(2, 3)
	require.True(t, s.Active())

	s, cmd := s.Update(keyMsg("enter"), 0, 2, nil)
	require.Nil(t, cmd)
	require.False(t, s.Active())
}
