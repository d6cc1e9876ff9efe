package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sortable/internal/dnd"
	"github.com/idilsaglam/sortable/internal/model"
	"github.com/idilsaglam/sortable/internal/store"
	"github.com/idilsaglam/sortable/internal/ui"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

// send feeds msg to m and then every message its command chain produces,
// skipping batches and ticks that would block or loop.
func send(t *testing.T, m modelTUI, msg tea.Msg) modelTUI {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(modelTUI)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case reorderedMsg, editRequestedMsg, addRequestedMsg, dnd.DropMsg, itemsLoadedMsg:
		return send(t, m, out)
	}
	return m
}

func loaded(t *testing.T, titlesIn ...string) (modelTUI, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	items := make([]model.Item, 0, len(titlesIn))
	for _, s := range titlesIn {
		items = append(items, model.New(s))
	}
	require.NoError(t, store.Save(path, items))

	m := newModel(Options{DataPath: path, ListName: "todos", Theme: ui.Mono()})
	require.Nil(t, m.items)
	m = send(t, m, loadItems(path)())
	return m, path
}

func TestLoadThenReorderAndSave(t *testing.T) {
	m, path := loaded(t, "A", "B", "C")
	require.Equal(t, []string{"A", "B", "C"}, titles(m.items))
	require.False(t, m.changed)

	m = send(t, m, keyMsg(" "))
	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg(" "))

	require.Equal(t, []string{"B", "C", "A"}, titles(m.items))
	require.True(t, m.changed)

	require.NoError(t, m.save())
	saved, err := store.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "A"}, titles(saved))
}

func TestQuitKeyIsIgnoredMidDrag(t *testing.T) {
	m, _ := loaded(t, "A", "B")
	m = send(t, m, keyMsg(" "))
	require.True(t, m.list.Dragging())

	next, cmd := m.Update(keyMsg("q"))
	require.Nil(t, cmd)
	require.True(t, next.(modelTUI).list.Dragging())

	_, cmd = m.Update(keyMsg("esc"))
	require.Nil(t, cmd, "esc cancels the drag instead of quitting")
}

func TestEditFlow(t *testing.T) {
	m, _ := loaded(t, "A", "B")
	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("e"))
	require.True(t, m.editing)
	require.Equal(t, 1, m.editIndex)
	require.Equal(t, "B", m.ti.Value())

	m.ti.SetValue("Bee")
	m = send(t, m, keyMsg("enter"))
	require.False(t, m.editing)
	require.Equal(t, []string{"A", "Bee"}, titles(m.items))
}

func TestAddRejectsEmptyThenAppends(t *testing.T) {
	m, _ := loaded(t, "A")
	m = send(t, m, keyMsg("a"))
	require.True(t, m.adding)

	m = send(t, m, keyMsg("enter"))
	require.True(t, m.adding)
	require.Equal(t, "Title cannot be empty", m.inputErr)

	m.ti.SetValue("  Buy milk ")
	m = send(t, m, keyMsg("enter"))
	require.False(t, m.adding)
	require.Equal(t, []string{"A", "Buy milk"}, titles(m.items))
	require.NotEmpty(t, m.items[1].ID)
}

func TestToggleDeleteUndo(t *testing.T) {
	m, _ := loaded(t, "A", "B", "C")
	m = send(t, m, keyMsg("j"))

	m = send(t, m, keyMsg("x"))
	require.True(t, m.items[1].Done)

	m = send(t, m, keyMsg("d"))
	require.Equal(t, []string{"A", "C"}, titles(m.items))

	m = send(t, m, keyMsg("u"))
	require.Equal(t, []string{"A", "B", "C"}, titles(m.items))
	require.True(t, m.items[1].Done)
	require.False(t, m.canUndo)
}

func TestViewShowsLoadingUntilItemsArrive(t *testing.T) {
	m := newModel(Options{DataPath: "unused.json", ListName: "todos", Theme: ui.Mono()})
	require.NotContains(t, m.View(), "No items")

	m = send(t, m, itemsLoadedMsg{items: []model.Item{}})
	require.Contains(t, m.View(), "No items")
}

func TestFrameFitsNarrowWindows(t *testing.T) {
	for _, width := range []int{80, 60, 40} {
		m, _ := loaded(t, "A fairly long first item title", "B", "C")
		m = send(t, m, tea.WindowSizeMsg{Width: width, Height: 20})

		for _, line := range strings.Split(m.View(), "\n") {
			require.LessOrEqual(t, lipgloss.Width(line), width, "width %d: %q", width, line)
		}

		// the edit box stays inside the frame too
		m = send(t, m, keyMsg("e"))
		require.True(t, m.editing)
		require.LessOrEqual(t, lipgloss.Width(m.View()), width)
	}
}

func TestHelpListsNavigationRightAfterLoad(t *testing.T) {
	m, _ := loaded(t, "A", "B")
	view := m.View()
	require.Contains(t, view, "up")
	require.Contains(t, view, "grab")
	require.Contains(t, view, "edit")
}

func TestLabelsComeFromItems(t *testing.T) {
	m, _ := loaded(t, "Buy milk")
	m = send(t, m, keyMsg("x"))
	require.True(t, m.items[0].Done)
	require.Contains(t, m.View(), m.items[0].Label())
}
