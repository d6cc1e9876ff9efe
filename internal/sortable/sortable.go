// Package sortable is a controlled, drag-to-reorder list widget for
// bubbletea programs.
//
// The widget never owns the items it shows. Every Update and View call is
// handed the caller's current slice, and changes are proposed back through
// the callbacks in Config:
//
//	OnReorder(newItems)  after a completed drag
//	OnEdit(index)        when a row's edit icon is activated
//	OnAdd(items)         when the optional Add button is activated
//
// A nil slice means the items are not available yet and renders a spinner.
// Any non-nil slice, empty included, renders the list.
package sortable

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sortable/internal/dnd"
	"github.com/idilsaglam/sortable/internal/reorder"
	"github.com/idilsaglam/sortable/internal/ui"
	"github.com/idilsaglam/sortable/internal/ui/button"
)

// Config is everything the owner supplies. Label, OnReorder and OnEdit are
// expected; OnAdd is optional and controls whether the Add button exists.
type Config[T any] struct {
	ListName string
	Label    func(T) string

	OnReorder func(items []T) tea.Cmd
	OnEdit    func(index int) tea.Cmd
	OnAdd     func(items []T) tea.Cmd

	AddLabel   string         // defaults to "Add"
	AddVariant button.Variant // defaults to button.Text
	Theme      *ui.Theme      // defaults to ui.Current()
}

// KeyMap holds the widget's own bindings. Navigation and drag keys belong to
// the inner list and the drag surface.
type KeyMap struct {
	Add   key.Binding
	Edit  key.Binding
	Focus key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:  key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	}
}

// Model is the ReorderableList. Its own state is limited to view concerns:
// cursor, drag gesture, spinner frame and geometry.
type Model[T any] struct {
	cfg    Config[T]
	KeyMap KeyMap

	theme   ui.Theme
	layout  layout
	list    list.Model
	spinner spinner.Model
	ticking bool
	add     button.Model
	drag    dnd.Surface

	width, height    int
	originX, originY int
}

// New builds a widget with the given configuration. The owner still has to
// call SetSize and SetOrigin once it knows its own layout.
func New[T any](cfg Config[T]) Model[T] {
	theme := ui.Current()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	if cfg.AddLabel == "" {
		cfg.AddLabel = "Add"
	}

	lay := newLayout(theme)
	l := list.New(nil, delegate{theme: theme, layout: lay}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.PaginationStyle = theme.Help
	l.Styles.NoItems = theme.Muted
	// the owner decides when to quit
	l.DisableQuitKeybindings()

	m := Model[T]{
		cfg:     cfg,
		KeyMap:  DefaultKeyMap(),
		theme:   theme,
		layout:  lay,
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Accent)),
		ticking: true,
		add:     button.New(cfg.AddLabel, cfg.AddVariant),
		drag:    dnd.New(cfg.ListName),
	}
	m.SetSize(40, 10)
	return m
}

// Init starts the loading spinner. It stops on its own once items arrive.
func (m Model[T]) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetSize sets the outer dimensions, Add button line included.
func (m *Model[T]) SetSize(width, height int) {
	m.width, m.height = width, height
	m.list.SetSize(width, max(1, height-m.addLines()))
}

// SetOrigin tells the widget where its top-left corner sits on screen so
// mouse coordinates can be translated.
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Loading reports whether items are still unavailable.
func Loading[T any](items []T) bool { return items == nil }

// Cursor is the index of the highlighted row in the displayed order.
func (m Model[T]) Cursor() int { return m.list.Index() }

// Dragging reports whether a drag gesture is in flight.
func (m Model[T]) Dragging() bool { return m.drag.Active() }

// AddFocused reports whether the Add button holds keyboard focus.
func (m Model[T]) AddFocused() bool { return m.add.Focused }

// ShortHelp lists the bindings that apply to items. It reads nothing from the
// inner list, so it is accurate before the first Update with those items.
func (m Model[T]) ShortHelp(items []T) []key.Binding {
	has := len(items) > 0
	up, down := m.list.KeyMap.CursorUp, m.list.KeyMap.CursorDown
	grab, edit := m.drag.KeyMap.Grab, m.KeyMap.Edit
	for _, b := range []*key.Binding{&up, &down, &grab, &edit} {
		b.SetEnabled(has)
	}
	bs := []key.Binding{up, down, grab, edit}
	if m.cfg.OnAdd != nil {
		add, focus := m.KeyMap.Add, m.KeyMap.Focus
		add.SetEnabled(!Loading(items))
		focus.SetEnabled(!Loading(items))
		bs = append(bs, add, focus)
	}
	return bs
}

func (m Model[T]) addLines() int {
	if m.cfg.OnAdd != nil {
		return 1
	}
	return 0
}

// sync points the list widget at the caller's current items.
func (m *Model[T]) sync(items []T) {
	m.list.SetItems(rows(m.cfg.ListName, items, m.cfg.Label))
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// Update handles msg against the caller's current items and returns any
// command produced by the callbacks.
func (m Model[T]) Update(msg tea.Msg, items []T) (Model[T], tea.Cmd) {
	if Loading(items) {
		return m.updateLoading(msg)
	}
	m.sync(items)

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if msg.ID == m.spinner.ID() {
			m.ticking = false
		}
		return m, nil

	case dnd.DropMsg:
		if msg.Group != m.cfg.ListName {
			return m, nil
		}
		return m.drop(msg, items)

	case tea.KeyMsg:
		return m.updateKey(msg, items)

	case tea.MouseMsg:
		return m.updateMouse(msg, items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateLoading keeps the spinner alive. The Add button is shown disabled
// during loading, so add keys and clicks are dropped here.
func (m Model[T]) updateLoading(msg tea.Msg) (Model[T], tea.Cmd) {
	m.drag = m.drag.Cancel()
	m.add.Focused = false
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	if !m.ticking {
		m.ticking = true
		return m, m.spinner.Tick
	}
	return m, nil
}

func (m Model[T]) drop(msg dnd.DropMsg, items []T) (Model[T], tea.Cmd) {
	if !reorder.InRange(len(items), msg.RemovedIndex, msg.AddedIndex) {
		return m, nil
	}
	next := reorder.Move(items, msg.RemovedIndex, msg.AddedIndex)
	m.list.Select(msg.AddedIndex)
	if m.cfg.OnReorder == nil {
		return m, nil
	}
	return m, m.cfg.OnReorder(next)
}

func (m Model[T]) edit(index int, items []T) tea.Cmd {
	if index < 0 || index >= len(items) || m.cfg.OnEdit == nil {
		return nil
	}
	return m.cfg.OnEdit(index)
}

func (m Model[T]) updateKey(msg tea.KeyMsg, items []T) (Model[T], tea.Cmd) {
	var cmd tea.Cmd
	if m.drag.Active() {
		from := m.drag.From()
		m.drag, cmd = m.drag.Update(msg, m.list.Index(), len(items), nil)
		switch {
		case m.drag.Active():
			m.list.Select(m.drag.Over())
		case cmd == nil:
			m.list.Select(from) // cancelled
		}
		return m, cmd
	}

	if m.add.Focused {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return m, m.cfg.OnAdd(items)
		}
		// any other key hands focus back to the rows
		m.add.Focused = false
		if key.Matches(msg, m.KeyMap.Focus) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.KeyMap.Add):
		if m.cfg.OnAdd != nil {
			return m, m.cfg.OnAdd(items)
		}
		return m, nil
	case key.Matches(msg, m.KeyMap.Focus):
		m.add.Focused = m.cfg.OnAdd != nil
		return m, nil
	case key.Matches(msg, m.KeyMap.Edit):
		return m, m.edit(m.list.Index(), items)
	case key.Matches(msg, m.drag.KeyMap.Grab):
		m.drag, cmd = m.drag.Update(msg, m.list.Index(), len(items), nil)
		return m, cmd
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// hit resolves widget-relative coordinates to a row.
func (m Model[T]) hit(n int) dnd.HitFunc {
	return func(x, y int) (int, bool) {
		r := y - m.addLines()
		if x < 0 || x >= m.width || r < 0 || r >= m.list.Paginator.PerPage {
			return -1, false
		}
		idx := m.list.Paginator.Page*m.list.Paginator.PerPage + r
		if idx >= n {
			return -1, false
		}
		return idx, x < m.layout.handleEnd()
	}
}

func (m Model[T]) updateMouse(msg tea.MouseMsg, items []T) (Model[T], tea.Cmd) {
	local := msg
	local.X -= m.originX
	local.Y -= m.originY
	hit := m.hit(len(items))

	if m.drag.Active() {
		var cmd tea.Cmd
		m.drag, cmd = m.drag.Update(local, m.list.Index(), len(items), hit)
		if m.drag.Active() {
			m.list.Select(m.drag.Over())
		}
		return m, cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.CursorUp()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.list.CursorDown()
		return m, nil
	}
	if local.Action != tea.MouseActionPress || local.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.cfg.OnAdd != nil && local.Y == 0 && m.add.Hit(local.X) {
		return m, m.cfg.OnAdd(items)
	}

	idx, onHandle := hit(local.X, local.Y)
	if idx < 0 {
		return m, nil
	}
	m.list.Select(idx)
	switch {
	case local.X >= m.layout.editStart(m.width)-1:
		return m, m.edit(idx, items)
	case onHandle:
		var cmd tea.Cmd
		m.drag, cmd = m.drag.Update(local, idx, len(items), hit)
		return m, cmd
	}
	return m, nil
}

// View renders the Add line, when configured, above either the spinner or
// the rows in their previewed order.
func (m Model[T]) View(items []T) string {
	var sections []string
	if m.cfg.OnAdd != nil {
		add := m.add
		add.Disabled = Loading(items)
		sections = append(sections, add.View())
	}

	if Loading(items) {
		spin := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.spinner.View())
		sections = append(sections, spin)
		return strings.Join(sections, "\n")
	}

	l := m.list
	l.SetItems(rows(m.cfg.ListName, dnd.Preview(items, m.drag), m.cfg.Label))
	l.SetDelegate(delegate{
		theme:    m.theme,
		layout:   m.layout,
		dragging: m.drag.Active(),
		over:     m.drag.Over(),
	})
	sections = append(sections, l.View())
	return strings.Join(sections, "\n")
}
