// Package tui is the interactive front end: it owns the item list and hosts
// a sortable list widget as a controlled view over it.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sortable/internal/model"
	"github.com/idilsaglam/sortable/internal/sortable"
	"github.com/idilsaglam/sortable/internal/store"
	"github.com/idilsaglam/sortable/internal/ui"
	"github.com/idilsaglam/sortable/internal/ui/button"
)

// Options configure an interactive session.
type Options struct {
	DataPath string
	ListName string
	Theme    ui.Theme
	Mouse    bool
	Log      *slog.Logger
}

// ------- messages -------

type itemsLoadedMsg struct {
	items []model.Item
	err   error
}

type reorderedMsg struct{ items []model.Item }

type editRequestedMsg struct{ index int }

type addRequestedMsg struct{ items []model.Item }

func loadItems(path string) tea.Cmd {
	return func() tea.Msg {
		items, err := store.Load(path)
		return itemsLoadedMsg{items: items, err: err}
	}
}

// ------- model -------

type modelTUI struct {
	opt   Options
	log   *slog.Logger
	list  sortable.Model[model.Item]
	help  help.Model
	keys  keyMap
	items []model.Item // nil until loaded
	err   error

	changed bool

	// Inline add / edit share one text input
	adding    bool
	editing   bool
	editIndex int
	ti        textinput.Model
	inputErr  string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *model.Item

	width, height int
}

type keyMap struct {
	Toggle key.Binding
	Delete key.Binding
	Undo   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "done")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newModel(opt Options) modelTUI {
	if opt.Log == nil {
		opt.Log = slog.New(slog.DiscardHandler)
	}
	t := opt.Theme

	label := func(it model.Item) string {
		if it.Done {
			return t.Success.Render(t.BoxChecked) + " " + t.Done.Render(it.Label())
		}
		return t.Muted.Render(t.BoxUnchecked) + " " + it.Label()
	}

	list := sortable.New(sortable.Config[model.Item]{
		ListName: opt.ListName,
		Label:    label,
		OnReorder: func(items []model.Item) tea.Cmd {
			return func() tea.Msg { return reorderedMsg{items: items} }
		},
		OnEdit: func(i int) tea.Cmd {
			return func() tea.Msg { return editRequestedMsg{index: i} }
		},
		OnAdd: func(items []model.Item) tea.Cmd {
			return func() tea.Msg { return addRequestedMsg{items: items} }
		},
		AddVariant: button.Primary,
		Theme:      &t,
	})

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	h := help.New()
	h.Styles.ShortKey = t.Help
	h.Styles.ShortDesc = t.Help

	m := modelTUI{
		opt:    opt,
		log:    opt.Log,
		list:   list,
		help:   h,
		keys:   defaultKeys(),
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.layout()
	return m
}

// Run starts the interactive list and persists changes when quitting.
func Run(opt Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(newModel(opt), progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return nil
	}
	if fm.err != nil {
		return fm.err
	}
	if fm.changed {
		if err := fm.save(); err != nil {
			return err
		}
		ui.OK("saved")
	}
	return nil
}

func (m modelTUI) save() error {
	if err := store.Save(m.opt.DataPath, m.items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	m.log.Info("saved", "path", m.opt.DataPath, "items", len(m.items))
	return nil
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd {
	return tea.Batch(m.list.Init(), loadItems(m.opt.DataPath))
}

const headerLines = 2

// innerWidth is the panel's content width: border and padding take two
// columns on each side.
func (m modelTUI) innerWidth() int { return max(10, m.width-4) }

func (m *modelTUI) layout() {
	inputLines := 0
	if m.adding || m.editing {
		inputLines = 4
	}
	inner := m.innerWidth()
	// header above, help below
	m.list.SetSize(inner, max(1, m.height-2-headerLines-1-inputLines))
	m.list.SetOrigin(2, 1+headerLines)
	m.help.Width = inner
	// input box border and padding, the prompt and the trailing cursor
	m.ti.Width = max(1, inner-4-len(m.ti.Prompt)-1)
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("load: %w", msg.err)
			return m, tea.Quit
		}
		m.items = msg.items
		m.log.Debug("items loaded", "count", len(m.items))
		return m, nil

	case reorderedMsg:
		m.items = msg.items
		m.changed = true
		m.log.Debug("reordered", "list", m.opt.ListName)
		return m, nil

	case editRequestedMsg:
		return m.startEdit(msg.index), textinput.Blink

	case addRequestedMsg:
		return m.startAdd(), textinput.Blink
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case kmsg.String() == "ctrl+c":
			return m, tea.Quit
		case m.list.Dragging():
			// the widget owns every other key mid-drag
		case key.Matches(kmsg, m.keys.Quit):
			return m, tea.Quit
		case m.items == nil:
		case key.Matches(kmsg, m.keys.Toggle):
			return m.toggle(), nil
		case key.Matches(kmsg, m.keys.Delete):
			return m.remove(), nil
		case key.Matches(kmsg, m.keys.Undo):
			return m.undo(), nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg, m.items)
	return m, cmd
}

func (m modelTUI) startEdit(i int) modelTUI {
	if i < 0 || i >= len(m.items) {
		return m
	}
	m.editing, m.editIndex, m.inputErr = true, i, ""
	m.ti.SetValue(m.items[i].Title)
	m.ti.CursorEnd()
	m.ti.Placeholder = "Edit item title..."
	m.ti.Focus()
	m.layout()
	return m
}

func (m modelTUI) startAdd() modelTUI {
	m.adding, m.inputErr = true, ""
	m.ti.SetValue("")
	m.ti.Placeholder = "New item title..."
	m.ti.Focus()
	m.layout()
	return m
}

func (m modelTUI) closeInput() modelTUI {
	m.adding, m.editing, m.inputErr = false, false, ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.layout()
	return m
}

func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			next := make([]model.Item, len(m.items), len(m.items)+1)
			copy(next, m.items)
			if m.adding {
				next = append(next, model.New(title))
			} else if m.editIndex < len(next) {
				next[m.editIndex].Title = title
			}
			m.items = next
			m.changed = true
			return m.closeInput(), nil
		case "esc":
			return m.closeInput(), nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) toggle() modelTUI {
	i := m.list.Cursor()
	if i < 0 || i >= len(m.items) {
		return m
	}
	next := append([]model.Item(nil), m.items...)
	next[i].Done = !next[i].Done
	m.items, m.changed = next, true
	return m
}

func (m modelTUI) remove() modelTUI {
	i := m.list.Cursor()
	if i < 0 || i >= len(m.items) {
		return m
	}
	tmp := m.items[i]
	m.undoItem, m.undoIndex, m.canUndo = &tmp, i, true

	next := make([]model.Item, 0, len(m.items)-1)
	next = append(next, m.items[:i]...)
	next = append(next, m.items[i+1:]...)
	m.items, m.changed = next, true
	return m
}

func (m modelTUI) undo() modelTUI {
	if !m.canUndo || m.undoItem == nil {
		return m
	}
	idx := min(max(m.undoIndex, 0), len(m.items))
	next := make([]model.Item, 0, len(m.items)+1)
	next = append(next, m.items[:idx]...)
	next = append(next, *m.undoItem)
	next = append(next, m.items[idx:]...)
	m.items, m.changed = next, true
	m.canUndo, m.undoItem = false, nil
	return m
}

func (m modelTUI) View() string {
	t := m.opt.Theme
	dn, pn := model.Stats(m.items)
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(m.opt.ListName),
		t.Success.Render("✔"), dn,
		t.Pending.Render("•"), pn,
		t.Accent.Render("Total"), len(m.items),
	)
	progress := t.Muted.Render(ui.ProgressBar(dn, dn+pn, min(28, m.innerWidth()-12)))

	sections := []string{header, progress, m.list.View(m.items)}
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += " - " + t.Error.Render(m.inputErr)
		}
		box := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		sections = append(sections, box.Render(title+"\n"+m.ti.View()))
	}

	bindings := append(m.list.ShortHelp(m.items), m.keys.Toggle, m.keys.Delete, m.keys.Undo, m.keys.Quit)
	sections = append(sections, m.help.ShortHelpView(bindings))
	// a wrapped line would shift every row under the mouse
	body := lipgloss.NewStyle().MaxWidth(m.innerWidth()).Render(strings.Join(sections, "\n"))
	return ui.PanelStyle(t).Render(body)
}
