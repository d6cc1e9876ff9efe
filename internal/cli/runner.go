package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/sortable/internal/config"
	"github.com/idilsaglam/sortable/internal/model"
	"github.com/idilsaglam/sortable/internal/reorder"
	"github.com/idilsaglam/sortable/internal/store"
	"github.com/idilsaglam/sortable/internal/tui"
	"github.com/idilsaglam/sortable/internal/ui"
)

// Options carry the resolved configuration into every subcommand.
type Options struct {
	Config config.Config
	Log    *slog.Logger
}

func (o Options) log() *slog.Logger {
	if o.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Log
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]
	opt.log().Debug("command", "name", cmd, "args", a)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: sortable add <title...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "))

	case "mv":
		if len(a) != 2 {
			ui.Fail("usage: sortable mv <from> <to>")
			return 2
		}
		from, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("mv: not a number: " + a[0])
			return 2
		}
		to, err := strconv.Atoi(a[1])
		if err != nil {
			ui.Fail("mv: not a number: " + a[1])
			return 2
		}
		return doMove(opt, from, to)

	case "done":
		n, code := oneIndex("done", a)
		if code != 0 {
			return code
		}
		return doToggle(opt, n)

	case "rm":
		n, code := oneIndex("rm", a)
		if code != 0 {
			return code
		}
		return doRemove(opt, n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func oneIndex(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail(fmt.Sprintf("usage: sortable %s <index>", cmd))
		return 0, 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return 0, 2
	}
	return n, 0
}

func PrintHelp() {
	fmt.Printf(`sortable - a reorderable list in your terminal

Usage:
  sortable [flags] <subcommand> [args]

Subcommands:
  ls                 Interactive list: drag to reorder, edit, add
  add <title...>     Add a new item (title can be multiple words)
  mv <from> <to>     Move the item at 1-based index <from> to <to>
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index

Flags:
  --config <file>    Config file (default $HOME/.config/sortable/config.yaml)
  --data <file>      List file, .json or .yaml (default ./todos.json)
  --theme <name>     classic | neon | mono
  --mouse            Enable mouse drag and click (default true)
  --group            Group non-interactive output by pending/done
  --log-file <file>  Write a debug log

Examples:
  sortable add "Buy milk"
  sortable ls
  sortable mv 3 1
  sortable done 2
`)
}

// -------------- subcommand impls ----------------

func load(opt Options) ([]model.Item, bool) {
	items, err := store.Load(opt.Config.Data.Path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, false
	}
	return items, true
}

func save(opt Options, items []model.Item) bool {
	if err := store.Save(opt.Config.Data.Path, items); err != nil {
		ui.Fail("save: " + err.Error())
		return false
	}
	opt.log().Info("saved", "path", opt.Config.Data.Path, "items", len(items))
	return true
}

func checkIndex(userIndex int, items []model.Item) bool {
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `sortable ls` to see valid indexes"))
		return false
	}
	return true
}

func doList(opt Options) int {
	// Non-interactive output when stdout is not a terminal.
	if !isTTY() {
		items, ok := load(opt)
		if !ok {
			return 1
		}
		printList(items, opt.Config.UI.Group)
		return 0
	}
	err := tui.Run(tui.Options{
		DataPath: opt.Config.Data.Path,
		ListName: opt.Config.List.Name,
		Theme:    ui.Current(),
		Mouse:    opt.Config.UI.Mouse,
		Log:      opt.log(),
	})
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(opt Options, title string) int {
	items, ok := load(opt)
	if !ok {
		return 1
	}
	title = strings.TrimSpace(title)
	if title == "" {
		ui.Fail("add: empty title")
		return 2
	}
	items = append(items, model.New(title))
	if !save(opt, items) {
		return 1
	}
	ui.OK("added")
	return 0
}

func doMove(opt Options, from, to int) int {
	items, ok := load(opt)
	if !ok {
		return 1
	}
	if !checkIndex(from, items) || !checkIndex(to, items) {
		return 2
	}
	items = reorder.Move(items, from-1, to-1)
	if !save(opt, items) {
		return 1
	}
	ui.OK("moved")
	return 0
}

func doToggle(opt Options, userIndex int) int {
	items, ok := load(opt)
	if !ok {
		return 1
	}
	if !checkIndex(userIndex, items) {
		return 2
	}
	idx := userIndex - 1
	items[idx].Done = !items[idx].Done
	if !save(opt, items) {
		return 1
	}
	ui.OK("toggled")
	return 0
}

func doRemove(opt Options, userIndex int) int {
	items, ok := load(opt)
	if !ok {
		return 1
	}
	if !checkIndex(userIndex, items) {
		return 2
	}
	idx := userIndex - 1
	items = append(items[:idx], items[idx+1:]...)
	if !save(opt, items) {
		return 1
	}
	ui.OK("removed")
	return 0
}
