package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/idilsaglam/sortable/internal/model"
	"github.com/idilsaglam/sortable/internal/ui"
)

// -------------- rendering helpers --------------

func isTTY() bool { return term.IsTerminal(os.Stdout.Fd()) }

func printList(items []model.Item, group bool) {
	ui.Panel(listLines(items, group))
}

func listLines(items []model.Item, group bool) []string {
	t := ui.Current()
	d, p := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(items),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: reorder with `sortable mv 3 1` or drag in `sortable ls`"))
	return lines
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Done {
			box = t.Success.Render(t.BoxChecked)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, ansi.Truncate(it.Title, 80, "...")))
	}
	return out
}

// groupLines keeps each item's position number so `done`/`rm` still line up.
func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []string
	if len(items) > 0 {
		for i, line := range flatLines(items) {
			if items[i].Done {
				done = append(done, line)
			} else {
				pend = append(pend, line)
			}
		}
	}
	none := []string{t.Muted.Render("(none)")}
	if len(pend) == 0 {
		pend = none
	}
	if len(done) == 0 {
		done = none
	}

	lines := append([]string{t.Accent.Render("Pending")}, pend...)
	lines = append(lines, "", t.Accent.Render("Done"))
	return append(lines, done...)
}
