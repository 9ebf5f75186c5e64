package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrbonezy/goback/reflog"
	"github.com/mrbonezy/goback/ui"
)

var (
	readReflogFn     = readReflog
	checkoutBranchFn = checkoutBranch
)

func runGoback(out io.Writer, opts options) error {
	text, err := readReflogFn("")
	if err != nil {
		return err
	}
	history := reflog.ExtractHistory(text)
	logger.Debug("history extracted", "entries", len(history))

	if opts.List {
		return printList(out, newPalette(lipgloss.NewRenderer(out)), history, opts.ListCount)
	}

	branch, ok := reflog.NthPrevious(history, opts.Steps)
	if !ok {
		return fmt.Errorf("branch %d steps back not found", opts.Steps)
	}
	if opts.PrintOnly {
		_, err := fmt.Fprintln(out, branch)
		return err
	}

	return checkoutBranchFn("", branch)
}

func printList(w io.Writer, p palette, history []string, count int) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No branch history found")
		return err
	}

	table := ui.NewTable(p.tableStyles(), "#", "Branch", "Status")
	for i, branch := range history[:min(count, len(history))] {
		status := ui.NewCell("")
		if i == 0 {
			status = ui.StyledCell("current", p.accentText)
		}
		table.AddRow(ui.StyledCell(strconv.Itoa(i), p.accentText), ui.NewCell(branch), status)
	}
	_, err := io.WriteString(w, table.Render())
	return err
}
