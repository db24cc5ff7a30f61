// Package table presents a view model on the terminal. It supports an
// interactive TUI (filters, status badges, sorting, pages, column
// expand/hide, smooth scrolling), plain text tables, JSON output, and raw
// tab-separated output.
//
// This package is used by `tabview view` and `tabview stats`.
package table

import (
	"io"
	"os"

	"github.com/imgajeed76/tabview/internal/viewmodel"
	"golang.org/x/term"
)

// DisplayOptions controls how results are rendered.
type DisplayOptions struct {
	// JSON outputs the current page as a JSON document.
	JSON bool
	// Raw outputs the current page as tab-separated values (for piping).
	Raw bool
	// NoPager forces plain table output even on a TTY.
	NoPager bool
	// StatusColors overrides the built-in status badge colours.
	StatusColors map[string]string
	// Out receives non-interactive output. Defaults to os.Stdout.
	Out io.Writer
}

// Display picks the right output mode based on options and environment,
// then renders vm.
func Display(vm *viewmodel.TableViewModel, opts DisplayOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.Raw {
		PrintRaw(out, vm.Snapshot())
		return nil
	}

	if opts.JSON {
		return PrintJSONResults(out, vm.Snapshot())
	}

	if !interactive(out) || opts.NoPager || vm.RowCount() == 0 {
		PrintPlainTable(out, vm.Snapshot(), opts.StatusColors)
		return nil
	}

	return RunTableTUI(vm, opts.StatusColors, out)
}

// interactive reports whether out is a terminal.
func interactive(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
