package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/imgajeed76/tabview/internal/config"
	"github.com/imgajeed76/tabview/internal/log"
	"github.com/imgajeed76/tabview/internal/source"
	"github.com/imgajeed76/tabview/internal/ui"
	"github.com/imgajeed76/tabview/internal/util"
	"github.com/imgajeed76/tabview/internal/viewmodel"
	"github.com/spf13/cobra"
)

// loadTimeout bounds how long a source may take to load.
const loadTimeout = 5 * time.Minute

// addSourceFlags registers the flags that control how rows are loaded.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "SQL query for database sources (default: source.query)")
	cmd.Flags().StringSlice("columns", nil, "Columns to show, in order (default: every field)")
	cmd.Flags().Bool("archived", false, "Include archived processes")
	cmd.Flags().String("title", "", "Report title (default: taken from the source)")
}

// addViewFlags registers the filter, sort and page flags shared by the
// commands that build a view.
func addViewFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	cmd.Flags().StringP("text", "t", "", "Only rows containing this text (case-insensitive)")
	cmd.Flags().String("type", viewmodel.Any, "Process type filter, e.g. importacao or exportacao (default: every type)")
	cmd.Flags().StringP("status", "s", viewmodel.Any, "Status filter (default: every status)")
	cmd.Flags().String("sort", "", "Sort by column (key, title or 1-based number)")
	cmd.Flags().Bool("desc", false, "Sort in descending order")
	cmd.Flags().IntP("page", "p", 1, "Page to show")
	cmd.Flags().Int("page-size", 0, "Rows per page (default: view.page_size)")
	cmd.Flags().StringSlice("hide", nil, "Columns to hide (key, title or 1-based number)")
}

// loadConfig reads the config file named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, util.NewError("Invalid config file").
			WithContext(path).
			WithSuggestion("tabview config --list").
			Wrap(err)
	}
	return cfg, nil
}

// sourceOptions merges the config's field mapping with the source flags.
func sourceOptions(cmd *cobra.Command, cfg *config.Config) source.Options {
	opts := source.Options{
		IDField:     cfg.Source.IDField,
		TypeField:   cfg.Source.TypeField,
		StatusField: cfg.Source.StatusField,
		Columns:     cfg.Source.Columns,
		Query:       cfg.Source.Query,
	}

	if q, _ := cmd.Flags().GetString("query"); q != "" {
		opts.Query = q
	}
	if cols, _ := cmd.Flags().GetStringSlice("columns"); len(cols) > 0 {
		opts.Columns = cols
	}
	opts.IncludeArchived, _ = cmd.Flags().GetBool("archived")
	opts.Title, _ = cmd.Flags().GetString("title")
	return opts
}

// loadTable opens the source named by ref. Database sources show a spinner
// while the query runs, unless quiet is set.
func loadTable(cmd *cobra.Command, cfg *config.Config, ref string, quiet bool) (*viewmodel.Table, error) {
	kind, _, err := source.Classify(ref)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	var spinner *ui.Spinner
	if kind.IsDatabase() && !quiet {
		spinner = ui.NewSpinner("Loading processes")
		spinner.Start()
	}

	start := time.Now()
	t, err := source.Open(ctx, ref, sourceOptions(cmd, cfg))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %d rows, %d columns from %s source in %s",
		len(t.Rows), len(t.Columns), kind, time.Since(start).Round(time.Millisecond))
	return t, nil
}

// buildView loads ref and applies the view flags.
func buildView(cmd *cobra.Command, ref string, quiet bool) (*config.Config, *viewmodel.TableViewModel, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	t, err := loadTable(cmd, cfg, ref, quiet)
	if err != nil {
		return nil, nil, err
	}

	vm := viewmodel.New(t, cfg.ViewOptions())
	if err := applyViewFlags(cmd, vm); err != nil {
		return nil, nil, err
	}
	return cfg, vm, nil
}

// applyViewFlags feeds the flag values to vm. Every filter, sort and page
// size change returns to page 1, so --page is applied last.
func applyViewFlags(cmd *cobra.Command, vm *viewmodel.TableViewModel) error {
	flags := cmd.Flags()

	if size, _ := flags.GetInt("page-size"); size != 0 {
		if size < 0 {
			return util.NewError("Invalid page size").
				WithMessage(fmt.Sprintf("--page-size must be positive, got %d", size))
		}
		vm.SetPageSize(size)
	}

	text, _ := flags.GetString("text")
	typ, _ := flags.GetString("type")
	status, _ := flags.GetString("status")
	vm.SetCriteria(viewmodel.FilterCriteria{Text: text, Type: typ, Status: status})

	if name, _ := flags.GetString("sort"); name != "" {
		col, err := resolveColumn(vm.Columns(), name)
		if err != nil {
			return err
		}
		key := viewmodel.SortKey{Column: col, Direction: viewmodel.Ascending}
		if desc, _ := flags.GetBool("desc"); desc {
			key.Direction = viewmodel.Descending
		}
		vm.ApplySort(key)
	}

	hide, _ := flags.GetStringSlice("hide")
	for _, name := range hide {
		col, err := resolveColumn(vm.Columns(), name)
		if err != nil {
			return err
		}
		if vm.ColumnStates()[col] != viewmodel.ColumnHidden && !vm.ToggleColumn(col) {
			log.Warningf("column %q is pinned and stays visible", name)
		}
	}

	if page, _ := flags.GetInt("page"); page != 1 {
		vm.GoToPage(page)
		if vm.CurrentPage() != page {
			log.Infof("page %d clamped to %d of %d", page, vm.CurrentPage(), vm.TotalPages())
		}
	}

	log.Debugf("view: %d of %d rows match, page %d of %d",
		vm.FilteredCount(), vm.RowCount(), vm.CurrentPage(), vm.TotalPages())
	return nil
}

// resolveColumn finds a column by key, title (case-insensitive) or 1-based
// position.
func resolveColumn(columns []viewmodel.Column, name string) (int, error) {
	for i, c := range columns {
		if strings.EqualFold(c.Key, name) || strings.EqualFold(c.Title, name) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(columns) {
		return n - 1, nil
	}

	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return -1, util.UnknownColumnError(name, keys)
}

// sourceArg validates the single <source> argument.
func sourceArg(example string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return util.MissingArgumentError("source", example)
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
}
