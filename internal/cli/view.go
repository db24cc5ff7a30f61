package cli

import (
	"github.com/imgajeed76/tabview/internal/ui/table"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <source>",
		Short: "Browse a process report",
		Long: `Show the rows of a source as a paged table.

On a terminal the table is interactive:
  /        search text          t / s    cycle type / status
  1-9      toggle status badge  x        clear filters
  o        sort by column       enter    expand column
  H        hide column          [ ]      previous / next page
  { }      first / last page    y / Y    copy cell / row
  J R P    print JSON, raw or plain output after exit

Piped output, --no-pager, --json and --raw print the selected page once.
Every type and status is shown until --type or --status narrows the view.

Examples:
  tabview view processos.json
  tabview view processos.csv --text santos --status Pendente
  tabview view relatorio.html --sort 3 --desc --page 2
  tabview view sqlite:erp.db -q "SELECT * FROM processos" --json`,
		Args: sourceArg("tabview view processos.json"),
		RunE: runView,
	}

	addViewFlags(cmd)
	cmd.Flags().Bool("json", false, "Output the current page as JSON")
	cmd.Flags().Bool("raw", false, "Output the current page as tab-separated values")
	cmd.Flags().Bool("no-pager", false, "Print a plain table instead of the interactive view")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	rawOutput, _ := cmd.Flags().GetBool("raw")
	noPager, _ := cmd.Flags().GetBool("no-pager")

	cfg, vm, err := buildView(cmd, args[0], jsonOutput || rawOutput)
	if err != nil {
		return err
	}

	return table.Display(vm, table.DisplayOptions{
		JSON:         jsonOutput,
		Raw:          rawOutput,
		NoPager:      noPager,
		StatusColors: cfg.Status.Colors,
		Out:          cmd.OutOrStdout(),
	})
}
