package cli

import (
	"fmt"
	"path/filepath"

	"github.com/imgajeed76/tabview/internal/export"
	"github.com/imgajeed76/tabview/internal/log"
	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <source>",
		Short: "Write the filtered report as a standalone HTML page",
		Long: `Export the filtered and sorted rows as a single HTML file with status
badges and one table per page. The file can be opened in any browser and
read back with 'tabview view'.

Examples:
  tabview export processos.json -o relatorio.html
  tabview export processos.csv --status Pendente --sort data_abertura -o pendentes.html
  tabview export processos.yaml --page 3 --current-page -o pagina3.html`,
		Args: sourceArg("tabview export processos.json -o relatorio.html"),
		RunE: runExport,
	}

	addViewFlags(cmd)
	cmd.Flags().StringP("output", "o", "relatorio.html", "Output file")
	cmd.Flags().Bool("current-page", false, "Export only the selected page")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	currentOnly, _ := cmd.Flags().GetBool("current-page")

	cfg, vm, err := buildView(cmd, args[0], false)
	if err != nil {
		return err
	}

	snap := vm.Snapshot()
	opts := export.Options{
		StatusColors:    cfg.Status.Colors,
		SanitizeCells:   cfg.Export.SanitizeCells,
		CurrentPageOnly: currentOnly,
	}
	if snap.Title == "" {
		opts.Title = cfg.Export.Title
	}

	if err := export.Write(output, snap, opts); err != nil {
		return err
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		abs = output
	}
	log.Debugf("exported %d rows to %s", len(snap.Filtered), abs)
	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessMsg(
		fmt.Sprintf("Exported %d of %d processes to %s", len(snap.Filtered), snap.Total, output)))
	return nil
}
