package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/ui/table"
	"github.com/imgajeed76/tabview/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <source>",
		Short: "Count processes per status and type",
		Long: `Show how many processes each status has, in total and under the
active filters, followed by the number of processes per type.

Examples:
  tabview stats processos.json
  tabview stats processos.json --type todos --text santos
  tabview stats postgres://localhost/erp -q "SELECT * FROM processos" --json`,
		Args: sourceArg("tabview stats processos.json"),
		RunE: runStats,
	}

	addViewFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type typeCount struct {
	Type  string `json:"type"`
	Total int    `json:"total"`
}

type jsonStats struct {
	Title    string             `json:"title"`
	Total    int                `json:"total"`
	Filtered int                `json:"filtered"`
	Statuses []jsonStatusCount  `json:"statuses"`
	Types    []typeCount        `json:"types"`
	Criteria jsonStatsCriterion `json:"criteria"`
}

type jsonStatusCount struct {
	Status  string `json:"status"`
	Total   int    `json:"total"`
	Visible int    `json:"visible"`
}

type jsonStatsCriterion struct {
	Text   string `json:"text,omitempty"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, vm, err := buildView(cmd, args[0], jsonOutput)
	if err != nil {
		return err
	}

	snap := vm.Snapshot()
	types := countTypes(vm.Rows())
	out := cmd.OutOrStdout()

	if jsonOutput {
		return printJSONStats(out, snap, types)
	}

	fmt.Fprintln(out, styles.Boldf("%s", snap.Title))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Processos:  %s\n", styles.Cyanf("%d", snap.Total))
	fmt.Fprintf(out, "  Visíveis:   %s\n", styles.Cyanf("%d", len(snap.Filtered)))
	if filters := table.DescribeCriteria(snap); filters != "" {
		fmt.Fprintf(out, "  Filtros:    %s\n", styles.Mute(filters))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.SectionHeader("Status"))
	width := 0
	for _, c := range snap.StatusCounts {
		width = max(width, lipgloss.Width(c.Status))
	}
	for _, c := range snap.StatusCounts {
		gap := strings.Repeat(" ", width-lipgloss.Width(c.Status))
		fmt.Fprintf(out, "  %s%s  %s de %d\n",
			styles.StatusText(c.Status, cfg.Status.Colors), gap, styles.Count(c.Visible), c.Total)
	}
	if len(snap.StatusCounts) == 0 {
		fmt.Fprintln(out, styles.Mute("  (nenhum status)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.SectionHeader("Tipos"))
	width = 0
	for _, c := range types {
		width = max(width, lipgloss.Width(c.Type))
	}
	for _, c := range types {
		gap := strings.Repeat(" ", width-lipgloss.Width(c.Type))
		fmt.Fprintf(out, "  %s%s  %s\n", c.Type, gap, styles.Count(c.Total))
	}
	return nil
}

// countTypes counts rows per process type, most frequent first.
func countTypes(rows []viewmodel.Row) []typeCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Type]++
	}

	result := make([]typeCount, 0, len(counts))
	for t, n := range counts {
		result = append(result, typeCount{Type: t, Total: n})
	}
	slices.SortFunc(result, func(a, b typeCount) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Type, b.Type)
	})
	return result
}

func printJSONStats(w io.Writer, snap viewmodel.Snapshot, types []typeCount) error {
	out := jsonStats{
		Title:    snap.Title,
		Total:    snap.Total,
		Filtered: len(snap.Filtered),
		Statuses: make([]jsonStatusCount, 0, len(snap.StatusCounts)),
		Types:    types,
		Criteria: jsonStatsCriterion{
			Text:   snap.Criteria.Text,
			Type:   snap.Criteria.Type,
			Status: snap.Criteria.Status,
		},
	}
	for _, c := range snap.StatusCounts {
		out.Statuses = append(out.Statuses, jsonStatusCount{Status: c.Status, Total: c.Total, Visible: c.Visible})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
