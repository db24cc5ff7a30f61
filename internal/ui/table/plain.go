package table

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

// jsonView is the document written by PrintJSONResults.
type jsonView struct {
	Title        string            `json:"title,omitempty"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	PageSize     int               `json:"page_size"`
	Total        int               `json:"total"`
	Filtered     int               `json:"filtered"`
	Criteria     jsonCriteria      `json:"criteria"`
	StatusCounts []jsonStatusCount `json:"status_counts"`
	Rows         []jsonRow         `json:"rows"`
}

type jsonCriteria struct {
	Text   string `json:"text"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type jsonStatusCount struct {
	Status  string `json:"status"`
	Total   int    `json:"total"`
	Visible int    `json:"visible"`
}

type jsonRow struct {
	ID     string            `json:"id"`
	Type   string            `json:"type"`
	Status string            `json:"status"`
	Cells  map[string]string `json:"cells"`
}

// PrintJSONResults writes the current page of the view as a JSON object.
// Hidden columns are left out of each row's cells.
func PrintJSONResults(w io.Writer, snap viewmodel.Snapshot) error {
	visible := snap.VisibleColumns()

	out := jsonView{
		Title:      snap.Title,
		Page:       snap.Page.CurrentPage,
		TotalPages: snap.Page.TotalPages,
		PageSize:   snap.Page.PageSize,
		Total:      snap.Total,
		Filtered:   len(snap.Filtered),
		Criteria: jsonCriteria{
			Text:   snap.Criteria.Text,
			Type:   snap.Criteria.Type,
			Status: snap.Criteria.Status,
		},
		StatusCounts: make([]jsonStatusCount, len(snap.StatusCounts)),
		Rows:         make([]jsonRow, len(snap.PageRows)),
	}
	for i, c := range snap.StatusCounts {
		out.StatusCounts[i] = jsonStatusCount(c)
	}
	for i, row := range snap.PageRows {
		cells := make(map[string]string, len(visible))
		for _, col := range visible {
			cells[snap.Columns[col].Key] = row.Cell(col)
		}
		out.Rows[i] = jsonRow{ID: row.ID, Type: row.Type, Status: row.Status, Cells: cells}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// PrintRaw writes the visible cells of the current page as tab-separated
// lines, without header, for piping.
func PrintRaw(w io.Writer, snap viewmodel.Snapshot) {
	visible := snap.VisibleColumns()
	vals := make([]string, len(visible))
	for _, row := range snap.PageRows {
		for i, col := range visible {
			vals[i] = row.Cell(col)
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}
}

// PrintPlainTable prints the current page as an aligned table for non-TTY
// output, followed by the status counts and the pager.
// Shows full content without truncation.
func PrintPlainTable(w io.Writer, snap viewmodel.Snapshot, colors map[string]string) {
	visible := snap.VisibleColumns()
	if len(visible) == 0 {
		fmt.Fprintln(w, "(0 columns)")
		return
	}

	if snap.Title != "" {
		fmt.Fprintln(w, styles.SectionHeader(snap.Title))
	}
	if len(snap.StatusCounts) > 0 {
		fmt.Fprintln(w, RenderStatusCounts(snap.StatusCounts, snap.Criteria.Status, colors))
	}
	if desc := DescribeCriteria(snap); desc != "" {
		fmt.Fprintln(w, styles.MutedMsg(desc))
	}
	fmt.Fprintln(w)

	// Calculate column widths based on actual content (no truncation)
	colWidths := make([]int, len(visible))
	for i, col := range visible {
		colWidths[i] = headerWidth(snap, col)
	}
	for _, row := range snap.PageRows {
		for i, col := range visible {
			if cw := lipgloss.Width(row.Cell(col)); cw > colWidths[i] {
				colWidths[i] = cw
			}
		}
	}

	// Print header
	for i, col := range visible {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, pad(headerLabel(snap, col), colWidths[i]))
	}
	fmt.Fprintln(w)

	// Print separator
	for i, cw := range colWidths {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, strings.Repeat("─", cw))
	}
	fmt.Fprintln(w)

	// Print rows (full content, no truncation)
	for _, row := range snap.PageRows {
		for i, col := range visible {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprint(w, pad(row.Cell(col), colWidths[i]))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	if snap.NoResults {
		fmt.Fprintln(w, styles.WarningMsg(noResultsLabel))
		return
	}
	fmt.Fprintln(w, PageLabel(snap.Page, len(snap.Filtered)))
	if pager := RenderPager(snap.Pager); pager != "" {
		fmt.Fprintln(w, pager)
	}
}

// headerLabel is the column title with a sort arrow when the view is
// sorted by it.
func headerLabel(snap viewmodel.Snapshot, col int) string {
	title := snap.Columns[col].Title
	if snap.Sort.Column == col {
		title += " " + styles.SortIndicator(snap.Sort.Direction == viewmodel.Descending)
	}
	return title
}

func headerWidth(snap viewmodel.Snapshot, col int) int {
	return lipgloss.Width(headerLabel(snap, col))
}

// pad adds spaces to reach the desired display width (no truncation).
func pad(s string, width int) string {
	sw := lipgloss.Width(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// Truncate shortens a string to fit width, adding "..." if needed.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}

// PadOrTruncate pads or truncates to exact width (for TUI table).
func PadOrTruncate(s string, width int) string {
	if len([]rune(s)) > width {
		return Truncate(s, width)
	}
	return pad(s, width)
}
