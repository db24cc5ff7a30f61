package table

import (
	"fmt"
	"strings"

	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

const (
	prevLabel      = "« Anterior"
	nextLabel      = "Próximo »"
	noResultsLabel = "Nenhum processo encontrado com os filtros aplicados."
)

// PageLabel returns the "Página X de Y (N processos)" line.
func PageLabel(page viewmodel.PageState, filtered int) string {
	return fmt.Sprintf("Página %d de %d (%d processos)", page.CurrentPage, page.TotalPages, filtered)
}

// RenderPager draws the pager window on one line, or "" when the view fits
// on a single page.
func RenderPager(p viewmodel.Pager) string {
	if !p.Visible {
		return ""
	}

	var parts []string
	if p.HasPrev {
		parts = append(parts, prevLabel)
	} else {
		parts = append(parts, styles.Mute(prevLabel))
	}

	if p.ShowFirst {
		parts = append(parts, "1")
	}
	if p.LeadingEllipsis {
		parts = append(parts, styles.EllipsisStyle.Render(styles.SymbolGap))
	}
	for _, n := range p.Pages {
		if n == p.Current {
			parts = append(parts, currentPage(n))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	if p.TrailingEllipsis {
		parts = append(parts, styles.EllipsisStyle.Render(styles.SymbolGap))
	}
	if p.ShowLast {
		parts = append(parts, fmt.Sprintf("%d", p.Total))
	}

	if p.HasNext {
		parts = append(parts, nextLabel)
	} else {
		parts = append(parts, styles.Mute(nextLabel))
	}

	return strings.Join(parts, " ")
}

func currentPage(n int) string {
	label := fmt.Sprintf("[%d]", n)
	if styles.NoColor() {
		return label
	}
	return styles.PageStyle.Render(label)
}

// RenderStatusCounts draws one badge per status with its visible and total
// counts. Badges are numbered so the TUI can select them with 1-9.
func RenderStatusCounts(counts []viewmodel.StatusCount, active string, colors map[string]string) string {
	parts := make([]string, 0, len(counts))
	for i, c := range counts {
		badge := styles.StatusBadge(c.Status, colors)
		if c.Status == active {
			badge = styles.Bold.Render("▸") + badge
		}
		label := fmt.Sprintf("%s %s/%d", badge, styles.Count(c.Visible), c.Total)
		if i < 9 {
			label = styles.Mutef("%d:", i+1) + label
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

// DescribeCriteria summarizes the active filters and sort, or returns ""
// when nothing narrows the view.
func DescribeCriteria(snap viewmodel.Snapshot) string {
	var parts []string
	c := snap.Criteria
	if c.Text != "" {
		parts = append(parts, fmt.Sprintf("texto=%q", c.Text))
	}
	if c.Type != viewmodel.Any {
		parts = append(parts, "tipo="+c.Type)
	}
	if c.Status != viewmodel.Any {
		parts = append(parts, "status="+c.Status)
	}
	if col := snap.Sort.Column; col >= 0 && col < len(snap.Columns) {
		dir := "asc"
		if snap.Sort.Direction == viewmodel.Descending {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("ordem=%s %s", snap.Columns[col].Title, dir))
	}
	return strings.Join(parts, "  ")
}
