// Package export writes a view of the report as a self-contained HTML file.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/viewmodel"
	"github.com/microcosm-cc/bluemonday"
	"github.com/natefinch/atomic"
)

//go:embed report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "report.html.tmpl"))

// Options controls the exported report.
type Options struct {
	// Title overrides the snapshot title.
	Title string
	// StatusColors overrides the built-in status badge colours.
	StatusColors map[string]string
	// SanitizeCells lets cells carry inline markup, cleaned with a UGC
	// policy. When false cells are escaped as plain text.
	SanitizeCells bool
	// CurrentPageOnly exports only the snapshot's current page instead of
	// every page of the filtered view.
	CurrentPageOnly bool
	// GeneratedAt is printed in the header. Defaults to time.Now.
	GeneratedAt time.Time
}

type reportView struct {
	Title     string
	Generated string
	Filters   string
	Total     int
	Filtered  int
	Badges    []badgeView
	Columns   []viewmodel.Column
	Pages     []pageView
	NoResults string
}

type badgeView struct {
	Status  string
	Color   string
	Total   int
	Visible int
	Active  bool
}

type pageView struct {
	Number  int
	Current bool
	Label   string
	Rows    []rowView
}

type rowView struct {
	ID     string
	Type   string
	Status string
	Cells  []cellView
}

type cellView struct {
	Content template.HTML
	Badge   string // badge colour when the cell shows the row status
}

// Write renders snap to path. The file is replaced atomically, so readers
// never see a half-written report.
func Write(path string, snap viewmodel.Snapshot, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, snap, opts); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Render writes the HTML report for snap to w. Hidden columns are left out.
func Render(w io.Writer, snap viewmodel.Snapshot, opts Options) error {
	return reportTemplate.Execute(w, buildView(snap, opts))
}

func buildView(snap viewmodel.Snapshot, opts Options) reportView {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	title := snap.Title
	if opts.Title != "" {
		title = opts.Title
	}

	v := reportView{
		Title:     title,
		Generated: opts.GeneratedAt.Format("02/01/2006 15:04"),
		Filters:   describeFilters(snap),
		Total:     snap.Total,
		Filtered:  len(snap.Filtered),
	}

	for _, c := range snap.StatusCounts {
		v.Badges = append(v.Badges, badgeView{
			Status:  c.Status,
			Color:   styles.StatusColor(c.Status, opts.StatusColors),
			Total:   c.Total,
			Visible: c.Visible,
			Active:  c.Status == snap.Criteria.Status,
		})
	}

	visible := snap.VisibleColumns()
	for _, col := range visible {
		v.Columns = append(v.Columns, snap.Columns[col])
	}

	if snap.NoResults {
		v.NoResults = "Nenhum processo encontrado com os filtros aplicados."
		return v
	}

	cell := newCellRenderer(opts.SanitizeCells)
	size := snap.Page.PageSize
	total := viewmodel.TotalPages(len(snap.Filtered), size)
	for n := 1; n <= total; n++ {
		if opts.CurrentPageOnly && n != snap.Page.CurrentPage {
			continue
		}
		page := pageView{
			Number:  n,
			Current: n == snap.Page.CurrentPage,
			Label:   fmt.Sprintf("Página %d de %d (%d processos)", n, total, len(snap.Filtered)),
		}
		for _, row := range viewmodel.Page(snap.Filtered, size, n) {
			rv := rowView{ID: row.ID, Type: row.Type, Status: row.Status}
			for _, col := range visible {
				val := row.Cell(col)
				cv := cellView{Content: cell(val)}
				if val != "" && val == row.Status && strings.EqualFold(snap.Columns[col].Key, "status") {
					cv.Badge = styles.StatusColor(row.Status, opts.StatusColors)
				}
				rv.Cells = append(rv.Cells, cv)
			}
			page.Rows = append(page.Rows, rv)
		}
		v.Pages = append(v.Pages, page)
	}

	return v
}

// newCellRenderer returns the function turning cell text into HTML.
func newCellRenderer(sanitize bool) func(string) template.HTML {
	if !sanitize {
		return func(s string) template.HTML {
			return template.HTML(template.HTMLEscapeString(s))
		}
	}
	policy := bluemonday.UGCPolicy()
	return func(s string) template.HTML {
		return template.HTML(policy.Sanitize(s))
	}
}

func describeFilters(snap viewmodel.Snapshot) string {
	var parts []string
	c := snap.Criteria
	if c.Text != "" {
		parts = append(parts, fmt.Sprintf("Busca: %q", c.Text))
	}
	if c.Type != viewmodel.Any {
		parts = append(parts, "Tipo: "+c.Type)
	}
	if c.Status != viewmodel.Any {
		parts = append(parts, "Status: "+c.Status)
	}
	if col := snap.Sort.Column; col >= 0 && col < len(snap.Columns) {
		dir := "crescente"
		if snap.Sort.Direction == viewmodel.Descending {
			dir = "decrescente"
		}
		parts = append(parts, fmt.Sprintf("Ordem: %s (%s)", snap.Columns[col].Title, dir))
	}
	return strings.Join(parts, " · ")
}
