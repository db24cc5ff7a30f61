package viewmodel

import "slices"

// Phase is the step of the recomputation pipeline the model last reached.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFiltering
	PhasePaginating
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseFiltering:
		return "filtering"
	case PhasePaginating:
		return "paginating"
	case PhaseRendered:
		return "rendered"
	default:
		return "idle"
	}
}

// Options configures a TableViewModel. Zero values fall back to defaults.
type Options struct {
	PageSize       int
	MaxPageButtons int
	PinnedColumns  int // leading columns that cannot be hidden
	Locale         string
}

// DefaultOptions returns the options of the process report: ten rows
// per page, five page buttons, ID and status columns pinned.
func DefaultOptions() Options {
	return Options{
		PageSize:       DefaultPageSize,
		MaxPageButtons: DefaultMaxPageButtons,
		PinnedColumns:  2,
		Locale:         DefaultLocale,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageSize < 1 {
		o.PageSize = d.PageSize
	}
	if o.MaxPageButtons < 1 {
		o.MaxPageButtons = d.MaxPageButtons
	}
	if o.PinnedColumns < 0 {
		o.PinnedColumns = 0
	}
	if o.Locale == "" {
		o.Locale = d.Locale
	}
	return o
}

// Snapshot is a deep copy of the derived view state handed to listeners and
// renderers. Changing it, row cells included, never affects the model.
type Snapshot struct {
	Title        string
	Columns      []Column
	ColumnStates []ColumnState
	Criteria     FilterCriteria
	Sort         SortKey

	Total        int   // rows loaded
	Filtered     []Row // every row matching Criteria, in sort order
	PageRows     []Row // the slice of Filtered on the current page
	StatusCounts []StatusCount
	Page         PageState
	Pager        Pager

	NoResults bool
}

// VisibleColumns returns the indexes of the columns that are not hidden.
func (s Snapshot) VisibleColumns() []int {
	var idx []int
	for i := range s.Columns {
		if i >= len(s.ColumnStates) || s.ColumnStates[i] != ColumnHidden {
			idx = append(idx, i)
		}
	}
	return idx
}

// Listener receives a snapshot after every recomputation. Listeners must
// not call back into the model.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// TableViewModel owns the view state of one table. Every entry point runs
// the full pipeline (filter, aggregate, paginate, notify) synchronously, so
// the state always reflects the latest input.
//
// A TableViewModel is not safe for concurrent use.
type TableViewModel struct {
	opts     Options
	title    string
	columns  []Column
	colState []ColumnState
	rows     []Row // base set in current sort order
	statuses []string
	cmp      *Comparator

	criteria FilterCriteria
	sortKey  SortKey

	filtered []Row
	counts   []StatusCount
	page     PageState
	phase    Phase

	listeners []subscription
	nextID    int
}

// New loads t into a view model. The rows are copied; status buckets are
// discovered here and never again.
func New(t *Table, opts Options) *TableViewModel {
	opts = opts.withDefaults()
	m := &TableViewModel{
		opts:     opts,
		cmp:      NewComparator(opts.Locale),
		criteria: AnyCriteria(),
		sortKey:  Unsorted,
		page:     PageState{PageSize: opts.PageSize, CurrentPage: 1, TotalPages: 1},
	}
	if t != nil {
		m.title = t.Title
		m.columns = slices.Clone(t.Columns)
		m.rows = cloneRows(t.Rows)
	}
	m.colState = make([]ColumnState, len(m.columns))
	m.statuses = DiscoverStatuses(m.rows)
	m.recompute(true)
	return m
}

// ═══════════════════════════════════════════════════════════════════════════
// Input entry points
// ═══════════════════════════════════════════════════════════════════════════

// SetCriteria replaces the whole filter selection.
func (m *TableViewModel) SetCriteria(c FilterCriteria) {
	m.criteria = NormalizeCriteria(c)
	m.recompute(true)
}

// SetTextFilter replaces the free-text predicate.
func (m *TableViewModel) SetTextFilter(text string) {
	c := m.criteria
	c.Text = text
	m.SetCriteria(c)
}

// SetTypeFilter replaces the process-type predicate.
func (m *TableViewModel) SetTypeFilter(t string) {
	c := m.criteria
	c.Type = t
	m.SetCriteria(c)
}

// SetStatusFilter replaces the status predicate. This is also what a click
// on a status badge does.
func (m *TableViewModel) SetStatusFilter(s string) {
	c := m.criteria
	c.Status = s
	m.SetCriteria(c)
}

// SortBy activates the header of column. Indexes outside the table are
// ignored.
func (m *TableViewModel) SortBy(column int) {
	if column < 0 || column >= len(m.columns) {
		return
	}
	m.ApplySort(NextSortKey(m.sortKey, column))
}

// ApplySort sorts the base row set by key directly.
func (m *TableViewModel) ApplySort(key SortKey) {
	if key.Column < 0 || key.Column >= len(m.columns) {
		return
	}
	m.sortKey = key
	m.cmp.SortRows(m.rows, key)
	m.recompute(true)
}

// GoToPage moves to page n, clamped to the valid range.
func (m *TableViewModel) GoToPage(n int) {
	m.page.CurrentPage = n
	m.recompute(false)
}

// NextPage moves forward one page if there is one.
func (m *TableViewModel) NextPage() {
	m.GoToPage(m.page.CurrentPage + 1)
}

// PrevPage moves back one page if there is one.
func (m *TableViewModel) PrevPage() {
	m.GoToPage(m.page.CurrentPage - 1)
}

// SetPageSize changes the rows per page and returns to page 1. Sizes below
// one fall back to the default.
func (m *TableViewModel) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	m.opts.PageSize = n
	m.page.PageSize = n
	m.recompute(true)
}

// ToggleColumn hides column i, or shows it again if hidden. Pinned columns
// and out-of-range indexes are ignored. It reports whether the state changed.
func (m *TableViewModel) ToggleColumn(i int) bool {
	if i < 0 || i < m.opts.PinnedColumns || i >= len(m.colState) {
		return false
	}
	if m.colState[i] == ColumnHidden {
		m.colState[i] = ColumnDefault
	} else {
		m.colState[i] = ColumnHidden
	}
	m.notify()
	return true
}

// ExpandColumn toggles column i between expanded and default width.
func (m *TableViewModel) ExpandColumn(i int) bool {
	if i < 0 || i >= len(m.colState) {
		return false
	}
	if m.colState[i] == ColumnExpanded {
		m.colState[i] = ColumnDefault
	} else {
		m.colState[i] = ColumnExpanded
	}
	m.notify()
	return true
}

// OnStateChanged registers l and returns a function that removes it.
func (m *TableViewModel) OnStateChanged(l Listener) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, subscription{id: id, fn: l})
	return func() {
		m.listeners = slices.DeleteFunc(m.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Queries
// ═══════════════════════════════════════════════════════════════════════════

// Title returns the report title.
func (m *TableViewModel) Title() string { return m.title }

// Columns returns the table columns.
func (m *TableViewModel) Columns() []Column { return slices.Clone(m.columns) }

// Criteria returns the active filter selection.
func (m *TableViewModel) Criteria() FilterCriteria { return m.criteria }

// SortKey returns the active sort.
func (m *TableViewModel) SortKey() SortKey { return m.sortKey }

// PageState returns page size, current page and page count.
func (m *TableViewModel) PageState() PageState { return m.page }

// CurrentPage returns the 1-indexed current page.
func (m *TableViewModel) CurrentPage() int { return m.page.CurrentPage }

// TotalPages returns the page count of the filtered view (at least 1).
func (m *TableViewModel) TotalPages() int { return m.page.TotalPages }

// Phase returns the last pipeline step reached.
func (m *TableViewModel) Phase() Phase { return m.phase }

// Statuses returns the status buckets discovered at load.
func (m *TableViewModel) Statuses() []string { return slices.Clone(m.statuses) }

// RowCount returns the number of loaded rows.
func (m *TableViewModel) RowCount() int { return len(m.rows) }

// FilteredCount returns the number of rows matching the criteria.
func (m *TableViewModel) FilteredCount() int { return len(m.filtered) }

// Rows returns the full row set in current sort order.
func (m *TableViewModel) Rows() []Row { return cloneRows(m.rows) }

// FilteredRows returns the filtered view.
func (m *TableViewModel) FilteredRows() []Row { return cloneRows(m.filtered) }

// StatusCounts returns total and visible counts per status bucket.
func (m *TableViewModel) StatusCounts() []StatusCount { return slices.Clone(m.counts) }

// ColumnStates returns the display state of every column.
func (m *TableViewModel) ColumnStates() []ColumnState {
	return slices.Clone(m.colState)
}

// PageRows returns the rows on the current page.
func (m *TableViewModel) PageRows() []Row {
	return cloneRows(Page(m.filtered, m.page.PageSize, m.page.CurrentPage))
}

// Pager returns the page buttons for the current state.
func (m *TableViewModel) Pager() Pager {
	return PagerWindow(m.page.CurrentPage, m.page.TotalPages, m.opts.MaxPageButtons)
}

// Snapshot copies the current derived state.
func (m *TableViewModel) Snapshot() Snapshot {
	return Snapshot{
		Title:        m.title,
		Columns:      slices.Clone(m.columns),
		ColumnStates: slices.Clone(m.colState),
		Criteria:     m.criteria,
		Sort:         m.sortKey,
		Total:        len(m.rows),
		Filtered:     cloneRows(m.filtered),
		PageRows:     m.PageRows(),
		StatusCounts: slices.Clone(m.counts),
		Page:         m.page,
		Pager:        m.Pager(),
		NoResults:    len(m.filtered) == 0,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Pipeline
// ═══════════════════════════════════════════════════════════════════════════

func (m *TableViewModel) recompute(resetPage bool) {
	m.phase = PhaseFiltering
	m.filtered = Filter(m.rows, m.criteria)
	m.counts = Aggregate(m.statuses, m.rows, m.filtered)

	m.phase = PhasePaginating
	if resetPage {
		m.page.CurrentPage = 1
	}
	m.page.PageSize = m.opts.PageSize
	m.page.TotalPages = TotalPages(len(m.filtered), m.page.PageSize)
	m.page.CurrentPage = ClampPage(m.page.CurrentPage, m.page.TotalPages)

	m.phase = PhaseRendered
	m.notify()
}

func (m *TableViewModel) notify() {
	if len(m.listeners) == 0 {
		return
	}
	snap := m.Snapshot()
	for _, l := range slices.Clone(m.listeners) {
		l.fn(snap)
	}
}
