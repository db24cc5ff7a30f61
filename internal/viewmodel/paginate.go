package viewmodel

const (
	DefaultPageSize       = 10
	DefaultMaxPageButtons = 5
)

// PageState is the pagination state of the filtered view.
type PageState struct {
	PageSize    int
	CurrentPage int // 1-indexed
	TotalPages  int
}

// TotalPages returns the number of pages needed for n rows. An empty view
// still has one (empty) page.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Page returns the rows shown on page num. num is clamped first.
func Page(rows []Row, pageSize, num int) []Row {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	num = ClampPage(num, TotalPages(len(rows), pageSize))
	start := (num - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end]
}

// Pager describes the page buttons a pager UI should render.
type Pager struct {
	Visible bool  // false when there is at most one page
	Current int   // clamped current page
	Total   int   // total pages
	Pages   []int // numbered buttons, ascending

	ShowFirst        bool // render a shortcut to page 1 before Pages
	LeadingEllipsis  bool // gap between the first shortcut and Pages
	ShowLast         bool // render a shortcut to the last page after Pages
	TrailingEllipsis bool // gap between Pages and the last shortcut

	HasPrev bool
	HasNext bool
}

// PagerWindow computes at most maxButtons numbered buttons centred on
// current, shifted to stay inside [1, total].
func PagerWindow(current, total, maxButtons int) Pager {
	if total < 1 {
		total = 1
	}
	if maxButtons < 1 {
		maxButtons = DefaultMaxPageButtons
	}
	current = ClampPage(current, total)

	start := max(1, current-maxButtons/2)
	end := min(total, start+maxButtons-1)
	if end-start < maxButtons-1 {
		start = max(1, end-maxButtons+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Pager{
		Visible:          total > 1,
		Current:          current,
		Total:            total,
		Pages:            pages,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		ShowLast:         end < total,
		TrailingEllipsis: end < total-1,
		HasPrev:          current > 1,
		HasNext:          current < total,
	}
}
