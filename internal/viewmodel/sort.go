package viewmodel

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used for text ordering when none is configured.
const DefaultLocale = "pt-BR"

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey identifies the active sort. Column is -1 when the rows are in
// source order.
type SortKey struct {
	Column    int
	Direction Direction
}

// Unsorted is the sort key of a freshly loaded table.
var Unsorted = SortKey{Column: -1}

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseDate parses a DD/MM/YYYY value. Values with the right shape but no
// matching calendar day (31/02/2024) are not dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Comparator orders cell values: dates chronologically, everything else
// with locale-aware collation. A date always sorts before a non-date.
//
// A Comparator is not safe for concurrent use.
type Comparator struct {
	collator *collate.Collator
}

// NewComparator returns a comparator for the given BCP 47 locale. Unknown
// locales fall back to DefaultLocale.
func NewComparator(locale string) *Comparator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Comparator{collator: collate.New(tag)}
}

// Compare returns -1, 0 or 1.
func (c *Comparator) Compare(a, b string) int {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)

	da, aIsDate := ParseDate(a)
	db, bIsDate := ParseDate(b)
	switch {
	case aIsDate && bIsDate:
		return da.Compare(db)
	case aIsDate:
		return -1
	case bIsDate:
		return 1
	}
	return c.collator.CompareString(a, b)
}

// CompareRows compares two rows on the given column.
func (c *Comparator) CompareRows(a, b Row, column int) int {
	return c.Compare(a.Cell(column), b.Cell(column))
}

// SortRows stably sorts rows in place by key. Descending order is the exact
// reverse of ascending except that ties keep their prior relative order.
func (c *Comparator) SortRows(rows []Row, key SortKey) {
	if key.Column < 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		r := c.CompareRows(a, b, key.Column)
		if key.Direction == Descending {
			return -r
		}
		return r
	})
}

// NextSortKey returns the key produced by activating column's header while
// current is active: a new column sorts ascending, the same column flips.
func NextSortKey(current SortKey, column int) SortKey {
	if current.Column == column {
		if current.Direction == Ascending {
			return SortKey{Column: column, Direction: Descending}
		}
		return SortKey{Column: column, Direction: Ascending}
	}
	return SortKey{Column: column, Direction: Ascending}
}
