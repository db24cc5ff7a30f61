package viewmodel

import (
	"strings"

	"golang.org/x/text/cases"
)

// Any disables the type or status predicate.
const Any = "any"

// DefaultType is the process type that also matches rows with an empty type.
// Older exports left the type blank for imports.
const DefaultType = "importacao"

// FilterCriteria is the complete filter selection. It is replaced wholesale
// on every change.
type FilterCriteria struct {
	Text   string
	Type   string
	Status string
}

// AnyCriteria returns criteria that match every row.
func AnyCriteria() FilterCriteria {
	return FilterCriteria{Type: Any, Status: Any}
}

// NormalizeCriteria maps the placeholder values used by select widgets
// ("", "todos", "all") to Any for the type and status predicates.
func NormalizeCriteria(c FilterCriteria) FilterCriteria {
	c.Type = normalizeChoice(c.Type)
	c.Status = normalizeChoice(c.Status)
	return c
}

func normalizeChoice(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", Any, "todos", "all":
		return Any
	}
	return v
}

// Matches reports whether row satisfies all three predicates of c.
func Matches(row Row, c FilterCriteria) bool {
	return newMatcher(c).match(row)
}

// matcher holds the case-folded needle so a recomputation folds it once.
type matcher struct {
	criteria FilterCriteria
	needle   string
	fold     cases.Caser
}

func newMatcher(c FilterCriteria) *matcher {
	m := &matcher{criteria: c, fold: cases.Fold()}
	if c.Text != "" {
		m.needle = m.fold.String(c.Text)
	}
	return m
}

func (m *matcher) match(row Row) bool {
	return m.matchType(row) && m.matchStatus(row) && m.matchText(row)
}

func (m *matcher) matchText(row Row) bool {
	if m.needle == "" {
		return true
	}
	for _, cell := range row.Cells {
		if strings.Contains(m.fold.String(cell), m.needle) {
			return true
		}
	}
	return false
}

func (m *matcher) matchType(row Row) bool {
	t := m.criteria.Type
	if t == Any {
		return true
	}
	return row.Type == t || (t == DefaultType && row.Type == "")
}

func (m *matcher) matchStatus(row Row) bool {
	s := m.criteria.Status
	return s == Any || row.Status == s
}

// Filter returns the rows matching c, in their original order.
func Filter(rows []Row, c FilterCriteria) []Row {
	m := newMatcher(c)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if m.match(row) {
			out = append(out, row)
		}
	}
	return out
}
