package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"05/03/2024", true},
		{" 12/01/2023 ", true},
		{"31/02/2024", false}, // right shape, no such day
		{"2024-03-05", false},
		{"5/3/2024", false},
		{"22/04/23", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDate(tt.in); ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestCompare_Dates(t *testing.T) {
	c := NewComparator("pt-BR")

	if got := c.Compare("12/01/2023", "05/03/2024"); got != -1 {
		t.Fatalf("expected 12/01/2023 before 05/03/2024, got %d", got)
	}
	if got := c.Compare("05/03/2024", "12/01/2023"); got != 1 {
		t.Fatalf("expected 05/03/2024 after 12/01/2023, got %d", got)
	}
	if got := c.Compare("01/01/2024", "01/01/2024"); got != 0 {
		t.Fatalf("expected equal dates, got %d", got)
	}
	// As text, "05/..." would sort before "12/...".
	if got := c.Compare("01/12/2023", "02/01/2023"); got != 1 {
		t.Fatalf("dates must not compare as text, got %d", got)
	}
}

func TestCompare_DatesBeforeNonDates(t *testing.T) {
	c := NewComparator("pt-BR")

	tests := []struct {
		a, b string
		want int
	}{
		{"05/03/2024", "abc", -1},
		{"abc", "05/03/2024", 1},
		{"05/03/2024", "", -1},
		{"05/03/2024", "31/02/2024", -1}, // invalid date is a non-date
		{"31/02/2024", "32/01/2024", -1}, // two invalid dates compare as text
	}
	for _, tt := range tests {
		if got := c.Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare_LocaleAwareText(t *testing.T) {
	c := NewComparator("pt-BR")

	if got := c.Compare("árvore", "banana"); got != -1 {
		t.Fatalf("expected árvore before banana, got %d", got)
	}
	if got := c.Compare("Concluído", "Pendente"); got != -1 {
		t.Fatalf("expected Concluído before Pendente, got %d", got)
	}
}

func TestNewComparator_UnknownLocaleFallsBack(t *testing.T) {
	c := NewComparator("not a locale!!")
	if got := c.Compare("a", "b"); got != -1 {
		t.Fatalf("fallback comparator broken, got %d", got)
	}
}

func TestSortRows_AscendingDates(t *testing.T) {
	rows := []Row{
		row("a", "", "", "", "05/03/2024"),
		row("b", "", "", "", "12/01/2023"),
		row("c", "", "", "", "sem data"),
		row("d", "", "", "", "01/02/2023"),
	}
	NewComparator("pt-BR").SortRows(rows, SortKey{Column: 4})

	want := []string{"b", "d", "a", "c"}
	if diff := cmp.Diff(want, ids(rows)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestSortRows_StableTies(t *testing.T) {
	rows := []Row{
		row("1", "Pendente", "", "", ""),
		row("2", "Aprovado", "", "", ""),
		row("3", "Pendente", "", "", ""),
		row("4", "Aprovado", "", "", ""),
	}
	c := NewComparator("pt-BR")

	c.SortRows(rows, SortKey{Column: 1})
	if diff := cmp.Diff([]string{"2", "4", "1", "3"}, ids(rows)); diff != "" {
		t.Fatalf("ascending (-want +got):\n%s", diff)
	}

	c.SortRows(rows, SortKey{Column: 1, Direction: Descending})
	if diff := cmp.Diff([]string{"1", "3", "2", "4"}, ids(rows)); diff != "" {
		t.Fatalf("descending (-want +got):\n%s", diff)
	}
}

func TestSortRows_UnsortedIsNoop(t *testing.T) {
	rows := reportRows()
	before := ids(rows)
	NewComparator("").SortRows(rows, Unsorted)
	if diff := cmp.Diff(before, ids(rows)); diff != "" {
		t.Fatalf("rows reordered:\n%s", diff)
	}
}

func TestNextSortKey(t *testing.T) {
	k := NextSortKey(Unsorted, 2)
	if k != (SortKey{Column: 2, Direction: Ascending}) {
		t.Fatalf("new column should sort ascending, got %+v", k)
	}
	k = NextSortKey(k, 2)
	if k.Direction != Descending {
		t.Fatalf("same column should flip, got %+v", k)
	}
	k = NextSortKey(k, 2)
	if k.Direction != Ascending {
		t.Fatalf("same column should flip back, got %+v", k)
	}
	k = NextSortKey(SortKey{Column: 2, Direction: Descending}, 3)
	if k != (SortKey{Column: 3, Direction: Ascending}) {
		t.Fatalf("switching column should reset direction, got %+v", k)
	}
}
