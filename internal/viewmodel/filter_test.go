package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatches_TextIsCaseInsensitive(t *testing.T) {
	r := row("1", "Pendente", "importacao", "DKA-1/Sydex Adventure", "22/04/2023")

	for _, text := range []string{"sydex", "SYDEX", "dka-1", "Adventure", "22/04"} {
		c := AnyCriteria()
		c.Text = text
		if !Matches(r, c) {
			t.Errorf("text %q should match %v", text, r.Cells)
		}
	}

	c := AnyCriteria()
	c.Text = "maersk"
	if Matches(r, c) {
		t.Fatal("unexpected match for maersk")
	}
}

func TestMatches_TextFoldsNonASCIICase(t *testing.T) {
	r := row("1", "Em desembaraço", "importacao", "SÃO PAULO", "")
	c := AnyCriteria()
	c.Text = "são paulo"
	if !Matches(r, c) {
		t.Fatal("expected case-folded match on non-ASCII text")
	}
}

func TestMatches_EmptyTextMatchesAnything(t *testing.T) {
	rows := []Row{
		row("1", "Pendente", "importacao", "", ""),
		row("2", "", "", "", ""),
		{ID: "3"}, // no cells at all
	}
	for _, r := range rows {
		m := newMatcher(FilterCriteria{Text: "", Type: "exportacao", Status: "Aprovado"})
		if !m.matchText(r) {
			t.Errorf("empty text should match row %s", r.ID)
		}
	}
}

func TestMatches_MissingCellsAreEmpty(t *testing.T) {
	r := Row{ID: "1", Cells: []string{"1"}, Status: "Pendente"}
	c := AnyCriteria()
	c.Text = "x"
	if Matches(r, c) {
		t.Fatal("row without the cell must not match text")
	}
	if r.Cell(3) != "" || r.Cell(-1) != "" {
		t.Fatal("missing cells must read as empty")
	}
}

func TestMatches_TypePredicate(t *testing.T) {
	imp := row("1", "Pendente", "importacao", "", "")
	exp := row("2", "Pendente", "exportacao", "", "")
	blank := row("3", "Pendente", "", "", "")

	tests := []struct {
		typ  string
		want []bool // imp, exp, blank
	}{
		{Any, []bool{true, true, true}},
		{"importacao", []bool{true, false, true}},
		{"exportacao", []bool{false, true, false}},
		{"outro", []bool{false, false, false}},
	}

	for _, tt := range tests {
		c := FilterCriteria{Type: tt.typ, Status: Any}
		got := []bool{Matches(imp, c), Matches(exp, c), Matches(blank, c)}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("type %q (-want +got):\n%s", tt.typ, diff)
		}
	}
}

func TestMatches_StatusIsExact(t *testing.T) {
	r := row("1", "BL liberado", "importacao", "", "")

	if !Matches(r, FilterCriteria{Type: Any, Status: "BL liberado"}) {
		t.Fatal("exact status should match")
	}
	if Matches(r, FilterCriteria{Type: Any, Status: "Liberado"}) {
		t.Fatal("substring status must not match")
	}
	if !Matches(r, FilterCriteria{Type: Any, Status: Any}) {
		t.Fatal("any status should match")
	}
}

func TestNormalizeCriteria(t *testing.T) {
	got := NormalizeCriteria(FilterCriteria{Text: " x ", Type: "todos", Status: ""})
	want := FilterCriteria{Text: " x ", Type: Any, Status: Any}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	got = NormalizeCriteria(FilterCriteria{Type: "ALL", Status: "Pendente"})
	if got.Type != Any || got.Status != "Pendente" {
		t.Fatalf("unexpected normalization: %+v", got)
	}
}

func TestFilter_SubsetInvariant(t *testing.T) {
	rows := reportRows()
	criteria := []FilterCriteria{
		AnyCriteria(),
		{Text: "ref-1", Type: Any, Status: Any},
		{Type: "importacao", Status: Any},
		{Type: "exportacao", Status: "Pendente"},
		{Text: "navio b", Type: Any, Status: "Rejeitado"},
		{Text: "nothing matches this", Type: Any, Status: Any},
	}

	for _, c := range criteria {
		got := Filter(rows, c)

		inView := make(map[string]bool)
		for _, r := range got {
			inView[r.ID] = true
			if !Matches(r, c) {
				t.Errorf("%+v: row %s in view but does not match", c, r.ID)
			}
		}
		for _, r := range rows {
			if !inView[r.ID] && Matches(r, c) {
				t.Errorf("%+v: row %s matches but is missing", c, r.ID)
			}
		}

		// Order is preserved relative to the source.
		pos := -1
		for _, r := range got {
			i := indexOf(rows, r.ID)
			if i <= pos {
				t.Fatalf("%+v: order not preserved at %s", c, r.ID)
			}
			pos = i
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	rows := reportRows()
	c := FilterCriteria{Text: "navio", Type: "importacao", Status: "Aprovado"}
	if diff := cmp.Diff(ids(Filter(rows, c)), ids(Filter(rows, c))); diff != "" {
		t.Fatalf("filter not idempotent:\n%s", diff)
	}
}

func indexOf(rows []Row, id string) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
