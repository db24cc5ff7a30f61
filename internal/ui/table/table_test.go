package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

var statusCycle = []string{"Pendente", "Liberado", "Atrasado"}

// testModel builds a view model over n rows: ID, Status, Navio, ETA.
func testModel(t *testing.T, n int) *viewmodel.TableViewModel {
	t.Helper()
	tbl := &viewmodel.Table{
		Title: "Processos",
		Columns: []viewmodel.Column{
			{Key: "id", Title: "ID"},
			{Key: "status", Title: "Status"},
			{Key: "ship", Title: "Navio"},
			{Key: "eta", Title: "ETA"},
		},
	}
	for i := 0; i < n; i++ {
		status := statusCycle[i%len(statusCycle)]
		typ := "importacao"
		if i%2 == 1 {
			typ = "exportacao"
		}
		tbl.Rows = append(tbl.Rows, viewmodel.Row{
			ID:     fmt.Sprintf("P%02d", i+1),
			Cells:  []string{fmt.Sprintf("P%02d", i+1), status, fmt.Sprintf("Navio %c", 'A'+i%26), fmt.Sprintf("%02d/03/2024", i%28+1)},
			Type:   typ,
			Status: status,
		})
	}
	return viewmodel.New(tbl, viewmodel.DefaultOptions())
}

func TestPrintPlainTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	vm := testModel(t, 23)
	vm.GoToPage(3)

	var buf bytes.Buffer
	PrintPlainTable(&buf, vm.Snapshot(), nil)
	out := buf.String()

	for _, want := range []string{
		"Processos",
		"[Pendente] 8/8",
		"ID   Status",
		"P21",
		"P23",
		"Página 3 de 3 (23 processos)",
		"« Anterior 1 2 [3] Próximo »",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plain output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "P20") {
		t.Errorf("page 3 should not contain P20:\n%s", out)
	}
}

func TestPrintPlainTable_NoResults(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	vm := testModel(t, 5)
	vm.SetTextFilter("não existe")

	var buf bytes.Buffer
	PrintPlainTable(&buf, vm.Snapshot(), nil)
	out := buf.String()

	if !strings.Contains(out, noResultsLabel) {
		t.Errorf("missing no-results message:\n%s", out)
	}
	if strings.Contains(out, "Página") {
		t.Errorf("pager shown for empty view:\n%s", out)
	}
}

func TestPrintJSONResults_HonoursHiddenColumns(t *testing.T) {
	vm := testModel(t, 12)
	vm.SetStatusFilter("Liberado")
	vm.ToggleColumn(3)

	var buf bytes.Buffer
	if err := PrintJSONResults(&buf, vm.Snapshot()); err != nil {
		t.Fatal(err)
	}

	var got jsonView
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Filtered != 4 || got.Total != 12 || got.TotalPages != 1 {
		t.Errorf("counts = filtered %d total %d pages %d", got.Filtered, got.Total, got.TotalPages)
	}
	if got.Criteria.Status != "Liberado" || got.Criteria.Type != viewmodel.Any {
		t.Errorf("criteria = %+v", got.Criteria)
	}
	want := jsonRow{
		ID:     "P02",
		Type:   "exportacao",
		Status: "Liberado",
		Cells:  map[string]string{"id": "P02", "status": "Liberado", "ship": "Navio B"},
	}
	if diff := cmp.Diff(want, got.Rows[0]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintRaw(t *testing.T) {
	vm := testModel(t, 3)
	vm.ToggleColumn(2)

	var buf bytes.Buffer
	PrintRaw(&buf, vm.Snapshot())

	want := "P01\tPendente\t01/03/2024\nP02\tLiberado\t02/03/2024\nP03\tAtrasado\t03/03/2024\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("raw output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPager(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, ""},
		{1, 3, "« Anterior [1] 2 3 Próximo »"},
		{5, 10, "« Anterior 1 … 3 4 [5] 6 7 … 10 Próximo »"},
		{10, 10, "« Anterior 1 … 6 7 8 9 [10] Próximo »"},
	}
	for _, tt := range tests {
		got := RenderPager(viewmodel.PagerWindow(tt.current, tt.total, 5))
		if got != tt.want {
			t.Errorf("RenderPager(%d/%d) = %q, want %q", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Pendente", 10, "Pendente  "},
		{"Em desembaraço", 10, "Em dese..."},
		{"ação", 4, "ação"},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := PadOrTruncate(tt.in, tt.width); got != tt.want {
			t.Errorf("PadOrTruncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// TUI key handling
// ═══════════════════════════════════════════════════════════════════════════

func press(t *testing.T, m tableModel, keys ...string) tableModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(tableModel)
	}
	return m
}

func newTestTUI(t *testing.T, n int) (*viewmodel.TableViewModel, tableModel) {
	t.Helper()
	vm := testModel(t, n)
	bm := newTableModel(vm, nil)
	t.Cleanup(bm.unsubscribe)
	next, _ := bm.tableModel.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return vm, next.(tableModel)
}

func TestTUI_PageKeys(t *testing.T) {
	vm, m := newTestTUI(t, 23)

	m = press(t, m, "]", "]", "]")
	if vm.CurrentPage() != 3 || m.snap().Page.CurrentPage != 3 {
		t.Fatalf("page = %d (snapshot %d), want 3", vm.CurrentPage(), m.snap().Page.CurrentPage)
	}
	if m.displayRowCount() != 3 {
		t.Errorf("rows on last page = %d, want 3", m.displayRowCount())
	}

	m = press(t, m, "[")
	if m.snap().Page.CurrentPage != 2 {
		t.Errorf("page after [ = %d, want 2", m.snap().Page.CurrentPage)
	}
}

func TestTUI_FilterKeys(t *testing.T) {
	vm, m := newTestTUI(t, 23)

	m = press(t, m, "]", "t")
	if got := vm.Criteria().Type; got != "importacao" {
		t.Fatalf("type after t = %q", got)
	}
	if vm.CurrentPage() != 1 {
		t.Errorf("type filter did not reset page: %d", vm.CurrentPage())
	}

	m = press(t, m, "t", "t")
	if got := vm.Criteria().Type; got != viewmodel.Any {
		t.Errorf("type cycle did not wrap: %q", got)
	}

	m = press(t, m, "2")
	if got := vm.Criteria().Status; got != "Liberado" {
		t.Errorf("status after 2 = %q", got)
	}
	m = press(t, m, "2")
	if got := vm.Criteria().Status; got != viewmodel.Any {
		t.Errorf("second 2 should clear status, got %q", got)
	}

	m = press(t, m, "s")
	if got := vm.Criteria().Status; got != "Pendente" {
		t.Errorf("status after s = %q", got)
	}

	m = press(t, m, "/", "P", "0", "1", "enter")
	if got := vm.Criteria().Text; got != "P01" {
		t.Errorf("text filter = %q", got)
	}
	if m.mode != tableModeNormal {
		t.Error("enter should leave search mode")
	}

	m = press(t, m, "x")
	if diff := cmp.Diff(viewmodel.AnyCriteria(), vm.Criteria()); diff != "" {
		t.Errorf("x did not clear filters (-want +got):\n%s", diff)
	}
	if m.snap().NoResults {
		t.Error("cleared view reported no results")
	}
}

func TestTUI_SearchEscClearsText(t *testing.T) {
	vm, m := newTestTUI(t, 23)

	m = press(t, m, "/", "N", "a", "v", "i", "o", " ", "C")
	if vm.FilteredCount() == 23 {
		t.Fatal("live search did not filter")
	}
	press(t, m, "esc")
	if vm.Criteria().Text != "" || vm.FilteredCount() != 23 {
		t.Errorf("esc left text filter %q with %d rows", vm.Criteria().Text, vm.FilteredCount())
	}
}

func TestTUI_ColumnKeys(t *testing.T) {
	vm, m := newTestTUI(t, 5)

	m = press(t, m, "H")
	if vm.ColumnStates()[0] != viewmodel.ColumnDefault {
		t.Error("pinned column was hidden")
	}
	if m.statusMsg == "" {
		t.Error("expected a flash message for the pinned column")
	}

	m = press(t, m, "right", "right", "H", "enter")
	want := []viewmodel.ColumnState{viewmodel.ColumnDefault, viewmodel.ColumnDefault, viewmodel.ColumnExpanded, viewmodel.ColumnDefault}
	if diff := cmp.Diff(want, vm.ColumnStates()); diff != "" {
		t.Errorf("column states mismatch (-want +got):\n%s", diff)
	}

	m = press(t, m, "o", "o")
	if key := vm.SortKey(); key.Column != 2 || key.Direction != viewmodel.Descending {
		t.Errorf("sort key = %+v, want column 2 descending", key)
	}
	if first := m.snap().PageRows[0].ID; first != "P05" {
		t.Errorf("first row after descending sort = %s, want P05", first)
	}
}

func TestTUI_View(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	_, m := newTestTUI(t, 23)
	out := m.View()

	for _, want := range []string{"Processos: 23 processos", "Página 1 de 3 (23 processos)", "[Pendente]", "/ search  t type"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
