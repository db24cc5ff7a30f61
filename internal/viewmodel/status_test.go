package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiscoverStatuses_FirstAppearanceOrder(t *testing.T) {
	got := DiscoverStatuses(reportRows())
	want := []string{"Pendente", "Aprovado", "Rejeitado"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestAggregate_Totals(t *testing.T) {
	rows := reportRows()
	got := Aggregate(DiscoverStatuses(rows), rows, rows)
	want := []StatusCount{
		{Status: "Pendente", Total: 10, Visible: 10},
		{Status: "Aprovado", Total: 8, Visible: 8},
		{Status: "Rejeitado", Total: 5, Visible: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestAggregate_CountConservation(t *testing.T) {
	rows := reportRows()
	statuses := DiscoverStatuses(rows)

	for _, c := range []FilterCriteria{
		AnyCriteria(),
		{Type: "importacao", Status: Any},
		{Text: "navio c", Type: Any, Status: Any},
		{Type: Any, Status: "Rejeitado"},
		{Text: "zzz", Type: Any, Status: Any},
	} {
		filtered := Filter(rows, c)
		counts := Aggregate(statuses, rows, filtered)
		if got := VisibleTotal(counts); got != len(filtered) {
			t.Errorf("%+v: visible counts sum to %d, view has %d rows", c, got, len(filtered))
		}
	}
}

func TestAggregate_UnknownStatusesAreNotCounted(t *testing.T) {
	rows := []Row{row("1", "Pendente", "", "", ""), row("2", "Novo", "", "", "")}
	got := Aggregate([]string{"Pendente"}, rows, rows)
	want := []StatusCount{{Status: "Pendente", Total: 1, Visible: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
