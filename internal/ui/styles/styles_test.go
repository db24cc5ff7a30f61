package styles

import "testing"

func TestStatusColor(t *testing.T) {
	overrides := map[string]string{"Pendente": "#ff00ff", "Custom": "#123456"}

	tests := []struct {
		status string
		want   string
	}{
		{"Pendente", "#ff00ff"},
		{"Custom", "#123456"},
		{"Liberado", "#28a745"},
		{"Desconhecido", DefaultStatusColor},
	}
	for _, tt := range tests {
		if got := StatusColor(tt.status, overrides); got != tt.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusBadge_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := StatusBadge("Atrasado", nil); got != "[Atrasado]" {
		t.Errorf("got %q", got)
	}
	if got := StatusBadge("", nil); got != "[-]" {
		t.Errorf("empty status: got %q", got)
	}
	if got := SortIndicator(true); got != "v" {
		t.Errorf("descending indicator: got %q", got)
	}
}

func TestHelpBar_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := HelpBar([2]string{"/", "search"}, [2]string{"q", "quit"})
	if got != "/ search  q quit" {
		t.Errorf("got %q", got)
	}
	if got := HelpLine("y", "copy"); got != "y copy" {
		t.Errorf("HelpLine: got %q", got)
	}
}
