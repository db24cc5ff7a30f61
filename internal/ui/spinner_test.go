package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestSpinner_StaticOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	s := NewSpinner("Querying report")
	s.out = &buf
	s.animate = false

	s.Start()
	s.Success("23 rows loaded")
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Querying report...") {
		t.Errorf("missing start message: %q", out)
	}
	if !strings.Contains(out, "+ 23 rows loaded") {
		t.Errorf("missing success message: %q", out)
	}
}
