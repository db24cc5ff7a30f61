package table

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestReveal(t *testing.T) {
	tests := []struct {
		name                       string
		offset, start, end, window int
		want                       int
	}{
		{"already visible", 5, 6, 8, 10, 5},
		{"left of window", 5, 2, 4, 10, 2},
		{"right of window", 0, 12, 15, 10, 5},
		{"wider than window", 0, 12, 30, 10, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reveal(tt.offset, tt.start, tt.end, tt.window); got != tt.want {
				t.Errorf("reveal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScroller_ReachesTarget(t *testing.T) {
	var s scroller
	if cmd := s.animateTo(40, 7, 30, 100); cmd == nil {
		t.Fatal("animateTo returned no tick")
	}
	if s.targetX != 30 {
		t.Errorf("targetX = %d, want clamped 30", s.targetX)
	}

	for frames := 0; s.animating; frames++ {
		if frames > 100 {
			t.Fatal("animation did not converge")
		}
		s.step()
	}
	if s.scrollX != 30 || s.scrollY != 7 {
		t.Errorf("scroll = (%d, %d), want (30, 7)", s.scrollX, s.scrollY)
	}

	if cmd := s.animateTo(30, 7, 30, 100); cmd != nil || s.animating {
		t.Error("animating towards the current position")
	}
}

func TestApplyViewport(t *testing.T) {
	line := "\x1b[1mabcdef\x1b[0mghij"

	got := applyViewport(line, 2, 5)
	if plain := ansi.Strip(got); plain != "cdefg" {
		t.Errorf("visible text = %q, want %q", plain, "cdefg")
	}

	got = applyViewport("abc", 1, 5)
	if got != "bc   " {
		t.Errorf("padded = %q, want %q", got, "bc   ")
	}

	if got := applyViewport("abc", 0, 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}
