package table

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Each frame covers a quarter of the remaining distance; within one cell
// the scroll snaps to the target.
const (
	animationFrameInterval = 16 * time.Millisecond
	animationFraction      = 0.25
	animationSnapThreshold = 1

	nudgeWidth = 3 // characters scrolled by ←/→ inside a wide column
)

type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animationFrameInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// scroller holds the body scroll offsets and the target of a smooth scroll.
type scroller struct {
	scrollX   int // horizontal offset in cells
	scrollY   int // vertical offset in rows
	targetX   int
	targetY   int
	animating bool
}

// animateTo starts, or retargets, a smooth scroll towards (x, y). The
// target is clamped to [0, maxX] and [0, maxY].
func (s *scroller) animateTo(x, y, maxX, maxY int) tea.Cmd {
	s.targetX = clamp(x, 0, maxX)
	s.targetY = clamp(y, 0, maxY)

	if s.targetX == s.scrollX && s.targetY == s.scrollY {
		s.animating = false
		return nil
	}
	if s.animating {
		return nil // the running tick loop picks up the new target
	}
	s.animating = true
	return animTick()
}

// step advances the animation by one frame.
func (s *scroller) step() tea.Cmd {
	if !s.animating {
		return nil
	}
	s.scrollX = approach(s.scrollX, s.targetX)
	s.scrollY = approach(s.scrollY, s.targetY)
	if s.scrollX == s.targetX && s.scrollY == s.targetY {
		s.animating = false
		return nil
	}
	return animTick()
}

func (s *scroller) stop() {
	s.animating = false
}

func approach(cur, target int) int {
	d := target - cur
	if d >= -animationSnapThreshold && d <= animationSnapThreshold {
		return target
	}
	delta := int(float64(d) * animationFraction)
	switch {
	case delta == 0 && d > 0:
		delta = 1
	case delta == 0 && d < 0:
		delta = -1
	}
	return cur + delta
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// reveal returns the smallest change to offset that brings [start, end)
// into a window of the given size. A span wider than the window is aligned
// to its start.
func reveal(offset, start, end, window int) int {
	switch {
	case start < offset:
		return start
	case end > offset+window:
		if end-start <= window {
			return end - window
		}
		return start
	}
	return offset
}

// ═══════════════════════════════════════════════════════════════════════════
// Scroll helpers
// ═══════════════════════════════════════════════════════════════════════════

func (m *tableModel) scrollTo(x, y int) tea.Cmd {
	return m.animateTo(x, y, m.getMaxScrollX(), m.getMaxScrollY())
}

func (m *tableModel) ensureRowVisible() {
	m.scrollY = reveal(m.scrollY, m.cursor, m.cursor+1, max(m.visibleRowCount(), 1))
}

func (m *tableModel) ensureColVisible() {
	x := reveal(m.scrollX, m.getColStartX(m.colCursor), m.getColEndX(m.colCursor), m.width-2)
	m.scrollX = clamp(x, 0, m.getMaxScrollX())
}

// ensureColVisibleFromLeft aligns the cursor column with the left edge.
func (m *tableModel) ensureColVisibleFromLeft() {
	m.scrollX = clamp(m.getColStartX(m.colCursor), 0, m.getMaxScrollX())
}

// ensureColVisibleFromRight aligns the cursor column with the right edge,
// unless that would cut off its start.
func (m *tableModel) ensureColVisibleFromRight() {
	start, end := m.getColStartX(m.colCursor), m.getColEndX(m.colCursor)
	viewportWidth := m.width - 2

	x := end - viewportWidth
	if end-start <= viewportWidth {
		x = max(x, start)
	}
	m.scrollX = clamp(x, 0, m.getMaxScrollX())
}

// applyViewport returns the cells [startX, startX+width) of a styled line,
// padded with spaces to exactly width cells.
func applyViewport(s string, startX, width int) string {
	if width <= 0 {
		return ""
	}
	startX = max(startX, 0)

	cut := ansi.Cut(s, startX, startX+width)
	if pad := width - ansi.StringWidth(cut); pad > 0 {
		cut += strings.Repeat(" ", pad)
	}
	return cut
}
