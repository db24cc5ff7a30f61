package styles

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "●"
	SymbolPending = "○"
	SymbolArrow   = "→"
	SymbolGap     = "…"
)

// forceNoColor is set by the --no-color flag
var forceNoColor bool

// SetNoColor disables colors regardless of the environment
func SetNoColor(v bool) {
	forceNoColor = v
}

// NoColor checks if colors should be disabled
func NoColor() bool {
	return forceNoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TABVIEW_NO_COLOR") != ""
}

// IsAccessible checks if accessibility mode is enabled
// When enabled: no animations, no spinner, simplified output
func IsAccessible() bool {
	return os.Getenv("TABVIEW_ACCESSIBLE") == "1" || os.Getenv("TABVIEW_ACCESSIBLE") == "true"
}

// Base text styles
var Bold = lipgloss.NewStyle().Bold(true)

// Semantic styles - use these instead of raw colors
var (
	// Message types
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Table display
	RowIDStyle    = lipgloss.NewStyle().Foreground(ColorRowID)
	CountStyle    = lipgloss.NewStyle().Foreground(ColorCount).Bold(true)
	SortKeyStyle  = lipgloss.NewStyle().Foreground(ColorSortKey).Bold(true)
	PageStyle     = lipgloss.NewStyle().Foreground(ColorPage).Bold(true)
	EllipsisStyle = lipgloss.NewStyle().Foreground(ColorEllipsis)

	// Help bar
	HelpKey   = lipgloss.NewStyle().Foreground(Accent)
	HelpValue = lipgloss.NewStyle().Foreground(Muted)
)

// ═══════════════════════════════════════════════════════════════════════════
// Render functions - centralized formatting with NoColor support
// ═══════════════════════════════════════════════════════════════════════════

// render applies a style if colors are enabled
func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// RowID formats a row identifier
func RowID(id string) string {
	return render(RowIDStyle, id)
}

// Count formats a number shown next to a label
func Count(n int) string {
	return render(CountStyle, fmt.Sprintf("%d", n))
}

// SortIndicator returns the arrow for an ascending or descending sort
func SortIndicator(descending bool) string {
	if descending {
		if NoColor() {
			return "v"
		}
		return render(SortKeyStyle, "▼")
	}
	if NoColor() {
		return "^"
	}
	return render(SortKeyStyle, "▲")
}

// StatusColor returns the hex colour for a status label, honouring
// overrides (typically from config) before the built-in palette.
func StatusColor(status string, overrides map[string]string) string {
	if c, ok := overrides[status]; ok && c != "" {
		return c
	}
	if c, ok := StatusColors[status]; ok {
		return c
	}
	return DefaultStatusColor
}

// StatusBadge renders a status label as a coloured badge. With colours
// disabled it falls back to brackets.
func StatusBadge(status string, overrides map[string]string) string {
	if status == "" {
		status = "-"
	}
	if NoColor() {
		return "[" + status + "]"
	}
	hex := StatusColor(status, overrides)
	fg := TextPrimary
	if lightBadges[strings.ToLower(hex)] {
		fg = TextOnBadge
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(fg).
		Padding(0, 1).
		Render(status)
}

// StatusText colours a status label without the badge background
func StatusText(status string, overrides map[string]string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(status, overrides))), status)
}

// ═══════════════════════════════════════════════════════════════════════════
// Message formatters - structured output
// ═══════════════════════════════════════════════════════════════════════════

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", render(WarningStyle, symbol), msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return render(MutedStyle, msg)
}

// ═══════════════════════════════════════════════════════════════════════════
// Section formatters - consistent output structure
// ═══════════════════════════════════════════════════════════════════════════

// SectionHeader formats a section header
func SectionHeader(title string) string {
	return render(Bold, title)
}

// HelpLine formats one key binding of a help bar
func HelpLine(key, description string) string {
	return render(HelpKey, key) + " " + render(HelpValue, description)
}

// HelpBar joins key/description pairs into a single help line
func HelpBar(pairs ...[2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = HelpLine(p[0], p[1])
	}
	return strings.Join(parts, "  ")
}

// ═══════════════════════════════════════════════════════════════════════════
// Color functions
// ═══════════════════════════════════════════════════════════════════════════

func Cyan(s string) string { return render(InfoStyle, s) }
func Mute(s string) string { return render(MutedStyle, s) }

func Cyanf(format string, a ...any) string { return Cyan(fmt.Sprintf(format, a...)) }
func Mutef(format string, a ...any) string { return Mute(fmt.Sprintf(format, a...)) }
func Boldf(format string, a ...any) string { return render(Bold, fmt.Sprintf(format, a...)) }
