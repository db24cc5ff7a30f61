package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
// Dark mode optimized, semantic colors
var (
	// Primary semantic colors
	Accent  = lipgloss.Color("#7C3AED") // violet-500 - highlights, interactive
	Success = lipgloss.Color("#10B981") // emerald-500 - success
	Warning = lipgloss.Color("#F59E0B") // amber-500 - warnings
	Error   = lipgloss.Color("#EF4444") // red-500 - errors
	Info    = lipgloss.Color("#3B82F6") // blue-500 - info, counts
	Muted   = lipgloss.Color("#6B7280") // gray-500 - secondary text

	// Text colors
	TextPrimary = lipgloss.Color("#F9FAFB") // gray-50 - main text
	TextOnBadge = lipgloss.Color("#111827") // gray-900 - text on light badges

	// Background colors
	BgHighlight = lipgloss.Color("#1F2937") // gray-800 - selected items
	BgBorder    = lipgloss.Color("#374151") // gray-700 - borders
)

// Semantic color aliases for clarity
var (
	ColorRowID    = Info    // Row identifiers
	ColorCount    = Info    // Status counts
	ColorSortKey  = Accent  // Active sort column
	ColorPage     = Success // Current page button
	ColorEllipsis = Muted   // Pager gaps
)

// DefaultStatusColor is used for labels without an entry in StatusColors.
const DefaultStatusColor = "#6c757d"

// StatusColors maps process status labels to the badge colours of the
// exported report. Config can override or extend it.
var StatusColors = map[string]string{
	"Novo Processo":             "#17a2b8",
	"Pendente":                  "#ffc107",
	"Liberado":                  "#28a745",
	"Em andamento":              "#007bff",
	"Atrasado":                  "#dc3545",
	"BL liberado":               "#28a745",
	"Chegada do navio alterada": "#ffc107",
	"Aguardando documentos":     "#ffc107",
	"Aguardando chegada":        "#17a2b8",
	"Em desembaraço":            "#007bff",
	"Nacionalizado":             "#28a745",
	"Concluído":                 "#6c757d",
}

// lightBadges need dark text to stay readable.
var lightBadges = map[string]bool{
	"#ffc107": true,
}
