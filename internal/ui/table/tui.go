package table

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

// ═══════════════════════════════════════════════════════════════════════════
// Constants
// ═══════════════════════════════════════════════════════════════════════════

const (
	defaultColWidth = 20
	minColWidth     = 3
	hiddenColWidth  = 3

	headerLines = 3 // title, status badges, filter bar
	footerLines = 3 // pager, page label, help
)

// Table mode
type tableMode int

const (
	tableModeNormal tableMode = iota
	tableModeSearch
)

// Exit mode: what to do after quitting the TUI
type exitMode int

const (
	exitNormal exitMode = iota
	exitJSON
	exitRaw
	exitPlain
)

// ═══════════════════════════════════════════════════════════════════════════
// Model
// ═══════════════════════════════════════════════════════════════════════════

// viewState is shared between the bubbletea model copies and the view
// model's state listener.
type viewState struct {
	snap viewmodel.Snapshot
}

type tableModel struct {
	vm            *viewmodel.TableViewModel
	view          *viewState
	colors        map[string]string // status badge overrides
	types         []string          // type filter cycle, Any first
	statuses      []string          // status filter cycle, Any first
	fullColWidths []int             // max width of each column over all rows
	cursor        int               // selected row on the current page
	colCursor     int               // selected column
	width         int               // terminal width
	height        int               // terminal height
	ready         bool
	mode          tableMode
	searchInput   textinput.Model
	exitMode      exitMode // how to exit (for re-printing data)

	scroller // body scroll offsets and smooth scrolling

	// Status message (flash notification, e.g. after yank)
	statusMsg   string    // message to show in footer
	statusUntil time.Time // when to clear the message
}

// ═══════════════════════════════════════════════════════════════════════════
// Key Bindings
// ═══════════════════════════════════════════════════════════════════════════

type tableKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ShiftUp     key.Binding
	ShiftDown   key.Binding
	ShiftLeft   key.Binding
	ShiftRight  key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	Home        key.Binding
	End         key.Binding
	Expand      key.Binding
	Hide        key.Binding
	Sort        key.Binding
	Search      key.Binding
	CycleType   key.Binding
	CycleStatus key.Binding
	PickStatus  key.Binding
	Clear       key.Binding
	Quit        key.Binding
	YankCell    key.Binding
	YankRow     key.Binding
	ExportJSON  key.Binding
	ExportRaw   key.Binding
	ExportPlain key.Binding
}

var tableKeys = tableKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev column")),
	Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
	ShiftUp:     key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("⇧↑", "half page up")),
	ShiftDown:   key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("⇧↓", "half page down")),
	ShiftLeft:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("⇧←", "scroll half left")),
	ShiftRight:  key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("⇧→", "scroll half right")),
	PrevPage:    key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
	NextPage:    key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
	FirstPage:   key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "first page")),
	LastPage:    key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "last page")),
	Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
	End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
	Expand:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/default")),
	Hide:        key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hide/default")),
	Sort:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	CycleType:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type")),
	CycleStatus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	PickStatus:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "status badge")),
	Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	YankCell:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
	YankRow:     key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy row")),
	ExportJSON:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "print as JSON")),
	ExportRaw:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "print raw")),
	ExportPlain: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print table")),
}

// ═══════════════════════════════════════════════════════════════════════════
// Entry Point
// ═══════════════════════════════════════════════════════════════════════════

// RunTableTUI launches the interactive table viewer on vm. It blocks until
// the user quits. If the user requests an export (J/R/P), the current view
// is printed to out after the TUI exits.
func RunTableTUI(vm *viewmodel.TableViewModel, colors map[string]string, out io.Writer) error {
	m := newTableModel(vm, colors)
	defer m.unsubscribe()

	p := tea.NewProgram(m.tableModel, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Check if user requested output after exit
	if fm, ok := finalModel.(tableModel); ok {
		snap := vm.Snapshot()
		switch fm.exitMode {
		case exitJSON:
			return PrintJSONResults(out, snap)
		case exitRaw:
			PrintRaw(out, snap)
		case exitPlain:
			PrintPlainTable(out, snap, colors)
		}
	}

	return nil
}

type boundModel struct {
	tableModel
	unsubscribe func()
}

// newTableModel binds a fresh tableModel to vm. The returned unsubscribe
// detaches the state listener.
func newTableModel(vm *viewmodel.TableViewModel, colors map[string]string) boundModel {
	columns := vm.Columns()
	rows := vm.Rows()

	// Calculate full column widths based on content
	fullColWidths := make([]int, len(columns))
	for i, c := range columns {
		fullColWidths[i] = lipgloss.Width(c.Title) + 2 // room for the sort arrow
	}
	for _, row := range rows {
		for i := range fullColWidths {
			if w := lipgloss.Width(row.Cell(i)); w > fullColWidths[i] {
				fullColWidths[i] = w
			}
		}
	}

	// Initialize search input
	ti := textinput.New()
	ti.Placeholder = "buscar..."
	ti.CharLimit = 100
	ti.Width = 30

	view := &viewState{snap: vm.Snapshot()}
	unsubscribe := vm.OnStateChanged(func(s viewmodel.Snapshot) {
		view.snap = s
	})

	return boundModel{
		tableModel: tableModel{
			vm:            vm,
			view:          view,
			colors:        colors,
			types:         typeChoices(rows),
			statuses:      append([]string{viewmodel.Any}, vm.Statuses()...),
			fullColWidths: fullColWidths,
			mode:          tableModeNormal,
			searchInput:   ti,
			exitMode:      exitNormal,
		},
		unsubscribe: unsubscribe,
	}
}

// typeChoices lists Any, the default type, then every other type in order
// of first appearance.
func typeChoices(rows []viewmodel.Row) []string {
	choices := []string{viewmodel.Any, viewmodel.DefaultType}
	seen := map[string]bool{viewmodel.DefaultType: true}
	for _, r := range rows {
		if r.Type == "" || seen[r.Type] {
			continue
		}
		seen[r.Type] = true
		choices = append(choices, r.Type)
	}
	return choices
}

// nextChoice returns the element after current in choices, wrapping.
func nextChoice(choices []string, current string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

// ═══════════════════════════════════════════════════════════════════════════
// Bubble Tea Interface
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case animTickMsg:
		// Handle animation frame
		return m, m.step()

	case statusClearMsg:
		// Clear the flash message if it has expired
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		// Cancel any ongoing animation when user presses a key
		m.stop()

		// Handle search mode
		if m.mode == tableModeSearch {
			return m.updateSearch(msg)
		}

		return m.updateNormal(msg)
	}

	return m, nil
}

func (m tableModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, tableKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, tableKeys.Search):
		m.mode = tableModeSearch
		m.searchInput.SetValue(m.snap().Criteria.Text)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, tableKeys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureRowVisible()
		}

	case key.Matches(msg, tableKeys.Down):
		if m.cursor < m.displayRowCount()-1 {
			m.cursor++
			m.ensureRowVisible()
		}

	case key.Matches(msg, tableKeys.Left):
		colStartX := m.getColStartX(m.colCursor)

		if colStartX < m.scrollX {
			m.scrollX = max(m.scrollX-nudgeWidth, colStartX, 0)
		} else if m.colCursor > 0 {
			m.colCursor--
			m.ensureColVisibleFromRight()
		}

	case key.Matches(msg, tableKeys.Right):
		colEndX := m.getColEndX(m.colCursor)
		viewportEndX := m.scrollX + m.width - 2

		if colEndX > viewportEndX {
			m.scrollX = min(m.scrollX+nudgeWidth, m.getMaxScrollX())
		} else if m.colCursor < len(m.snap().Columns)-1 {
			m.colCursor++
			m.ensureColVisibleFromLeft()
		}

	case key.Matches(msg, tableKeys.ShiftLeft):
		halfWidth := max(m.width/2, 1)
		return m, m.scrollTo(m.scrollX-halfWidth, m.scrollY)

	case key.Matches(msg, tableKeys.ShiftRight):
		halfWidth := max(m.width/2, 1)
		return m, m.scrollTo(m.scrollX+halfWidth, m.scrollY)

	case key.Matches(msg, tableKeys.ShiftUp):
		halfPage := max(m.visibleRowCount()/2, 1)
		m.cursor = max(m.cursor-halfPage, 0)
		return m, m.scrollTo(m.scrollX, m.scrollY-halfPage)

	case key.Matches(msg, tableKeys.ShiftDown):
		halfPage := max(m.visibleRowCount()/2, 1)
		m.cursor = max(min(m.cursor+halfPage, m.displayRowCount()-1), 0)
		return m, m.scrollTo(m.scrollX, m.scrollY+halfPage)

	case key.Matches(msg, tableKeys.PrevPage):
		m.vm.PrevPage()
		m.resetRows()

	case key.Matches(msg, tableKeys.NextPage):
		m.vm.NextPage()
		m.resetRows()

	case key.Matches(msg, tableKeys.FirstPage):
		m.vm.GoToPage(1)
		m.resetRows()

	case key.Matches(msg, tableKeys.LastPage):
		m.vm.GoToPage(m.vm.TotalPages())
		m.resetRows()

	case key.Matches(msg, tableKeys.Home):
		m.cursor = 0
		m.scrollY = 0
		m.scrollX = 0

	case key.Matches(msg, tableKeys.End):
		if n := m.displayRowCount(); n > 0 {
			m.cursor = n - 1
			m.ensureRowVisible()
		}

	case key.Matches(msg, tableKeys.Expand):
		if m.vm.ExpandColumn(m.colCursor) {
			m.ensureColVisible()
		}

	case key.Matches(msg, tableKeys.Hide):
		if !m.vm.ToggleColumn(m.colCursor) {
			return m, m.setStatus("Coluna fixa, não pode ser ocultada")
		}
		m.ensureColVisible()

	case key.Matches(msg, tableKeys.Sort):
		m.vm.SortBy(m.colCursor)
		m.resetRows()

	case key.Matches(msg, tableKeys.CycleType):
		m.vm.SetTypeFilter(nextChoice(m.types, m.snap().Criteria.Type))
		m.resetRows()

	case key.Matches(msg, tableKeys.CycleStatus):
		m.vm.SetStatusFilter(nextChoice(m.statuses, m.snap().Criteria.Status))
		m.resetRows()

	case key.Matches(msg, tableKeys.PickStatus):
		m.pickStatus(int(msg.Runes[0] - '1'))
		m.resetRows()

	case key.Matches(msg, tableKeys.Clear):
		m.vm.SetCriteria(viewmodel.AnyCriteria())
		m.resetRows()

	case key.Matches(msg, tableKeys.YankCell):
		return m, m.yankCell()

	case key.Matches(msg, tableKeys.YankRow):
		return m, m.yankRow()

	case key.Matches(msg, tableKeys.ExportJSON):
		m.exitMode = exitJSON
		return m, tea.Quit

	case key.Matches(msg, tableKeys.ExportRaw):
		m.exitMode = exitRaw
		return m, tea.Quit

	case key.Matches(msg, tableKeys.ExportPlain):
		m.exitMode = exitPlain
		return m, tea.Quit
	}

	return m, nil
}

// pickStatus filters by the i-th status badge, or clears the status filter
// when that badge is already active.
func (m *tableModel) pickStatus(i int) {
	counts := m.snap().StatusCounts
	if i < 0 || i >= len(counts) {
		return
	}
	status := counts[i].Status
	if m.snap().Criteria.Status == status {
		status = viewmodel.Any
	}
	m.vm.SetStatusFilter(status)
}

// resetRows moves the cursor back to the top after the page changed.
func (m *tableModel) resetRows() {
	m.cursor = 0
	m.scrollY = 0
}

// ═══════════════════════════════════════════════════════════════════════════
// Search
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = tableModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.vm.SetTextFilter("")
		m.resetRows()
		return m, nil
	case tea.KeyEnter:
		m.mode = tableModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Live filter as user types
	if q := m.searchInput.Value(); q != m.snap().Criteria.Text {
		m.vm.SetTextFilter(q)
		m.resetRows()
	}

	return m, cmd
}

// ═══════════════════════════════════════════════════════════════════════════
// Row / Column Helpers
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) snap() viewmodel.Snapshot {
	return m.view.snap
}

func (m tableModel) displayRowCount() int {
	return len(m.view.snap.PageRows)
}

func (m tableModel) getDisplayRow(displayIdx int) *viewmodel.Row {
	rows := m.view.snap.PageRows
	if displayIdx < 0 || displayIdx >= len(rows) {
		return nil
	}
	return &rows[displayIdx]
}

func (m tableModel) colState(colIdx int) viewmodel.ColumnState {
	states := m.view.snap.ColumnStates
	if colIdx < 0 || colIdx >= len(states) {
		return viewmodel.ColumnDefault
	}
	return states[colIdx]
}

func (m tableModel) getColDisplayWidth(colIdx int) int {
	if colIdx >= len(m.fullColWidths) {
		return defaultColWidth
	}

	switch m.colState(colIdx) {
	case viewmodel.ColumnExpanded:
		return max(m.fullColWidths[colIdx], minColWidth)
	case viewmodel.ColumnHidden:
		return hiddenColWidth
	default:
		return max(min(m.fullColWidths[colIdx], defaultColWidth), minColWidth)
	}
}

func (m tableModel) getColStartX(colIdx int) int {
	x := 0
	for i := 0; i < colIdx && i < len(m.fullColWidths); i++ {
		x += m.getColDisplayWidth(i) + 2 // +2 for column separator spacing
	}
	return x
}

func (m tableModel) getColEndX(colIdx int) int {
	return m.getColStartX(colIdx) + m.getColDisplayWidth(colIdx)
}

func (m tableModel) getTotalWidth() int {
	total := 0
	for i := range m.fullColWidths {
		total += m.getColDisplayWidth(i) + 2
	}
	return total
}

func (m tableModel) getMaxScrollX() int {
	return max(m.getTotalWidth()-m.width+2, 0) // +2 for some padding
}

func (m tableModel) getMaxScrollY() int {
	return max(m.displayRowCount()-m.visibleRowCount(), 0)
}

// ═══════════════════════════════════════════════════════════════════════════
// Status Message (flash notification)
// ═══════════════════════════════════════════════════════════════════════════

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

// setStatus sets a temporary status message that auto-clears.
func (m *tableModel) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// Clipboard (yank)
// ═══════════════════════════════════════════════════════════════════════════

// yankCell copies the selected cell value to the system clipboard.
func (m *tableModel) yankCell() tea.Cmd {
	row := m.getDisplayRow(m.cursor)
	if row == nil {
		return nil
	}
	val := row.Cell(m.colCursor)
	if err := clipboard.WriteAll(val); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", Truncate(val, 40)))
}

// yankRow copies the visible cells of the selected row (tab-separated) to
// the clipboard.
func (m *tableModel) yankRow() tea.Cmd {
	row := m.getDisplayRow(m.cursor)
	if row == nil {
		return nil
	}
	visible := m.snap().VisibleColumns()
	vals := make([]string, len(visible))
	for i, col := range visible {
		vals[i] = row.Cell(col)
	}
	if err := clipboard.WriteAll(strings.Join(vals, "\t")); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied row %s (%d columns)", styles.RowID(row.ID), len(vals)))
}

func (m tableModel) visibleRowCount() int {
	count := m.height - headerLines - footerLines - 2 // + table header and separator
	if count < 1 {
		count = 1
	}
	return count
}

// ═══════════════════════════════════════════════════════════════════════════
// View
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	snap := m.snap()
	var sb strings.Builder

	// Header with title info
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Accent)
	title := snap.Title
	if title == "" {
		title = "Processos"
	}
	if len(snap.Filtered) != snap.Total {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d/%d processos", title, len(snap.Filtered), snap.Total)))
	} else {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d processos", title, snap.Total)))
	}

	// Show state indicators for modified columns
	var stateInfo []string
	for i, state := range snap.ColumnStates {
		switch state {
		case viewmodel.ColumnExpanded:
			stateInfo = append(stateInfo, snap.Columns[i].Title+"+")
		case viewmodel.ColumnHidden:
			stateInfo = append(stateInfo, snap.Columns[i].Title+"-")
		}
	}
	if len(stateInfo) > 0 {
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("  [%s]", strings.Join(stateInfo, ", "))))
	}
	sb.WriteString("\n")

	// Status badges
	sb.WriteString(applyViewport(RenderStatusCounts(snap.StatusCounts, snap.Criteria.Status, m.colors), 0, m.width))
	sb.WriteString("\n")

	// Search bar
	if m.mode == tableModeSearch {
		sb.WriteString(fmt.Sprintf("/%s\n", m.searchInput.View()))
	} else if desc := DescribeCriteria(snap); desc != "" {
		sb.WriteString(styles.MutedMsg("filtro: "+desc) + "\n")
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderTable())

	// Footer
	sb.WriteString("\n")
	if snap.NoResults {
		sb.WriteString(styles.WarningMsg(noResultsLabel))
	} else {
		sb.WriteString(PageLabel(snap.Page, len(snap.Filtered)))
		if pager := RenderPager(snap.Pager); pager != "" {
			sb.WriteString("  " + pager)
		}
	}
	sb.WriteString("\n")
	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		sb.WriteString(styles.SuccessMsg(m.statusMsg))
	} else if m.mode == tableModeSearch {
		sb.WriteString(styles.MutedMsg("enter confirm  esc cancel"))
	} else {
		sb.WriteString(applyViewport(styles.HelpBar(helpKeys...), 0, m.width))
	}

	return sb.String()
}

// helpKeys is the key binding summary shown under the table.
var helpKeys = [][2]string{
	{"↑↓←→", "nav"},
	{"[ ]", "page"},
	{"/", "search"},
	{"t", "type"},
	{"s", "status"},
	{"1-9", "badge"},
	{"x", "clear"},
	{"o", "sort"},
	{"enter", "expand"},
	{"H", "hide"},
	{"y", "copy"},
	{"J", "json"},
	{"R", "raw"},
	{"P", "table"},
	{"q", "quit"},
}

// ═══════════════════════════════════════════════════════════════════════════
// Render Table
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) renderTable() string {
	var sb strings.Builder

	snap := m.snap()
	if len(snap.Columns) == 0 {
		return "No columns"
	}

	viewportWidth := m.width - 2

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Info)
	selectedHeaderStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Accent)
	separatorStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	selectedSepStyle := lipgloss.NewStyle().Foreground(styles.Accent)
	selectedRowStyle := lipgloss.NewStyle().Background(styles.BgHighlight)
	selectedCellStyle := lipgloss.NewStyle().Background(styles.Accent).Foreground(lipgloss.Color("#000000"))
	normalStyle := lipgloss.NewStyle()
	highlightStyle := lipgloss.NewStyle().Foreground(styles.Warning)

	headerLine := m.buildFullHeaderLine(headerStyle, selectedHeaderStyle)
	separatorLine := m.buildFullSeparatorLine(separatorStyle, selectedSepStyle)

	sb.WriteString(applyViewport(headerLine, m.scrollX, viewportWidth))
	sb.WriteString("\n")
	sb.WriteString(applyViewport(separatorLine, m.scrollX, viewportWidth))
	sb.WriteString("\n")

	visibleRows := m.visibleRowCount()
	displayCount := m.displayRowCount()
	endRow := min(m.scrollY+visibleRows, displayCount)

	for displayIdx := m.scrollY; displayIdx < endRow; displayIdx++ {
		row := m.getDisplayRow(displayIdx)
		if row == nil {
			continue
		}
		isSelectedRow := displayIdx == m.cursor

		rowLine := m.buildFullRowLine(*row, isSelectedRow, normalStyle, selectedRowStyle, selectedCellStyle, highlightStyle)
		sb.WriteString(applyViewport(rowLine, m.scrollX, viewportWidth))
		sb.WriteString("\n")
	}

	// Scroll indicators
	var indicators []string
	if m.scrollX > 0 {
		indicators = append(indicators, "◀")
	}
	if m.scrollX+viewportWidth < m.getTotalWidth() {
		indicators = append(indicators, "▶")
	}
	if m.scrollY > 0 {
		indicators = append(indicators, "▲")
	}
	if m.scrollY+visibleRows < displayCount {
		indicators = append(indicators, "▼")
	}
	if len(indicators) > 0 {
		sb.WriteString(styles.MutedMsg(strings.Join(indicators, " ")))
	}

	return sb.String()
}

func (m tableModel) buildFullHeaderLine(normalStyle, selectedStyle lipgloss.Style) string {
	var sb strings.Builder
	snap := m.snap()

	for i, col := range snap.Columns {
		colWidth := m.getColDisplayWidth(i)

		name := col.Title
		if snap.Sort.Column == i {
			if snap.Sort.Direction == viewmodel.Descending {
				name += " ▼"
			} else {
				name += " ▲"
			}
		}

		var displayName string
		if m.colState(i) == viewmodel.ColumnHidden {
			displayName = PadOrTruncate("...", colWidth)
		} else {
			displayName = PadOrTruncate(name, colWidth)
		}

		if i == m.colCursor {
			sb.WriteString(selectedStyle.Render(displayName))
		} else {
			sb.WriteString(normalStyle.Render(displayName))
		}
		sb.WriteString("  ")
	}

	return sb.String()
}

func (m tableModel) buildFullSeparatorLine(normalStyle, selectedStyle lipgloss.Style) string {
	var sb strings.Builder

	for i := range m.snap().Columns {
		sep := strings.Repeat("─", m.getColDisplayWidth(i))

		if i == m.colCursor {
			sb.WriteString(selectedStyle.Render(sep))
		} else {
			sb.WriteString(normalStyle.Render(sep))
		}
		sb.WriteString("  ")
	}

	return sb.String()
}

func (m tableModel) buildFullRowLine(row viewmodel.Row, isSelectedRow bool, normalStyle, selectedRowStyle, selectedCellStyle, highlightStyle lipgloss.Style) string {
	var sb strings.Builder
	snap := m.snap()
	query := strings.ToLower(snap.Criteria.Text)

	for i, col := range snap.Columns {
		colWidth := m.getColDisplayWidth(i)
		val := row.Cell(i)

		var displayVal string
		if m.colState(i) == viewmodel.ColumnHidden {
			displayVal = PadOrTruncate("...", colWidth)
		} else {
			displayVal = PadOrTruncate(val, colWidth)
		}

		isSelectedCol := i == m.colCursor
		hasSearchMatch := query != "" && strings.Contains(strings.ToLower(val), query)
		isStatusCell := val != "" && val == row.Status && strings.EqualFold(col.Key, "status")

		switch {
		case isSelectedRow && isSelectedCol:
			sb.WriteString(selectedCellStyle.Render(displayVal))
		case isSelectedRow:
			sb.WriteString(selectedRowStyle.Render(displayVal))
		case hasSearchMatch:
			sb.WriteString(highlightStyle.Render(displayVal))
		case isStatusCell && m.colState(i) != viewmodel.ColumnHidden:
			color := lipgloss.Color(styles.StatusColor(row.Status, m.colors))
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(displayVal))
		default:
			sb.WriteString(normalStyle.Render(displayVal))
		}
		sb.WriteString("  ")
	}

	return sb.String()
}
