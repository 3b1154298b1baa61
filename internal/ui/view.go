package ui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/menu"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

const (
	previewPanelMinWidth = 32   // below this no split
	menuColumnMinWidth   = 24   // the left column never shrinks below this
	previewPanelFraction = 0.35 // share of the width for the record panel
	sidebarPanelFraction = 0.7  // share of the width for the section panel
	itemPrefixWidth      = 2    // "▌ "
	markPrefixWidth      = 4    // "[✓] "
	bottomBarRows        = 2    // status line and search prompt
)

var emptyQuery = listing.Query{}

var (
	previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// hasSidePreview reports whether the current level is drawn with a panel on
// the right rather than as a single column.
func (m *Model) hasSidePreview() bool {
	return m.previewPanelWidth() > 0
}

// previewPanelWidth returns the width of the right-hand panel, or 0 when the
// terminal is too narrow to split or the level has nothing to preview.
func (m *Model) previewPanelWidth() int {
	current := m.currentLevel()
	if m.width <= 0 || current == nil || current.Kind == uistate.KindDetail {
		return 0
	}
	fraction := previewPanelFraction
	if current.Kind == uistate.KindSidebar {
		fraction = sidebarPanelFraction
	}
	w := int(float64(m.width) * fraction)
	if w < previewPanelMinWidth || m.width-w < menuColumnMinWidth {
		return 0
	}
	return w
}

// menuColumnWidth returns the width available for the left-hand column.
func (m *Model) menuColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.mode == ModeDialog && m.draftForm != nil {
		return m.viewDraftFormWithHeader(header)
	}
	if m.hasSidePreview() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

// viewVertical is the single-column layout. The sidebar gets a short inline
// preview of the section under the cursor.
func (m *Model) viewVertical(header string) string {
	lines := m.columnLines(header, m.width, m.inlinePreview())
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(append(lines, m.bottomBar()...))
}

// viewSideBySide renders the current level on the left and a preview panel
// on the right, both sized to the rows above the bottom bar.
func (m *Model) viewSideBySide(header string) string {
	menuW := m.menuColumnWidth()
	lines := m.columnLines(header, menuW, nil)

	panelH := max(m.height-bottomBarRows, 1)
	if m.height <= 0 {
		panelH = max(len(lines), 1)
	}
	lines = lines[:min(len(lines), panelH)]
	for len(lines) < panelH {
		lines = append(lines, styledLine{})
	}

	left := strings.Split(renderLines(applyWidth(lines, menuW)), "\n")
	for i, row := range left {
		left[i] = fitRow(row, menuW)
	}
	right := m.renderPreviewPanel(m.activePreview(), m.previewPanelWidth(), panelH)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), right)
	return columns + "\n" + renderLines(m.bottomBar())
}

// columnLines stacks the header, the current level, an optional inline
// preview, the info message and the footer.
func (m *Model) columnLines(header string, width int, preview *previewData) []styledLine {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, m.levelBody(m.currentLevel(), width)...)
	if preview != nil {
		bodyStyle := styles.PreviewBody
		if preview.err != "" {
			bodyStyle = styles.PreviewError
		}
		lines = append(lines, styledLine{}, styledLine{text: preview.label, style: styles.PreviewTitle})
		for _, line := range previewDisplayLines(preview) {
			lines = append(lines, styledLine{text: line, style: bodyStyle})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.footerText(), style: styles.Footer})
	}
	return lines
}

// fitRow pads or cuts a rendered row to exactly width columns.
func fitRow(row string, width int) string {
	row = truncateANSI(row, width)
	return row + strings.Repeat(" ", max(width-lipgloss.Width(row), 0))
}

// bottomBar is the error or status line followed by the filter prompt.
func (m *Model) bottomBar() []styledLine {
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if warn, msg := m.hasBackendIssue(); warn {
		statusLine = styledLine{text: fmt.Sprintf("Reload failed: %s", msg), style: styles.Error}
	} else if m.loading && m.pendingLabel != "" {
		statusLine = styledLine{text: fmt.Sprintf("Working on %s…", m.pendingLabel), style: styles.Loading}
	}
	promptText := m.filterPrompt()
	return applyWidth([]styledLine{statusLine, {text: promptText, raw: true}}, m.width)
}

// levelBody renders the chrome of a level followed by the visible window of
// its items.
func (m *Model) levelBody(current *level, width int) []styledLine {
	if current == nil {
		return nil
	}
	lines := m.levelChrome(current, width)
	m.syncViewport(current)
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		} else if current.Kind == uistate.KindList && current.Category != "" && current.Category != listing.All {
			msg = fmt.Sprintf("No %s entries", current.Category)
		}
		return append(lines, styledLine{text: msg, style: styles.Info})
	}
	start := 0
	displayItems := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	for i, item := range displayItems {
		lines = append(lines, m.buildItemLine(item, start+i, current, width))
	}
	return lines
}

// levelChrome returns the lines drawn above a level's items: title,
// subtitle, stat cards, category filter and column header for lists, a
// title for detail views.
func (m *Model) levelChrome(current *level, width int) []styledLine {
	switch current.Kind {
	case uistate.KindList:
		section := m.levelSection(current)
		if section == nil {
			return nil
		}
		lines := []styledLine{
			{text: current.Title, style: styles.Title},
			{text: section.Subtitle(), style: styles.Subtitle},
		}
		lines = append(lines, statCards(section.View.Stats(), width)...)
		if len(current.Categories) > 0 {
			lines = append(lines, categoryLine(current))
		}
		prefix := strings.Repeat(" ", itemPrefixWidth+markPrefixWidth)
		lines = append(lines, styledLine{text: prefix + section.View.Header(), style: styles.ColumnHeader})
		return lines
	case uistate.KindDetail:
		title := current.Title
		if section := m.levelSection(current); section != nil {
			title = section.Label + " · " + current.Record
		}
		return []styledLine{{text: title, style: styles.Title}}
	}
	return nil
}

// statCards lays the stats out as bordered cards, or as a single line when
// the cards do not fit.
func statCards(stats []listing.Stat, width int) []styledLine {
	if len(stats) == 0 {
		return nil
	}
	cards := make([]string, len(stats))
	for i, stat := range stats {
		valueStyle := styles.StatValue
		if stat.Tone != domain.ToneNeutral {
			valueStyle = styles.Tone(stat.Tone)
		}
		cards[i] = styles.StatCard.Render(styles.StatLabel.Render(stat.Label) + "\n" + valueStyle.Render(stat.Display()))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if width > 0 && lipgloss.Width(joined) > width {
		parts := make([]string, len(stats))
		for i, stat := range stats {
			parts[i] = stat.Label + ": " + stat.Display()
		}
		return []styledLine{{text: strings.Join(parts, " · "), style: styles.Info}}
	}
	rows := strings.Split(joined, "\n")
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func categoryLine(l *level) styledLine {
	parts := make([]string, len(l.Categories))
	for i, category := range l.Categories {
		if category == l.Category {
			parts[i] = styles.ActiveCategory.Render(" " + category + " ")
		} else {
			parts[i] = styles.Category.Render(category)
		}
	}
	return styledLine{text: styles.Category.Render("Filter ") + strings.Join(parts, " "), raw: true}
}

// buildItemLine constructs a single styledLine for a menu item.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full container.
func (m *Model) buildItemLine(item menu.Item, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Tone(item.Tone)
	indicatorStyle := styles.ItemIndicator
	selectDisplay := ""
	if current.Markable {
		mark := " "
		if current.IsMarked(item.ID) {
			mark = "✓"
		}
		selectDisplay = fmt.Sprintf("[%s] ", mark)
	}
	if current.Kind == uistate.KindSidebar && item.ID == m.ActiveSection() {
		lineStyle = styles.ActiveSection
	}
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + selectDisplay + item.Label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) footerText() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	switch current.Kind {
	case uistate.KindList:
		return "↑/↓ move  enter details  tab mark  ctrl+t filter  ctrl+n add  ctrl+o edit  ctrl+y copy  esc back"
	case uistate.KindDetail:
		return "↑/↓ move  ctrl+o edit  ctrl+y copy id  esc back  ctrl+c quit"
	}
	return "↑/↓ move  enter open  ctrl+n add  esc quit  ctrl+c quit"
}

// inlinePreview is the preview drawn under the sidebar in single-column mode.
func (m *Model) inlinePreview() *previewData {
	current := m.currentLevel()
	if current == nil || current.Kind != uistate.KindSidebar || m.hasSidePreview() {
		return nil
	}
	return m.activePreview()
}

// renderPreviewPanel draws preview inside a rounded box of exactly
// totalWidth columns and height rows. The title sits in the top border with
// a row count on the right when the body is cut short.
func (m *Model) renderPreviewPanel(preview *previewData, totalWidth, height int) string {
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)

	title := "Preview"
	body := []string{"(nothing selected)"}
	bodyStyle := styles.PreviewBody
	scroll := ""
	if preview != nil {
		title = cmp.Or(strings.TrimSpace(preview.label), title)
		body = preview.lines
		if preview.err != "" {
			body = []string{preview.err}
			bodyStyle = styles.PreviewError
		} else if len(body) > innerH {
			scroll = fmt.Sprintf(" %d/%d ", innerH, len(body))
			body = body[:innerH]
		}
	}

	rows := make([]string, 0, height)
	rows = append(rows, panelTopBorder(title, scroll, totalWidth))
	for i := 0; i < innerH; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		line = fitRow(line, innerW)
		rows = append(rows, previewBorderStyle.Render("│")+bodyStyle.Render(line)+previewBorderStyle.Render("│"))
	}
	rows = append(rows, previewBorderStyle.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return strings.Join(rows, "\n")
}

// panelTopBorder fits the title and scroll marker into the top edge,
// dropping the marker first and then shortening the title when space runs out.
func panelTopBorder(title, scroll string, width int) string {
	room := width - 4
	label := " " + title + " "
	if lipgloss.Width(label)+lipgloss.Width(scroll) > room {
		scroll = ""
	}
	if lipgloss.Width(label) > room {
		label = " … "
	}
	fill := max(room-lipgloss.Width(label)-lipgloss.Width(scroll), 0)
	return previewBorderStyle.Render("╭─") +
		styles.PreviewTitle.Render(label) +
		previewBorderStyle.Render(strings.Repeat("─", fill)) +
		previewScrollStyle.Render(scroll) +
		previewBorderStyle.Render("─╮")
}

// menuHeader is the breadcrumb from the company name down to the current
// level.
func (m *Model) menuHeader() string {
	return strings.Join(m.headerSegments(), menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	if len(m.stack) == 0 {
		return nil
	}
	segments := []string{cmp.Or(strings.TrimSpace(m.company), defaultRootTitle)}
	for _, l := range m.stack[1:] {
		if segment := headerSegmentForLevel(l); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// headerSegmentForLevel names a record by its id and a section by its
// lowercased id with separators turned into spaces.
func headerSegmentForLevel(l *level) string {
	if l == nil {
		return ""
	}
	if l.Kind == uistate.KindDetail && l.Record != "" {
		return l.Record
	}
	name := cmp.Or(strings.TrimSpace(l.ID), strings.TrimSpace(l.Title))
	return strings.Join(strings.Fields(strings.ToLower(headerSegmentCleaner.Replace(name))), " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

// maxVisibleItems is the number of rows left for the item list once every
// other part of the column has been laid out, or -1 when the height is
// unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows
	if m.menuHeader() != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if current := m.currentLevel(); current != nil {
		used += len(m.levelChrome(current, m.menuColumnWidth()))
	}
	if preview := m.inlinePreview(); preview != nil {
		used += 2 + len(previewDisplayLines(preview))
	}
	return max(m.height-used, 1)
}

const infoLifetime = 5 * time.Second

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

// clearInfo drops the info message once it has been shown long enough.
func (m *Model) clearInfo() {
	if m.infoMsg != "" && m.infoExpired() {
		m.forceClearInfo()
	}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) infoExpired() bool {
	return m.infoExpire.IsZero() || !time.Now().Before(m.infoExpire)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.infoExpired() {
		m.forceClearInfo()
	}
	return m.infoMsg
}

// limitHeight keeps at most height lines, replacing the last kept line with
// an ellipsis when any were cut.
func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	kept := slices.Clone(lines[:height-1])
	return append(kept, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	out := slices.Clone(lines)
	for i := range out {
		if out[i].raw {
			out[i].text = truncateANSI(out[i].text, width)
		} else {
			out[i].text = truncateText(out[i].text, width)
		}
	}
	return out
}

// renderLines styles each line and joins them. A line with highlightFrom set
// renders its leading runes with prefixStyle and the rest with style.
func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.render()
	}
	return strings.Join(out, "\n")
}

func (l styledLine) render() string {
	if l.raw {
		return l.text
	}
	runes := []rune(l.text)
	if l.highlightFrom <= 0 || l.highlightFrom >= len(runes) {
		return renderWith(l.style, l.text)
	}
	return renderWith(l.prefixStyle, string(runes[:l.highlightFrom])) + renderWith(l.style, string(runes[l.highlightFrom:]))
}

// truncateText cuts plain text to width runes, ending in an ellipsis.
func truncateText(text string, width int) string {
	runes := []rune(text)
	switch {
	case width <= 0 || len(runes) <= width:
		return text
	case width == 1:
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

// truncateANSI shortens text that may carry escape sequences to width
// visible columns.
func truncateANSI(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	if width <= 1 {
		return truncate.String(text, uint(max(width, 0)))
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
