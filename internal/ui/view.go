package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/pantry-basket-control/internal/format/table"
)

// input line, status line and filter prompt
const bottomBarRows = 3

const footerText = "↑/↓ move  enter select  ctrl+n new  ctrl+r rename  ctrl+d delete  tab edit  ctrl+s save  esc quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.header()
	if (m.mode == ModeCreateForm || m.mode == ModeRenameForm) && m.form != nil {
		return m.viewForm(header)
	}
	if m.hasSidePanel() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

func (m *Model) header() string {
	return fmt.Sprintf("%s (%d)", headerTitle, len(m.list.Full))
}

// listLines renders the visible window of basket rows.
func (m *Model) listLines(width int) []styledLine {
	m.syncViewport()
	l := m.list
	if len(l.Items) == 0 {
		msg := "(no baskets yet)"
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	items := l.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = min(max(l.ViewportOffset, 0), len(items)-maxItems)
		l.ViewportOffset = start
		items = items[start : start+maxItems]
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		marker := ""
		if item.Selected {
			marker = "●"
		}
		rows[i] = []string{marker, item.Name}
	}
	formatted := table.Format(rows, nil)
	lines := make([]styledLine, len(formatted))
	for i, row := range formatted {
		lines[i] = m.buildItemLine(row, start+i == l.Cursor, width)
	}
	return lines
}

// buildItemLine pads the row to width so the cursor highlight spans the column.
func (m *Model) buildItemLine(row string, atCursor bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if atCursor {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := "▌ " + row
	if width > 0 {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) footerLines() []styledLine {
	if !m.showFooter {
		return nil
	}
	return []styledLine{{}, {text: footerText, style: styles.Footer}}
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	case m.pendingID != "":
		return styledLine{text: pendingText(m.pendingID, m.pendingLabel), style: styles.Loading}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

// bottomBar renders the rows spanning the full width under everything else.
func (m *Model) bottomBar() string {
	status := applyWidth([]styledLine{m.statusLine()}, m.width)
	rows := []string{
		fitWidth(m.inputLine(), m.width),
		renderLines(status),
		fitWidth(m.filterPrompt(), m.width),
	}
	return strings.Join(rows, "\n")
}

// viewVertical stacks the list above the data block for narrow terminals.
func (m *Model) viewVertical(header string) string {
	lines := []styledLine{{text: header, style: styles.Header}}
	lines = append(lines, m.listLines(m.width)...)
	view := m.dataView()
	data, scroll := m.visibleDataLines(view, dataMaxInlineLines)
	lines = append(lines, styledLine{}, styledLine{text: view.title + scroll, style: styles.DataTitle})
	for _, line := range data {
		lines = append(lines, styledLine{text: line, style: view.style})
	}
	lines = append(lines, m.footerLines()...)
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.bottomBar()
}

// viewSideBySide renders the list on the left and the data panel on the right.
func (m *Model) viewSideBySide(header string) string {
	listW := m.listColumnWidth()
	panelW := m.dataPanelWidth()
	panelH := max(m.height-bottomBarRows, 3)

	left := []styledLine{{text: header, style: styles.Header}}
	left = append(left, m.listLines(listW)...)
	left = append(left, m.footerLines()...)
	if len(left) > panelH {
		left = left[:panelH]
	}
	for len(left) < panelH {
		left = append(left, styledLine{})
	}
	leftRows := strings.Split(renderLines(applyWidth(left, listW)), "\n")
	for i, row := range leftRows {
		leftRows[i] = fitWidth(row, listW)
	}
	right := m.renderDataPanel(m.dataView(), panelW, panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(leftRows, "\n"), right)
	return top + "\n" + m.bottomBar()
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
	m.syncViewport()
	m.clampDataOffset()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows + 1 // header
	if m.showFooter {
		used += 2
	}
	if !m.hasSidePanel() {
		used += 2 + min(len(m.dataView().lines), dataMaxInlineLines)
	}
	return max(m.height-used, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

// fitWidth pads or truncates an already styled row to exactly width cells.
func fitWidth(row string, width int) string {
	if width <= 0 {
		return row
	}
	w := lipgloss.Width(row)
	if w > width {
		return truncate.StringWithTail(row, uint(width-1), "…")
	}
	return row + strings.Repeat(" ", width-w)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
