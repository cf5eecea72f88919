package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/tidwall/pretty"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/state"
)

// Below dataPanelMinWidth columns the panel moves under the list.
const (
	dataPanelMinWidth  = 40
	dataPanelFraction  = 0.6
	dataMaxInlineLines = 12
	dataScrollStep     = 3
	prettyWidth        = 80
)

const (
	noSelectionMessage   = "No basket selected. Press ctrl+n to create one."
	loadingMessage       = "Loading…"
	dataPanelTitlePrefix = "Data"
)

var prettyOptions = &pretty.Options{Width: prettyWidth, Indent: "  "}

// dataView is what the data panel shows for the current state.
type dataView struct {
	title string
	lines []string
	style *lipgloss.Style
}

func (m *Model) dataView() dataView {
	selected := m.registry.Selected()
	if selected == "" {
		return dataView{title: dataPanelTitlePrefix, lines: []string{noSelectionMessage}, style: styles.DataEmpty}
	}
	view := dataView{title: fmt.Sprintf("%s: %s", dataPanelTitlePrefix, selected)}
	status := m.content.Status()
	if m.content.Basket() != selected {
		status = state.ContentNone
	}
	if m.content.Loading() && status != state.ContentNone {
		view.title += " (loading…)"
	}
	switch status {
	case state.ContentLoaded:
		view.lines = prettyLines(m.content.Data())
		view.style = styles.DataBody
	case state.ContentEmpty:
		view.lines = []string{basket.EmptyMessage}
		view.style = styles.DataEmpty
	case state.ContentFailed:
		view.lines = []string{basket.FailedMessage}
		view.style = styles.DataError
	default:
		view.lines = []string{loadingMessage}
		view.style = styles.Loading
	}
	return view
}

func prettyLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	formatted := strings.TrimRight(string(pretty.PrettyOptions(data, prettyOptions)), "\n")
	return strings.Split(formatted, "\n")
}

// hasSidePanel reports whether the data panel fits beside the list.
func (m *Model) hasSidePanel() bool {
	return m.dataPanelWidth() > 0
}

// dataPanelWidth returns 0 when the terminal is too narrow to split.
func (m *Model) dataPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * dataPanelFraction)
	if w < dataPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) listColumnWidth() int {
	return m.width - m.dataPanelWidth()
}

func (m *Model) dataInnerHeight() int {
	if m.hasSidePanel() {
		h := m.height - bottomBarRows - 2
		if h < 1 {
			return 1
		}
		return h
	}
	return dataMaxInlineLines
}

func (m *Model) scrollData(delta int) {
	m.dataOffset += delta
	m.clampDataOffset()
}

func (m *Model) clampDataOffset() {
	maxOffset := len(m.dataView().lines) - m.dataInnerHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.dataOffset > maxOffset {
		m.dataOffset = maxOffset
	}
	if m.dataOffset < 0 {
		m.dataOffset = 0
	}
}

// visibleDataLines returns the window of lines starting at the scroll offset
// and a "last/total" marker when the content overflows.
func (m *Model) visibleDataLines(view dataView, rows int) ([]string, string) {
	m.clampDataOffset()
	if rows <= 0 || len(view.lines) <= rows {
		return view.lines, ""
	}
	end := m.dataOffset + rows
	if end > len(view.lines) {
		end = len(view.lines)
	}
	return view.lines[m.dataOffset:end], fmt.Sprintf(" %d/%d ", end, len(view.lines))
}

// renderDataPanel draws the bordered data box with exactly height rows and
// totalWidth columns.
func (m *Model) renderDataPanel(view dataView, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)
	lines, scrollSeg := m.visibleDataLines(view, innerH)

	titleSeg := " " + view.title + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(totalWidth-5, 1)), "…") + " "
		dashes = max(totalWidth-4-lipgloss.Width(titleSeg), 0)
	}
	border := styles.DataBorder
	top := border.Render(tlc+hz) +
		styles.DataTitle.Render(titleSeg) +
		border.Render(strings.Repeat(hz, dashes)) +
		styles.DataScroll.Render(scrollSeg) +
		border.Render(hz+trc)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		if view.style != nil {
			content = view.style.Render(content)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// handleMouseMsg scrolls the data panel with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollData(-dataScrollStep)
	case tea.MouseButtonWheelDown:
		m.scrollData(dataScrollStep)
	}
	return nil
}
