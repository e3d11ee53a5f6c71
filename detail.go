package main

import (
	"fmt"
	"strings"

	"github.com/kylesnowschwartz/tail-inspections/library"

	"charm.land/lipgloss/v2"
)

// openDetail switches to the detail view for a session card.
func (m *model) openDetail(c library.SessionCard) {
	m.detail = c
	m.view = viewDetail
	m.detailCursor = 0
	m.detailScroll = 0
	m.detailExpanded = make(map[int]bool)
}

// reopenDetail refreshes the open session from the current rows after the
// pipeline re-ran. When the session no longer passes the filters the view
// falls back to the library.
func (m *model) reopenDetail() {
	for _, it := range m.items {
		if it.typ != libraryItemSession || it.card.ID != m.detail.ID {
			continue
		}
		m.detail = it.card
		if m.detailCursor >= len(m.detail.Media) {
			m.detailCursor = max(len(m.detail.Media)-1, 0)
		}
		for i := range m.detailExpanded {
			if i >= len(m.detail.Media) {
				delete(m.detailExpanded, i)
			}
		}
		m.ensureDetailCursorVisible()
		return
	}
	m.view = viewLibrary
	m.detail = library.SessionCard{}
	m.detailExpanded = make(map[int]bool)
}

// detailViewHeight is the number of content lines above the status bar.
func (m model) detailViewHeight() int {
	return max(m.height-statusBarHeight, 1)
}

// detailLayout renders every detail line and records the first line of each
// media row, so scrolling can follow the cursor.
func (m model) detailLayout() (lines []string, rowStart []int) {
	width := m.clampWidth()
	c := m.detail
	now := m.clock()

	title := c.Title
	if title == "" {
		title = c.ID
	}
	titleR := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render(title)
	when := c.CaptureDate
	if c.CaptureTime != "" {
		when += " " + c.CaptureTime
	}
	if age := captureAge(now, c.CaptureDate); age != "" {
		when += " (" + age + ")"
	}
	lines = append(lines, spaceBetween("  "+titleR,
		lipgloss.NewStyle().Foreground(ColorTextMuted).Render(when), width))

	meta := []string{c.ID}
	for _, s := range []string{c.Client, c.Location} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorTextSecondary).
		Render(strings.Join(meta, " "+IconDot+" ")))
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorTextDim).
		Render(formatStats(library.Aggregate(c.Media))))

	if strings.TrimSpace(c.Notes) != "" {
		lines = append(lines, "")
		notes := m.md.render(c.Notes, max(width-4, 20))
		lines = append(lines, strings.Split(indentBlock(notes, "  "), "\n")...)
	}

	lines = append(lines, "")
	heading := lipgloss.NewStyle().Bold(true).Foreground(ColorTextSecondary).Render("Captures")
	lines = append(lines, "  "+heading)

	if len(c.Media) == 0 {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorTextDim).Render("No captures match these filters."))
		return lines, nil
	}

	for i, item := range c.Media {
		rowStart = append(rowStart, len(lines))
		lines = append(lines, m.renderMediaRow(i, item, width))
		if !m.detailExpanded[i] {
			continue
		}
		raw := mediaJSON(item)
		if hl, ok := m.jsonHL.highlight(raw); ok {
			raw = hl
		}
		lines = append(lines, strings.Split(indentBlock(raw, "        "), "\n")...)
	}
	return lines, rowStart
}

// renderMediaRow renders one capture line: cursor, expand state, kind,
// file name, clip length and capture clock time.
func (m model) renderMediaRow(i int, item library.MediaItem, width int) string {
	video := item.Type == library.Video

	cursor := " "
	if i == m.detailCursor {
		cursor = lipgloss.NewStyle().Foreground(ColorAccent).Render(IconCursor)
	}
	expand := IconCollapsed
	if m.detailExpanded[i] {
		expand = IconExpanded
	}
	icon := lipgloss.NewStyle().Foreground(mediaColor(video)).Render(mediaIcon(video))

	name := sourceName(item.SourceRef)
	if name == "" {
		name = item.ID
	}
	left := fmt.Sprintf("  %s %s %s %s", cursor,
		lipgloss.NewStyle().Foreground(ColorTextMuted).Render(expand), icon,
		lipgloss.NewStyle().Foreground(ColorTextPrimary).Render(truncate(name, max(width-30, 10))))

	var right []string
	if d := formatClipDuration(item.Duration); video && d != "" {
		right = append(right, d)
	}
	if !item.Timestamp.IsZero() {
		right = append(right, item.Timestamp.In(m.clock().Location()).Format("15:04"))
	}
	row := spaceBetween(left, lipgloss.NewStyle().Foreground(ColorTextDim).
		Render(strings.Join(right, " "+IconDot+" ")), width)
	if i == m.detailCursor {
		row = lipgloss.NewStyle().Background(ColorSelectedBg).Width(width).Render(row)
	}
	return row
}

// ensureDetailCursorVisible adjusts detailScroll so the cursor's media row,
// including its expanded metadata, stays on screen.
func (m *model) ensureDetailCursorVisible() {
	if m.view != viewDetail || m.height == 0 {
		return
	}
	lines, rowStart := m.detailLayout()
	if len(rowStart) == 0 {
		m.detailScroll = 0
		return
	}
	if m.detailCursor >= len(rowStart) {
		m.detailCursor = len(rowStart) - 1
	}
	viewHeight := m.detailViewHeight()

	start := rowStart[m.detailCursor]
	end := len(lines) - 1
	if m.detailCursor+1 < len(rowStart) {
		end = rowStart[m.detailCursor+1] - 1
	}
	// The first row pulls the session header into view too.
	if m.detailCursor == 0 {
		start = 0
	}

	if end >= m.detailScroll+viewHeight {
		m.detailScroll = end - viewHeight + 1
	}
	if start < m.detailScroll {
		m.detailScroll = start
	}
	maxScroll := max(len(lines)-viewHeight, 0)
	m.detailScroll = min(max(m.detailScroll, 0), maxScroll)
}

// viewDetail renders the single-session screen.
func (m model) viewDetail() string {
	lines, _ := m.detailLayout()
	if m.dump {
		return strings.Join(lines, "\n")
	}

	viewHeight := m.detailViewHeight()
	start := min(m.detailScroll, len(lines))
	visible := lines[start:]
	if len(visible) > viewHeight {
		visible = visible[:viewHeight]
	}
	content := strings.Join(visible, "\n")
	if pad := viewHeight - len(visible); pad > 0 {
		content += strings.Repeat("\n", pad)
	}

	scrollInfo := ""
	if len(lines) > viewHeight {
		scrollInfo = fmt.Sprintf("  %d%%", min(m.detailScroll*100/(len(lines)-viewHeight), 100))
	}
	return content + "\n" + m.renderStatusBar(
		"j/k", "nav",
		"tab", "metadata",
		"esc", "back",
		"q", "back"+scrollInfo,
	)
}
