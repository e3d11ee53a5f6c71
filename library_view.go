package main

import (
	"fmt"
	"strings"

	"github.com/kylesnowschwartz/tail-inspections/library"

	"charm.land/lipgloss/v2"
)

const (
	maxContentWidth     = 120
	libraryHeaderHeight = 4 // title, filter chips, stats, blank
	statusBarHeight     = 1
	sessionRowLines     = 3 // title, client/location, preview strip
)

// --- Flattened virtual list ---

// libraryItemType discriminates between session rows and date headers.
type libraryItemType int

const (
	libraryItemSession libraryItemType = iota
	libraryItemHeader
)

// libraryItem is an entry in the flattened library list.
type libraryItem struct {
	typ   libraryItemType
	card  library.SessionCard // set for sessions
	label string              // set for headers
	count int                 // captures in the header's group
}

// buildLibraryItems flattens a ViewModel into rows: one row per session in
// list mode, a header followed by its sessions per date group otherwise.
func buildLibraryItems(vm library.ViewModel) []libraryItem {
	var items []libraryItem
	if vm.Kind == library.ViewList {
		for _, c := range vm.Sessions {
			items = append(items, libraryItem{typ: libraryItemSession, card: c})
		}
		return items
	}
	for _, g := range vm.Groups {
		items = append(items, libraryItem{
			typ:   libraryItemHeader,
			label: g.Label,
			count: len(g.Media),
		})
		for _, c := range g.Sessions {
			items = append(items, libraryItem{typ: libraryItemSession, card: c})
		}
	}
	return items
}

// selectedCard returns the session under the cursor, or nil.
func (m model) selectedCard() *library.SessionCard {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	if m.items[m.cursor].typ != libraryItemSession {
		return nil
	}
	return &m.items[m.cursor].card
}

// libraryCursorDown moves cursor to next session item (skipping headers).
func (m *model) libraryCursorDown() {
	for i := m.cursor + 1; i < len(m.items); i++ {
		if m.items[i].typ == libraryItemSession {
			m.cursor = i
			return
		}
	}
}

// libraryCursorUp moves cursor to previous session item (skipping headers).
func (m *model) libraryCursorUp() {
	for i := m.cursor - 1; i >= 0; i-- {
		if m.items[i].typ == libraryItemSession {
			m.cursor = i
			return
		}
	}
	// Reveal the header above the first session.
	if m.cursor > 0 {
		m.scroll = 0
	}
}

// libraryCursorLast moves cursor to the last session item.
func (m *model) libraryCursorLast() {
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].typ == libraryItemSession {
			m.cursor = i
			return
		}
	}
}

// libraryCursorFirst moves cursor to the first session item.
func (m *model) libraryCursorFirst() {
	m.scroll = 0
	for i := range m.items {
		if m.items[i].typ == libraryItemSession {
			m.cursor = i
			return
		}
	}
}

// libraryViewHeight is the number of list lines between header and status bar.
func (m model) libraryViewHeight() int {
	h := m.height - libraryHeaderHeight - statusBarHeight
	if h < 1 {
		h = 1
	}
	return h
}

// libraryItemHeight returns the display height for a list item.
// Sessions: content lines + 1 for the separator below.
// Headers: 1 line (first) or 2 (blank + text).
func (m model) libraryItemHeight(index int) int {
	if m.items[index].typ == libraryItemHeader {
		if m.libraryIsFirstHeader(index) {
			return 1
		}
		return 2
	}
	return sessionRowLines + 1
}

// libraryIsFirstHeader returns true if index is the first header in the list.
func (m model) libraryIsFirstHeader(index int) bool {
	for i := 0; i < index; i++ {
		if m.items[i].typ == libraryItemHeader {
			return false
		}
	}
	return true
}

// libraryTotalLines returns the total line count of all list items.
func (m model) libraryTotalLines() int {
	total := 0
	for i := range m.items {
		total += m.libraryItemHeight(i)
	}
	return total
}

// ensureLibraryVisible adjusts scroll so the cursor's row is visible.
func (m *model) ensureLibraryVisible() {
	if m.height == 0 || len(m.items) == 0 || m.cursor >= len(m.items) {
		return
	}
	viewHeight := m.libraryViewHeight()

	start := 0
	for i := 0; i < m.cursor; i++ {
		start += m.libraryItemHeight(i)
	}
	end := start + m.libraryItemHeight(m.cursor) - 1

	if start < m.scroll {
		m.scroll = start
	}
	if end >= m.scroll+viewHeight {
		m.scroll = end - viewHeight + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// --- Library rendering ---

// clampWidth returns m.width capped at maxContentWidth.
func (m model) clampWidth() int {
	if m.width > maxContentWidth {
		return maxContentWidth
	}
	return m.width
}

// viewLibrary renders the filtered library screen.
func (m model) viewLibrary() string {
	width := m.clampWidth()
	header := m.renderLibraryHeader(width)

	if len(m.items) == 0 {
		empty := lipgloss.NewStyle().Foreground(ColorTextDim).Render("  No captures match these filters.")
		return m.finishScreen(header+"\n"+empty, 0)
	}

	var allLines []string
	for i, item := range m.items {
		switch item.typ {
		case libraryItemHeader:
			if !m.libraryIsFirstHeader(i) {
				allLines = append(allLines, "")
			}
			allLines = append(allLines, renderGroupHeader(item, width))
		case libraryItemSession:
			allLines = append(allLines, m.renderSessionRow(item.card, i == m.cursor, width)...)
		}
	}

	if m.dump {
		return header + "\n" + strings.Join(allLines, "\n")
	}

	viewHeight := m.libraryViewHeight()
	start := min(m.scroll, len(allLines))
	visible := allLines[start:]
	if len(visible) > viewHeight {
		visible = visible[:viewHeight]
	}

	scrollPct := -1
	if total := m.libraryTotalLines(); total > viewHeight {
		scrollPct = min(m.scroll*100/(total-viewHeight), 100)
	}
	return m.finishScreen(header+"\n"+strings.Join(visible, "\n"), scrollPct)
}

// finishScreen pads content to the viewport and appends the status bar.
// scrollPct < 0 hides the scroll indicator.
func (m model) finishScreen(content string, scrollPct int) string {
	if m.dump {
		return content
	}
	rendered := strings.Count(content, "\n") + 1
	if rendered < m.height-statusBarHeight {
		content += strings.Repeat("\n", m.height-statusBarHeight-rendered)
	}

	scrollInfo := ""
	if scrollPct >= 0 {
		scrollInfo = fmt.Sprintf("  %d%%", scrollPct)
	}
	status := m.renderStatusBar(
		"j/k", "nav",
		"enter", "open",
		"d", "date",
		"m", "media",
		"v", "group",
		"r", "reload",
		"q", "quit"+scrollInfo,
	)
	return content + "\n" + status
}

// renderLibraryHeader renders the title, filter chips and aggregate stats.
func (m model) renderLibraryHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render("Inspections")
	count := lipgloss.NewStyle().Foreground(ColorTextDim).Render(
		fmt.Sprintf("(%s)", plural(m.vm.SessionCount(), "session", "sessions")))
	source := "demo catalog"
	if m.catalog != nil && m.catalog.Path != "" {
		source = sourceName(m.catalog.Path)
	}
	line1 := spaceBetween("  "+title+" "+count,
		lipgloss.NewStyle().Foreground(ColorTextMuted).Render(source), width)

	chips := []string{
		renderChip(m.query.Date.Label(), m.query.Date != library.BucketAll),
		renderChip(m.query.Media.Label(), m.query.Media != library.MediaAll),
		renderChip(m.query.Group.Label(), m.query.Group == library.GroupByDay),
	}
	line2 := "  " + strings.Join(chips, " ")

	line3 := "  " + lipgloss.NewStyle().Foreground(ColorTextSecondary).Render(formatStats(m.vm.Stats))

	return line1 + "\n" + line2 + "\n" + line3 + "\n"
}

// renderChip renders one filter pill; active filters are highlighted.
func renderChip(label string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1).Background(ColorChipBg).Foreground(ColorTextSecondary)
	if active {
		style = style.Background(ColorChipActiveBg).Foreground(ColorChipActiveFg).Bold(true)
	}
	return style.Render(label)
}

// renderGroupHeader renders a date group header with underline rule.
func renderGroupHeader(item libraryItem, width int) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(ColorTextSecondary).Render(item.label)
	count := lipgloss.NewStyle().Foreground(ColorTextDim).Render(plural(item.count, "item", "items"))
	ruleLen := width - lipgloss.Width(label) - lipgloss.Width(count) - 4 // 2 indent + 2 spaces
	if ruleLen < 0 {
		ruleLen = 0
	}
	rule := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(strings.Repeat("─", ruleLen))
	return "  " + label + " " + rule + " " + count
}

// renderSessionRow renders a session row plus its bottom separator.
// Selected rows get a background band and a sidebar marker.
func (m model) renderSessionRow(c library.SessionCard, isSelected bool, width int) []string {
	indent := "  "
	if isSelected {
		indent = lipgloss.NewStyle().Foreground(ColorAccent).Render(IconSelected) + " "
	}
	innerWidth := max(width-4, 20)
	now := m.clock()

	// Line 1: title, capture time and age.
	title := c.Title
	if title == "" {
		title = c.ID
	}
	when := c.CaptureTime
	if age := captureAge(now, c.CaptureDate); age != "" {
		if when != "" {
			when += " " + IconDot + " "
		}
		when += age
	}
	whenR := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(when)
	titleR := lipgloss.NewStyle().Bold(true).Foreground(ColorTextPrimary).
		Render(truncate(title, innerWidth-lipgloss.Width(when)-2))
	line1 := spaceBetween(indent+titleR, whenR, width)

	// Line 2: id, client and location; counts on the right.
	meta := []string{c.ID}
	for _, s := range []string{c.Client, c.Location} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	counts := formatCounts(c.PhotoCount(), c.VideoCount())
	metaR := lipgloss.NewStyle().Foreground(ColorTextSecondary).
		Render(truncate(strings.Join(meta, " "+IconDot+" "), innerWidth-lipgloss.Width(counts)-2))
	countColor := ColorTextSecondary
	if c.Preview.HasVideo {
		countColor = ColorVideo
	}
	line2 := spaceBetween(indent+metaR, lipgloss.NewStyle().Foreground(countColor).Render(counts), width)

	// Line 3: preview strip.
	line3 := indent + renderPreviewStrip(c.Preview, innerWidth)

	lines := []string{line1, line2, line3}
	if isSelected {
		bg := lipgloss.NewStyle().Background(ColorSelectedBg).Width(width)
		for i, l := range lines {
			lines[i] = bg.Render(l)
		}
	}

	sep := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  " + strings.Repeat("─", max(width-4, 0)))
	return append(lines, sep)
}

// renderPreviewStrip renders up to PreviewLimit thumbnails as icon + file
// name (+ clip length), then "+N more" for the rest.
func renderPreviewStrip(p library.Preview, maxWidth int) string {
	if len(p.Items) == 0 {
		return lipgloss.NewStyle().Foreground(ColorTextDim).Render("no captures")
	}
	var parts []string
	for _, it := range p.Items {
		video := it.Type == library.Video
		label := sourceName(it.SourceRef)
		if label == "" {
			label = it.ID
		}
		if d := formatClipDuration(it.Duration); video && d != "" {
			label += " " + d
		}
		icon := lipgloss.NewStyle().Foreground(mediaColor(video)).Render(mediaIcon(video))
		parts = append(parts, icon+" "+lipgloss.NewStyle().Foreground(ColorTextDim).Render(truncate(label, 24)))
	}
	if p.Remaining > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorTextSecondary).Render(fmt.Sprintf("+%d more", p.Remaining)))
	}
	strip := strings.Join(parts, "  ")
	if lipgloss.Width(strip) > maxWidth {
		strip = truncate(strip, maxWidth)
	}
	return strip
}

// renderStatusBar renders a key-hint status bar from alternating key/description pairs.
// When watching the catalog, a LIVE badge is prepended; a pending notice is appended.
func (m model) renderStatusBar(pairs ...string) string {
	statusStyle := lipgloss.NewStyle().
		Background(ColorStatusBarBg).
		Foreground(ColorTextPrimary).
		Width(m.width).
		Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Background(ColorStatusBarBg).Foreground(ColorTextKeyHint).Bold(true)
	descStyle := lipgloss.NewStyle().Background(ColorStatusBarBg).Foreground(ColorTextDim)

	var parts []string
	if m.watching {
		parts = append(parts, lipgloss.NewStyle().
			Background(ColorLiveBg).
			Foreground(ColorLiveFg).
			Bold(true).
			Padding(0, 1).
			Render(IconLive+" LIVE"))
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+descStyle.Render(":"+pairs[i+1]))
	}
	if m.notice != "" {
		parts = append(parts, lipgloss.NewStyle().Background(ColorStatusBarBg).Foreground(ColorTextSecondary).Render(m.notice))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}
