package main

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
)

// updateLibrary handles key events in the library view.
func (m model) updateLibrary(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.libraryCursorDown()
		m.ensureLibraryVisible()
	case "k", "up":
		m.libraryCursorUp()
		m.ensureLibraryVisible()
	case "G", "end":
		m.libraryCursorLast()
		m.ensureLibraryVisible()
	case "g", "home":
		m.libraryCursorFirst()
	case "enter":
		if c := m.selectedCard(); c != nil {
			m.openDetail(*c)
			m.ensureDetailCursorVisible()
		}
	case "d":
		m.query.Date = m.query.Date.Next()
		m.queryChanged()
	case "D":
		m.query.Date = m.query.Date.Prev()
		m.queryChanged()
	case "m":
		m.query.Media = m.query.Media.Next()
		m.queryChanged()
	case "v":
		m.query.Group = m.query.Group.Toggle()
		m.queryChanged()
	case "r":
		if m.catalog == nil || m.catalog.Path == "" {
			m.notice = "demo catalog has nothing to reload"
			return m, nil
		}
		m.notice = "reloading…"
		return m, loadCatalogCmd(m.catalog.Path)
	case "J", "ctrl+d":
		m.scroll += m.libraryViewHeight() / 2
		m.clampLibraryScroll()
	case "K", "ctrl+u":
		m.scroll -= m.libraryViewHeight() / 2
		m.clampLibraryScroll()
	}
	return m, nil
}

// queryChanged re-runs the pipeline after a filter key and logs the change.
func (m *model) queryChanged() {
	m.notice = ""
	m.log.Info("filters changed",
		zap.String("date", string(m.query.Date)),
		zap.String("media", string(m.query.Media)),
		zap.String("group", string(m.query.Group)),
	)
	m.refresh()
}

// clampLibraryScroll keeps scroll within the rendered list.
func (m *model) clampLibraryScroll() {
	maxScroll := max(m.libraryTotalLines()-m.libraryViewHeight(), 0)
	m.scroll = min(max(m.scroll, 0), maxScroll)
}

// updateDetail handles key events in the single-session view.
func (m model) updateDetail(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "escape", "backspace":
		m.view = viewLibrary
		m.detailCursor = 0
		m.detailScroll = 0
		m.detailExpanded = make(map[int]bool)
		m.ensureLibraryVisible()
	case "j", "down":
		if m.detailCursor < len(m.detail.Media)-1 {
			m.detailCursor++
		}
		m.ensureDetailCursorVisible()
	case "k", "up":
		if m.detailCursor > 0 {
			m.detailCursor--
		}
		m.ensureDetailCursorVisible()
	case "G", "end":
		m.detailCursor = max(len(m.detail.Media)-1, 0)
		m.ensureDetailCursorVisible()
	case "g", "home":
		m.detailCursor = 0
		m.detailScroll = 0
	case "tab", "enter":
		if m.detailCursor < len(m.detail.Media) {
			m.detailExpanded[m.detailCursor] = !m.detailExpanded[m.detailCursor]
			m.ensureDetailCursorVisible()
		}
	case "r":
		if m.catalog != nil && m.catalog.Path != "" {
			m.notice = "reloading…"
			return m, loadCatalogCmd(m.catalog.Path)
		}
	}
	return m, nil
}

// updateLibraryMouse scrolls the library viewport with the wheel.
func (m model) updateLibraryMouse(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseWheelUp:
		m.scroll -= 3
	case tea.MouseWheelDown:
		m.scroll += 3
	}
	m.clampLibraryScroll()
	return m, nil
}

// updateDetailMouse scrolls the detail viewport with the wheel.
func (m model) updateDetailMouse(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	lines, _ := m.detailLayout()
	maxScroll := max(len(lines)-m.detailViewHeight(), 0)
	switch msg.Button {
	case tea.MouseWheelUp:
		m.detailScroll -= 3
	case tea.MouseWheelDown:
		m.detailScroll += 3
	}
	m.detailScroll = min(max(m.detailScroll, 0), maxScroll)
	return m, nil
}
