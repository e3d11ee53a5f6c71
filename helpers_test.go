package main

import (
	"time"

	"github.com/kylesnowschwartz/tail-inspections/library"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// testNow is Wednesday 2024-12-04, 14:00 UTC.
var testNow = time.Date(2024, 12, 4, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// key constructs a tea.KeyPressMsg from a string like "j", "tab", "enter", "ctrl+c".
// Single-character strings become printable keys; named keys get their
// corresponding key code.
func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "esc", "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		r := []rune(s)[0]
		return tea.KeyPressMsg{Code: r, Text: s}
	}
}

// wheel constructs a mouse wheel event.
func wheel(button tea.MouseButton) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{Button: button}
}

// testModel returns a model over the demo catalog with a pinned clock,
// width=120, height=40 and a dark background.
func testModel() model {
	m := initialModel(library.DemoCatalog(testNow), library.DefaultQuery(), fixedClock, true)
	m.width = 120
	m.height = 40
	return m
}

// emptyModel returns a model over a catalog with no sessions.
func emptyModel() model {
	m := initialModel(&library.Catalog{}, library.DefaultQuery(), fixedClock, true)
	m.width = 120
	m.height = 40
	return m
}

// asModel extracts the model from an Update return value.
func asModel(t tea.Model) model {
	return t.(model)
}

// isQuit returns true when cmd is the Quit command.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// press feeds a sequence of keys through Update.
func press(m model, keys ...string) model {
	for _, k := range keys {
		result, _ := m.Update(key(k))
		m = asModel(result)
	}
	return m
}

// plain strips ANSI styling from rendered output.
func plain(s string) string {
	return ansi.Strip(s)
}

// selectedID returns the ID of the session under the cursor, or "".
func selectedID(m model) string {
	if c := m.selectedCard(); c != nil {
		return c.ID
	}
	return ""
}
