package main

import (
	"strings"
	"testing"
)

func TestViewLibrary(t *testing.T) {
	t.Run("list mode shows header, chips and rows", func(t *testing.T) {
		out := plain(testModel().render())
		for _, want := range []string{
			"Inspections",
			"(6 sessions)",
			"demo catalog",
			"All dates",
			"All media",
			"By inspection",
			"15 photos · 5 videos · 20 items",
			"Roof membrane survey",
			"09:40 · today",
			"INS-2041 · Harbor Mutual · 14 Pier Rd, Bay 3",
			"4▣ 1▶",
			"+2 more",
			"q:quit",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("fills the terminal height", func(t *testing.T) {
		m := testModel()
		lines := strings.Split(m.render(), "\n")
		if len(lines) != m.height {
			t.Errorf("rendered %d lines, want %d", len(lines), m.height)
		}
	})

	t.Run("date mode shows group headers", func(t *testing.T) {
		out := plain(press(testModel(), "v").render())
		for _, want := range []string{"Today", "Yesterday", "Sun, Dec 1", "Fri, Nov 22", "Sun, Oct 20", "By date", "6 items"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
		if strings.Index(out, "Yesterday") > strings.Index(out, "Sun, Dec 1") {
			t.Error("groups should be newest first")
		}
	})

	t.Run("video filter hides photos", func(t *testing.T) {
		out := plain(press(testModel(), "m", "m").render())
		if !strings.Contains(out, "0 photos · 5 videos · 5 items") {
			t.Errorf("unexpected stats in:\n%s", out)
		}
		if strings.Contains(out, "Boiler room walkdown") {
			t.Error("photo-only session should be filtered out")
		}
	})

	t.Run("empty state", func(t *testing.T) {
		for _, m := range []model{emptyModel(), press(emptyModel(), "v")} {
			out := plain(m.render())
			if !strings.Contains(out, "No captures match these filters.") {
				t.Errorf("missing empty state in:\n%s", out)
			}
			if !strings.Contains(out, "0 photos · 0 videos · 0 items") {
				t.Error("missing zero stats")
			}
		}
	})

	t.Run("live badge when watching", func(t *testing.T) {
		m := testModel()
		m.watching = true
		if !strings.Contains(plain(m.render()), IconLive+" LIVE") {
			t.Error("missing LIVE badge")
		}
	})

	t.Run("dump omits status bar", func(t *testing.T) {
		m := testModel()
		m.dump = true
		out := plain(m.render())
		if strings.Contains(out, "q:quit") {
			t.Error("dump output should not include the status bar")
		}
		if !strings.Contains(out, "Warehouse sprinkler check") {
			t.Error("dump output should include every session")
		}
	})
}

func TestViewDetail(t *testing.T) {
	t.Run("shows session and captures", func(t *testing.T) {
		out := plain(press(testModel(), "enter").render())
		for _, want := range []string{
			"Roof membrane survey",
			"2024-12-04 09:40 (today)",
			"INS-2041 · Harbor Mutual",
			"Findings",
			"Captures",
			"01.jpg",
			"03.mp4",
			"0:34",
			"esc:back",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("expanded row shows metadata", func(t *testing.T) {
		out := plain(press(testModel(), "enter", "tab").render())
		if !strings.Contains(out, `"id": "INS-2041-m1"`) {
			t.Errorf("missing metadata in:\n%s", out)
		}
		if strings.Contains(out, `"id": "INS-2041-m2"`) {
			t.Error("collapsed row should not show metadata")
		}
	})

	t.Run("media filter narrows captures", func(t *testing.T) {
		out := plain(press(testModel(), "m", "m", "enter").render())
		if strings.Contains(out, "01.jpg") {
			t.Error("photo should be hidden under the video filter")
		}
		if !strings.Contains(out, "03.mp4") {
			t.Error("video should be shown")
		}
	})
}

func TestBuildLibraryItems(t *testing.T) {
	m := press(testModel(), "v")
	headers := 0
	for _, it := range m.items {
		if it.typ == libraryItemHeader {
			headers++
		}
	}
	if headers != len(m.vm.Groups) {
		t.Errorf("headers = %d, want %d", headers, len(m.vm.Groups))
	}

	m = testModel()
	for _, it := range m.items {
		if it.typ != libraryItemSession {
			t.Fatal("list mode should have no headers")
		}
	}
}
