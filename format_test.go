package main

import (
	"testing"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/library"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 photos"},
		{1, "1 photo"},
		{2, "2 photos"},
		{1234, "1,234 photos"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "photo", "photos"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	got := formatStats(library.Stats{Photos: 1, Videos: 2, Total: 3})
	want := "1 photo · 2 videos · 3 items"
	if got != want {
		t.Errorf("formatStats = %q, want %q", got, want)
	}
}

func TestFormatCounts(t *testing.T) {
	tests := []struct {
		photos, videos int
		want           string
	}{
		{3, 1, "3▣ 1▶"},
		{3, 0, "3▣"},
		{0, 2, "2▶"},
		{0, 0, "no media"},
	}
	for _, tt := range tests {
		if got := formatCounts(tt.photos, tt.videos); got != tt.want {
			t.Errorf("formatCounts(%d, %d) = %q, want %q", tt.photos, tt.videos, got, tt.want)
		}
	}
}

func TestFormatClipDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, ""},
		{-time.Second, ""},
		{7 * time.Second, "0:07"},
		{65 * time.Second, "1:05"},
		{1500 * time.Millisecond, "0:02"},
		{time.Hour + 2*time.Minute + 5*time.Second, "1:02:05"},
	}
	for _, tt := range tests {
		if got := formatClipDuration(tt.input); got != tt.want {
			t.Errorf("formatClipDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCaptureAge(t *testing.T) {
	tests := []struct {
		now  time.Time
		date string
		want string
	}{
		{testNow, "2024-12-04", "today"},
		{testNow, "2024-12-03", "yesterday"},
		{testNow, "2024-11-29", "5 days ago"},
		{testNow, "not-a-date", ""},
		{testNow, "", ""},
	}
	for _, tt := range tests {
		if got := captureAge(tt.now, tt.date); got != tt.want {
			t.Errorf("captureAge(%v, %q) = %q, want %q", tt.now, tt.date, got, tt.want)
		}
	}

	t.Run("calendar days across DST", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("no tz database: %v", err)
		}
		// Clocks sprang forward on 2024-03-10, so Mar 9 is only 47 hours
		// before Mar 11's midnight.
		now := time.Date(2024, 3, 11, 12, 0, 0, 0, ny)
		for date, want := range map[string]string{
			"2024-03-11": "today",
			"2024-03-10": "yesterday",
			"2024-03-09": "2 days ago",
		} {
			if got := captureAge(now, date); got != want {
				t.Errorf("captureAge(%q) = %q, want %q", date, got, want)
			}
			if date == "2024-03-09" && library.DateLabel(now, date) != "Sat, Mar 9" {
				t.Errorf("DateLabel(%q) = %q", date, library.DateLabel(now, date))
			}
		}
	})
}

func TestSourceName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"captures/INS-1/01.jpg", "01.jpg"},
		{`C:\site\clip.mp4`, "clip.mp4"},
		{"plain.jpg", "plain.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sourceName(tt.input); got != tt.want {
			t.Errorf("sourceName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "hell…"},
		{"line\nbreak", 20, "line break"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestSpaceBetween(t *testing.T) {
	if got := spaceBetween("ab", "cd", 10); got != "ab      cd" {
		t.Errorf("spaceBetween = %q", got)
	}
	if got := spaceBetween("abcdef", "ghij", 8); got != "abcdef  ghij" {
		t.Errorf("spaceBetween overflow = %q", got)
	}
}

func TestMediaJSON(t *testing.T) {
	item := library.MediaItem{
		ID:        "m1",
		Type:      library.Video,
		SourceRef: "clip.mp4",
		Timestamp: time.Date(2024, 12, 4, 9, 41, 0, 0, time.UTC),
		Duration:  42 * time.Second,
	}
	want := `{
  "id": "m1",
  "type": "video",
  "src": "clip.mp4",
  "timestamp": "2024-12-04T09:41:00Z",
  "duration": "42s"
}`
	if got := mediaJSON(item); got != want {
		t.Errorf("mediaJSON =\n%s\nwant\n%s", got, want)
	}

	h := newJSONHL(true)
	if _, ok := h.highlight(want); !ok {
		t.Error("valid JSON should highlight")
	}
	if out, ok := h.highlight("not json"); ok || out != "not json" {
		t.Errorf("highlight(non-JSON) = %q, %v", out, ok)
	}
	var nilHL *jsonHL
	if _, ok := nilHL.highlight(want); ok {
		t.Error("nil highlighter should report false")
	}
}
