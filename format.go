package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/library"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
)

// plural renders "1 photo" / "3 photos", with thousands separators.
func plural(n int, one, many string) string {
	word := many
	if n == 1 {
		word = one
	}
	return humanize.Comma(int64(n)) + " " + word
}

// formatStats renders the aggregate line: "12 photos · 3 videos · 15 items".
func formatStats(st library.Stats) string {
	return strings.Join([]string{
		plural(st.Photos, "photo", "photos"),
		plural(st.Videos, "video", "videos"),
		plural(st.Total, "item", "items"),
	}, " "+IconDot+" ")
}

// formatCounts renders a compact per-session tally: "3▣ 1▶". Kinds with a
// zero count are omitted; an empty session renders "no media".
func formatCounts(photos, videos int) string {
	var parts []string
	if photos > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", photos, IconPhoto))
	}
	if videos > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", videos, IconVideo))
	}
	if len(parts) == 0 {
		return "no media"
	}
	return strings.Join(parts, " ")
}

// formatClipDuration formats a video length as m:ss or h:mm:ss.
func formatClipDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	secs := int(d.Round(time.Second).Seconds())
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// captureAge describes a capture date relative to now: "today",
// "yesterday", "5 days ago". Malformed dates return "".
func captureAge(now time.Time, date string) string {
	d, err := time.ParseInLocation(library.DateLayout, date, now.Location())
	if err != nil {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case d.Equal(today):
		return "today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	default:
		// Compare civil dates in UTC so every day is 24 hours long.
		civil := func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return humanize.RelTime(civil(d), civil(today), "ago", "from now")
	}
}

// sourceName returns the last path element of a capture reference.
func sourceName(ref string) string {
	if ref == "" {
		return ""
	}
	if i := strings.LastIndexAny(ref, "/\\"); i >= 0 && i < len(ref)-1 {
		return ref[i+1:]
	}
	return ref
}

// truncate cuts s to at most maxWidth cells, adding an ellipsis.
func truncate(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// spaceBetween lays out left and right on one line of the given width,
// keeping at least two spaces between them.
func spaceBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// indentBlock prefixes every line of text.
func indentBlock(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}
