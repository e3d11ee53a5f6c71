package library

import (
	"sort"
	"strings"
	"time"
)

// GroupMode selects how filtered sessions are arranged.
type GroupMode string

const (
	GroupByInspection GroupMode = "inspection"
	GroupByDay        GroupMode = "date"
)

// ParseGroupMode parses a config/flag value.
func ParseGroupMode(s string) (GroupMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inspection", "session", "job":
		return GroupByInspection, true
	case "date", "day":
		return GroupByDay, true
	default:
		return "", false
	}
}

// Toggle switches between the two modes.
func (g GroupMode) Toggle() GroupMode {
	if g == GroupByDay {
		return GroupByInspection
	}
	return GroupByDay
}

// Label is the human label shown in filter chips.
func (g GroupMode) Label() string {
	if g == GroupByDay {
		return "By date"
	}
	return "By inspection"
}

// DateGroup holds the sessions captured on one calendar day and the
// concatenation of their media in session order.
type DateGroup struct {
	Date     string
	Label    string
	Sessions []SessionCard
	Media    []MediaItem
}

// GroupByDate partitions sessions by exact CaptureDate. Sessions keep their
// input order within a group and groups are returned newest date first.
// Malformed dates sort after every valid date, in first-appearance order.
func GroupByDate(sessions []Session, now time.Time) []DateGroup {
	index := make(map[string]int)
	groups := []DateGroup{}
	for _, s := range sessions {
		i, ok := index[s.CaptureDate]
		if !ok {
			i = len(groups)
			index[s.CaptureDate] = i
			groups = append(groups, DateGroup{
				Date:     s.CaptureDate,
				Label:    DateLabel(now, s.CaptureDate),
				Sessions: []SessionCard{},
				Media:    []MediaItem{},
			})
		}
		g := &groups[i]
		g.Sessions = append(g.Sessions, newCard(s))
		g.Media = append(g.Media, s.Media...)
	}

	loc := now.Location()
	sort.SliceStable(groups, func(i, j int) bool {
		_, iok := parseDay(groups[i].Date, loc)
		_, jok := parseDay(groups[j].Date, loc)
		switch {
		case iok && jok:
			// Normalized dates compare correctly as strings.
			return groups[i].Date > groups[j].Date
		case iok != jok:
			return iok
		default:
			return false
		}
	})
	return groups
}

// DateLabel renders a group heading: "Today", "Yesterday", or a short
// weekday/month/day string such as "Mon, Dec 2". Malformed dates are shown
// as-is, or "Undated" when empty.
func DateLabel(now time.Time, date string) string {
	d, ok := parseDay(date, now.Location())
	if !ok {
		if strings.TrimSpace(date) == "" {
			return "Undated"
		}
		return date
	}
	bd := boundsAt(now)
	switch {
	case d.Equal(bd.today):
		return "Today"
	case d.Equal(bd.yesterday):
		return "Yesterday"
	default:
		return d.Format("Mon, Jan 2")
	}
}
