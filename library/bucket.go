package library

import (
	"strings"
	"time"
)

// DateLayout is the normalized calendar-day format for CaptureDate.
const DateLayout = "2006-01-02"

// DateBucket names a relative date range used for filtering.
type DateBucket string

const (
	BucketAll       DateBucket = "all"
	BucketToday     DateBucket = "today"
	BucketYesterday DateBucket = "yesterday"
	BucketThisWeek  DateBucket = "week"
	BucketThisMonth DateBucket = "month"
)

// dateBuckets is the cycle order used by the UI.
var dateBuckets = []DateBucket{BucketAll, BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth}

// ParseDateBucket parses a config/flag value such as "today" or "this-week".
func ParseDateBucket(s string) (DateBucket, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "this-"), "this_")
	switch s {
	case "", "all":
		return BucketAll, true
	case "today":
		return BucketToday, true
	case "yesterday":
		return BucketYesterday, true
	case "week":
		return BucketThisWeek, true
	case "month":
		return BucketThisMonth, true
	default:
		return "", false
	}
}

// Next returns the following bucket in cycle order.
func (b DateBucket) Next() DateBucket {
	return cycle(dateBuckets, b, 1)
}

// Prev returns the preceding bucket in cycle order.
func (b DateBucket) Prev() DateBucket {
	return cycle(dateBuckets, b, -1)
}

// Label is the human label shown in filter chips.
func (b DateBucket) Label() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketYesterday:
		return "Yesterday"
	case BucketThisWeek:
		return "This Week"
	case BucketThisMonth:
		return "This Month"
	default:
		return "All dates"
	}
}

// dayBounds holds the calendar-day boundaries derived from "now".
type dayBounds struct {
	today      time.Time
	yesterday  time.Time
	weekStart  time.Time
	monthStart time.Time
}

func boundsAt(now time.Time) dayBounds {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return dayBounds{
		today:      today,
		yesterday:  today.AddDate(0, 0, -1),
		weekStart:  today.AddDate(0, 0, -7),
		monthStart: today.AddDate(0, 0, -30),
	}
}

// parseDay parses a normalized capture date in now's location.
func parseDay(date string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Matches reports whether a capture date falls inside the bucket relative
// to now. Today and Yesterday require exact day equality; This Week and
// This Month are inclusive lower bounds, so they also cover Today and
// Yesterday. Malformed dates only match BucketAll. The zero bucket is
// BucketAll.
func (b DateBucket) Matches(now time.Time, date string) bool {
	if b == BucketAll || b == "" {
		return true
	}
	d, ok := parseDay(date, now.Location())
	if !ok {
		return false
	}
	return b.matchesDay(boundsAt(now), d)
}

func (b DateBucket) matchesDay(bd dayBounds, d time.Time) bool {
	switch b {
	case BucketAll, "":
		return true
	case BucketToday:
		return d.Equal(bd.today)
	case BucketYesterday:
		return d.Equal(bd.yesterday)
	case BucketThisWeek:
		return !d.Before(bd.weekStart)
	case BucketThisMonth:
		return !d.Before(bd.monthStart)
	default:
		return false
	}
}

// Classify returns the most specific bucket a capture date belongs to:
// Today, Yesterday, This Week, This Month, in that order. Anything older
// than thirty days, and anything malformed, is BucketAll.
func Classify(now time.Time, date string) DateBucket {
	d, ok := parseDay(date, now.Location())
	if !ok {
		return BucketAll
	}
	bd := boundsAt(now)
	for _, b := range []DateBucket{BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth} {
		if b.matchesDay(bd, d) {
			return b
		}
	}
	return BucketAll
}
