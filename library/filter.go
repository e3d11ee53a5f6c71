package library

import (
	"slices"
	"time"
)

// FilterByDateBucket keeps sessions whose capture date falls in bucket.
// BucketAll (or the zero bucket) returns every session. The result is always a new slice; the
// sessions themselves are shared read-only with the input.
func FilterByDateBucket(sessions []Session, bucket DateBucket, now time.Time) []Session {
	if bucket == BucketAll || bucket == "" {
		return cloneSessions(sessions)
	}
	bd := boundsAt(now)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		d, ok := parseDay(s.CaptureDate, now.Location())
		if !ok {
			continue
		}
		if bucket.matchesDay(bd, d) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByMediaType narrows every session's media to the filtered type.
// MediaAll and the zero filter return every session untouched.
//
// Each surviving session gets its own freshly allocated Media slice, and
// sessions left with no media are dropped. Because counts are derived from
// Media, a session filtered to videos reports zero photos even when the
// unfiltered session held some.
func FilterByMediaType(sessions []Session, filter MediaFilter) []Session {
	if filter == MediaAll || filter == "" {
		return cloneSessions(sessions)
	}
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		var media []MediaItem
		for _, m := range s.Media {
			if filter.accepts(m.Type) {
				media = append(media, m)
			}
		}
		if len(media) == 0 {
			continue
		}
		s.Media = media
		out = append(out, s)
	}
	return out
}

// Filter applies the date-bucket filter and then the media-type filter.
func Filter(sessions []Session, q Query, now time.Time) []Session {
	return FilterByMediaType(FilterByDateBucket(sessions, q.Date, now), q.Media)
}

func cloneSessions(sessions []Session) []Session {
	if sessions == nil {
		return []Session{}
	}
	return slices.Clone(sessions)
}
