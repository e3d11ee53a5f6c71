package library

import (
	"fmt"
	"time"
)

// refNow is the fixed "now" used across tests: Wednesday 2024-12-04, 14:00 UTC.
var refNow = time.Date(2024, 12, 4, 14, 0, 0, 0, time.UTC)

// session builds a session from a kinds string of 'p'/'v' runes.
func session(id, date, kinds string) Session {
	s := Session{ID: id, Title: "Inspection " + id, CaptureDate: date}
	for i, k := range kinds {
		t := Photo
		if k == 'v' {
			t = Video
		}
		s.Media = append(s.Media, MediaItem{ID: fmt.Sprintf("%s-%d", id, i), Type: t})
	}
	return s
}

func ids(sessions []Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func cardIDs(cards []SessionCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func mediaTypes(media []MediaItem) []MediaType {
	out := make([]MediaType, len(media))
	for i, m := range media {
		out[i] = m.Type
	}
	return out
}
