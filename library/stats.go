package library

// Stats are aggregate counts over a filtered media set.
type Stats struct {
	Photos int
	Videos int
	Total  int
}

// Aggregate counts photos and videos in a single pass.
func Aggregate(media []MediaItem) Stats {
	var st Stats
	for _, m := range media {
		switch m.Type {
		case Photo:
			st.Photos++
		case Video:
			st.Videos++
		}
	}
	st.Total = st.Photos + st.Videos
	return st
}

// FlattenMedia concatenates every session's media in session order.
func FlattenMedia(sessions []Session) []MediaItem {
	n := 0
	for _, s := range sessions {
		n += len(s.Media)
	}
	out := make([]MediaItem, 0, n)
	for _, s := range sessions {
		out = append(out, s.Media...)
	}
	return out
}
