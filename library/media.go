package library

import (
	"strings"
	"time"
)

// MediaType distinguishes still captures from video captures.
type MediaType string

const (
	Photo MediaType = "photo"
	Video MediaType = "video"
)

// ParseMediaType accepts "photo"/"video" in any case, plus the common
// "image" alias. Returns false for anything else.
func ParseMediaType(s string) (MediaType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "photo", "image":
		return Photo, true
	case "video":
		return Video, true
	default:
		return "", false
	}
}

// MediaItem is a single capture reference inside a session.
// Duration is only set for videos.
type MediaItem struct {
	ID        string
	Type      MediaType
	SourceRef string
	Timestamp time.Time
	Duration  time.Duration
}

// Session is one inspection job's capture record.
//
// CaptureDate is a calendar day in YYYY-MM-DD form. Photo and video counts
// are never stored: PhotoCount and VideoCount recount Media every time, so a
// session that went through a media-type filter reports the counts of its
// filtered slice.
type Session struct {
	ID          string
	Title       string
	Client      string
	Location    string
	CaptureDate string
	CaptureTime string
	Notes       string
	Media       []MediaItem
}

// PhotoCount returns the number of photos in the session's current media.
func (s Session) PhotoCount() int {
	return countType(s.Media, Photo)
}

// VideoCount returns the number of videos in the session's current media.
func (s Session) VideoCount() int {
	return countType(s.Media, Video)
}

func countType(media []MediaItem, t MediaType) int {
	n := 0
	for _, m := range media {
		if m.Type == t {
			n++
		}
	}
	return n
}

// MediaFilter selects which media types survive filtering.
type MediaFilter string

const (
	MediaAll    MediaFilter = "all"
	MediaPhotos MediaFilter = "photo"
	MediaVideos MediaFilter = "video"
)

// mediaFilters is the cycle order used by the UI.
var mediaFilters = []MediaFilter{MediaAll, MediaPhotos, MediaVideos}

// ParseMediaFilter parses a config/flag value. Plurals are accepted.
func ParseMediaFilter(s string) (MediaFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return MediaAll, true
	case "photo", "photos":
		return MediaPhotos, true
	case "video", "videos":
		return MediaVideos, true
	default:
		return "", false
	}
}

// Next returns the following filter in cycle order.
func (f MediaFilter) Next() MediaFilter {
	return cycle(mediaFilters, f, 1)
}

// Label is the short human label shown in filter chips.
func (f MediaFilter) Label() string {
	switch f {
	case MediaPhotos:
		return "Photos"
	case MediaVideos:
		return "Videos"
	default:
		return "All media"
	}
}

// accepts reports whether an item of type t passes the filter.
func (f MediaFilter) accepts(t MediaType) bool {
	switch f {
	case MediaPhotos:
		return t == Photo
	case MediaVideos:
		return t == Video
	default:
		return true
	}
}

// cycle steps through values by delta, wrapping at both ends. Unknown
// values restart at the first element.
func cycle[T comparable](values []T, cur T, delta int) T {
	for i, v := range values {
		if v == cur {
			n := len(values)
			return values[((i+delta)%n+n)%n]
		}
	}
	return values[0]
}
