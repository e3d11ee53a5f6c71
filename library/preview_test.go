package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewOf(t *testing.T) {
	tests := []struct {
		kinds     string
		items     int
		remaining int
		hasVideo  bool
	}{
		{"", 0, 0, false},
		{"p", 1, 0, false},
		{"pv", 2, 0, true},
		{"ppp", 3, 0, false},
		{"pppv", 3, 1, true},
		{"vpppppp", 3, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.kinds, func(t *testing.T) {
			s := session("s", "2024-12-04", tt.kinds)
			p := PreviewOf(s)
			assert.Len(t, p.Items, tt.items)
			assert.Equal(t, tt.remaining, p.Remaining)
			assert.Equal(t, tt.hasVideo, p.HasVideo)
			if tt.items > 0 {
				assert.Equal(t, s.Media[:tt.items], p.Items)
			}
		})
	}
}

func TestPreviewOf_FollowsFilteredMedia(t *testing.T) {
	// The video sits past the preview window; once photos are filtered
	// out the flag must reflect the filtered session, not the original.
	s := session("s", "2024-12-04", "ppppv")
	assert.True(t, PreviewOf(s).HasVideo)

	photosOnly := FilterByMediaType([]Session{s}, MediaPhotos)[0]
	p := PreviewOf(photosOnly)
	assert.False(t, p.HasVideo)
	assert.Equal(t, 1, p.Remaining)
}
