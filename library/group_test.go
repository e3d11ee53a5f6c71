package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	sessions := []Session{
		session("old", "2024-11-24", "p"),
		session("t1", "2024-12-04", "pv"),
		session("y1", "2024-12-03", "v"),
		session("t2", "2024-12-04", "pp"),
		session("y2", "2024-12-03", "p"),
	}

	groups := GroupByDate(sessions, refNow)
	require.Len(t, groups, 3)

	assert.Equal(t, "2024-12-04", groups[0].Date)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, []string{"t1", "t2"}, cardIDs(groups[0].Sessions))
	assert.Equal(t, []MediaType{Photo, Video, Photo, Photo}, mediaTypes(groups[0].Media))

	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Equal(t, []string{"y1", "y2"}, cardIDs(groups[1].Sessions))

	assert.Equal(t, "Sun, Nov 24", groups[2].Label)
	assert.Equal(t, []string{"old"}, cardIDs(groups[2].Sessions))
}

func TestGroupByDate_StrictlyDescendingAndComplete(t *testing.T) {
	sessions := fixture()
	groups := GroupByDate(sessions, refNow)

	seen := map[string]int{}
	var prev string
	for i, g := range groups {
		if i > 0 && validDate(g.Date) {
			assert.Greater(t, prev, g.Date, "group %d not strictly descending", i)
		}
		prev = g.Date
		for _, c := range g.Sessions {
			seen[c.ID]++
			assert.Equal(t, g.Date, c.CaptureDate)
		}
	}
	require.Len(t, seen, len(sessions))
	for id, n := range seen {
		assert.Equal(t, 1, n, "session %s appears in %d groups", id, n)
	}
}

func TestGroupByDate_MalformedSortsLast(t *testing.T) {
	sessions := []Session{
		session("bad1", "someday", "p"),
		session("ok", "2024-01-01", "p"),
		session("bad2", "", "p"),
		session("new", "2024-12-04", "p"),
	}
	groups := GroupByDate(sessions, refNow)
	require.Len(t, groups, 4)

	var dates, labels []string
	for _, g := range groups {
		dates = append(dates, g.Date)
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"2024-12-04", "2024-01-01", "someday", ""}, dates)
	assert.Equal(t, []string{"Today", "Mon, Jan 1", "someday", "Undated"}, labels)
}

func TestGroupByDate_EmptyInput(t *testing.T) {
	groups := GroupByDate(nil, refNow)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "Today", DateLabel(refNow, "2024-12-04"))
	assert.Equal(t, "Yesterday", DateLabel(refNow, "2024-12-03"))
	assert.Equal(t, "Mon, Dec 2", DateLabel(refNow, "2024-12-02"))
	assert.Equal(t, "Sun, Nov 24", DateLabel(refNow, "2024-11-24"))
	assert.Equal(t, "Thu, Dec 5", DateLabel(refNow, "2024-12-05"))
}

func TestDateLabel_UsesNowLocation(t *testing.T) {
	// 01:00 on Dec 5 in UTC+10 is still Dec 4 in UTC.
	loc := time.FixedZone("AEST", 10*60*60)
	now := time.Date(2024, 12, 5, 1, 0, 0, 0, loc)
	assert.Equal(t, "Today", DateLabel(now, "2024-12-05"))
	assert.Equal(t, "Yesterday", DateLabel(now, "2024-12-04"))
}

func TestParseGroupMode(t *testing.T) {
	g, ok := ParseGroupMode("date")
	assert.True(t, ok)
	assert.Equal(t, GroupByDay, g)

	g, ok = ParseGroupMode("")
	assert.True(t, ok)
	assert.Equal(t, GroupByInspection, g)

	_, ok = ParseGroupMode("client")
	assert.False(t, ok)

	assert.Equal(t, GroupByDay, GroupByInspection.Toggle())
	assert.Equal(t, GroupByInspection, GroupByDay.Toggle())
}
