package library

import (
	"fmt"
	"time"
)

// DemoCatalog returns a small built-in collection dated relative to now,
// used when no catalog file is configured.
func DemoCatalog(now time.Time) *Catalog {
	day := func(offset int) string {
		return now.AddDate(0, 0, -offset).Format(DateLayout)
	}

	sessions := []Session{
		demoSession("INS-2041", "Roof membrane survey", "Harbor Mutual", "14 Pier Rd, Bay 3", day(0), "09:40",
			"## Findings\n\n- Ponding near **north drain**\n- Seam lift at grid C4\n\nRecommend re-inspection after rain.",
			"ppvpp"),
		demoSession("INS-2040", "Boiler room walkdown", "Eastside Schools", "Building B basement", day(0), "07:15",
			"Pressure relief valve tagged. No leaks observed.", "p"),
		demoSession("INS-2036", "Facade crack mapping", "Linden Estates", "220 Linden Ave", day(1), "15:05",
			"Cracks logged on elevations *east* and *south*.", "pppvv"),
		demoSession("INS-2031", "Fire door audit", "Eastside Schools", "Building A, floors 1-3", day(3), "11:30",
			"", "pppp"),
		demoSession("INS-2024", "Parking deck spalling", "Metro Parking Co.", "Deck 2, level P3", day(12), "13:50",
			"1. Exposed rebar at column P3-17\n2. Efflorescence along expansion joint", "vpv"),
		demoSession("INS-1988", "Warehouse sprinkler check", "Northline Logistics", "Unit 7", day(45), "08:05",
			"All heads clear.", "pp"),
	}
	return &Catalog{Path: "", Sessions: sessions, LoadedAt: now}
}

// demoSession builds a session whose media sequence is spelled out as a
// string of 'p' (photo) and 'v' (video) runes.
func demoSession(id, title, client, location, date, clock, notes, kinds string) Session {
	start, err := time.Parse(DateLayout+" 15:04", date+" "+clock)
	if err != nil {
		start = time.Time{}
	}
	media := make([]MediaItem, 0, len(kinds))
	for i, k := range kinds {
		item := MediaItem{
			ID:        fmt.Sprintf("%s-m%d", id, i+1),
			Type:      Photo,
			SourceRef: fmt.Sprintf("captures/%s/%02d.jpg", id, i+1),
			Timestamp: start.Add(time.Duration(i) * 90 * time.Second),
		}
		if k == 'v' {
			item.Type = Video
			item.SourceRef = fmt.Sprintf("captures/%s/%02d.mp4", id, i+1)
			item.Duration = time.Duration(20+i*7) * time.Second
		}
		media = append(media, item)
	}
	return Session{
		ID:          id,
		Title:       title,
		Client:      client,
		Location:    location,
		CaptureDate: date,
		CaptureTime: clock,
		Notes:       notes,
		Media:       media,
	}
}
