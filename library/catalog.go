package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyCatalog is returned when a catalog holds no usable session.
var ErrEmptyCatalog = errors.New("catalog has no sessions")

// mediaNamespace seeds deterministic IDs for media records that arrive
// without one, so reloading the same file yields the same IDs.
var mediaNamespace = uuid.MustParse("6f1c9a52-3c1e-4f0e-9d59-2f4b8f0a7c11")

// Catalog is one loaded, read-only session collection. A reload produces a
// new Catalog; existing ones are never modified.
type Catalog struct {
	Path     string
	Sessions []Session
	Problems []string // one entry per skipped line or record
	LoadedAt time.Time
}

// Skipped returns how many catalog lines or records were dropped.
func (c *Catalog) Skipped() int {
	return len(c.Problems)
}

// sessionRecord is the on-disk shape of one JSONL catalog line.
type sessionRecord struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Client      string        `json:"client"`
	Location    string        `json:"location"`
	CaptureDate string        `json:"captureDate"`
	CaptureTime string        `json:"captureTime"`
	Notes       string        `json:"notes"`
	Media       []mediaRecord `json:"media"`
}

type mediaRecord struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Src         string  `json:"src"`
	Timestamp   string  `json:"timestamp"`
	DurationSec float64 `json:"durationSec"`
}

// LoadCatalog reads a JSONL catalog file. Lines that are not valid JSON,
// records without an id, and media of unknown type are skipped and noted
// in Problems. Sessions are returned newest first.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// ReadCatalog parses JSONL session records from r.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{LoadedAt: time.Now()}
	lr := newLineReader(r)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		var rec sessionRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			c.Problems = append(c.Problems, fmt.Sprintf("line %d: %v", lr.line, err))
			continue
		}
		s, problems := rec.toSession()
		for _, p := range problems {
			c.Problems = append(c.Problems, fmt.Sprintf("line %d: %s", lr.line, p))
		}
		if s.ID == "" {
			continue
		}
		c.Sessions = append(c.Sessions, s)
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}
	if lr.oversize > 0 {
		c.Problems = append(c.Problems, fmt.Sprintf("%d oversized line(s) skipped", lr.oversize))
	}
	if len(c.Sessions) == 0 {
		return nil, ErrEmptyCatalog
	}
	SortNewestFirst(c.Sessions)
	return c, nil
}

// toSession normalizes a record. A returned session with an empty ID
// means the whole record was rejected.
func (rec sessionRecord) toSession() (Session, []string) {
	var problems []string
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return Session{}, []string{"session without id"}
	}

	s := Session{
		ID:          id,
		Title:       strings.TrimSpace(rec.Title),
		Client:      strings.TrimSpace(rec.Client),
		Location:    strings.TrimSpace(rec.Location),
		CaptureDate: NormalizeDate(rec.CaptureDate),
		CaptureTime: strings.TrimSpace(rec.CaptureTime),
		Notes:       rec.Notes,
		Media:       make([]MediaItem, 0, len(rec.Media)),
	}

	for i, mr := range rec.Media {
		t, ok := ParseMediaType(mr.Type)
		if !ok {
			problems = append(problems, fmt.Sprintf("session %s: media %d has unknown type %q", id, i, mr.Type))
			continue
		}
		item := MediaItem{
			ID:        strings.TrimSpace(mr.ID),
			Type:      t,
			SourceRef: strings.TrimSpace(mr.Src),
		}
		if item.ID == "" {
			item.ID = uuid.NewSHA1(mediaNamespace, []byte(id+"/"+strconv.Itoa(i))).String()
		}
		if mr.Timestamp != "" {
			ts, err := time.Parse(time.RFC3339, mr.Timestamp)
			if err != nil {
				problems = append(problems, fmt.Sprintf("session %s: media %d: bad timestamp %q", id, i, mr.Timestamp))
			} else {
				item.Timestamp = ts
			}
		}
		if t == Video && mr.DurationSec > 0 {
			item.Duration = time.Duration(mr.DurationSec * float64(time.Second))
		}
		s.Media = append(s.Media, item)
	}
	return s, problems
}

// NormalizeDate turns "2024-12-04" or an RFC 3339 timestamp into the
// YYYY-MM-DD form. Anything else is returned trimmed but unchanged, and
// the engine treats it as malformed.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d.Format(DateLayout)
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Format(DateLayout)
	}
	return s
}

// SortNewestFirst orders sessions by capture date then capture time, most
// recent first. Malformed dates sink to the end; ties keep input order.
func SortNewestFirst(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		aValid, bValid := validDate(a.CaptureDate), validDate(b.CaptureDate)
		switch {
		case aValid != bValid:
			return aValid
		case !aValid:
			return false
		case a.CaptureDate != b.CaptureDate:
			return a.CaptureDate > b.CaptureDate
		default:
			return a.CaptureTime > b.CaptureTime
		}
	})
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
