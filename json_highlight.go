package main

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/library"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/colorprofile"
)

// jsonHL syntax-highlights media metadata for the detail view.
// Mirrors mdRenderer: constructed once with hasDarkBg, caches chroma objects.
type jsonHL struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// newJSONHL creates a highlighter for the detected background and
// terminal color profile. Chroma objects are safe for reuse.
func newJSONHL(hasDarkBg bool) *jsonHL {
	styleName := "github"
	if hasDarkBg {
		styleName = "dracula"
	}
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	return &jsonHL{
		lexer:     chroma.Coalesce(lexers.Get("json")),
		formatter: formatters.Get(chromaFormatter(profile)),
		style:     styles.Get(styleName),
	}
}

// mediaMetadata is the JSON shape shown for an expanded media row.
type mediaMetadata struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Source    string `json:"src,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// mediaJSON renders an item's metadata as indented JSON.
func mediaJSON(item library.MediaItem) string {
	meta := mediaMetadata{
		ID:     item.ID,
		Type:   string(item.Type),
		Source: item.SourceRef,
	}
	if !item.Timestamp.IsZero() {
		meta.Timestamp = item.Timestamp.Format(time.RFC3339)
	}
	if item.Type == library.Video && item.Duration > 0 {
		meta.Duration = item.Duration.String()
	}
	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// highlight returns syntax-highlighted JSON, or (s, false) when s is not
// JSON or highlighting fails so the caller can render it plain.
func (h *jsonHL) highlight(s string) (string, bool) {
	if h == nil || !json.Valid([]byte(s)) {
		return s, false
	}
	iterator, err := h.lexer.Tokenise(nil, s)
	if err != nil {
		return s, false
	}
	var out bytes.Buffer
	if err := h.formatter.Format(&out, h.style, iterator); err != nil {
		return s, false
	}
	return out.String(), true
}

// chromaFormatter maps colorprofile profiles to chroma terminal formatter names.
func chromaFormatter(profile colorprofile.Profile) string {
	switch profile {
	case colorprofile.TrueColor:
		return "terminal16m"
	case colorprofile.ANSI256:
		return "terminal256"
	case colorprofile.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}
