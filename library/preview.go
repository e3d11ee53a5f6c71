package library

// PreviewLimit is the number of thumbnails shown per session.
const PreviewLimit = 3

// Preview is the render-side summary of one session's media.
type Preview struct {
	Items     []MediaItem // first PreviewLimit items, in order
	Remaining int         // items not shown in Items
	HasVideo  bool
}

// SessionCard pairs a surfaced session with its preview.
type SessionCard struct {
	Session
	Preview Preview
}

// PreviewOf derives the preview from the session's current media, so a
// filtered session previews (and flags video on) only what survived.
func PreviewOf(s Session) Preview {
	n := min(PreviewLimit, len(s.Media))
	items := make([]MediaItem, n)
	copy(items, s.Media[:n])
	return Preview{
		Items:     items,
		Remaining: max(len(s.Media)-PreviewLimit, 0),
		HasVideo:  s.VideoCount() > 0,
	}
}

func newCard(s Session) SessionCard {
	return SessionCard{Session: s, Preview: PreviewOf(s)}
}
