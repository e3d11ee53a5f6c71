package main

// Icons used throughout the TUI.
// Using standard Unicode symbols for maximum terminal compatibility.
const (
	IconPhoto     = "▣" // Photo capture
	IconVideo     = "▶" // Video capture
	IconExpanded  = "▾" // Expanded media row
	IconCollapsed = "▸" // Collapsed media row
	IconCursor    = "▸" // Detail view cursor
	IconDot       = "·" // Separator dot
	IconSelected  = "│" // Selected row sidebar
	IconLive      = "●" // Catalog watch indicator
)

// mediaIcon returns the glyph for a capture.
func mediaIcon(video bool) string {
	if video {
		return IconVideo
	}
	return IconPhoto
}
