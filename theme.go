package main

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// -- Colors ---------------------------------------------------------------
// Every color has a light and a dark variant, picked once at startup by
// applyTheme from the detected terminal background.
// Light values: ANSI 0-15 for accents, 256-color for grays. ANSI 7/15
// (white) are invisible on light backgrounds, never use them for Light.
//
// | Name            | Light | Dark  | Light desc    | Dark desc      |
// |-----------------|-------|-------|---------------|----------------|
// | TextPrimary     |   "0" | "252" | black         | light gray     |
// | TextSecondary   |   "8" | "245" | ANSI dk gray  | gray           |
// | TextDim         | "242" | "243" | medium gray   | gray           |
// | TextMuted       | "245" | "240" | med-lt gray   | dark gray      |
// | Accent          |   "4" |  "75" | blue          | blue           |
// | Error           |   "1" | "196" | red           | red            |
// | Photo           |   "6" |  "80" | cyan          | cyan           |
// | Video           |   "5" | "177" | magenta       | purple         |
// | SelectedBg      | "254" | "237" | subtle elev.  | subtle elev.   |
// | ChipActiveBg    |   "4" |  "24" | blue          | deep blue      |
// | StatusBarBg     | "253" | "236" | light band    | dark band      |

var (
	// Text hierarchy
	ColorTextPrimary   color.Color
	ColorTextSecondary color.Color
	ColorTextDim       color.Color
	ColorTextMuted     color.Color

	// Accents
	ColorAccent color.Color
	ColorError  color.Color
	ColorLiveBg color.Color
	ColorLiveFg color.Color

	// Media kinds
	ColorPhoto color.Color
	ColorVideo color.Color

	// Surfaces
	ColorSelectedBg   color.Color
	ColorChipBg       color.Color
	ColorChipActiveBg color.Color
	ColorChipActiveFg color.Color
	ColorStatusBarBg  color.Color
	ColorTextKeyHint  color.Color
)

func init() {
	applyTheme(true)
}

// applyTheme resolves every color for a dark or light background.
func applyTheme(hasDarkBg bool) {
	ld := lipgloss.LightDark(hasDarkBg)
	c := lipgloss.Color

	ColorTextPrimary = ld(c("0"), c("252"))
	ColorTextSecondary = ld(c("8"), c("245"))
	ColorTextDim = ld(c("242"), c("243"))
	ColorTextMuted = ld(c("245"), c("240"))

	ColorAccent = ld(c("4"), c("75"))
	ColorError = ld(c("1"), c("196"))
	ColorLiveBg = ld(c("2"), c("28"))
	ColorLiveFg = ld(c("15"), c("231"))

	ColorPhoto = ld(c("6"), c("80"))
	ColorVideo = ld(c("5"), c("177"))

	ColorSelectedBg = ld(c("254"), c("237"))
	ColorChipBg = ld(c("253"), c("236"))
	ColorChipActiveBg = ld(c("4"), c("24"))
	ColorChipActiveFg = ld(c("15"), c("255"))
	ColorStatusBarBg = ld(c("253"), c("236"))
	ColorTextKeyHint = ld(c("8"), c("250"))
}

// mediaColor returns the accent for a media kind.
func mediaColor(video bool) color.Color {
	if video {
		return ColorVideo
	}
	return ColorPhoto
}
