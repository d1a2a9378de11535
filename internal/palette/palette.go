// Package palette holds the ANSI sequences behind the built-in themes.
package palette

import "strconv"

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Reverse   = "\x1b[7m"
	Strike    = "\x1b[9m"
)

// Palette is the set of colors a theme assigns to each emphasis category.
type Palette struct {
	Text           string
	Emphasis       string
	Strong         string
	EmphasisStrong string
}

// FG returns the xterm-256 foreground sequence for idx.
func FG(idx int) string {
	return "\x1b[38;5;" + strconv.Itoa(idx) + "m"
}

// BG returns the xterm-256 background sequence for idx.
func BG(idx int) string {
	return "\x1b[48;5;" + strconv.Itoa(idx) + "m"
}

var (
	PaletteDefault = Palette{
		Text:           "",
		Emphasis:       FG(117),
		Strong:         FG(215),
		EmphasisStrong: FG(213),
	}
	PaletteOutrunElectric = Palette{
		Text:           FG(189),
		Emphasis:       FG(51),
		Strong:         FG(201),
		EmphasisStrong: FG(226),
	}
	PaletteDoomIosvkem = Palette{
		Text:           FG(252),
		Emphasis:       FG(80),
		Strong:         FG(209),
		EmphasisStrong: FG(176),
	}
	PaletteDoomGruvbox = Palette{
		Text:           FG(223),
		Emphasis:       FG(108),
		Strong:         FG(214),
		EmphasisStrong: FG(175),
	}
	PaletteDoomDracula = Palette{
		Text:           FG(253),
		Emphasis:       FG(117),
		Strong:         FG(212),
		EmphasisStrong: FG(228),
	}
	PaletteDoomNord = Palette{
		Text:           FG(254),
		Emphasis:       FG(110),
		Strong:         FG(150),
		EmphasisStrong: FG(139),
	}
	PaletteTokyoNight = Palette{
		Text:           FG(189),
		Emphasis:       FG(117),
		Strong:         FG(111),
		EmphasisStrong: FG(141),
	}
	PaletteCatppuccinMocha = Palette{
		Text:           FG(189),
		Emphasis:       FG(217),
		Strong:         FG(183),
		EmphasisStrong: FG(218),
	}
	PaletteSolarizedDark = Palette{
		Text:           FG(246),
		Emphasis:       FG(37),
		Strong:         FG(136),
		EmphasisStrong: FG(125),
	}
	PaletteSolarizedLight = Palette{
		Text:           FG(240),
		Emphasis:       FG(37),
		Strong:         FG(166),
		EmphasisStrong: FG(125),
	}
	PaletteGithubDark = Palette{
		Text:           FG(252),
		Emphasis:       FG(117),
		Strong:         FG(255),
		EmphasisStrong: FG(183),
	}
	PaletteGithubLight = Palette{
		Text:           FG(235),
		Emphasis:       FG(25),
		Strong:         FG(232),
		EmphasisStrong: FG(91),
	}
	PaletteOneDark = Palette{
		Text:           FG(249),
		Emphasis:       FG(180),
		Strong:         FG(204),
		EmphasisStrong: FG(170),
	}
	PaletteRosePine = Palette{
		Text:           FG(189),
		Emphasis:       FG(181),
		Strong:         FG(216),
		EmphasisStrong: FG(183),
	}
	PaletteKanagawa = Palette{
		Text:           FG(187),
		Emphasis:       FG(110),
		Strong:         FG(179),
		EmphasisStrong: FG(168),
	}
)
