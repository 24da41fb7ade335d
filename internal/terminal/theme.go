package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/akavel/girt/internal/view"
)

// palette resolves a view.Color to the concrete tcell.Color the active
// terminal should draw. Terminals that don't advertise full truecolor
// support render tcell's named constants inconsistently, so on those
// terminals palette blends each named color down to its nearest
// xterm-256 palette entry, measured by Lab-space distance
// (github.com/lucasb-eyer/go-colorful, a tcell dependency used directly
// here rather than only transitively).
type palette struct {
	fallback bool
}

// newPalette builds a palette for a terminal reporting the given number
// of distinct colors (tcell.Screen.Colors()); anything short of full
// 24-bit truecolor (1<<24) falls back to 256-color blending.
func newPalette(colors int) *palette {
	return &palette{fallback: colors > 0 && colors < 1<<24}
}

func (p *palette) resolve(c view.Color) tcell.Color {
	named := namedColor(c)
	if !p.fallback {
		return named
	}
	return nearest256(named)
}

func namedColor(c view.Color) tcell.Color {
	switch c {
	case view.ColorWhite:
		return tcell.ColorWhite
	case view.ColorBlack:
		return tcell.ColorBlack
	case view.ColorRed:
		return tcell.ColorRed
	case view.ColorGreen:
		return tcell.ColorGreen
	case view.ColorYellow:
		return tcell.ColorYellow
	case view.ColorBlue:
		return tcell.ColorBlue
	case view.ColorMagenta:
		return tcell.ColorPurple
	case view.ColorCyan:
		return tcell.ColorTeal
	default:
		return tcell.ColorDefault
	}
}

// nearest256 finds the xterm-256 palette entry closest to c in Lab space.
func nearest256(c tcell.Color) tcell.Color {
	if c == tcell.ColorDefault {
		return c
	}
	target := toColorful(c)

	best := tcell.PaletteColor(0)
	bestDist := math.MaxFloat64
	for i := 0; i < 256; i++ {
		cand := tcell.PaletteColor(i)
		d := target.DistanceLab(toColorful(cand))
		if d < bestDist {
			bestDist = d
			best = cand
		}
	}
	return best
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
