package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/akavel/girt/internal/view"
)

func TestPalette_Truecolor_PassesNamedColorThrough(t *testing.T) {
	p := newPalette(1 << 24)
	if got := p.resolve(view.ColorRed); got != tcell.ColorRed {
		t.Fatalf("resolve(ColorRed) = %v, want tcell.ColorRed unchanged", got)
	}
}

func TestPalette_Fallback_BlendsToNearest256Entry(t *testing.T) {
	p := newPalette(256)
	got := p.resolve(view.ColorRed)

	gr, gg, gb := got.RGB()
	wr, wg, wb := tcell.ColorRed.RGB()
	if gr != wr || gg != wg || gb != wb {
		t.Errorf("nearest-256 RGB = (%d,%d,%d), want close to red (%d,%d,%d)", gr, gg, gb, wr, wg, wb)
	}
}

func TestPalette_Fallback_LeavesDefaultColorAlone(t *testing.T) {
	p := newPalette(256)
	if got := p.resolve(view.ColorDefault); got != tcell.ColorDefault {
		t.Fatalf("resolve(ColorDefault) = %v, want tcell.ColorDefault", got)
	}
}
