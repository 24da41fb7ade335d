package view

import "github.com/rivo/uniseg"

// GraphemeLen counts grapheme clusters in s, matching the cursor math
// EditableLine uses (spec §4.6) so segment clipping in RenderSlice
// operates on the same units.
func GraphemeLen(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n++
	}
	return n
}

// GraphemeSlice splits s into its grapheme clusters.
func GraphemeSlice(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
