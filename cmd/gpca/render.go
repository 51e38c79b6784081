package main

import (
	"fmt"
	"strings"

	"github.com/gpca-project/gpca-core/internal/world"
)

// renderGrid draws the occupied cells of w as a text grid, one row per
// y from height-1 down to 0 so it reads the way a terminal plot does,
// with each occupied cell showing its entity id mod 10 and its color
// value as an ANSI 256-color escape.
func renderGrid(w *world.World, width, height uint32) string {
	var b strings.Builder
	for y := int(height) - 1; y >= 0; y-- {
		for x := uint32(0); x < width; x++ {
			e, ok := w.EntityAt(x, uint32(y))
			if !ok {
				b.WriteByte('.')
				continue
			}
			glyph := byte('0' + e.ID()%10)
			fmt.Fprintf(&b, "\x1b[38;5;%dm%c\x1b[0m", e.Color()%256, glyph)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d entities\n", w.Len())
	return b.String()
}
