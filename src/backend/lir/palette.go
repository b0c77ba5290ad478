package lir

import (
	"fmt"
	"math/rand"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Color is a palette entry: an RGB triple used to fill a rendered RIG node
// (spec §6.2). The teacher never emits colors (it emits assembler), so this
// has no direct teacher counterpart; it is grounded directly on spec §5's
// "palette generation uses the hosting environment's source of randomness".
type Color struct {
	R, G, B uint8
}

// ---------------------
// ----- Functions -----
// ---------------------

// Hex renders Color c as the "#RRGGBB" form required by spec §6.2.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NewPalette returns n distinct random colors. Palette iteration order
// determines which color a tie-break prefers during color assignment
// (spec §4.5 Tie-breaks), so the returned slice is the authoritative order;
// callers must not re-sort it.
func NewPalette(n int) []Color {
	seen := make(map[Color]bool, n)
	palette := make([]Color, 0, n)
	for len(palette) < n {
		c := Color{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256))}
		if seen[c] {
			continue
		}
		seen[c] = true
		palette = append(palette, c)
	}
	return palette
}
