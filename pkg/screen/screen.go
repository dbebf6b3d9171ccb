// Package screen converts the CHIP-8 framebuffer into host pixel formats.
package screen

import (
	"image/color"

	"github.com/mnafees/chopper/v2/internal"
)

// Colors of unlit and lit pixels.
var (
	ScreenColor = color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF}
	SpriteColor = color.RGBA{R: 0x9F, G: 0xA8, B: 0xDA, A: 0xFF}
)

// RGB returns c as a 0xRRGGBB value.
func RGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// BufferSize is the size of an RGBA buffer holding one frame.
const BufferSize = internal.ScreenWidth * internal.ScreenHeight * 4

// FillRGBA writes the framebuffer into dst as RGBA pixels, row by row.
// dst must be at least BufferSize bytes long.
func FillRGBA(dst []byte, fb *internal.Framebuffer) {
	for i, lit := range fb {
		c := ScreenColor
		if lit {
			c = SpriteColor
		}
		p := dst[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
}
