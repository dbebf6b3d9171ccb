package screen

import (
	"testing"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/assert"
)

func TestRGB(t *testing.T) {
	assert.Equal(t, uint32(0x1A237E), RGB(ScreenColor))
	assert.Equal(t, uint32(0x9FA8DA), RGB(SpriteColor))
}

func TestFillRGBA(t *testing.T) {
	var fb internal.Framebuffer
	fb[0] = true
	fb[internal.ScreenWidth+1] = true

	buf := make([]byte, BufferSize)
	FillRGBA(buf, &fb)

	pixel := func(x, y int) []byte {
		i := (y*internal.ScreenWidth + x) * 4
		return buf[i : i+4]
	}
	lit := []byte{SpriteColor.R, SpriteColor.G, SpriteColor.B, SpriteColor.A}
	unlit := []byte{ScreenColor.R, ScreenColor.G, ScreenColor.B, ScreenColor.A}

	assert.Equal(t, string(lit), string(pixel(0, 0)))
	assert.Equal(t, string(lit), string(pixel(1, 1)))
	assert.Equal(t, string(unlit), string(pixel(1, 0)))
	assert.Equal(t, string(unlit), string(pixel(internal.ScreenWidth-1, internal.ScreenHeight-1)))
}
