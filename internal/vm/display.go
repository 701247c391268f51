package vm

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash"
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32

	spriteWidth = 8
)

// Pixel values of the display buffer.
const (
	PixelOff uint32 = 0x00000000
	PixelOn  uint32 = 0xFFFFFFFF
)

// Display is the 64x32 pixel framebuffer, stored row by row.
// Every pixel is either PixelOn or PixelOff so that the buffer can be
// handed to a presentation layer as RGBA data.
type Display [DisplayWidth * DisplayHeight]uint32

// Pixel returns whether the pixel at the given coordinate is set.
// Coordinates outside of the display return false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d[y*DisplayWidth+x] == PixelOn
}

// Checksum returns a hash of the display content that can be used to
// compare frames.
func (d *Display) Checksum() uint64 {
	buf := make([]byte, 4*len(d))
	for i, pixel := range d {
		binary.LittleEndian.PutUint32(buf[4*i:], pixel)
	}
	return xxhash.Sum64(buf)
}

// String renders the display as text, one line per row with '#' for set
// pixels and '.' for cleared ones.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if d.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Display) clear() {
	*d = Display{}
}

// flip toggles a pixel and returns whether it was set before, which
// means that the pixel got cleared.
func (d *Display) flip(x, y int) bool {
	offset := y*DisplayWidth + x
	wasSet := d[offset] == PixelOn
	d[offset] ^= PixelOn
	return wasSet
}
