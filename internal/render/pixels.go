package render

import (
	"image/color"

	"packlife/pkg/bitset"
)

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillPackedRGBA converts the first n bits of cells into RGBA pixels in buf,
// walking the packed words directly rather than testing each bit by index.
func fillPackedRGBA(buf []byte, cells bitset.View, n int, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	i := 0
	for _, w := range cells.Words() {
		for bit := 0; bit < bitset.WordBits && i < n; bit++ {
			px := offPx
			if w>>uint(bit)&1 == 1 {
				px = onPx
			}
			copy(buf[i*4:i*4+4], px[:])
			i++
		}
	}
}
