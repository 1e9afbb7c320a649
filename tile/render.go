package tile

import (
	"image"

	"github.com/bodgit/zxscreen/palette"
)

// Image renders the result the way the Spectrum would display it. Set
// bitmap bits use the ink color and clear bits the paper color, both taken
// from the bright table when the cell is bright. The returned image covers
// whole cells so it may be larger than the source image.
func (r *Result) Image() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, r.Columns*cellWidth, r.Rows*cellHeight), palette.Palette)

	for cy := 0; cy < r.Rows; cy++ {
		for cx := 0; cx < r.Columns; cx++ {
			cell := cy*r.Columns + cx
			a := r.Attributes[cell]

			var offset uint8
			if a&brightBit != 0 {
				offset = palette.NumColors
			}
			ink := a&inkMask + offset
			paper := a&paperMask>>3 + offset

			for y := 0; y < cellHeight; y++ {
				b := r.Bitmap[cell*cellBytes+y]
				for x := 0; x < cellWidth; x++ {
					i := paper
					if b&(0x80>>uint(x)) != 0 {
						i = ink
					}
					m.SetColorIndex(cx*cellWidth+x, cy*cellHeight+y, i)
				}
			}
		}
	}

	return m
}
