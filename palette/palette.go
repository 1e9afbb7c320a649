/*
Package palette implements the fixed ZX Spectrum color tables and the
quantizer that maps arbitrary RGB values onto them.

The Spectrum has eight colors, each of which is available in a normal and a
bright variant. A color is therefore a 3-bit index plus a brightness flag.
*/
package palette

import "image/color"

// Color is a Spectrum color, an index from 0 to 7 and a brightness flag.
type Color struct {
	Index  uint8
	Bright bool
}

// Color indices
const (
	Black uint8 = iota
	Blue
	Red
	Magenta
	Green
	Cyan
	Yellow
	White
)

// NumColors is the number of colors in each of the two tables.
const NumColors = 8

var (
	normal = [NumColors]color.RGBA{
		{0x00, 0x00, 0x00, 0xff},
		{0x00, 0x00, 0xff, 0xff},
		{0xff, 0x00, 0x00, 0xff},
		{0xff, 0x00, 0xff, 0xff},
		{0x00, 0xff, 0x00, 0xff},
		{0x00, 0xff, 0xff, 0xff},
		{0xff, 0xff, 0x00, 0xff},
		{0xff, 0xff, 0xff, 0xff},
	}

	bright = [NumColors]color.RGBA{
		{0x00, 0x00, 0x00, 0xff},
		{0x00, 0x00, 0xd7, 0xff},
		{0xd7, 0x00, 0x00, 0xff},
		{0xd7, 0x00, 0xd7, 0xff},
		{0x00, 0xd7, 0x00, 0xff},
		{0x00, 0xd7, 0xd7, 0xff},
		{0xd7, 0xd7, 0x00, 0xff},
		{0xd7, 0xd7, 0xd7, 0xff},
	}

	normalIndex = makeIndex(normal)
	brightIndex = makeIndex(bright)
)

type rgb [3]uint8

func makeIndex(t [NumColors]color.RGBA) map[rgb]uint8 {
	m := make(map[rgb]uint8, len(t))
	for i, c := range t {
		k := rgb{c.R, c.G, c.B}
		if _, ok := m[k]; !ok {
			m[k] = uint8(i)
		}
	}
	return m
}

// RGBA implements the color.Color interface, returning the table entry the
// color refers to.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Value().RGBA()
}

// Value returns the RGB triple from the normal or bright table.
func (c Color) Value() color.RGBA {
	if c.Bright {
		return bright[c.Index&0x07]
	}
	return normal[c.Index&0x07]
}

// Palette holds all sixteen table entries, normal colors first and then
// bright. The position of a color within it is Index + 8 when bright.
var Palette = func() color.Palette {
	p := make(color.Palette, 0, NumColors*2)
	for i := range normal {
		p = append(p, Color{Index: uint8(i)})
	}
	for i := range bright {
		p = append(p, Color{Index: uint8(i), Bright: true})
	}
	return p
}()

// Model converts any color to the nearest Spectrum Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	return Quantize(c)
})
