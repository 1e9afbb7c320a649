package tile

import (
	"image"
	"sort"

	"github.com/bodgit/zxscreen/palette"
)

// Cell is a single 8 by 8 character cell.
type Cell struct {
	// Pixels holds the color index of each pixel in row-major order.
	// Pixels outside of the source image are 0.
	Pixels [cellPixels]uint8
	Ink    uint8
	Paper  uint8
	Bright bool
	Bitmap [cellBytes]byte
}

// Attribute returns the packed attribute byte for the cell.
func (c *Cell) Attribute() byte {
	a := c.Ink&inkMask | c.Paper<<3&paperMask
	if c.Bright {
		a |= brightBit
	}
	return a
}

// NewCell converts the 8 by 8 region of m with its top-left corner at (x, y).
func NewCell(m image.Image, x, y int) Cell {
	var (
		c      Cell
		used   []palette.Color
		counts [palette.NumColors]int
	)

	b := m.Bounds()
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(b) {
				continue
			}
			pc := palette.Quantize(m.At(p.X, p.Y))
			c.Pixels[dy*cellWidth+dx] = pc.Index
			counts[pc.Index]++
			if !contains(used, pc) {
				used = append(used, pc)
			}
		}
	}

	c.chooseColors(used, counts)
	c.pack()

	return c
}

func contains(p []palette.Color, c palette.Color) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// chooseColors picks the ink and paper. Colors are ranked by how many
// pixels share their index regardless of brightness; the most common
// becomes paper and the next ink. Equal counts keep first seen order.
func (c *Cell) chooseColors(used []palette.Color, counts [palette.NumColors]int) {
	switch len(used) {
	case 0:
		c.Ink, c.Paper, c.Bright = palette.White, palette.Black, false
	case 1:
		c.Ink, c.Paper, c.Bright = used[0].Index, palette.Black, used[0].Bright
	default:
		sort.SliceStable(used, func(i, j int) bool {
			return counts[used[i].Index] > counts[used[j].Index]
		})
		paper, ink := used[0], palette.Color{Index: palette.White}
		if len(used) > 1 {
			ink = used[1]
		}
		c.Ink, c.Paper, c.Bright = ink.Index, paper.Index, paper.Bright || ink.Bright
	}
}

// pack sets a bit for every ink pixel and also for any pixel that is
// neither paper nor black.
func (c *Cell) pack() {
	for y := 0; y < cellHeight; y++ {
		var v byte
		for x := 0; x < cellWidth; x++ {
			i := c.Pixels[y*cellWidth+x]
			if i == c.Ink || (i != c.Paper && i != palette.Black) {
				v |= 0x80 >> uint(x)
			}
		}
		c.Bitmap[y] = v
	}
}
