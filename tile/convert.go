package tile

import "image"

// Result holds the converted bitmap and attributes of an image.
type Result struct {
	// Width and Height are the source image size in pixels.
	Width, Height int
	// Columns and Rows are the size in character cells.
	Columns, Rows int
	// Bitmap holds 8 bytes per cell, cells in raster order.
	Bitmap []byte
	// Attributes holds one byte per cell, cells in raster order.
	Attributes []byte
}

// Convert splits m into character cells and converts each of them.
func Convert(m image.Image) *Result {
	b := m.Bounds()

	r := &Result{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Columns: cells(b.Dx()),
		Rows:    cells(b.Dy()),
	}
	n := r.Columns * r.Rows
	r.Bitmap = make([]byte, 0, n*cellBytes)
	r.Attributes = make([]byte, 0, n)

	for cy := 0; cy < r.Rows; cy++ {
		for cx := 0; cx < r.Columns; cx++ {
			c := NewCell(m, b.Min.X+cx*cellWidth, b.Min.Y+cy*cellHeight)
			r.Bitmap = append(r.Bitmap, c.Bitmap[:]...)
			r.Attributes = append(r.Attributes, c.Attribute())
		}
	}

	return r
}

// Preshifted returns the bitmap shifted by every amount from 0 to 7.
func (r *Result) Preshifted() [Shifts][]byte {
	var s [Shifts][]byte
	for i := range s {
		s[i] = Shift(r.Bitmap, uint(i))
	}
	return s
}

// MarshalBinary returns the bitmap followed by the attributes.
func (r *Result) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(r.Bitmap)+len(r.Attributes))
	b = append(b, r.Bitmap...)
	return append(b, r.Attributes...), nil
}
