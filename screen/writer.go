package screen

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/zxscreen/tile"
)

var errWrongSize = errors.New("screen: image is wrong size")

type encoder struct {
	w io.Writer

	tmp [fileSize]byte
}

func (e *encoder) encode(r *tile.Result) error {
	// Write out bitmap in display file order
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < columns; cx++ {
			cell := cy*columns + cx
			for y := 0; y < cellHeight; y++ {
				e.tmp[offset(cx, cy*cellHeight+y)] = r.Bitmap[cell*cellHeight+y]
			}
		}
	}

	// Attributes are already in order
	copy(e.tmp[bitmapBytes:], r.Attributes)

	_, err := e.w.Write(e.tmp[:])
	return err
}

// Encode writes the Image m to w in SCREEN$ format.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() != pixelX || b.Dy() != pixelY {
		return errWrongSize
	}

	e := encoder{w: w}

	return e.encode(tile.Convert(m))
}

// EncodeResult writes an already converted image to w in SCREEN$ format.
func EncodeResult(w io.Writer, r *tile.Result) error {
	if r.Width != pixelX || r.Height != pixelY || r.Columns != columns || r.Rows != rows {
		return errWrongSize
	}

	e := encoder{w: w}

	return e.encode(r)
}
