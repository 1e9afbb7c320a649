package tile

import (
	"errors"
	"image"
	"io"
)

var errNoImage = errors.New("tile: image is empty")

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(r *Result, preshifted bool) error {
	if preshifted {
		for _, b := range r.Preshifted() {
			if _, err := e.w.Write(b); err != nil {
				return err
			}
		}
	} else {
		if _, err := e.w.Write(r.Bitmap); err != nil {
			return err
		}
	}

	if _, err := e.w.Write(r.Attributes); err != nil {
		return err
	}

	return nil
}

// Encode converts the Image m and writes the raw bitmap to w followed by
// the attributes. If preshifted is set all eight shifted copies of the
// bitmap are written in order before the attributes.
func Encode(w io.Writer, m image.Image, preshifted bool) error {
	if m.Bounds().Empty() {
		return errNoImage
	}

	e := encoder{w: w}

	return e.encode(Convert(m), preshifted)
}

// EncodeResult is like Encode for an already converted image.
func EncodeResult(w io.Writer, r *Result, preshifted bool) error {
	e := encoder{w: w}

	return e.encode(r, preshifted)
}
