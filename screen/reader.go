package screen

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/zxscreen/palette"
	"github.com/bodgit/zxscreen/tile"
)

var (
	errNotEnough = errors.New("screen: not enough image data")
	errTooMuch   = errors.New("screen: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	result *tile.Result

	tmp [fileSize]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.result = &tile.Result{
		Width:      pixelX,
		Height:     pixelY,
		Columns:    columns,
		Rows:       rows,
		Bitmap:     make([]byte, bitmapBytes),
		Attributes: make([]byte, numCells),
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < columns; cx++ {
			cell := cy*columns + cx
			for y := 0; y < cellHeight; y++ {
				d.result.Bitmap[cell*cellHeight+y] = d.tmp[offset(cx, cy*cellHeight+y)]
			}
		}
	}
	copy(d.result.Attributes, d.tmp[bitmapBytes:])

	return nil
}

// Decode reads a SCREEN$ from r and returns it as an image.Image. The flash
// bit of each attribute is ignored.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.result.Image(), nil
}

// DecodeResult reads a SCREEN$ from r and returns the bitmap and attributes
// in character cell order.
func DecodeResult(r io.Reader) (*tile.Result, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.result, nil
}

// DecodeConfig returns the color model and dimensions of a SCREEN$ without
// decoding the entire screen.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: palette.Palette,
		Width:      pixelX,
		Height:     pixelY,
	}, nil
}
