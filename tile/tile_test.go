package tile

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/zxscreen/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black      = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	blue       = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	red        = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green      = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	yellow     = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	white      = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	brightRed  = color.NRGBA{0xd7, 0x00, 0x00, 0xff}
	brightBlue = color.NRGBA{0x00, 0x00, 0xd7, 0xff}
)

func filled(r image.Rectangle, c color.Color) *image.NRGBA {
	m := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

// rows fills an 8x8 image with one color per pixel row.
func rows(c ...color.Color) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, cellWidth, cellHeight))
	for y, rc := range c {
		for x := 0; x < cellWidth; x++ {
			m.Set(x, y, rc)
		}
	}
	return m
}

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestConvertSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		columns, rows int
	}{
		{"single cell", 8, 8, 1, 1},
		{"partial cell", 4, 4, 1, 1},
		{"uneven", 9, 17, 2, 3},
		{"sprite", 16, 24, 2, 3},
		{"full screen", 256, 192, 32, 24},
		{"one pixel", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Convert(image.NewNRGBA(image.Rect(0, 0, tt.width, tt.height)))
			assert.Equal(t, tt.width, r.Width)
			assert.Equal(t, tt.height, r.Height)
			assert.Equal(t, tt.columns, r.Columns)
			assert.Equal(t, tt.rows, r.Rows)
			assert.Len(t, r.Bitmap, tt.columns*tt.rows*cellBytes)
			assert.Len(t, r.Attributes, tt.columns*tt.rows)
		})
	}
}

func TestNewCell(t *testing.T) {
	tests := []struct {
		name      string
		image     image.Image
		x, y      int
		ink       uint8
		paper     uint8
		bright    bool
		bitmap    []byte
		attribute byte
	}{
		{
			name:      "outside image",
			image:     filled(image.Rect(0, 0, 4, 4), red),
			x:         8,
			y:         8,
			ink:       palette.White,
			paper:     palette.Black,
			bitmap:    repeat(0x00, 8),
			attribute: 0x07,
		},
		{
			name:      "uniform red",
			image:     filled(image.Rect(0, 0, 8, 8), red),
			ink:       palette.Red,
			paper:     palette.Black,
			bitmap:    repeat(0xff, 8),
			attribute: 0x02,
		},
		{
			name:      "uniform bright blue",
			image:     filled(image.Rect(0, 0, 8, 8), brightBlue),
			ink:       palette.Blue,
			paper:     palette.Black,
			bright:    true,
			bitmap:    repeat(0xff, 8),
			attribute: 0x41,
		},
		{
			// Ink and paper are both black so every pixel is ink
			name:      "uniform black",
			image:     filled(image.Rect(0, 0, 8, 8), black),
			ink:       palette.Black,
			paper:     palette.Black,
			bitmap:    repeat(0xff, 8),
			attribute: 0x00,
		},
		{
			name:      "partial cell",
			image:     filled(image.Rect(0, 0, 4, 4), red),
			ink:       palette.Red,
			paper:     palette.Black,
			bitmap:    append(repeat(0xf0, 4), repeat(0x00, 4)...),
			attribute: 0x02,
		},
		{
			name:      "offset bounds",
			image:     filled(image.Rect(10, 10, 18, 18), blue),
			x:         10,
			y:         10,
			ink:       palette.Blue,
			paper:     palette.Black,
			bitmap:    repeat(0xff, 8),
			attribute: 0x01,
		},
		{
			// Red pixels are neither paper nor black so they are set
			name:      "third color on black paper",
			image:     rows(black, black, black, black, blue, blue, red, red),
			ink:       palette.Blue,
			paper:     palette.Black,
			bitmap:    append(repeat(0x00, 4), repeat(0xff, 4)...),
			attribute: 0x01,
		},
		{
			name:      "black ink",
			image:     rows(green, green, green, green, black, black, yellow, yellow),
			ink:       palette.Black,
			paper:     palette.Green,
			bitmap:    append(repeat(0x00, 4), repeat(0xff, 4)...),
			attribute: 0x20,
		},
		{
			// Counted by index, normal and bright red total 40 pixels
			// against 24 white so white is never chosen
			name: "bright variants counted together",
			image: func() image.Image {
				m := rows(white, white, white, red, red, red, brightRed, brightRed)
				for x := 4; x < cellWidth; x++ {
					m.Set(x, 5, brightRed)
				}
				return m
			}(),
			ink:       palette.Red,
			paper:     palette.Red,
			bright:    true,
			bitmap:    repeat(0xff, 8),
			attribute: 0x52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell(tt.image, tt.x, tt.y)
			assert.Equal(t, tt.ink, c.Ink, "ink")
			assert.Equal(t, tt.paper, c.Paper, "paper")
			assert.Equal(t, tt.bright, c.Bright, "bright")
			assert.Equal(t, tt.bitmap, c.Bitmap[:])
			assert.Equal(t, tt.attribute, c.Attribute())
		})
	}
}

func TestConvertHalves(t *testing.T) {
	m := filled(image.Rect(0, 0, 8, 8), white)
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, red)
		}
	}

	r := Convert(m)

	// 32 pixels each, red is seen first so it becomes paper
	require.Len(t, r.Attributes, 1)
	assert.Equal(t, byte(palette.White|palette.Red<<3), r.Attributes[0])
	assert.Zero(t, r.Attributes[0]&brightBit)
	assert.Equal(t, repeat(0x0f, 8), r.Bitmap)

	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, brightRed)
		}
	}
	assert.Equal(t, []byte{0x57}, Convert(m).Attributes)
}

func TestConvertOrder(t *testing.T) {
	m := filled(image.Rect(0, 0, 16, 16), black)
	for y := 0; y < 8; y++ {
		for x := 8; x < 16; x++ {
			m.Set(x, y, red)
		}
	}
	for y := 8; y < 16; y++ {
		for x := 0; x < 8; x++ {
			m.Set(x, y, blue)
		}
	}

	r := Convert(m)
	assert.Equal(t, []byte{0x00, 0x02, 0x01, 0x00}, r.Attributes)
	assert.Equal(t, repeat(0xff, 8), r.Bitmap[8:16])
	assert.Equal(t, repeat(0xff, 8), r.Bitmap[16:24])
}

func TestShift(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		shift uint
		want  []byte
	}{
		{"identity", []byte{0x81, 0x80, 0x01}, 0, []byte{0x81, 0x80, 0x01}},
		{"one", []byte{0x81, 0x80, 0x01}, 1, []byte{0x02, 0x01, 0x03}},
		{"nibble", []byte{0xab, 0xcd}, 4, []byte{0xb0, 0xda}},
		{"no wraparound", []byte{0xff}, 3, []byte{0xf8}},
		{"seven", []byte{0xff, 0x00}, 7, []byte{0x80, 0x7f}},
		{"modulo", []byte{0x81, 0x80, 0x01}, 9, []byte{0x02, 0x01, 0x03}},
		{"empty", []byte{}, 5, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shift(tt.data, tt.shift))
		})
	}
}

func TestShiftCopies(t *testing.T) {
	data := []byte{0x12, 0x34}
	out := Shift(data, 0)
	out[0] = 0xff
	assert.Equal(t, []byte{0x12, 0x34}, data)
}

func TestShiftCarryChain(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9a}

	// Shifting by 3 then 5 moves the whole stream along by one byte
	// rather than restoring it
	assert.Equal(t, []byte{0x00, 0x12, 0x34, 0x56, 0x78}, Shift(Shift(data, 3), 5))
}

func TestPreshifted(t *testing.T) {
	r := Convert(filled(image.Rect(0, 0, 16, 8), red))

	s := r.Preshifted()
	assert.Equal(t, r.Bitmap, s[0])
	for i, b := range s {
		assert.Len(t, b, len(r.Bitmap))
		assert.Equal(t, Shift(r.Bitmap, uint(i)), b)
	}
	assert.Equal(t, byte(0xfe), s[1][0])
}

func TestEncode(t *testing.T) {
	m := filled(image.Rect(0, 0, 16, 8), red)

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, m, false))
	assert.Equal(t, append(repeat(0xff, 16), 0x02, 0x02), b.Bytes())

	b.Reset()
	require.Nil(t, Encode(b, m, true))
	assert.Equal(t, Shifts*16+2, b.Len())
	assert.Equal(t, []byte{0x02, 0x02}, b.Bytes()[Shifts*16:])

	assert.Equal(t, errNoImage, Encode(b, image.NewNRGBA(image.Rectangle{}), false))
}

func TestMarshalBinary(t *testing.T) {
	r := Convert(filled(image.Rect(0, 0, 8, 8), blue))

	b, err := r.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, append(repeat(0xff, 8), 0x01), b)
}

func TestImage(t *testing.T) {
	m := filled(image.Rect(0, 0, 12, 4), white)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, brightRed)
		}
	}

	p := Convert(m).Image()
	require.Equal(t, image.Rect(0, 0, 16, 8), p.Bounds())

	// First cell is bright red paper with white ink, both bright
	assert.Equal(t, uint8(palette.NumColors+palette.Red), p.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(palette.NumColors+palette.White), p.ColorIndexAt(5, 0))
	// Padding takes the paper color
	assert.Equal(t, uint8(palette.NumColors+palette.Red), p.ColorIndexAt(0, 6))
	// Second cell is plain white ink on black paper
	assert.Equal(t, uint8(palette.White), p.ColorIndexAt(8, 0))
	assert.Equal(t, uint8(palette.Black), p.ColorIndexAt(12, 0))
}
