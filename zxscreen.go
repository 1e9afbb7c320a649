/*
Package zxscreen is a library for converting images into ZX Spectrum bitmap
and attribute data, written out as assembler source, raw binary or a SCREEN$
file.
*/
package zxscreen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/zxscreen/asm"
	"github.com/bodgit/zxscreen/screen"
	"github.com/bodgit/zxscreen/tile"
	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultLabel is used when no label is given.
const DefaultLabel = "SPRITE_DATA"

// Options controls a single conversion.
type Options struct {
	// Label is the base name of every block in assembler output.
	Label string
	// Preshifted adds the seven shifted copies of the bitmap.
	Preshifted bool
	// Tileset is accepted for compatibility and otherwise unused.
	Tileset string
	Format  Format
	// Preview, if set, is the path of a PNG rendering of the result.
	Preview string
	// Scale multiplies the size of the preview, values below 2 leave it
	// unscaled.
	Scale int
}

// Converter converts image files.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter that reports progress to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

// Load decodes the image in file. It fails early if file does not exist.
func (c *Converter) Load(file string) (image.Image, error) {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file '%s' not found: %w", file, err)
		}
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", file, err)
	}

	return m, nil
}

// Convert reads the image in the file in, converts it and writes the result
// to the file out, creating any missing parent directories.
func (c *Converter) Convert(in, out string, opts Options) error {
	c.logger.Printf("Converting %s...\n", in)

	m, err := c.Load(in)
	if err != nil {
		return err
	}

	if opts.Tileset != "" {
		c.logger.Printf("  Tileset %s ignored\n", opts.Tileset)
	}

	r := tile.Convert(m)

	c.logger.Printf("  Size: %dx%d pixels\n", r.Width, r.Height)
	c.logger.Printf("  Characters: %dx%d\n", r.Columns, r.Rows)

	b := new(bytes.Buffer)
	if err := c.encode(b, r, opts); err != nil {
		return err
	}

	if err := writeFile(out, b.Bytes()); err != nil {
		return err
	}

	c.logger.Printf("  Wrote %d bytes to %s\n", b.Len(), out)

	if opts.Preshifted && opts.Format != FormatScreen {
		c.logger.Printf("  Generated %d pre-shifted versions\n", tile.Shifts)
	}

	if opts.Preview != "" {
		if err := c.preview(opts.Preview, r, opts.Scale); err != nil {
			return err
		}
	}

	return nil
}

func (c *Converter) encode(b *bytes.Buffer, r *tile.Result, opts Options) error {
	switch opts.Format {
	case FormatAsm:
		return asm.Encode(b, opts.Label, r, opts.Preshifted)
	case FormatBinary:
		return tile.EncodeResult(b, r, opts.Preshifted)
	case FormatScreen:
		if opts.Preshifted {
			c.logger.Println("  Pre-shifting is not supported for SCREEN$ output")
		}
		return screen.EncodeResult(b, r)
	default:
		return fmt.Errorf("unknown format %v", opts.Format)
	}
}

func (c *Converter) preview(file string, r *tile.Result, scale int) error {
	var m image.Image = r.Image()

	if scale > 1 {
		b := m.Bounds()
		g := gift.New(gift.Resize(b.Dx()*scale, b.Dy()*scale, gift.NearestNeighborResampling))
		dst := image.NewRGBA(g.Bounds(b))
		g.Draw(dst, m)
		m = dst
	}

	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return err
	}

	if err := writeFile(file, b.Bytes()); err != nil {
		return err
	}

	c.logger.Printf("  Wrote preview to %s\n", file)

	return nil
}

func writeFile(file string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(file, b, 0644)
}
