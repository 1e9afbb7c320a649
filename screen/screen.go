/*
Package screen implements a ZX Spectrum SCREEN$ decoder and encoder.

The format is a dump of the display file and is defined as 256 by 192 pixels
exactly which is split into 32 by 24 character cells.

The file is written as 6144 bytes of bitmap, one bit per pixel, followed by
768 attribute bytes, one per cell. The bitmap rows are not stored in order;
the screen is split into three 64 pixel thirds and within each third the
first pixel row of every character row is stored, then the second, and so on.
There is no compression so the resulting file is always 6912 bytes in size.
*/
package screen

const (
	cellWidth   = 8
	cellHeight  = cellWidth
	columns     = 32
	rows        = 24
	numCells    = columns * rows
	pixelX      = cellWidth * columns
	pixelY      = cellHeight * rows
	bitmapBytes = pixelX * pixelY >> 3
	fileSize    = bitmapBytes + numCells
)

// offset returns the position in the bitmap of the byte holding pixel row y
// and character column x.
func offset(x, y int) int {
	return (y&0xc0)<<5 | (y&0x07)<<8 | (y&0x38)<<2 | x
}
