/*
Package tile implements conversion of an image into ZX Spectrum character
cells.

The image is split into 8 by 8 pixel cells, left to right and top to bottom.
Each cell becomes 8 bytes of bitmap, one per pixel row with the leftmost
pixel in bit 7, and a single attribute byte holding the ink color in bits
0-2, the paper color in bits 3-5 and the bright flag in bit 6. Images that are
not a multiple of 8 pixels in either direction are padded with black.
*/
package tile

const (
	cellWidth  = 8
	cellHeight = cellWidth
	cellPixels = cellWidth * cellHeight
	cellBytes  = cellHeight

	inkMask   = 0x07
	paperMask = inkMask << 3
	brightBit = 0x40

	// Shifts is the number of pre-shifted copies of a bitmap, one for
	// every pixel position within a byte.
	Shifts = 8
)

func cells(pixels int) int {
	return (pixels + cellWidth - 1) / cellWidth
}
