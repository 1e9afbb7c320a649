/*
Package asm renders converted images as Z80 assembler source.

Byte data is written as DEFB directives with up to eight hexadecimal values
per line, each block preceded by a label. The character cell dimensions
follow as EQU constants.
*/
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/zxscreen/tile"
)

const (
	bytesPerLine = 8
	indent       = "    "
)

// Suffixes appended to the label of each block
const (
	ShiftSuffix  = "_SHIFT"
	AttrsSuffix  = "_ATTRS"
	WidthSuffix  = "_WIDTH"
	HeightSuffix = "_HEIGHT"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) line(format string, a ...interface{}) {
	fmt.Fprintf(e.w, format, a...)
	e.w.WriteByte('\n')
}

func (e *encoder) block(label string, data []byte) {
	e.line("%s:", label)
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		values := make([]string, 0, bytesPerLine)
		for _, b := range data[i:end] {
			values = append(values, fmt.Sprintf("$%02X", b))
		}
		e.line("%sDEFB %s", indent, strings.Join(values, ", "))
	}
	e.line("")
}

func (e *encoder) encode(label string, r *tile.Result, preshifted bool) error {
	e.line("; Auto-generated sprite data")
	e.line("; Size: %dx%d pixels", r.Width, r.Height)
	e.line("")

	if preshifted {
		for i, b := range r.Preshifted() {
			e.block(fmt.Sprintf("%s%s%d", label, ShiftSuffix, i), b)
		}
	} else {
		e.block(label, r.Bitmap)
	}

	e.block(label+AttrsSuffix, r.Attributes)

	e.line("%s%s:  EQU %d", label, WidthSuffix, r.Columns)
	e.line("%s%s: EQU %d", label, HeightSuffix, r.Rows)

	return e.w.Flush()
}

// Encode writes r to w as assembler source using label as the base name of
// every block. An empty label is allowed.
func Encode(w io.Writer, label string, r *tile.Result, preshifted bool) error {
	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(label, r, preshifted)
}
