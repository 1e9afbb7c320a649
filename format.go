package zxscreen

import (
	"fmt"
	"strings"
)

// Format selects how the converted image is written.
type Format int

// Output formats
const (
	// FormatAsm is assembler source with DEFB and EQU directives.
	FormatAsm Format = iota
	// FormatBinary is the raw bitmap followed by the attributes.
	FormatBinary
	// FormatScreen is a 6912 byte SCREEN$ of a 256 by 192 image.
	FormatScreen
)

var formatNames = map[string]Format{
	"asm": FormatAsm,
	"bin": FormatBinary,
	"scr": FormatScreen,
}

// ParseFormat returns the Format with the given name.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown format '%s'", s)
}

func (f Format) String() string {
	for k, v := range formatNames {
		if v == f {
			return k
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}
