package palette

import "image/color"

func channels(c color.Color) rgb {
	// Non-premultiplied so that alpha is simply dropped
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgb{n.R, n.G, n.B}
}

func sqDiff(x, y uint8) uint32 {
	d := int32(x) - int32(y)
	return uint32(d * d)
}

func distance(v rgb, c color.RGBA) uint32 {
	return sqDiff(v[0], c.R) + sqDiff(v[1], c.G) + sqDiff(v[2], c.B)
}

// Quantize returns the Spectrum color closest to c. An exact match in the
// normal table wins, then an exact match in the bright table, otherwise the
// entry with the smallest squared distance is used. On equal distances the
// first entry scanned wins, normal table before bright.
func Quantize(c color.Color) Color {
	return quantize(channels(c))
}

// QuantizeRGB is Quantize for an 8-bit RGB triple.
func QuantizeRGB(r, g, b uint8) Color {
	return quantize(rgb{r, g, b})
}

func quantize(v rgb) Color {
	if i, ok := normalIndex[v]; ok {
		return Color{Index: i}
	}
	if i, ok := brightIndex[v]; ok {
		return Color{Index: i, Bright: true}
	}

	var best Color
	bestSum := uint32(1<<32 - 1)
	for i, c := range normal {
		if sum := distance(v, c); sum < bestSum {
			bestSum, best = sum, Color{Index: uint8(i)}
		}
	}
	for i, c := range bright {
		if sum := distance(v, c); sum < bestSum {
			bestSum, best = sum, Color{Index: uint8(i), Bright: true}
		}
	}
	return best
}
