package hueconv

import "math"

// RealToByte scales a fraction in [0,1] to a byte-sized channel value. The
// result is capped at 255 but has no lower bound; callers are expected to
// pass non-negative fractions.
func RealToByte(f float64) int {
	b := int(math.Round(f * 256))
	if b > 255 {
		b = 255
	}
	return b
}

// HSVToRGB converts an HSV triple to an RGB triple using the standard
// six-sector decomposition of the hue circle. Hue is in degrees and is
// reduced into [0,360) internally, so 360 and negative hues are valid input.
// Saturation and value are fractions in [0,1].
func HSVToRGB(h, s, v float64) RGB {
	hh := h / 60
	i := math.Floor(hh)
	sector := int(math.Mod(i, 6))
	if sector < 0 {
		sector += 6
	}
	f := hh - i

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGB{RealToByte(r), RealToByte(g), RealToByte(b)}
}

// RGBToHSV converts an RGB triple to an HSV triple. The hue is kept at full
// precision in [0,360); rounding it earlier can move a round-tripped channel
// by up to 3, so displays that want whole degrees round at the presentation
// edge instead. An achromatic color reports hue 0, and pure black reports
// saturation 0. When two channels tie for the maximum, red wins over green
// over blue.
func RGBToHSV(r, g, b int) HSV {
	fr := float64(r) / 255
	fg := float64(g) / 255
	fb := float64(b) / 255

	minC := math.Min(fr, math.Min(fg, fb))
	maxC := math.Max(fr, math.Max(fg, fb))
	delta := maxC - minC

	var h float64
	switch {
	case maxC == minC:
		h = 0
	case maxC == fr:
		h = 60 * (fg - fb) / delta
		if fg < fb {
			h += 360
		}
	case maxC == fg:
		h = 60*(fb-fr)/delta + 120
	default:
		h = 60*(fr-fg)/delta + 240
	}

	var s float64
	if maxC > 0 {
		s = 1 - minC/maxC
	}

	return HSV{H: h, S: s, V: maxC}
}
