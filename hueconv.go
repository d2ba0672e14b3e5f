// Package hueconv converts colors between the RGB, HSV, hexadecimal and
// websafe representations. All conversions are pure functions with no shared
// state, safe to call concurrently without coordination.
package hueconv

import "errors"

// ErrInvalidFormat is returned when a hexadecimal color string is malformed,
// either through wrong length or non-hex characters.
var ErrInvalidFormat = errors.New("invalid hex format")

// RGB represents an additive color with integer channels, each nominally
// in [0,255].
type RGB struct {
	R, G, B int
}

// HSV represents a cylindrical coordinate of points in an RGB color model.
// H is in degrees [0,360), S and V are fractions in [0,1].
type HSV struct {
	H, S, V float64
}

// Hex represents an RGB color as six uppercase hexadecimal digits, two per
// channel, without a leading '#'.
type Hex string

// HSV converts the color to its HSV representation.
func (c RGB) HSV() HSV {
	return RGBToHSV(c.R, c.G, c.B)
}

// Hex converts the color to its hexadecimal representation.
func (c RGB) Hex() Hex {
	return RGBToHex(c.R, c.G, c.B)
}

// Websafe snaps the color to the nearest member of the 216-color websafe
// palette.
func (c RGB) Websafe() RGB {
	return Websafe(c.R, c.G, c.B)
}

// RGB converts the color to its RGB representation.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// RGB decodes the hexadecimal color into its RGB representation. It returns
// ErrInvalidFormat if the string is not exactly six hex digits.
func (c Hex) RGB() (RGB, error) {
	return HexToRGB(c)
}
