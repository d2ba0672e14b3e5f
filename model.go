package hueconv

import "image/color"

// Models converting any color.Color into this package's representations.
var (
	HexModel     = color.ModelFunc(hexModel)
	HSVModel     = color.ModelFunc(hsvModel)
	WebsafeModel = color.ModelFunc(websafeModel)
)

// RGBA returns the alpha-premultiplied red, green, blue and alpha values
// for the RGB. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clampByte(c.R))
	r |= r << 8
	g = uint32(clampByte(c.G))
	g |= g << 8
	b = uint32(clampByte(c.B))
	b |= b << 8
	return r, g, b, 0xffff
}

// RGBA returns the alpha-premultiplied red, green, blue and alpha values
// for the HSV.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGBA returns the alpha-premultiplied red, green, blue and alpha values
// for the Hex. A malformed hex decodes as black.
func (c Hex) RGBA() (r, g, b, a uint32) {
	rgb, err := HexToRGB(c)
	if err != nil {
		rgb = RGB{}
	}
	return rgb.RGBA()
}

// hexModel converts a color.Color to Hex.
func hexModel(c color.Color) color.Color {
	if _, ok := c.(Hex); ok {
		return c
	}
	return rgbModel(c).Hex()
}

// hsvModel converts a color.Color to HSV.
func hsvModel(c color.Color) color.Color {
	if _, ok := c.(HSV); ok {
		return c
	}
	return rgbModel(c).HSV()
}

// websafeModel converts a color.Color to the websafe member of RGB.
func websafeModel(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb.Websafe()
	}
	return rgbModel(c).Websafe()
}

// rgbModel reduces a color.Color to the 8-bit RGB representation, dropping
// alpha.
func rgbModel(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{int(r >> 8), int(g >> 8), int(b >> 8)}
}
