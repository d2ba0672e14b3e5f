package hueconv

import (
	"fmt"
	"strings"
)

// hexDigits is the alphabet used for encoding and decoding hex pairs.
const hexDigits = "0123456789ABCDEF"

// DecToHex encodes a channel value as two uppercase hex digits. Values
// outside [0,255] are reset to 0 before encoding; this is a deliberate
// reset, not a clamp, so both DecToHex(300) and DecToHex(-5) yield "00".
func DecToHex(n int) string {
	if n < 0 || n > 255 {
		n = 0
	}
	return string([]byte{hexDigits[n>>4], hexDigits[n&0x0f]})
}

// HexToDec decodes a two-character, case-insensitive hex pair into a channel
// value. It returns ErrInvalidFormat if the string is not exactly two hex
// digits.
func HexToDec(pair string) (int, error) {
	if len(pair) != 2 {
		return 0, fmt.Errorf("hex pair %q must be 2 characters: %w", pair, ErrInvalidFormat)
	}

	hi := strings.IndexByte(hexDigits, upperHexByte(pair[0]))
	lo := strings.IndexByte(hexDigits, upperHexByte(pair[1]))
	if hi < 0 || lo < 0 {
		return 0, fmt.Errorf("hex pair %q contains a non-hex digit: %w", pair, ErrInvalidFormat)
	}

	return hi*16 + lo, nil
}

// upperHexByte uppercases the bytes 'a' through 'f', leaving all others
// untouched.
func upperHexByte(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}

// RGBToHex encodes an RGB triple as six uppercase hex digits in
// red-green-blue order. Each channel follows the DecToHex reset policy for
// out-of-range values.
func RGBToHex(r, g, b int) Hex {
	return Hex(DecToHex(r) + DecToHex(g) + DecToHex(b))
}

// HexToRGB decodes a six-digit hex color into an RGB triple. A leading '#'
// is tolerated and stripped. It returns ErrInvalidFormat if the remainder is
// not exactly six hex digits.
func HexToRGB(h Hex) (RGB, error) {
	s := strings.TrimPrefix(string(h), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color %q must be 6 digits: %w", s, ErrInvalidFormat)
	}

	r, err := HexToDec(s[0:2])
	if err != nil {
		return RGB{}, err
	}
	g, err := HexToDec(s[2:4])
	if err != nil {
		return RGB{}, err
	}
	b, err := HexToDec(s[4:6])
	if err != nil {
		return RGB{}, err
	}

	return RGB{r, g, b}, nil
}
