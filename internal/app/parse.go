package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hueconv/hueconv"
)

// ParseColorInput interprets a color argument and reduces it to the
// canonical RGB representation. Accepted forms:
//
//	RRGGBB or #RRGGBB
//	rgb:R,G,B
//	hsv:H,S,V
//
// RGB channel values outside [0,255] are accepted and left to the
// conversion policies downstream; H is in degrees, S and V are fractions.
func ParseColorInput(input string) (hueconv.RGB, error) {
	trimmed := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(trimmed, "rgb:"):
		return parseRGBTriple(strings.TrimPrefix(trimmed, "rgb:"))
	case strings.HasPrefix(trimmed, "hsv:"):
		return parseHSVTriple(strings.TrimPrefix(trimmed, "hsv:"))
	default:
		return hueconv.HexToRGB(hueconv.Hex(trimmed))
	}
}

func parseRGBTriple(s string) (hueconv.RGB, error) {
	parts, err := splitTriple(s)
	if err != nil {
		return hueconv.RGB{}, err
	}

	channels := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return hueconv.RGB{}, fmt.Errorf("invalid rgb channel %q: %w", part, err)
		}
		channels[i] = v
	}

	return hueconv.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHSVTriple(s string) (hueconv.RGB, error) {
	parts, err := splitTriple(s)
	if err != nil {
		return hueconv.RGB{}, err
	}

	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return hueconv.RGB{}, fmt.Errorf("invalid hsv component %q: %w", part, err)
		}
		values[i] = v
	}

	return hueconv.HSVToRGB(values[0], values[1], values[2]), nil
}

func splitTriple(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 comma-separated values, got %d", len(parts))
	}
	return parts, nil
}
