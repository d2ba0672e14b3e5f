// Package ansi provides truecolor ANSI escapes for terminal output.
package ansi

import (
	"fmt"
	"strings"

	"github.com/hueconv/hueconv"
)

// Sprint returns the text with the color applied as foreground.
func Sprint(c hueconv.RGB, text string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, text)
}

// Swatch returns a run of spaces painted with the color as background.
func Swatch(c hueconv.RGB, width int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, strings.Repeat(" ", width))
}
