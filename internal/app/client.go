// Package app holds the application logic of the hueconv command: parsing
// color arguments, running them through the conversion library, and printing
// the results.
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hueconv/hueconv"
)

// Client converts the configured color arguments and prints every
// representation of each.
type Client struct {
	// Input
	Colors []string

	// Output
	Format      string
	ColorMode   string
	ShowWebsafe bool
	Quiet       bool
	Verbosity   int

	Log zerolog.Logger
}

// Validate checks the Client settings for invalid or conflicting values.
func (c *Client) Validate() error {
	switch c.Format {
	case "", formatAuto, formatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be %s or %s", c.Format, formatAuto, formatJSON)
	}

	switch c.ColorMode {
	case "", colorModeAuto, colorModeAlways, colorModeNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be %s, %s, or %s",
			c.ColorMode, colorModeAuto, colorModeAlways, colorModeNever)
	}

	if c.Quiet && c.Verbosity > 0 {
		return errors.New("quiet mode cannot be combined with verbose output")
	}

	if len(c.Colors) == 0 {
		return errors.New("no colors to convert")
	}

	return nil
}

// Run converts each configured color argument and prints the result. Inputs
// that fail to parse are reported and skipped; the combined parse errors are
// returned after all valid inputs have been printed.
func (c *Client) Run() error {
	var errs []error
	for _, input := range c.Colors {
		rgb, err := ParseColorInput(input)
		if err != nil {
			c.Log.Warn().Err(err).Str("input", input).Msg("Skipping invalid color")
			errs = append(errs, fmt.Errorf("invalid color %q: %w", input, err))
			continue
		}

		c.printReport(c.buildReport(input, rgb))
	}
	return errors.Join(errs...)
}

// buildReport derives every representation of the color from its canonical
// RGB form.
func (c *Client) buildReport(input string, rgb hueconv.RGB) Report {
	return Report{
		Input:   input,
		RGB:     rgb,
		HSV:     rgb.HSV(),
		Hex:     rgb.Hex(),
		Websafe: rgb.Websafe(),
	}
}
