package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hueconv/hueconv"
	"github.com/hueconv/hueconv/internal/app/ansi"
)

const swatchWidth = 4

// colorEnabled returns true if color output is enabled, based on both color
// mode and terminal detection.
func (c *Client) colorEnabled() bool {
	switch c.ColorMode {
	case colorModeAlways:
		return true
	case colorModeNever:
		return false
	case colorModeAuto, "":
	default:
		return false
	}

	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}

	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printReport prints a single color report in the configured format.
func (c *Client) printReport(report Report) {
	if c.Format == formatJSON {
		c.printJSONLine(buildReportJSON(report, c.ShowWebsafe))
		return
	}

	if c.Quiet {
		fmt.Println(report.Hex)
		return
	}

	if c.Verbosity >= 1 {
		c.printReportVerbose(report)
		return
	}

	line := fmt.Sprintf("#%s  %s  %s", report.Hex, formatRGB(report.RGB), formatHSV(report.HSV))
	if c.ShowWebsafe {
		line += "  websafe " + formatRGB(report.Websafe)
	}
	if c.colorEnabled() {
		line = ansi.Swatch(report.RGB, swatchWidth) + "  " + line
	}
	fmt.Println(line)
}

// printReportVerbose prints one representation per line, aligned.
func (c *Client) printReportVerbose(report Report) {
	if c.colorEnabled() {
		fmt.Printf("%-9s %s\n", "Swatch:", ansi.Swatch(report.RGB, swatchWidth*2))
	}
	fmt.Printf("%-9s %s\n", "Input:", report.Input)
	fmt.Printf("%-9s #%s\n", "Hex:", report.Hex)
	fmt.Printf("%-9s %s\n", "RGB:", formatRGB(report.RGB))
	fmt.Printf("%-9s %s\n", "HSV:", formatHSV(report.HSV))
	fmt.Printf("%-9s %s (#%s)\n", "Websafe:", formatRGB(report.Websafe), report.Websafe.Hex())
	fmt.Println()
}

// printJSONLine prints a JSON line.
func (*Client) printJSONLine(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON output: %v\n", err)
		return
	}
	_, _ = os.Stdout.Write(append(data, '\n'))
}

func formatRGB(c hueconv.RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func formatHSV(c hueconv.HSV) string {
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", c.H, c.S*100, c.V*100)
}
