package app

import "github.com/hueconv/hueconv"

const (
	formatAuto = "auto"
	formatJSON = "json"

	colorModeAuto   = "auto"
	colorModeAlways = "always"
	colorModeNever  = "never"

	// JSONSchemaVersion is the schema version for JSON output
	JSONSchemaVersion = "1.0"
)

// Report holds every representation of a parsed input color.
type Report struct {
	Input   string
	RGB     hueconv.RGB
	HSV     hueconv.HSV
	Hex     hueconv.Hex
	Websafe hueconv.RGB
}

type colorReportJSON struct {
	Schema  string       `json:"schema_version"`
	Type    string       `json:"type"`
	Input   string       `json:"input"`
	Hex     string       `json:"hex"`
	RGB     rgbJSON      `json:"rgb"`
	HSV     hsvJSON      `json:"hsv"`
	Websafe *websafeJSON `json:"websafe,omitempty"`
}

type rgbJSON struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type hsvJSON struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type websafeJSON struct {
	Hex string  `json:"hex"`
	RGB rgbJSON `json:"rgb"`
}

func buildReportJSON(report Report, includeWebsafe bool) colorReportJSON {
	out := colorReportJSON{
		Schema: JSONSchemaVersion,
		Type:   "color",
		Input:  report.Input,
		Hex:    string(report.Hex),
		RGB:    rgbJSON{R: report.RGB.R, G: report.RGB.G, B: report.RGB.B},
		HSV:    hsvJSON{H: report.HSV.H, S: report.HSV.S, V: report.HSV.V},
	}
	if includeWebsafe {
		out.Websafe = &websafeJSON{
			Hex: string(report.Websafe.Hex()),
			RGB: rgbJSON{R: report.Websafe.R, G: report.Websafe.G, B: report.Websafe.B},
		}
	}
	return out
}
