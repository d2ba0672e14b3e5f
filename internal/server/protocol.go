package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hueconv/hueconv"
)

// Conversion operations accepted in a Request.
const (
	opHSVToRGB = "hsv_to_rgb"
	opRGBToHSV = "rgb_to_hsv"
	opRGBToHex = "rgb_to_hex"
	opHexToRGB = "hex_to_rgb"
	opWebsafe  = "websafe"
)

// Error codes carried in a Response.
const (
	codeBadRequest    = "bad_request"
	codeInvalidFormat = "invalid_format"
)

// Request is a single conversion request. Convert selects the operation;
// the parameter set it reads depends on the operation. The id, if any, is
// echoed back on the response so a front end can match replies to edits.
type Request struct {
	ID      any    `json:"id,omitempty"`
	Convert string `json:"convert"`

	Hue        *float64 `json:"hue,omitempty"`
	Saturation *float64 `json:"saturation,omitempty"`
	Value      *float64 `json:"value,omitempty"`

	Red   *int `json:"red,omitempty"`
	Green *int `json:"green,omitempty"`
	Blue  *int `json:"blue,omitempty"`

	Hex string `json:"hex,omitempty"`
}

// Response answers a Request. On success Color carries every representation
// of the resulting color, so a single edit can refresh every field of a
// widget; on failure Error is set instead.
type Response struct {
	ID    any        `json:"id,omitempty"`
	Color *ColorInfo `json:"color,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// ColorInfo holds every representation of a color.
type ColorInfo struct {
	Hex     string  `json:"hex"`
	RGB     rgbInfo `json:"rgb"`
	HSV     hsvInfo `json:"hsv"`
	Websafe string  `json:"websafe"`
}

// ErrorInfo describes a failed conversion request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type rgbInfo struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type hsvInfo struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// handleRequest decodes and answers a single conversion request. It never
// fails the connection: malformed input produces an error response.
func handleRequest(data []byte) Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return errorResponse(nil, codeBadRequest, fmt.Sprintf("malformed request: %v", err))
	}

	rgb, errResp := resolveColor(req)
	if errResp != nil {
		return *errResp
	}

	return Response{ID: req.ID, Color: buildColorInfo(rgb)}
}

// resolveColor reduces the request to the canonical RGB form of the color it
// describes.
func resolveColor(req Request) (hueconv.RGB, *Response) {
	switch req.Convert {
	case opHSVToRGB:
		if req.Hue == nil || req.Saturation == nil || req.Value == nil {
			resp := errorResponse(req.ID, codeBadRequest,
				"hsv_to_rgb requires hue, saturation and value")
			return hueconv.RGB{}, &resp
		}
		return hueconv.HSVToRGB(*req.Hue, *req.Saturation, *req.Value), nil

	case opRGBToHSV, opRGBToHex, opWebsafe:
		if req.Red == nil || req.Green == nil || req.Blue == nil {
			resp := errorResponse(req.ID, codeBadRequest,
				req.Convert+" requires red, green and blue")
			return hueconv.RGB{}, &resp
		}
		rgb := hueconv.RGB{R: *req.Red, G: *req.Green, B: *req.Blue}
		if req.Convert == opWebsafe {
			rgb = rgb.Websafe()
		}
		return rgb, nil

	case opHexToRGB:
		rgb, err := hueconv.HexToRGB(hueconv.Hex(req.Hex))
		if err != nil {
			code := codeBadRequest
			if errors.Is(err, hueconv.ErrInvalidFormat) {
				code = codeInvalidFormat
			}
			resp := errorResponse(req.ID, code, err.Error())
			return hueconv.RGB{}, &resp
		}
		return rgb, nil

	default:
		resp := errorResponse(req.ID, codeBadRequest,
			fmt.Sprintf("unknown conversion %q", req.Convert))
		return hueconv.RGB{}, &resp
	}
}

func buildColorInfo(rgb hueconv.RGB) *ColorInfo {
	hsv := rgb.HSV()
	return &ColorInfo{
		Hex:     string(rgb.Hex()),
		RGB:     rgbInfo{R: rgb.R, G: rgb.G, B: rgb.B},
		HSV:     hsvInfo{H: hsv.H, S: hsv.S, V: hsv.V},
		Websafe: string(rgb.Websafe().Hex()),
	}
}

func errorResponse(id any, code, message string) Response {
	return Response{ID: id, Error: &ErrorInfo{Code: code, Message: message}}
}
