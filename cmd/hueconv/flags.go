package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

var (
	// Output
	formatOption = flag.String("format", "auto", "output format: auto or json")
	colorArg     = flag.String("color", "auto", "color output: auto, always, or never")
	websafeFlag  = flag.Bool("websafe", false, "include the websafe snap of each color")
	showVersion  = flag.Bool("version", false, "print the program version")
	version      = "unknown"
	// Service
	serve      = flag.Bool("serve", false, "run the WebSocket conversion service instead")
	listenAddr = flag.String("listen", "localhost:8408", "listen address for the service")
	// Verbosity
	quiet          = flag.Bool("q", false, "print only the hex value of each color")
	verbosityLevel = trackedIntFlag{}
)

func init() {
	flag.Var(&verbosityLevel, "v", "verbose output; repeat for more detail")

	// Define custom usage message
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:  hueconv [options] <color> [<color> ...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Colors may be given as RRGGBB, #RRGGBB, rgb:R,G,B or hsv:H,S,V.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Mutually exclusive output options:")
		fmt.Fprintln(os.Stderr, "  -q  "+flag.Lookup("q").Usage)
		fmt.Fprintln(os.Stderr, "  -v  "+flag.Lookup("v").Usage)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Other options:")
		fmt.Fprintln(os.Stderr, "  -format   "+flag.Lookup("format").Usage)
		fmt.Fprintln(os.Stderr, "  -color    "+flag.Lookup("color").Usage)
		fmt.Fprintln(os.Stderr, "  -websafe  "+flag.Lookup("websafe").Usage)
		fmt.Fprintln(os.Stderr, "  -serve    "+flag.Lookup("serve").Usage)
		fmt.Fprintln(os.Stderr, "  -listen   "+flag.Lookup("listen").Usage)
		fmt.Fprintln(os.Stderr, "  -version  "+flag.Lookup("version").Usage)
	}
}

// trackedIntFlag is a flag.Value implementation that tracks whether a flag
// was set.
type trackedIntFlag struct {
	value int
	set   bool
}

// Set converts the string value to an integer and stores it.
func (f *trackedIntFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

// String returns the string representation of the flag value.
func (f *trackedIntFlag) String() string {
	return strconv.Itoa(f.value)
}

// Value returns the integer value of the flag.
func (f *trackedIntFlag) Value() int {
	return f.value
}

// WasSet returns true if the flag was set.
func (f *trackedIntFlag) WasSet() bool {
	return f.set
}
