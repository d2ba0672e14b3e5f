package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration parsed from command-line flags.
type Config struct {
	Colors     []string
	Format     string
	ColorMode  string
	Websafe    bool
	Quiet      bool
	Verbosity  int
	Serve      bool
	ListenAddr string
}

// errVersionRequested is returned when -version flag is used.
var errVersionRequested = errors.New("version requested")

// parseConfig parses command-line flags and returns a validated Config.
func parseConfig() (*Config, error) {
	flag.Parse()

	if *showVersion {
		fmt.Printf("Version: %s\n", version)
		return nil, errVersionRequested
	}

	if *quiet && verbosityLevel.WasSet() {
		return nil, errors.New("-q cannot be combined with -v")
	}

	switch strings.ToLower(*colorArg) {
	case "auto", "always", "never":
		// valid
	default:
		return nil, errors.New("-color must be auto, always, or never")
	}

	switch strings.ToLower(*formatOption) {
	case "auto", "json":
		// valid
	default:
		return nil, errors.New("-format must be auto or json")
	}

	args := flag.Args()
	if *serve {
		if len(args) != 0 {
			return nil, errors.New("-serve takes no color arguments")
		}
	} else if len(args) == 0 {
		return nil, errors.New("no colors to convert")
	}

	cfg := &Config{
		Colors:     args,
		Format:     strings.ToLower(*formatOption),
		ColorMode:  strings.ToLower(*colorArg),
		Websafe:    *websafeFlag,
		Quiet:      *quiet,
		Verbosity:  verbosityLevel.Value(),
		Serve:      *serve,
		ListenAddr: *listenAddr,
	}

	return cfg, nil
}

// onlyRune returns true if the string consists solely of the provided rune.
func onlyRune(s string, r rune) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch != r {
			return false
		}
	}
	return true
}

// preprocessVerbosityArgs rewrites os.Args so that shorthand -v/-vv translates to
// canonical -v=N forms before flag parsing. This lets the default flag package
// treat -v as a repeatable count.
func preprocessVerbosityArgs() {
	if len(os.Args) <= 1 {
		return
	}

	filtered := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-v" || arg == "--verbose":
			filtered = append(filtered, "-v=1")
		case strings.HasPrefix(arg, "-v="):
			filtered = append(filtered, arg)
		case strings.HasPrefix(arg, "-vv") && onlyRune(arg[1:], 'v'):
			filtered = append(filtered, fmt.Sprintf("-v=%d", len(arg)-1))
		default:
			filtered = append(filtered, arg)
		}
	}

	os.Args = append([]string{os.Args[0]}, filtered...)
}
