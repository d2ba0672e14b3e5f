package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	// These tests need to manipulate global flag state, so we can't run them
	// in parallel. Save and restore original values.
	origArgs := os.Args
	origFormatOption := *formatOption
	origColorArg := *colorArg
	origWebsafeFlag := *websafeFlag
	origShowVersion := *showVersion
	origServe := *serve
	origListenAddr := *listenAddr
	origQuiet := *quiet
	origVerbosityLevel := verbosityLevel

	defer func() {
		os.Args = origArgs
		*formatOption = origFormatOption
		*colorArg = origColorArg
		*websafeFlag = origWebsafeFlag
		*showVersion = origShowVersion
		*serve = origServe
		*listenAddr = origListenAddr
		*quiet = origQuiet
		verbosityLevel = origVerbosityLevel
	}()

	resetFlags := func() {
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

		// Reset all flag values
		formatOption = flag.String("format", "auto", "")
		colorArg = flag.String("color", "auto", "")
		websafeFlag = flag.Bool("websafe", false, "")
		showVersion = flag.Bool("version", false, "")
		serve = flag.Bool("serve", false, "")
		listenAddr = flag.String("listen", "localhost:8408", "")
		quiet = flag.Bool("q", false, "")

		verbosityLevel = trackedIntFlag{}
		flag.Var(&verbosityLevel, "v", "")
	}

	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		errIs     error
		checkFunc func(*testing.T, *Config)
	}{
		{
			name:    "version flag",
			args:    []string{"cmd", "-version"},
			wantErr: true,
			errIs:   errVersionRequested,
		},
		{
			name:    "quiet and verbose conflict",
			args:    []string{"cmd", "-q", "-v=1", "FF0000"},
			wantErr: true,
		},
		{
			name:    "quiet conflicts with explicit -v=0",
			args:    []string{"cmd", "-q", "-v=0", "FF0000"},
			wantErr: true,
		},
		{
			name:    "no arguments",
			args:    []string{"cmd"},
			wantErr: true,
		},
		{
			name:    "invalid color option",
			args:    []string{"cmd", "-color", "invalid", "FF0000"},
			wantErr: true,
		},
		{
			name:    "invalid format option",
			args:    []string{"cmd", "-format", "yaml", "FF0000"},
			wantErr: true,
		},
		{
			name:    "serve rejects color arguments",
			args:    []string{"cmd", "-serve", "FF0000"},
			wantErr: true,
		},
		{
			name: "valid basic config",
			args: []string{"cmd", "FF0000"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"FF0000"}, cfg.Colors)
				assert.Equal(t, "auto", cfg.Format)
				assert.Equal(t, "auto", cfg.ColorMode)
				assert.False(t, cfg.Websafe)
				assert.False(t, cfg.Quiet)
				assert.Equal(t, 0, cfg.Verbosity)
			},
		},
		{
			name: "multiple colors",
			args: []string{"cmd", "FF0000", "rgb:0,255,0", "hsv:240,1,1"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Len(t, cfg.Colors, 3)
			},
		},
		{
			name: "json format with websafe",
			args: []string{"cmd", "-format", "JSON", "-websafe", "FF0000"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "json", cfg.Format)
				assert.True(t, cfg.Websafe)
			},
		},
		{
			name: "serve mode",
			args: []string{"cmd", "-serve", "-listen", "localhost:9999"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Serve)
				assert.Equal(t, "localhost:9999", cfg.ListenAddr)
				assert.Empty(t, cfg.Colors)
			},
		},
		{
			name: "verbosity level",
			args: []string{"cmd", "-v=2", "FF0000"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Verbosity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			os.Args = tt.args

			cfg, err := parseConfig()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestPreprocessVerbosityArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "plain -v",
			args:     []string{"cmd", "-v", "FF0000"},
			expected: []string{"cmd", "-v=1", "FF0000"},
		},
		{
			name:     "stacked -vv",
			args:     []string{"cmd", "-vv", "FF0000"},
			expected: []string{"cmd", "-v=2", "FF0000"},
		},
		{
			name:     "explicit -v=3 untouched",
			args:     []string{"cmd", "-v=3", "FF0000"},
			expected: []string{"cmd", "-v=3", "FF0000"},
		},
		{
			name:     "long form",
			args:     []string{"cmd", "--verbose", "FF0000"},
			expected: []string{"cmd", "-v=1", "FF0000"},
		},
		{
			name:     "unrelated flags untouched",
			args:     []string{"cmd", "-websafe", "FF0000"},
			expected: []string{"cmd", "-websafe", "FF0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			preprocessVerbosityArgs()
			assert.Equal(t, tt.expected, os.Args)
		})
	}
}
