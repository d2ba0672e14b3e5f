package app

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdoutFrom(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	err = fn()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(output)
}

func decodeJSONLine(t *testing.T, line string) map[string]any {
	t.Helper()
	trimmed := strings.TrimSpace(line)
	require.NotEmpty(t, trimmed)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(trimmed), &payload))
	return payload
}

func asMap(t *testing.T, value any) map[string]any {
	t.Helper()
	result, ok := value.(map[string]any)
	require.Truef(t, ok, "expected map[string]any, got %T", value)
	return result
}
