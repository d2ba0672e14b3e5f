package hueconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebsafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		r, g, b  int
		expected RGB
	}{
		{name: "already websafe", r: 51, g: 153, b: 255, expected: RGB{51, 153, 255}},
		{name: "snaps up past midpoint", r: 130, g: 130, b: 130, expected: RGB{153, 153, 153}},
		{name: "snaps down at midpoint", r: 76, g: 76, b: 76, expected: RGB{51, 51, 51}},
		{name: "snaps up just past midpoint", r: 77, g: 77, b: 77, expected: RGB{102, 102, 102}},
		{name: "low values snap to zero", r: 25, g: 25, b: 25, expected: RGB{0, 0, 0}},
		{name: "26 snaps to 51", r: 26, g: 26, b: 26, expected: RGB{51, 51, 51}},
		{name: "top bucket midpoint", r: 229, g: 229, b: 229, expected: RGB{204, 204, 204}},
		{name: "top bucket snaps up", r: 230, g: 230, b: 230, expected: RGB{255, 255, 255}},
		{name: "negative channel clamps to zero", r: -40, g: 0, b: 0, expected: RGB{0, 0, 0}},
		{name: "oversized channel clamps to max", r: 300, g: 0, b: 0, expected: RGB{255, 0, 0}},
		{name: "channels are independent", r: 10, g: 130, b: 250, expected: RGB{0, 153, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Websafe(tt.r, tt.g, tt.b))
		})
	}
}

// TestWebsafeBucketBoundaries pins down the ordered-scan tie-break: a value
// at an exact multiple of 51 sits on the boundary of two buckets, and the
// earlier bucket decides the snap.
func TestWebsafeBucketBoundaries(t *testing.T) {
	t.Parallel()

	for low := 0; low <= 255; low += websafeStep {
		got := Websafe(low, low, low)
		assert.Equal(t, RGB{low, low, low}, got, "boundary value %d should stay put", low)
	}
}

func TestWebsafeMembership(t *testing.T) {
	t.Parallel()

	member := map[int]bool{0: true, 51: true, 102: true, 153: true, 204: true, 255: true}

	for v := -10; v <= 265; v++ {
		got := Websafe(v, v, v)
		if !member[got.R] || !member[got.G] || !member[got.B] {
			t.Fatalf("Websafe(%d,%d,%d) = %+v is not in the websafe palette", v, v, v, got)
		}
	}
}
