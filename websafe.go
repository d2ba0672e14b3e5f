package hueconv

// websafeStep is the width of each websafe bucket; the palette channels are
// the multiples of this step from 0 through 255.
const websafeStep = 51

// Websafe snaps each channel independently to the nearest member of
// {0, 51, 102, 153, 204, 255}, the channel values of the 216-color websafe
// palette. Out-of-range channels are clamped to [0,255] first.
func Websafe(r, g, b int) RGB {
	return RGB{websafeChannel(r), websafeChannel(g), websafeChannel(b)}
}

// websafeChannel scans the 51-wide buckets in order from 0 and snaps the
// value within the first bucket that contains it. A value at an exact bucket
// boundary therefore belongs to the earlier bucket. The scan order is load
// bearing at those boundaries and must not be replaced with a rounding
// formula.
func websafeChannel(v int) int {
	v = clampByte(v)
	for low := 0; low+websafeStep <= 255; low += websafeStep {
		if v < low || v > low+websafeStep {
			continue
		}
		if v-low > websafeStep/2 {
			return low + websafeStep
		}
		return low
	}
	return 255
}

// clampByte clamps a channel value to [0,255].
func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
