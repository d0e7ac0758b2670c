package theme

import "testing"

func TestInterpolateColorEndpoints(t *testing.T) {
	if got := InterpolateColor("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("pos 0 = %s, want #000000", got)
	}
	if got := InterpolateColor("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("pos 1 = %s, want #ffffff", got)
	}
}

func TestInterpolateColorMidpoint(t *testing.T) {
	got := InterpolateColor("#000000", "#fefefe", 0.5)
	if got != "#7f7f7f" {
		t.Errorf("midpoint = %s, want #7f7f7f", got)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	if r != 0xcb || g != 0xa6 || b != 0xf7 {
		t.Errorf("ParseHexColor = %d,%d,%d", r, g, b)
	}

	// Malformed input degrades to black
	r, g, b = ParseHexColor("nope")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("malformed = %d,%d,%d, want zeros", r, g, b)
	}
}

func TestApplyGradientEmptyString(t *testing.T) {
	if got := ApplyGradient("", "#000000", "#ffffff"); got != "" {
		t.Errorf("empty input = %q", got)
	}
}
