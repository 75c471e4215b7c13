// Package style provides the color and text-style primitives used by the
// rendering pipeline. Styles are small value types that compose by layered
// override: a later layer replaces only the fields it explicitly sets.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColorMode distinguishes an unset color, the terminal's default color,
// and a concrete RGB value.
type ColorMode uint8

const (
	// ColorUnset means the color was never assigned. An unset color never
	// overrides an earlier layer when styles are chained.
	ColorUnset ColorMode = iota

	// ColorTerminalDefault is the terminal's own default color.
	ColorTerminalDefault

	// ColorRGB is a concrete 24-bit color.
	ColorRGB
)

// Color represents a color value: unset, terminal default, or RGB.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
}

// Default is the terminal's default color. Unlike the zero Color it is
// considered set, so it overrides earlier layers when chained.
var Default = Color{Mode: ColorTerminalDefault}

// RGB creates a concrete color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// FromHex creates a color from a hex string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
		}

	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}

	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// IsSet returns true if the color was assigned (RGB or terminal default).
func (c Color) IsSet() bool {
	return c.Mode != ColorUnset
}

// IsRGB returns true if the color is a concrete RGB value.
func (c Color) IsRGB() bool {
	return c.Mode == ColorRGB
}

// Hex returns the "#rrggbb" representation of an RGB color.
// Returns empty string for unset or terminal-default colors.
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c.Mode {
	case ColorUnset:
		return "unset"
	case ColorTerminalDefault:
		return "default"
	default:
		return c.Hex()
	}
}

// Blend linearly interpolates between two RGB colors.
// frac 0.0 = c, 1.0 = other. Each channel is computed as
// c*(1-frac) + other*frac, rounded to the nearest integer and clamped
// to [0, 255]. Both colors must be RGB; otherwise c is returned.
func (c Color) Blend(other Color, frac float64) Color {
	if !c.IsRGB() || !other.IsRGB() {
		return c
	}
	return RGB(
		blendChannel(c.R, other.R, frac),
		blendChannel(c.G, other.G, frac),
		blendChannel(c.B, other.B, frac),
	)
}

func blendChannel(a, b uint8, frac float64) uint8 {
	v := math.Round(float64(a)*(1-frac) + float64(b)*frac)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
