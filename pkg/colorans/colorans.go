// Package colorans generates ANSI SGR escape sequences for terminal colors.
//
// This package provides functions to:
//   - Build foreground and background color sequences from a palette index,
//     an RGB triple, a packed 0xRRGGBB integer, a "#rrggbb" hex string or
//     an HSV triple
//   - Reset the terminal colors and attributes to their defaults
//   - Convert packed and hex color forms to RGB channels
//
// Example usage:
//
//	import "github.com/badele/colorans/pkg/colorans"
//
//	seq, _ := colorans.FgHex("#ffcc00")
//	fmt.Printf("%swarning%s\n", seq, colorans.Reset())
//
// Every function is pure and safe for concurrent use; nothing here inspects
// the terminal or the environment. Out-of-range input yields an error
// wrapping ErrInvalidArgument and an empty string.
package colorans

import (
	"github.com/badele/colorans/internal/convert"
	"github.com/badele/colorans/internal/sequence"
	"github.com/badele/colorans/internal/types"
)

// Type aliases for public API
type (
	// Spec is a tagged color value; build one with Indexed, RGB, Packed,
	// Hex or HSV
	Spec = types.Spec

	// Kind discriminates the representation carried by a Spec
	Kind = types.Kind

	// Layer selects the foreground or background side of a cell
	Layer = types.Layer
)

// Color kind constants
const (
	KindIndexed = types.KindIndexed
	KindRGB     = types.KindRGB
	KindPacked  = types.KindPacked
	KindHex     = types.KindHex
	KindHSV     = types.KindHSV
)

// Layer constants
const (
	Foreground = types.Foreground
	Background = types.Background
)

// ErrInvalidArgument is wrapped by every error returned for out-of-domain
// input; match it with errors.Is.
var ErrInvalidArgument = types.ErrInvalidArgument

// Indexed returns a Spec addressing one of the 256 palette colors.
func Indexed(index int) Spec {
	return types.Indexed(index)
}

// RGB returns a Spec holding a 24-bit color as separate channels.
func RGB(r, g, b int) Spec {
	return types.RGB(r, g, b)
}

// Packed returns a Spec holding a 24-bit color packed as 0xRRGGBB.
func Packed(value int) Spec {
	return types.Packed(value)
}

// Hex returns a Spec holding a "#rrggbb" string.
func Hex(value string) Spec {
	return types.Hex(value)
}

// HSV returns a Spec holding a hue/saturation/value triple (hue in
// degrees 0-360, saturation and value in 0-1).
func HSV(h, s, v float64) Spec {
	return types.HSV(h, s, v)
}

// Fg returns the escape sequence switching the terminal foreground color
// to spec.
func Fg(spec Spec) (string, error) {
	return layerSequence(types.Foreground, spec)
}

// Bg returns the escape sequence switching the terminal background color
// to spec.
func Bg(spec Spec) (string, error) {
	return layerSequence(types.Background, spec)
}

func layerSequence(layer Layer, spec Spec) (string, error) {
	components, err := convert.Components(spec)
	if err != nil {
		return "", err
	}
	return sequence.Build(layer, components)
}

// FgIndexed returns the foreground sequence for a palette index (0-255).
func FgIndexed(index int) (string, error) {
	return Fg(Indexed(index))
}

// FgRGB returns the foreground sequence for an RGB triple (each 0-255).
func FgRGB(r, g, b int) (string, error) {
	return Fg(RGB(r, g, b))
}

// FgPacked returns the foreground sequence for a packed 0xRRGGBB value.
func FgPacked(value int) (string, error) {
	return Fg(Packed(value))
}

// FgHex returns the foreground sequence for a "#rrggbb" string.
func FgHex(hex string) (string, error) {
	return Fg(Hex(hex))
}

// FgHSV returns the foreground sequence for a hue/saturation/value triple.
func FgHSV(h, s, v float64) (string, error) {
	return Fg(HSV(h, s, v))
}

// BgIndexed returns the background sequence for a palette index (0-255).
func BgIndexed(index int) (string, error) {
	return Bg(Indexed(index))
}

// BgRGB returns the background sequence for an RGB triple (each 0-255).
func BgRGB(r, g, b int) (string, error) {
	return Bg(RGB(r, g, b))
}

// BgPacked returns the background sequence for a packed 0xRRGGBB value.
func BgPacked(value int) (string, error) {
	return Bg(Packed(value))
}

// BgHex returns the background sequence for a "#rrggbb" string.
func BgHex(hex string) (string, error) {
	return Bg(Hex(hex))
}

// BgHSV returns the background sequence for a hue/saturation/value triple.
func BgHSV(h, s, v float64) (string, error) {
	return Bg(HSV(h, s, v))
}

// Reset returns the sequence restoring the terminal's default colors and
// attributes.
func Reset() string {
	return sequence.Reset
}

// PackedToRGB splits a packed 0xRRGGBB value into channels: red is bits
// 16-23, green bits 8-15, blue bits 0-7.
func PackedToRGB(value int) (r, g, b int, err error) {
	return convert.PackedToRGB(value)
}

// HexToRGB parses a "#rrggbb" string (hex digits case-insensitive) into
// channels.
func HexToRGB(hex string) (r, g, b int, err error) {
	return convert.HexToRGB(hex)
}
