package types

import (
	"errors"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// ERRORS
/////////////////////////////////////////////////////////////////////////////

// ErrInvalidArgument is the single error kind returned for out-of-domain
// input. Validation failures wrap it with a message naming the violated
// constraint, so callers can match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

/////////////////////////////////////////////////////////////////////////////
// LAYER
/////////////////////////////////////////////////////////////////////////////

// Layer selects which side of the terminal cell a color sequence targets.
type Layer int

const (
	Foreground Layer = iota // SGR 38
	Background              // SGR 48
)

func (l Layer) String() string {
	switch l {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	}
	return "unknown"
}

// Code returns the SGR parameter introducing an extended color on this layer.
func (l Layer) Code() string {
	if l == Background {
		return "48"
	}
	return "38"
}

/////////////////////////////////////////////////////////////////////////////
// COLOR SPEC
/////////////////////////////////////////////////////////////////////////////

// Kind discriminates the representation carried by a Spec.
type Kind int

const (
	KindIndexed Kind = iota // palette index 0-255 (ESC[38;5;n)
	KindRGB                 // RGB triple (ESC[38;2;r;g;b)
	KindPacked              // packed 24-bit 0xRRGGBB
	KindHex                 // "#rrggbb"
	KindHSV                 // hue 0-360, saturation/value 0-1
)

func (k Kind) String() string {
	switch k {
	case KindIndexed:
		return "indexed"
	case KindRGB:
		return "rgb"
	case KindPacked:
		return "packed"
	case KindHex:
		return "hex"
	case KindHSV:
		return "hsv"
	}
	return "unknown"
}

// Spec is a tagged color value: exactly one representation is meaningful,
// selected by Kind. Build one with Indexed, RGB, Packed, Hex or HSV.
// Validation happens when the Spec is turned into a sequence, not here.
type Spec struct {
	Kind    Kind
	Index   int
	R, G, B int
	Packed  int
	Hex     string
	H, S, V float64
}

// Indexed returns a Spec addressing one of the 256 palette colors.
func Indexed(index int) Spec {
	return Spec{Kind: KindIndexed, Index: index}
}

// RGB returns a Spec holding a 24-bit color as separate channels.
func RGB(r, g, b int) Spec {
	return Spec{Kind: KindRGB, R: r, G: g, B: b}
}

// Packed returns a Spec holding a 24-bit color packed as 0xRRGGBB, the
// integer form most graphic toolkits expose.
func Packed(value int) Spec {
	return Spec{Kind: KindPacked, Packed: value}
}

// Hex returns a Spec holding a "#rrggbb" string.
func Hex(value string) Spec {
	return Spec{Kind: KindHex, Hex: value}
}

// HSV returns a Spec holding a hue/saturation/value triple (hue in
// degrees 0-360, saturation and value in 0-1).
func HSV(h, s, v float64) Spec {
	return Spec{Kind: KindHSV, H: h, S: s, V: v}
}

func (c Spec) String() string {
	switch c.Kind {
	case KindIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case KindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case KindPacked:
		return fmt.Sprintf("packed:%d", c.Packed)
	case KindHex:
		return c.Hex
	case KindHSV:
		return fmt.Sprintf("hsv(%g,%g,%g)", c.H, c.S, c.V)
	}
	return "unknown"
}
