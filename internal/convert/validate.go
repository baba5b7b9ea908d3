package convert

import (
	"fmt"
	"regexp"

	"github.com/badele/colorans/internal/types"
)

// HexPattern matches the only accepted hex form: '#' followed by exactly
// six hex digits, case-insensitive.
const HexPattern = `^#([A-Fa-f0-9]{6})$`

var hexRe = regexp.MustCompile(HexPattern)

const (
	// MaxComponent is the upper bound for palette indexes and RGB channels.
	MaxComponent = 255

	// MaxPacked is the upper bound for packed 24-bit values (0xFFFFFF).
	MaxPacked = 16777215
)

// CheckComponent rejects palette indexes and RGB channel values outside 0-255.
func CheckComponent(value int) error {
	if value < 0 || value > MaxComponent {
		return fmt.Errorf("%w: color component or index must be between 0 and 255", types.ErrInvalidArgument)
	}
	return nil
}

// CheckPacked rejects packed color values outside the 24-bit range.
func CheckPacked(value int) error {
	if value < 0 || value > MaxPacked {
		return fmt.Errorf("%w: color value must be between 0 and 16777215", types.ErrInvalidArgument)
	}
	return nil
}

// CheckHex rejects strings that are not '#' plus exactly six hex digits.
func CheckHex(value string) error {
	if !hexRe.MatchString(value) {
		return fmt.Errorf("%w: hex color must be in the format '#ffcc00'", types.ErrInvalidArgument)
	}
	return nil
}

// CheckHSV rejects out-of-range hue/saturation/value triples. The bound
// tests are written in the accepting direction so NaN fails them too.
func CheckHSV(h, s, v float64) error {
	if !(h >= 0 && h <= 360) {
		return fmt.Errorf("%w: hue must be between 0.0 and 360.0", types.ErrInvalidArgument)
	}
	if !(s >= 0 && s <= 1) {
		return fmt.Errorf("%w: saturation must be between 0.0 and 1.0", types.ErrInvalidArgument)
	}
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: value must be between 0.0 and 1.0", types.ErrInvalidArgument)
	}
	return nil
}
