package convert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/badele/colorans/internal/types"
)

// PackedToRGB splits a packed 0xRRGGBB value into channels: red is bits
// 16-23, green bits 8-15, blue bits 0-7.
func PackedToRGB(value int) (r, g, b int, err error) {
	if err := CheckPacked(value); err != nil {
		return 0, 0, 0, err
	}
	return (value >> 16) & 0xFF, (value >> 8) & 0xFF, value & 0xFF, nil
}

// HexToRGB parses a "#rrggbb" string (hex digits case-insensitive) into
// channels.
func HexToRGB(hex string) (r, g, b int, err error) {
	if err := CheckHex(hex); err != nil {
		return 0, 0, 0, err
	}

	// Digits are already validated, the parses cannot fail.
	rv, _ := strconv.ParseUint(hex[1:3], 16, 8)
	gv, _ := strconv.ParseUint(hex[3:5], 16, 8)
	bv, _ := strconv.ParseUint(hex[5:7], 16, 8)

	return int(rv), int(gv), int(bv), nil
}

// HSVToRGB converts a hue/saturation/value triple (hue in degrees 0-360,
// saturation and value in 0-1) to RGB channels. Channel floats are scaled
// by 255 and truncated, not rounded.
func HSVToRGB(hue, saturation, value float64) (r, g, b int, err error) {
	if err := CheckHSV(hue, saturation, value); err != nil {
		return 0, 0, 0, err
	}

	// Hue 360 wraps to sector 0, so hsv(360,s,v) == hsv(0,s,v).
	sectorPos := math.Mod(hue/60, 6)
	sector := int(sectorPos)
	f := sectorPos - float64(sector)

	p := value * (1 - saturation)
	q := value * (1 - f*saturation)
	t := value * (1 - (1-f)*saturation)

	var rf, gf, bf float64
	switch sector {
	case 0:
		rf, gf, bf = value, t, p
	case 1:
		rf, gf, bf = q, value, p
	case 2:
		rf, gf, bf = p, value, t
	case 3:
		rf, gf, bf = p, q, value
	case 4:
		rf, gf, bf = t, p, value
	case 5:
		rf, gf, bf = value, p, q
	}

	return int(rf * 255), int(gf * 255), int(bf * 255), nil
}

// Components reduces a Spec to the parameter list of its SGR sequence:
// a single palette index, or the three RGB channels every other
// representation converts down to.
func Components(spec types.Spec) ([]int, error) {
	switch spec.Kind {
	case types.KindIndexed:
		if err := CheckComponent(spec.Index); err != nil {
			return nil, err
		}
		return []int{spec.Index}, nil

	case types.KindRGB:
		for _, c := range []int{spec.R, spec.G, spec.B} {
			if err := CheckComponent(c); err != nil {
				return nil, err
			}
		}
		return []int{spec.R, spec.G, spec.B}, nil

	case types.KindPacked:
		r, g, b, err := PackedToRGB(spec.Packed)
		if err != nil {
			return nil, err
		}
		return []int{r, g, b}, nil

	case types.KindHex:
		r, g, b, err := HexToRGB(spec.Hex)
		if err != nil {
			return nil, err
		}
		return []int{r, g, b}, nil

	case types.KindHSV:
		r, g, b, err := HSVToRGB(spec.H, spec.S, spec.V)
		if err != nil {
			return nil, err
		}
		return []int{r, g, b}, nil
	}

	return nil, fmt.Errorf("%w: unknown color kind %d", types.ErrInvalidArgument, spec.Kind)
}
