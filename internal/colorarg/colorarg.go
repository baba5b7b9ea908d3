package colorarg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/colorans/internal/types"
)

// Parse resolves a command-line color argument into a color spec.
// Accepted forms:
//
//	#ffcc00          hex string
//	220              palette index (0-255)
//	255,204,0        RGB triple
//	rgb:255,204,0    RGB triple, explicit
//	hsv:48,1,1       HSV triple
//	packed:16763904  packed 24-bit value
//	0xffcc00         packed 24-bit value, hex notation
//	gold             W3C/X11 color name
//
// Parse only dispatches on syntax; range checks happen when the Spec is
// turned into a sequence.
func Parse(arg string) (types.Spec, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return types.Spec{}, fmt.Errorf("%w: empty color argument", types.ErrInvalidArgument)
	}

	if strings.HasPrefix(arg, "#") {
		return types.Hex(arg), nil
	}

	if after, ok := strings.CutPrefix(arg, "rgb:"); ok {
		return parseRGB(after)
	}
	if after, ok := strings.CutPrefix(arg, "hsv:"); ok {
		return parseHSV(after)
	}
	if after, ok := strings.CutPrefix(arg, "packed:"); ok {
		value, err := strconv.Atoi(after)
		if err != nil {
			return types.Spec{}, fmt.Errorf("%w: packed color %q is not an integer", types.ErrInvalidArgument, after)
		}
		return types.Packed(value), nil
	}
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		value, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return types.Spec{}, fmt.Errorf("%w: packed color %q is not a hex integer", types.ErrInvalidArgument, arg)
		}
		return types.Packed(int(value)), nil
	}

	if strings.Contains(arg, ",") {
		return parseRGB(arg)
	}

	if index, err := strconv.Atoi(arg); err == nil {
		return types.Indexed(index), nil
	}

	return parseName(arg)
}

func parseRGB(list string) (types.Spec, error) {
	parts := strings.Split(list, ",")
	if len(parts) != 3 {
		return types.Spec{}, fmt.Errorf("%w: RGB color must have 3 comma-separated values", types.ErrInvalidArgument)
	}

	var channels [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return types.Spec{}, fmt.Errorf("%w: RGB component %q is not an integer", types.ErrInvalidArgument, part)
		}
		channels[i] = value
	}

	return types.RGB(channels[0], channels[1], channels[2]), nil
}

func parseHSV(list string) (types.Spec, error) {
	parts := strings.Split(list, ",")
	if len(parts) != 3 {
		return types.Spec{}, fmt.Errorf("%w: HSV color must have 3 comma-separated values", types.ErrInvalidArgument)
	}

	var values [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return types.Spec{}, fmt.Errorf("%w: HSV component %q is not a number", types.ErrInvalidArgument, part)
		}
		values[i] = value
	}

	return types.HSV(values[0], values[1], values[2]), nil
}

// parseName resolves W3C/X11 color names ("gold", "rebeccapurple") through
// the tcell color table.
func parseName(name string) (types.Spec, error) {
	color, ok := tcell.ColorNames[strings.ToLower(name)]
	if !ok {
		return types.Spec{}, fmt.Errorf("%w: unknown color name %q", types.ErrInvalidArgument, name)
	}
	return types.Packed(int(color.Hex())), nil
}
