package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/badele/colorans/internal/convert"
	"github.com/badele/colorans/internal/types"
)

// Reset restores the terminal's default colors and attributes.
const Reset = "\x1b[0m"

const (
	modeIndexed = "5" // ESC[38;5;n
	modeRGB     = "2" // ESC[38;2;r;g;b
)

// Build assembles the escape sequence selecting the given color components
// on a layer. One component selects a palette index, three select an RGB
// color; each must be within 0-255. Numbers render as minimal decimal.
func Build(layer types.Layer, components []int) (string, error) {
	var mode string
	switch len(components) {
	case 1:
		mode = modeIndexed
	case 3:
		mode = modeRGB
	default:
		return "", fmt.Errorf("%w: expected 1 or 3 color components, got %d", types.ErrInvalidArgument, len(components))
	}

	codes := []string{layer.Code(), mode}
	for _, c := range components {
		if err := convert.CheckComponent(c); err != nil {
			return "", err
		}
		codes = append(codes, strconv.Itoa(c))
	}

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";")), nil
}
