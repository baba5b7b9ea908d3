package convert

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/badele/colorans/internal/types"
)

func TestPackedToRGB(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		r, g, b int
	}{
		{"Gold", 0xFFCC00, 255, 204, 0},
		{"Black", 0x000000, 0, 0, 0},
		{"White", 0xFFFFFF, 255, 255, 255},
		{"Blue", 0x0000FF, 0, 0, 255},
		{"Green", 0x00FF00, 0, 255, 0},
		{"Red", 0xFF0000, 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := PackedToRGB(tt.value)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestPackedToRGBRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"Negative", -1},
		{"TooLarge", 16777216},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := PackedToRGB(tt.value)
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestPackedToRGBRoundTrip(t *testing.T) {
	values := []int{0, 1, 0x00FF00, 0x123456, 0xFFCC00, 0xFFFFFF}

	for _, value := range values {
		r, g, b, err := PackedToRGB(value)
		if err != nil {
			t.Fatalf("Expected no error for %d, got %v", value, err)
		}
		if packed := r<<16 | g<<8 | b; packed != value {
			t.Errorf("Expected round-trip of %d, got %d", value, packed)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b int
	}{
		{"Lowercase", "#ffcc00", 255, 204, 0},
		{"Uppercase", "#FFCC00", 255, 204, 0},
		{"MixedCase", "#FfCc00", 255, 204, 0},
		{"Black", "#000000", 0, 0, 0},
		{"White", "#ffffff", 255, 255, 255},
		{"Arbitrary", "#123456", 0x12, 0x34, 0x56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := HexToRGB(tt.hex)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestHexToRGBFormat(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"MissingHash", "ffcc00"},
		{"TooShort", "#fcc00"},
		{"TooLong", "#ffcc000"},
		{"ShortForm", "#fc0"},
		{"BadDigit", "#ffcg00"},
		{"Empty", ""},
		{"HashOnly", "#"},
		{"TrailingSpace", "#ffcc00 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := HexToRGB(tt.hex)
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b int
	}{
		{"Gold", 48, 1, 1, 255, 204, 0},
		{"Black", 0, 0, 0, 0, 0, 0},
		{"White", 0, 0, 1, 255, 255, 255},
		{"Red", 0, 1, 1, 255, 0, 0},
		{"HueWrap", 360, 1, 1, 255, 0, 0},
		{"Yellow", 60, 1, 1, 255, 255, 0},
		{"Green", 120, 1, 1, 0, 255, 0},
		{"Cyan", 180, 1, 1, 0, 255, 255},
		{"Blue", 240, 1, 1, 0, 0, 255},
		{"Magenta", 300, 1, 1, 255, 0, 255},
		{"TruncatedChannel", 30, 1, 1, 255, 127, 0},
		{"TruncatedValue", 0, 1, 0.5, 127, 0, 0},
		{"Gray", 0, 0, 0.5, 127, 127, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := HSVToRGB(tt.h, tt.s, tt.v)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestHSVToRGBRange(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		field   string
	}{
		{"HueNegative", -0.5, 0, 0, "hue"},
		{"HueTooLarge", 360.5, 0, 0, "hue"},
		{"HueNaN", math.NaN(), 0, 0, "hue"},
		{"SaturationNegative", 0, -0.1, 0, "saturation"},
		{"SaturationTooLarge", 0, 1.1, 0, "saturation"},
		{"ValueNegative", 0, 0, -0.1, "value"},
		{"ValueTooLarge", 0, 0, 1.1, "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := HSVToRGB(tt.h, tt.s, tt.v)
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected message naming %q, got %q", tt.field, err.Error())
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Component", CheckComponent(256), "invalid argument: color component or index must be between 0 and 255"},
		{"Packed", CheckPacked(-1), "invalid argument: color value must be between 0 and 16777215"},
		{"Hex", CheckHex("nope"), "invalid argument: hex color must be in the format '#ffcc00'"},
		{"Hue", CheckHSV(400, 0, 0), "invalid argument: hue must be between 0.0 and 360.0"},
		{"Saturation", CheckHSV(0, 2, 0), "invalid argument: saturation must be between 0.0 and 1.0"},
		{"Value", CheckHSV(0, 0, 2), "invalid argument: value must be between 0.0 and 1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBoundariesAccepted(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ComponentZero", CheckComponent(0)},
		{"ComponentMax", CheckComponent(255)},
		{"PackedZero", CheckPacked(0)},
		{"PackedMax", CheckPacked(16777215)},
		{"HSVZero", CheckHSV(0, 0, 0)},
		{"HSVMax", CheckHSV(360, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err != nil {
				t.Errorf("Expected no error, got %v", tt.err)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name     string
		spec     types.Spec
		expected []int
	}{
		{"Indexed", types.Indexed(220), []int{220}},
		{"IndexedZero", types.Indexed(0), []int{0}},
		{"IndexedMax", types.Indexed(255), []int{255}},
		{"RGB", types.RGB(255, 204, 0), []int{255, 204, 0}},
		{"Packed", types.Packed(0xFFCC00), []int{255, 204, 0}},
		{"PackedMax", types.Packed(16777215), []int{255, 255, 255}},
		{"Hex", types.Hex("#ffcc00"), []int{255, 204, 0}},
		{"HSV", types.HSV(48, 1, 1), []int{255, 204, 0}},
		{"HSVHueMax", types.HSV(360, 1, 1), []int{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components, err := Components(tt.spec)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(components, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, components)
			}
		})
	}
}

func TestComponentsInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec types.Spec
	}{
		{"IndexNegative", types.Indexed(-1)},
		{"IndexTooLarge", types.Indexed(256)},
		{"RGBRedNegative", types.RGB(-1, 0, 0)},
		{"RGBGreenTooLarge", types.RGB(0, 256, 0)},
		{"RGBBlueTooLarge", types.RGB(0, 0, 256)},
		{"PackedNegative", types.Packed(-1)},
		{"PackedTooLarge", types.Packed(16777216)},
		{"HexMalformed", types.Hex("ffcc00")},
		{"HSVHueTooLarge", types.HSV(361, 1, 1)},
		{"UnknownKind", types.Spec{Kind: types.Kind(42)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Components(tt.spec)
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
