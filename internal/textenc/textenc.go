package textenc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// UTF8 is the pass-through encoding name.
const UTF8 = "utf8"

// utf8BOM is the UTF-8 Byte Order Mark sequence.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// charmaps maps the supported legacy encoding names to their code pages.
var charmaps = map[string]*charmap.Charmap{
	"cp437":      charmap.CodePage437,
	"cp850":      charmap.CodePage850,
	"iso-8859-1": charmap.ISO8859_1,
}

// Encodings returns the supported encoding names.
func Encodings() []string {
	return []string{UTF8, "cp437", "cp850", "iso-8859-1"}
}

// stripBOM removes the UTF-8 BOM if present at the beginning of the data.
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ToUTF8 converts byte data from a source encoding to UTF-8.
// The UTF-8 BOM is automatically stripped if present.
func ToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == UTF8 {
		return stripBOM(data), nil
	}

	cm, ok := charmaps[sourceEncoding]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripBOM(utf8Data), nil
}

// FromUTF8 converts UTF-8 data to the target encoding.
func FromUTF8(data []byte, targetEncoding string) ([]byte, error) {
	if targetEncoding == UTF8 {
		return data, nil
	}

	cm, ok := charmaps[targetEncoding]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", targetEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewEncoder())
	encoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return encoded, nil
}
