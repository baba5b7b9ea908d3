package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/colorans/internal/convert"
	"github.com/badele/colorans/internal/sequence"
	"github.com/badele/colorans/internal/types"
)

// Report gathers every derivable form of a color: the forms depend on
// whether the color resolves to a palette index or to RGB channels.
type Report struct {
	Input      string `json:"input"`
	Kind       string `json:"kind"`
	Index      *int   `json:"index,omitempty"`
	RGB        []int  `json:"rgb,omitempty"`
	Hex        string `json:"hex,omitempty"`
	Packed     *int   `json:"packed,omitempty"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Reset      string `json:"reset"`
}

// NewReport resolves spec once and fills in every derivable form.
func NewReport(input string, spec types.Spec) (Report, error) {
	components, err := convert.Components(spec)
	if err != nil {
		return Report{}, err
	}

	fg, err := sequence.Build(types.Foreground, components)
	if err != nil {
		return Report{}, err
	}
	bg, err := sequence.Build(types.Background, components)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Input:      input,
		Kind:       spec.Kind.String(),
		Foreground: fg,
		Background: bg,
		Reset:      sequence.Reset,
	}

	if len(components) == 1 {
		index := components[0]
		report.Index = &index
	} else {
		r, g, b := components[0], components[1], components[2]
		packed := r<<16 | g<<8 | b
		report.RGB = []int{r, g, b}
		report.Hex = fmt.Sprintf("#%02x%02x%02x", r, g, b)
		report.Packed = &packed
	}

	return report, nil
}

// WriteText prints the report as an aligned listing with a color preview.
func (r Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "%-12s %s\n", "input:", r.Input)
	fmt.Fprintf(w, "%-12s %s\n", "kind:", r.Kind)

	if r.Index != nil {
		fmt.Fprintf(w, "%-12s %d\n", "index:", *r.Index)
	}
	if len(r.RGB) == 3 {
		fmt.Fprintf(w, "%-12s %d,%d,%d\n", "rgb:", r.RGB[0], r.RGB[1], r.RGB[2])
		fmt.Fprintf(w, "%-12s %s\n", "hex:", r.Hex)
		fmt.Fprintf(w, "%-12s %d\n", "packed:", *r.Packed)
	}

	fmt.Fprintf(w, "%-12s %q\n", "foreground:", r.Foreground)
	fmt.Fprintf(w, "%-12s %q\n", "background:", r.Background)
	fmt.Fprintf(w, "%-12s %q\n", "reset:", r.Reset)
	fmt.Fprintf(w, "%-12s %s\n", "preview:", Wrap(Swatch(8), r.Background))
}

// WriteJSON prints the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
