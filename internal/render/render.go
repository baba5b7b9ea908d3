package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/badele/colorans/internal/sequence"
	"github.com/badele/colorans/internal/types"
)

// Wrap surrounds text with the given sequences and a trailing reset.
// With no sequences the text is returned unchanged.
func Wrap(text string, seqs ...string) string {
	joined := strings.Join(seqs, "")
	if joined == "" {
		return text
	}
	return joined + text + sequence.Reset
}

// Swatch returns a block of width spaces for color previews.
func Swatch(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat(" ", width)
}

// ColorizeLines applies the sequences to every line of text, resetting
// before each line break so the colors never leak past the block.
// CRLF line endings are normalized to LF; empty lines are left untouched.
func ColorizeLines(text string, seqs ...string) string {
	joined := strings.Join(seqs, "")
	if joined == "" {
		return text
	}

	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		sb.WriteString(joined)
		sb.WriteString(line)
		sb.WriteString(sequence.Reset)
	}

	return sb.String()
}

// Chart writes the 256-color palette to w: the 16 system colors, the
// 6x6x6 color cube and the 24-step grayscale ramp, each cell labeled with
// its palette index and colored on the given layer.
func Chart(w io.Writer, layer types.Layer) error {
	sections := []struct {
		title   string
		first   int
		count   int
		perLine int
	}{
		{"System colors", 0, 16, 8},
		{"6x6x6 color cube", 16, 216, 12},
		{"Grayscale ramp", 232, 24, 12},
	}

	for si, section := range sections {
		if si > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, section.title)

		for i := 0; i < section.count; i++ {
			index := section.first + i
			seq, err := sequence.Build(layer, []int{index})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %3d %s", seq, index, sequence.Reset)
			if (i+1)%section.perLine == 0 {
				fmt.Fprintln(w)
			}
		}
	}

	return nil
}
