package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/badele/colorans/internal/colorarg"
	"github.com/badele/colorans/internal/render"
	"github.com/badele/colorans/internal/textenc"
	"github.com/badele/colorans/internal/types"
	"github.com/badele/colorans/pkg/colorans"
)

const colorHelp = "Color: '#ffcc00', 220, '255,204,0', 'hsv:48,1,1', 'packed:16763904', '0xffcc00' or a color name."

var cli struct {
	Debug bool `short:"d" help:"Enable debug logging."`

	Fg       FgCmd       `cmd:"" help:"Print the foreground color sequence, or colorized text."`
	Bg       BgCmd       `cmd:"" help:"Print the background color sequence, or colorized text."`
	Reset    ResetCmd    `cmd:"" help:"Print the reset sequence."`
	Chart    ChartCmd    `cmd:"" help:"Print the 256-color palette chart."`
	Colorize ColorizeCmd `cmd:"" help:"Colorize a file or stdin line by line."`
	Convert  ConvertCmd  `cmd:"" help:"Show every form of a color and its sequences."`
}

type FgCmd struct {
	Color   string   `arg:"" help:"${colorHelp}"`
	Text    []string `arg:"" optional:"" help:"Text to wrap in the color."`
	Escaped bool     `short:"e" help:"Print the sequence in quoted form."`
}

func (c *FgCmd) Run() error {
	return runLayer(types.Foreground, c.Color, c.Text, c.Escaped)
}

type BgCmd struct {
	Color   string   `arg:"" help:"${colorHelp}"`
	Text    []string `arg:"" optional:"" help:"Text to wrap in the color."`
	Escaped bool     `short:"e" help:"Print the sequence in quoted form."`
}

func (c *BgCmd) Run() error {
	return runLayer(types.Background, c.Color, c.Text, c.Escaped)
}

func runLayer(layer types.Layer, color string, text []string, escaped bool) error {
	seq, err := layerSequence(layer, color)
	if err != nil {
		return err
	}

	if len(text) > 0 {
		fmt.Println(render.Wrap(strings.Join(text, " "), seq))
		return nil
	}

	if escaped {
		fmt.Printf("%q\n", seq)
		return nil
	}

	fmt.Print(seq)
	return nil
}

type ResetCmd struct {
	Escaped bool `short:"e" help:"Print the sequence in quoted form."`
}

func (c *ResetCmd) Run() error {
	if c.Escaped {
		fmt.Printf("%q\n", colorans.Reset())
		return nil
	}
	fmt.Print(colorans.Reset())
	return nil
}

type ChartCmd struct {
	Background bool `short:"b" help:"Color each cell background instead of its label."`
}

func (c *ChartCmd) Run() error {
	layer := types.Foreground
	if c.Background {
		layer = types.Background
	}
	return render.Chart(os.Stdout, layer)
}

type ColorizeCmd struct {
	File           string `arg:"" optional:"" type:"existingfile" help:"Input file (stdin when omitted)."`
	Fg             string `short:"f" help:"Foreground color."`
	Bg             string `short:"b" help:"Background color."`
	Encoding       string `default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Input encoding (${encodings})."`
	OutputEncoding string `default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Output encoding (${encodings})."`
}

func (c *ColorizeCmd) Run() error {
	if c.Fg == "" && c.Bg == "" {
		return fmt.Errorf("%w: at least one of --fg or --bg is required", types.ErrInvalidArgument)
	}

	data, err := readInput(c.File)
	if err != nil {
		return err
	}
	slog.Debug("read input", "bytes", len(data), "encoding", c.Encoding)

	var seqs []string
	if c.Fg != "" {
		seq, err := layerSequence(types.Foreground, c.Fg)
		if err != nil {
			return err
		}
		seqs = append(seqs, seq)
	}
	if c.Bg != "" {
		seq, err := layerSequence(types.Background, c.Bg)
		if err != nil {
			return err
		}
		seqs = append(seqs, seq)
	}

	return colorize(os.Stdout, data, c.Encoding, c.OutputEncoding, seqs...)
}

// colorize decodes data from the input encoding, wraps every line in the
// sequences and writes the result to w in the output encoding.
func colorize(w io.Writer, data []byte, inputEncoding, outputEncoding string, seqs ...string) error {
	utf8Data, err := textenc.ToUTF8(data, inputEncoding)
	if err != nil {
		return err
	}

	colored := render.ColorizeLines(string(utf8Data), seqs...)

	out, err := textenc.FromUTF8([]byte(colored), outputEncoding)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// layerSequence resolves a color argument and builds its sequence for the
// given layer.
func layerSequence(layer types.Layer, color string) (string, error) {
	spec, err := colorarg.Parse(color)
	if err != nil {
		return "", err
	}
	slog.Debug("resolved color", "input", color, "spec", spec.String(), "layer", layer.String())

	if layer == types.Background {
		return colorans.Bg(spec)
	}
	return colorans.Fg(spec)
}

type ConvertCmd struct {
	Color string `arg:"" help:"${colorHelp}"`
	JSON  bool   `short:"j" help:"Output as JSON."`
}

func (c *ConvertCmd) Run() error {
	spec, err := colorarg.Parse(c.Color)
	if err != nil {
		return err
	}
	slog.Debug("parsed color argument", "input", c.Color, "spec", spec.String())

	report, err := render.NewReport(c.Color, spec)
	if err != nil {
		return err
	}

	if c.JSON {
		return report.WriteJSON(os.Stdout)
	}
	report.WriteText(os.Stdout)
	return nil
}

// readInput reads the given file, or stdin when no file is provided and
// data is piped in.
func readInput(filename string) ([]byte, error) {
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input: provide a file or pipe data to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// setupLogging routes slog through a tinted stderr handler, Warn level by
// default so output stays clean unless --debug is set.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("colorans"),
		kong.Description("Generate ANSI SGR color sequences from palette indexes, RGB, packed, hex or HSV colors."),
		kong.UsageOnError(),
		kong.Vars{
			"colorHelp": colorHelp,
			"encodings": strings.Join(textenc.Encodings(), ", "),
		},
	)

	setupLogging(cli.Debug)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
