package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/vectorpad/internal/clipboard"
	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/svg"
	"github.com/example/vectorpad/internal/ui"
)

// drawCmd inserts shapes into a drawing without opening a window. Shapes go
// through the same editor the window uses, so they pick up identifiers and
// styling exactly as interactive drawing would.
type drawCmd struct {
	file        string
	output      string
	toClipboard bool
	strokeSpec  string
	fillSpec    string
	width       float64
	shape       string
	coords      []float64
	text        string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// parsePaint normalizes a paint specification: a palette name, an SVG color
// keyword, "none", or a #RRGGBB / #RRGGBBAA hex value.
func parsePaint(s string) (string, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return "", fmt.Errorf("color cannot be empty")
	}
	if spec == "none" {
		return "none", nil
	}
	for _, entry := range ui.StrokePalette() {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Paint, nil
		}
	}
	if _, ok := colornames.Map[spec]; ok {
		return spec, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		if _, err := strconv.ParseUint(spec[1:], 16, 64); err != nil {
			return "", fmt.Errorf("invalid color %q", s)
		}
		return spec, nil
	}
	return "", fmt.Errorf("invalid color %q", s)
}

var drawFlagNames = map[string]struct{}{
	"file":         {},
	"output":       {},
	"to-clipboard": {},
	"to-clip":      {},
	"stroke":       {},
	"fill":         {},
	"width":        {},
}

var drawBoolFlags = map[string]struct{}{
	"to-clipboard": {},
	"to-clip":      {},
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "drawing file to modify (created when missing)")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the resulting markup to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the resulting markup to the clipboard (alias)")
	fs.StringVar(&d.strokeSpec, "stroke", "#000000", "stroke color name or hex value")
	fs.StringVar(&d.fillSpec, "fill", "none", "fill color name, hex value or none")
	fs.Float64Var(&d.width, "width", 2, "stroke width in pixels")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.shape {
	case "line", "rect":
		d.coords, err = expectFloats(remaining, 4, d.shape)
	case "circle":
		d.coords, err = expectFloats(remaining, 3, d.shape)
	case "path":
		if len(remaining) < 4 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("path requires an even number of coordinates, at least two points")
		}
		d.coords, err = expectFloats(remaining, len(remaining), d.shape)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}
	if d.strokeSpec, err = parsePaint(d.strokeSpec); err != nil {
		return nil, err
	}
	if d.strokeSpec == "none" {
		return nil, fmt.Errorf("stroke cannot be none")
	}
	if d.fillSpec, err = parsePaint(d.fillSpec); err != nil {
		return nil, err
	}
	if d.file == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if d.output == "" {
		d.output = d.file
	}
	if d.width < 1 {
		d.width = 1
	}
	if d.shape == "circle" && d.coords[2] <= 0 {
		return nil, fmt.Errorf("circle radius must be positive")
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	doc, err := d.loadSource()
	if err != nil {
		return err
	}
	fill := d.fillSpec
	if d.shape == "text" && fill == "none" {
		// Text is painted with its fill, so an unfilled text would vanish.
		fill = d.strokeSpec
	}
	ed := editor.New(
		editor.WithDocument(doc),
		editor.WithStyle(editor.Style{
			Stroke:      d.strokeSpec,
			Fill:        fill,
			StrokeWidth: d.width,
		}),
	)
	if err := d.applyShape(ed); err != nil {
		return err
	}
	if err := ed.ExportFile(d.output); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	if d.root != nil {
		d.root.notifyExport(saved)
	}
	if d.toClipboard {
		if err := clipboard.WriteText(doc.Serialize()); err != nil {
			return fmt.Errorf("copy markup to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		if detail == "" {
			detail = "markup"
		}
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		if d.root != nil {
			d.root.notifyCopy(detail)
		}
	}
	return nil
}

func (d *drawCmd) loadSource() (*svg.Document, error) {
	f, err := os.Open(d.file)
	if err != nil {
		if os.IsNotExist(err) {
			width, height := d.root.config.Editor.CanvasWidth, d.root.config.Editor.CanvasHeight
			if width <= 0 {
				width = defaultCanvasWidth
			}
			if height <= 0 {
				height = defaultCanvasHeight
			}
			return svg.NewDocument(width, height), nil
		}
		return nil, err
	}
	doc, perr := svg.Parse(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", d.file, cerr)
	}
	if perr != nil {
		return nil, fmt.Errorf("open %s: %w", d.file, perr)
	}
	return doc, nil
}

// applyShape replays the shape as the pointer gesture that would have drawn
// it interactively.
func (d *drawCmd) applyShape(ed *editor.Editor) error {
	switch d.shape {
	case "rect":
		ed.SetTool(editor.ToolRect)
		ed.PointerDown(editor.Point{X: d.coords[0], Y: d.coords[1]})
		ed.PointerMove(editor.Point{X: d.coords[2], Y: d.coords[3]})
		ed.PointerUp()
	case "circle":
		ed.SetTool(editor.ToolCircle)
		ed.PointerDown(editor.Point{X: d.coords[0], Y: d.coords[1]})
		ed.PointerMove(editor.Point{X: d.coords[0] + d.coords[2], Y: d.coords[1]})
		ed.PointerUp()
	case "line":
		ed.SetTool(editor.ToolLine)
		ed.PointerDown(editor.Point{X: d.coords[0], Y: d.coords[1]})
		ed.PointerMove(editor.Point{X: d.coords[2], Y: d.coords[3]})
		ed.PointerUp()
	case "path":
		ed.SetTool(editor.ToolPencil)
		ed.PointerDown(editor.Point{X: d.coords[0], Y: d.coords[1]})
		for i := 2; i < len(d.coords); i += 2 {
			ed.PointerMove(editor.Point{X: d.coords[i], Y: d.coords[i+1]})
		}
		ed.PointerUp()
	case "text":
		ed.SetTool(editor.ToolText)
		ed.PointerDown(editor.Point{X: d.coords[0], Y: d.coords[1]})
		if ed.TextPending() == nil {
			return fmt.Errorf("text insertion did not start")
		}
		ed.CommitText(d.text)
	default:
		return fmt.Errorf("unhandled shape %q", d.shape)
	}
	return nil
}

func expectFloats(args []string, n int, shape string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d coordinate arguments", shape, n)
	}
	vals := make([]float64, n)
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// splitDrawArgs separates the command's own flags from shape positionals so
// negative coordinates are not mistaken for flags.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
