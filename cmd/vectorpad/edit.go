package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/svg"
	"github.com/example/vectorpad/internal/ui"
)

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

// editCmd opens a drawing in the interactive editor window. A missing file
// starts a fresh canvas that is written to the file on the first export.
type editCmd struct {
	file   string
	width  float64
	height float64
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func toolByName(name string) (editor.Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "select":
		return editor.ToolSelect, nil
	case "rect":
		return editor.ToolRect, nil
	case "circle":
		return editor.ToolCircle, nil
	case "line":
		return editor.ToolLine, nil
	case "pencil":
		return editor.ToolPencil, nil
	case "text":
		return editor.ToolText, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	c := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "drawing file to open or create (defaults to "+editor.ExportBaseName+svg.Ext+")")
	fs.Float64Var(&c.width, "width", 0, "canvas width for a new drawing in pixels")
	fs.Float64Var(&c.height, "height", 0, "canvas height for a new drawing in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() == 1 {
		if c.file != "" {
			return nil, &UsageError{of: c}
		}
		c.file = fs.Arg(0)
	}
	if c.file == "" {
		c.file = editor.ExportBaseName + svg.Ext
	}
	return c, nil
}

func (c *editCmd) Run() error {
	doc, err := c.openOrCreate()
	if err != nil {
		return err
	}

	style := editor.DefaultStyle()
	defaults := c.root.config.Editor
	if defaults.Stroke != "" {
		style.Stroke = defaults.Stroke
	}
	if defaults.Fill != "" {
		style.Fill = defaults.Fill
	}
	if defaults.StrokeWidth > 0 {
		style.StrokeWidth = defaults.StrokeWidth
	}
	tool, err := toolByName(defaults.Tool)
	if err != nil {
		log.Printf("config: %v", err)
		tool = editor.ToolSelect
	}

	ui.EnsureStrokeColor(style.Stroke)
	ui.EnsureFillColor(style.Fill)
	ui.EnsureWidth(style.StrokeWidth)

	ed := editor.New(
		editor.WithDocument(doc),
		editor.WithTool(tool),
		editor.WithStyle(style),
	)
	u := ui.New(
		ui.WithEditor(ed),
		ui.WithTheme(c.root.activeTheme),
		ui.WithOutput(c.file),
		ui.WithNotifier(c.root.notifier),
	)
	u.Run()
	return nil
}

func (c *editCmd) openOrCreate() (*svg.Document, error) {
	f, err := os.Open(c.file)
	if err == nil {
		doc, perr := svg.Parse(f)
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing %q: %v", c.file, cerr)
		}
		if perr != nil {
			return nil, fmt.Errorf("open %s: %w", c.file, perr)
		}
		return doc, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	width, height := c.width, c.height
	defaults := c.root.config.Editor
	if width <= 0 {
		width = defaults.CanvasWidth
	}
	if height <= 0 {
		height = defaults.CanvasHeight
	}
	if width <= 0 {
		width = defaultCanvasWidth
	}
	if height <= 0 {
		height = defaultCanvasHeight
	}
	doc := svg.NewDocument(width, height)
	if defaults.Canvas != "" {
		doc.Theme = defaults.Canvas
	}
	return doc, nil
}
