package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/vectorpad/internal/render"
	"github.com/example/vectorpad/internal/svg"
)

// renderCmd rasterizes a drawing to a PNG file.
type renderCmd struct {
	file   string
	output string
	*root
	fs *flag.FlagSet
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "drawing file to rasterize")
	fs.StringVar(&c.output, "output", "", "output PNG path (defaults to the input with a .png extension)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" && fs.NArg() == 1 {
		c.file = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.file == "" {
		return nil, &UsageError{of: c}
	}
	if c.output == "" {
		c.output = strings.TrimSuffix(c.file, svg.Ext) + ".png"
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	doc, perr := svg.Parse(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", c.file, cerr)
	}
	if perr != nil {
		return fmt.Errorf("open %s: %w", c.file, perr)
	}

	rend := render.New(c.root.activeTheme)
	img := rend.Render(doc)

	out, err := os.Create(c.output)
	if err != nil {
		return err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Printf("error closing %q: %v", out.Name(), err)
		}
	}(out)
	if err := rend.EncodePNG(out, doc); err != nil {
		return fmt.Errorf("render %s: %w", c.file, err)
	}
	saved := c.output
	if abs, err := filepath.Abs(c.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "rendered %s\n", saved)
	if c.root != nil {
		c.root.notifyRender(filepath.Base(c.output), img)
	}
	return nil
}
