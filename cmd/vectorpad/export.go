package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/example/vectorpad/internal/clipboard"
	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/svg"
)

// exportCmd round-trips a drawing through the scene graph: the output is the
// editor's own normalized serialization of the input, optionally under the
// configured export directory or on the clipboard.
type exportCmd struct {
	file        string
	output      string
	toClipboard bool
	*root
	fs *flag.FlagSet
}

func (c *exportCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *exportCmd) Template() string {
	return "export.txt"
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	c := &exportCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "drawing file to export")
	fs.StringVar(&c.output, "output", "", "output path (defaults to the export directory or the input file)")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the markup to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the markup to the clipboard (alias)")
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
		if dir := r.config.ExportDir; dir != "" {
			c.output = filepath.Join(dir, filepath.Base(c.file))
		} else {
			c.output = c.file
		}
	}
	return c, nil
}

func (c *exportCmd) Run() error {
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

	ed := editor.New(editor.WithDocument(doc))
	if err := ed.ExportFile(c.output); err != nil {
		return err
	}
	saved := c.output
	if abs, err := filepath.Abs(c.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", saved)
	if c.root != nil {
		c.root.notifyExport(saved)
	}
	if c.toClipboard {
		if err := clipboard.WriteText(doc.Serialize()); err != nil {
			return fmt.Errorf("copy markup to clipboard: %w", err)
		}
		if c.root != nil {
			c.root.notifyCopy(filepath.Base(c.output))
		}
	}
	return nil
}

// undoCmd removes the most recently added shape from a drawing file.
type undoCmd struct {
	file   string
	output string
	*root
	fs *flag.FlagSet
}

func (c *undoCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *undoCmd) Template() string {
	return "undo.txt"
}

func parseUndoCmd(args []string, r *root) (*undoCmd, error) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	c := &undoCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "drawing file to modify")
	fs.StringVar(&c.output, "output", "", "output path (defaults to the input file)")
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
		c.output = c.file
	}
	return c, nil
}

func (c *undoCmd) Run() error {
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

	ed := editor.New(editor.WithDocument(doc))
	n := ed.Undo()
	if n == nil {
		fmt.Fprintln(os.Stderr, "nothing to undo")
		return nil
	}
	if err := ed.ExportFile(c.output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "removed %s\n", n.Kind)
	return nil
}
