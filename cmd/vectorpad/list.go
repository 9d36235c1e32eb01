package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/vectorpad/internal/ui"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	printPalette("stroke colors", ui.StrokePalette())
	fmt.Fprintln(os.Stdout)
	printPalette("fill colors", ui.FillPalette())
	return nil
}

func printPalette(heading string, palette []ui.PaletteColor) {
	fmt.Fprintf(os.Stdout, "available %s:\n", heading)
	for idx, entry := range palette {
		name := entry.Name
		if name == "" {
			name = entry.Paint
		}
		if entry.Paint == "none" {
			fmt.Fprintf(os.Stdout, "  %2d: %-12s %s\n", idx, name, entry.Paint)
			continue
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(os.Stdout, "  %2d: %-12s %s %s\n", idx, name, entry.Paint, block)
	}
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	widths := ui.WidthOptions()
	if len(widths) == 0 {
		fmt.Fprintln(os.Stdout, "no widths available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available stroke widths:")
	for idx, width := range widths {
		fmt.Fprintf(os.Stdout, "  %2d: %gpx\n", idx, width)
	}
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *widthsCmd) Template() string {
	return "widths.txt"
}
