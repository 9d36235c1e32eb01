package editor

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/example/vectorpad/internal/svg"
)

// ExportBaseName is the filename, without extension, used for exported
// documents.
const ExportBaseName = "drawing"

// Clear removes every primitive from the document and empties the selection
// set. Any in-progress gesture loses its shape with the rest.
func (e *Editor) Clear() {
	e.doc.Clear()
	e.selection = nil
	e.active = nil
	e.pathPts = nil
}

// Undo removes the most recently inserted primitive. There is no redo and
// no grouping of multi-step operations. A selection record pointing at the
// removed node is purged so the set never references a shape outside the
// document. Undo on an empty canvas is a no-op.
func (e *Editor) Undo() *svg.Node {
	n := e.doc.RemoveLast()
	if n == nil {
		return nil
	}
	kept := e.selection[:0]
	for _, rec := range e.selection {
		if rec.ID == n.ID {
			continue
		}
		kept = append(kept, rec)
	}
	e.selection = kept
	if len(e.selection) == 0 {
		e.selection = nil
	}
	return n
}

// ToggleTheme flips the document between light and dark and returns the new
// value. Purely cosmetic; the drawing model is untouched.
func (e *Editor) ToggleTheme() string {
	if e.doc.Theme == "dark" {
		e.doc.Theme = "light"
	} else {
		e.doc.Theme = "dark"
	}
	return e.doc.Theme
}

// ExportTo writes the serialized document to w.
func (e *Editor) ExportTo(w io.Writer) error {
	_, err := e.doc.WriteTo(w)
	return err
}

// ExportFile writes the document to path, creating or truncating it.
func (e *Editor) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := e.ExportTo(f); err != nil {
		if cerr := f.Close(); cerr != nil {
			log.Printf("export: closing %q: %v", path, cerr)
		}
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: closing %q: %w", path, err)
	}
	return nil
}
