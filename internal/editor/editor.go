package editor

import (
	"github.com/example/vectorpad/internal/svg"
)

// Tool selects the active drawing mode. Exactly one tool is active at a
// time and pointer gestures are dispatched on it.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRect
	ToolCircle
	ToolLine
	ToolPencil
	ToolText
)

// String returns the display name of the tool.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolLine:
		return "line"
	case ToolPencil:
		return "pencil"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// Point is a location in canvas coordinates.
type Point struct {
	X, Y float64
}

// Style holds the stroke color, fill color and stroke width read at shape
// creation time. Changing the style never retroactively affects shapes
// already in the document.
type Style struct {
	Stroke      string
	Fill        string
	StrokeWidth float64
}

// DefaultStyle returns the style used when nothing else is configured.
func DefaultStyle() Style {
	return Style{Stroke: "#000000", Fill: "#000000", StrokeWidth: 2}
}

// TextRequest is a pending request for text content. While one is
// outstanding the gesture state machine is frozen: no new shape can begin
// until the request is committed or cancelled.
type TextRequest struct {
	At Point
}

// Editor is the drawing engine. It owns the document, the gesture state and
// the selection set, and is driven synchronously from a single event loop;
// it performs no locking of its own.
type Editor struct {
	doc   *svg.Document
	tool  Tool
	style Style

	isDrawing  bool
	isDragging bool
	active     *svg.Node
	start      Point
	dragOffset Point
	pathPts    []Point

	selection   []*SelectionRecord
	textPending *TextRequest
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithDocument sets the document the editor operates on.
func WithDocument(d *svg.Document) Option { return func(e *Editor) { e.doc = d } }

// WithTool sets the initially active tool.
func WithTool(t Tool) Option { return func(e *Editor) { e.tool = t } }

// WithStyle sets the initial stroke/fill/width style.
func WithStyle(s Style) Option { return func(e *Editor) { e.style = s } }

// New creates an Editor with the provided options. A default 800x600
// document is created when none is supplied.
func New(opts ...Option) *Editor {
	e := &Editor{
		tool:  ToolSelect,
		style: DefaultStyle(),
	}
	for _, o := range opts {
		o(e)
	}
	if e.doc == nil {
		e.doc = svg.NewDocument(800, 600)
	}
	if e.style.StrokeWidth <= 0 {
		e.style.StrokeWidth = DefaultStyle().StrokeWidth
	}
	return e
}

// Document returns the scene graph the editor operates on.
func (e *Editor) Document() *svg.Document { return e.doc }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool. Any in-progress gesture is abandoned;
// the shape drawn so far stays in the document.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.isDrawing = false
	e.isDragging = false
	e.active = nil
	e.pathPts = nil
}

// Style returns the current creation-time style.
func (e *Editor) Style() Style { return e.style }

// SetStroke sets the stroke color for newly created shapes.
func (e *Editor) SetStroke(c string) { e.style.Stroke = c }

// SetFill sets the fill color for newly created shapes.
func (e *Editor) SetFill(c string) { e.style.Fill = c }

// SetStrokeWidth sets the stroke width for newly created shapes. Widths
// below one are clamped.
func (e *Editor) SetStrokeWidth(w float64) {
	if w < 1 {
		w = 1
	}
	e.style.StrokeWidth = w
}

// Drawing reports whether a pointer gesture is in progress.
func (e *Editor) Drawing() bool { return e.isDrawing }

// Dragging reports whether a select-tool drag session is in progress.
func (e *Editor) Dragging() bool { return e.isDragging }

// PointerDown begins a gesture at p: either a new shape for the drawing
// tools, a selection or drag for the select tool, or a text request for the
// text tool. It is a no-op while a text request is outstanding.
func (e *Editor) PointerDown(p Point) {
	if e.textPending != nil {
		return
	}
	e.start = p
	e.isDrawing = true
	switch e.tool {
	case ToolSelect:
		e.beginSelect(p)
	case ToolRect:
		e.createRect(p)
	case ToolCircle:
		e.createCircle(p)
	case ToolLine:
		e.createLine(p)
	case ToolPencil:
		e.createPath(p)
	case ToolText:
		e.isDrawing = false
		e.textPending = &TextRequest{At: p}
	}
}

// PointerMove continues the gesture. It is a no-op unless a gesture is in
// progress, and every update is a no-op when the gesture failed to produce
// an active shape.
func (e *Editor) PointerMove(p Point) {
	if !e.isDrawing {
		return
	}
	switch e.tool {
	case ToolSelect:
		if e.isDragging {
			e.DragSelected(p)
		}
	case ToolRect:
		e.updateRect(p)
	case ToolCircle:
		e.updateCircle(p)
	case ToolLine:
		e.updateLine(p)
	case ToolPencil:
		e.updatePath(p)
	}
}

// PointerUp ends the gesture. For the pencil the accumulated point buffer
// is discarded while the path stays in the document: the stroke commits on
// release.
func (e *Editor) PointerUp() {
	e.isDrawing = false
	e.isDragging = false
	e.active = nil
	if e.tool == ToolPencil {
		e.pathPts = nil
	}
}

// PointerLeave is treated exactly like PointerUp so a pointer leaving the
// canvas with a button held cannot leave a stuck drawing session.
func (e *Editor) PointerLeave() { e.PointerUp() }
