package svg

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the shape variant of a Node. Geometry dispatch throughout
// the editor switches on this closed set so adding a shape kind is an
// exhaustive change.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindLine
	KindPath
	KindText
	KindGroup
	KindDefs
	KindPattern
)

// String returns the SVG element name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindGroup:
		return "g"
	case KindDefs:
		return "defs"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Node is one record in the document arena. Geometry fields are valid
// according to Kind: rect and text use X/Y (plus Width/Height for rect),
// circle uses CX/CY/R, line uses X1/Y1/X2/Y2 and path keeps its command
// string in D. Style values are baked in at creation time.
type Node struct {
	ID   string
	Kind Kind

	X, Y          float64
	Width, Height float64
	CX, CY, R     float64
	X1, Y1        float64
	X2, Y2        float64
	D             string
	Content       string
	FontSize      float64

	// Fill and Stroke are SVG paint values: a #RRGGBB color, "none", or a
	// url(#id) reference for pattern fills.
	Fill        string
	Stroke      string
	StrokeWidth float64
	LineCap     string
	LineJoin    string

	// SizeToCanvas marks structural nodes serialized with width/height of
	// 100%, such as the background plate that carries the grid pattern.
	SizeToCanvas bool

	Classes []string
	Filter  string

	Children []*Node
}

// NewNode creates a node of the given kind with a fresh identifier.
func NewNode(kind Kind) *Node {
	return &Node{ID: uuid.NewString(), Kind: kind}
}

// AddClass appends a class name if the node does not already carry it.
func (n *Node) AddClass(name string) {
	if n == nil || slices.Contains(n.Classes, name) {
		return
	}
	n.Classes = append(n.Classes, name)
}

// RemoveClass drops a class name; absent names are ignored.
func (n *Node) RemoveClass(name string) {
	if n == nil {
		return
	}
	n.Classes = slices.DeleteFunc(n.Classes, func(c string) bool { return c == name })
}

// HasClass reports whether the node carries the class name.
func (n *Node) HasClass(name string) bool {
	return n != nil && slices.Contains(n.Classes, name)
}

// IsPrimitive reports whether the node is a drawable shape a user created,
// as opposed to structural scaffolding such as the grid pattern, the
// background plate, or a defs container. Structural nodes must never be
// selectable or draggable.
func (n *Node) IsPrimitive() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindRect, KindCircle, KindLine, KindPath, KindText:
	default:
		return false
	}
	if n.SizeToCanvas {
		return false
	}
	if strings.Contains(n.Fill, "url(#") {
		return false
	}
	return true
}
