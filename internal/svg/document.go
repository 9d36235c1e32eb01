package svg

// GridPatternID is the id of the background grid pattern definition. The
// background plate references it through its fill, which is also what the
// editor uses to classify the plate as structural.
const GridPatternID = "canvas-grid"

const gridCell = 20

// Document is the scene graph: an ordered list of top-level nodes (insertion
// order is stacking order) plus an id index. The first two nodes are always
// structural: the defs container holding the grid pattern and the background
// plate that tiles it.
type Document struct {
	Width, Height float64

	// Theme is a document-level presentation attribute. It does not affect
	// the drawing model.
	Theme string

	nodes []*Node
	index map[string]*Node
}

// NewDocument creates a document of the given size with the grid scaffolding
// in place.
func NewDocument(width, height float64) *Document {
	d := &Document{
		Width:  width,
		Height: height,
		Theme:  "light",
		index:  make(map[string]*Node),
	}

	pattern := NewNode(KindPattern)
	pattern.ID = GridPatternID
	pattern.Width = gridCell
	pattern.Height = gridCell
	cell := NewNode(KindPath)
	cell.D = "M 20 0 L 0 0 0 20"
	cell.Fill = "none"
	cell.Stroke = "#e0e0e0"
	cell.StrokeWidth = 1
	pattern.Children = []*Node{cell}

	defs := NewNode(KindDefs)
	defs.Children = []*Node{pattern}

	plate := NewNode(KindRect)
	plate.SizeToCanvas = true
	plate.Fill = "url(#" + GridPatternID + ")"

	d.append(defs)
	d.append(plate)
	return d
}

func (d *Document) append(n *Node) {
	d.nodes = append(d.nodes, n)
	d.index[n.ID] = n
	for _, c := range n.Children {
		d.index[c.ID] = c
	}
}

// Append adds a node on top of the stacking order.
func (d *Document) Append(n *Node) {
	if n == nil {
		return
	}
	d.append(n)
}

// Lookup returns the node with the given id, or nil.
func (d *Document) Lookup(id string) *Node {
	return d.index[id]
}

// Nodes returns the top-level nodes in stacking order. The slice is a copy;
// the nodes are shared.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Primitives returns the user-created shapes in stacking order, skipping
// structural scaffolding.
func (d *Document) Primitives() []*Node {
	var out []*Node
	for _, n := range d.nodes {
		if n.IsPrimitive() {
			out = append(out, n)
		}
	}
	return out
}

// Remove deletes the node with the given id from the top level. Structural
// nodes cannot be removed this way. Reports whether a node was removed.
func (d *Document) Remove(id string) bool {
	for i, n := range d.nodes {
		if n.ID != id || !n.IsPrimitive() {
			continue
		}
		d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
		delete(d.index, id)
		return true
	}
	return false
}

// RemoveLast pops the most recently appended primitive, returning it, or nil
// when only scaffolding remains.
func (d *Document) RemoveLast() *Node {
	for i := len(d.nodes) - 1; i >= 0; i-- {
		n := d.nodes[i]
		if !n.IsPrimitive() {
			continue
		}
		d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
		delete(d.index, n.ID)
		return n
	}
	return nil
}

// Clear removes every primitive. The grid scaffolding stays so the canvas
// remains renderable.
func (d *Document) Clear() {
	kept := d.nodes[:0]
	for _, n := range d.nodes {
		if n.IsPrimitive() {
			delete(d.index, n.ID)
			continue
		}
		kept = append(kept, n)
	}
	d.nodes = kept
}
