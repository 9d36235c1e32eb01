package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Ext is the file extension for exported documents.
const Ext = ".svg"

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}

// WriteTo serializes the document as a self-contained SVG file: same
// geometry, styles and stacking order as the scene graph.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" data-theme="%s">`+"\n",
		num(d.Width), num(d.Height), escape(d.Theme))
	for _, n := range d.nodes {
		writeNode(&sb, n, 1)
	}
	sb.WriteString("</svg>\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Serialize returns the document markup as a string.
func (d *Document) Serialize() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(n.Kind.String())
	fmt.Fprintf(sb, ` id="%s"`, escape(n.ID))

	switch n.Kind {
	case KindRect:
		if n.SizeToCanvas {
			sb.WriteString(` width="100%" height="100%"`)
		} else {
			fmt.Fprintf(sb, ` x="%s" y="%s" width="%s" height="%s"`, num(n.X), num(n.Y), num(n.Width), num(n.Height))
		}
	case KindCircle:
		fmt.Fprintf(sb, ` cx="%s" cy="%s" r="%s"`, num(n.CX), num(n.CY), num(n.R))
	case KindLine:
		fmt.Fprintf(sb, ` x1="%s" y1="%s" x2="%s" y2="%s"`, num(n.X1), num(n.Y1), num(n.X2), num(n.Y2))
	case KindPath:
		fmt.Fprintf(sb, ` d="%s"`, escape(n.D))
	case KindText:
		fmt.Fprintf(sb, ` x="%s" y="%s" font-size="%s"`, num(n.X), num(n.Y), num(n.FontSize))
	case KindPattern:
		fmt.Fprintf(sb, ` width="%s" height="%s" patternUnits="userSpaceOnUse"`, num(n.Width), num(n.Height))
	}

	if n.Fill != "" {
		fmt.Fprintf(sb, ` fill="%s"`, escape(n.Fill))
	}
	if n.Stroke != "" {
		fmt.Fprintf(sb, ` stroke="%s"`, escape(n.Stroke))
	}
	if n.StrokeWidth > 0 {
		fmt.Fprintf(sb, ` stroke-width="%s"`, num(n.StrokeWidth))
	}
	if n.LineCap != "" {
		fmt.Fprintf(sb, ` stroke-linecap="%s"`, escape(n.LineCap))
	}
	if n.LineJoin != "" {
		fmt.Fprintf(sb, ` stroke-linejoin="%s"`, escape(n.LineJoin))
	}
	if len(n.Classes) > 0 {
		fmt.Fprintf(sb, ` class="%s"`, escape(strings.Join(n.Classes, " ")))
	}
	if n.Filter != "" {
		fmt.Fprintf(sb, ` filter="%s"`, escape(n.Filter))
	}

	switch {
	case n.Kind == KindText:
		sb.WriteByte('>')
		sb.WriteString(escape(n.Content))
		sb.WriteString("</text>\n")
	case len(n.Children) > 0:
		sb.WriteString(">\n")
		for _, c := range n.Children {
			writeNode(sb, c, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString("</")
		sb.WriteString(n.Kind.String())
		sb.WriteString(">\n")
	default:
		sb.WriteString("/>\n")
	}
}

// Parse reads a document previously produced by WriteTo. Only the subset of
// SVG this program emits is understood; unknown elements and attributes are
// skipped rather than rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	var doc *Document
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "svg" {
				doc = &Document{Theme: "light", index: make(map[string]*Node)}
				for _, a := range t.Attr {
					switch a.Name.Local {
					case "width":
						doc.Width, _ = strconv.ParseFloat(a.Value, 64)
					case "height":
						doc.Height, _ = strconv.ParseFloat(a.Value, 64)
					case "data-theme":
						doc.Theme = a.Value
					}
				}
				continue
			}
			if doc == nil {
				return nil, fmt.Errorf("parse svg: root element is not <svg>")
			}
			n, ok := parseElement(t)
			if !ok {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("parse svg: %w", err)
				}
				continue
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].Kind == KindText {
				stack[len(stack)-1].Content += string(t)
			}
		case xml.EndElement:
			if t.Name.Local == "svg" || len(stack) == 0 {
				continue
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				doc.append(n)
			}
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("parse svg: no <svg> element")
	}
	return doc, nil
}

func parseElement(t xml.StartElement) (*Node, bool) {
	var kind Kind
	switch t.Name.Local {
	case "rect":
		kind = KindRect
	case "circle":
		kind = KindCircle
	case "line":
		kind = KindLine
	case "path":
		kind = KindPath
	case "text":
		kind = KindText
	case "g":
		kind = KindGroup
	case "defs":
		kind = KindDefs
	case "pattern":
		kind = KindPattern
	default:
		return nil, false
	}
	n := &Node{Kind: kind}
	for _, a := range t.Attr {
		v := a.Value
		switch a.Name.Local {
		case "id":
			n.ID = v
		case "x":
			n.X, _ = strconv.ParseFloat(v, 64)
		case "y":
			n.Y, _ = strconv.ParseFloat(v, 64)
		case "width":
			if v == "100%" {
				n.SizeToCanvas = true
			} else {
				n.Width, _ = strconv.ParseFloat(v, 64)
			}
		case "height":
			if v != "100%" {
				n.Height, _ = strconv.ParseFloat(v, 64)
			}
		case "cx":
			n.CX, _ = strconv.ParseFloat(v, 64)
		case "cy":
			n.CY, _ = strconv.ParseFloat(v, 64)
		case "r":
			n.R, _ = strconv.ParseFloat(v, 64)
		case "x1":
			n.X1, _ = strconv.ParseFloat(v, 64)
		case "y1":
			n.Y1, _ = strconv.ParseFloat(v, 64)
		case "x2":
			n.X2, _ = strconv.ParseFloat(v, 64)
		case "y2":
			n.Y2, _ = strconv.ParseFloat(v, 64)
		case "d":
			n.D = v
		case "font-size":
			n.FontSize, _ = strconv.ParseFloat(v, 64)
		case "fill":
			n.Fill = v
		case "stroke":
			n.Stroke = v
		case "stroke-width":
			n.StrokeWidth, _ = strconv.ParseFloat(v, 64)
		case "stroke-linecap":
			n.LineCap = v
		case "stroke-linejoin":
			n.LineJoin = v
		case "class":
			if v != "" {
				n.Classes = strings.Fields(v)
			}
		case "filter":
			n.Filter = v
		}
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return n, true
}
