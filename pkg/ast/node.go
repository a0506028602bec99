// Package ast defines the Abstract Screen Tree: the uniform, fully resolved
// representation of one design document that the classifier and the code
// emitters operate on. It is unrelated to a programming-language syntax tree.
package ast

// NodeType is the closed set of node kinds that survive normalization.
type NodeType string

// The eight node types of the Abstract Screen Tree.
const (
	TypeFrame     NodeType = "FRAME"
	TypeText      NodeType = "TEXT"
	TypeRectangle NodeType = "RECTANGLE"
	TypeEllipse   NodeType = "ELLIPSE"
	TypeVector    NodeType = "VECTOR"
	TypeGroup     NodeType = "GROUP"
	TypeComponent NodeType = "COMPONENT"
	TypeInstance  NodeType = "INSTANCE"
)

// Node is one element of the Abstract Screen Tree. Children are kept in
// document order, which equals visual stacking order and must be preserved.
type Node struct {
	ID       string
	Type     NodeType
	Name     string
	Visible  bool
	Layout   Layout
	Styles   Styles
	Metadata Metadata
	Children []*Node

	// Classification is attached by the component classifier. It is a
	// non-authoritative annotation and never mutates geometry.
	Classification *Classification
}

// Layout holds node geometry in document units; one unit maps to one output pixel.
type Layout struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	Opacity  float64
}

// Styles carries the resolved visual attributes of a node. Fills and strokes
// keep their source order; color strings are already resolved to rgba(...)
// quadruples by the style resolver.
type Styles struct {
	Fills        []Paint
	Strokes      []Paint
	CornerRadius float64
	StrokeWeight float64
	Text         *TextStyle
}

// Paint is one resolved fill or stroke entry.
type Paint struct {
	Type     string // SOLID, IMAGE, GRADIENT_LINEAR, ...
	Color    string // rgba(...) for solid paints, empty otherwise
	Opacity  float64
	Visible  bool
	ImageRef string
}

// FirstSolid returns the first visible solid paint in the list, or nil.
// Paint stacking beyond the first entry is intentionally ignored throughout
// the pipeline; this is a documented simplification of the source format.
func FirstSolid(paints []Paint) *Paint {
	for i := range paints {
		if paints[i].Type == "SOLID" && paints[i].Visible && paints[i].Color != "" {
			return &paints[i]
		}
	}
	return nil
}

// Background returns the node's resolved background color, or "" when no
// visible solid fill exists.
func (s Styles) Background() string {
	if p := FirstSolid(s.Fills); p != nil {
		return p.Color
	}
	return ""
}

// BorderColor returns the node's resolved border color, or "" when no visible
// solid stroke exists.
func (s Styles) BorderColor() string {
	if p := FirstSolid(s.Strokes); p != nil {
		return p.Color
	}
	return ""
}

// TextStyle holds resolved typography. Absent source fields are already
// replaced with the configured defaults by the style resolver.
type TextStyle struct {
	FontFamily    string
	FontSize      float64
	FontWeight    float64
	TextAlign     string
	LetterSpacing float64
}

// Metadata carries the non-geometric attributes the classifier and emitters need.
type Metadata struct {
	TextContent string
	HasImage    bool
	IsComponent bool
}

// HasText reports whether the node itself carries text content.
func (n *Node) HasText() bool {
	return n.Metadata.TextContent != ""
}

// HasBackground reports whether a background color resolves for the node.
func (n *Node) HasBackground() bool {
	return n.Styles.Background() != ""
}

// Label returns the text used for generated component labels: the node's text
// content when present, otherwise its name.
func (n *Node) Label() string {
	if n.Metadata.TextContent != "" {
		return n.Metadata.TextContent
	}
	return n.Name
}

// Screen is a root node with explicit dimensions representing one navigable
// page of the design. A conversion always operates on an ordered list of at
// least one screen.
type Screen struct {
	Root   *Node
	Width  float64
	Height float64
}

// Name returns the screen's display name, falling back to its root node ID.
func (s *Screen) Name() string {
	if s.Root.Name != "" {
		return s.Root.Name
	}
	return s.Root.ID
}
