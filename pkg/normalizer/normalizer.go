// Package normalizer walks a raw design-document tree depth-first and builds
// the Abstract Screen Tree: one screen per top-level frame, each node carrying
// resolved styles. Nodes without visual content are filtered out; when the
// primary pass yields too few elements an aggressive fallback pass re-walks the
// raw tree with a lowered filter and merges its findings in reading order.
package normalizer

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/styles"
)

// ErrEmptyDesign is returned when neither the primary nor the fallback pass
// extracts a single element from the document.
var ErrEmptyDesign = errors.New("design document contains no extractable elements")

// WarningCode identifies a non-fatal diagnostic recorded during normalization.
type WarningCode string

const (
	// WarnDepthExceeded marks a branch truncated at the traversal depth bound.
	WarnDepthExceeded WarningCode = "depth_exceeded"

	// WarnLowYield marks a document whose primary pass fell under the yield
	// threshold and triggered aggressive extraction.
	WarnLowYield WarningCode = "low_yield"
)

// Warning is a diagnostic riding alongside a successful normalization result.
type Warning struct {
	Code    WarningCode
	NodeID  string
	Message string
}

func (w Warning) String() string {
	if w.NodeID == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (node %s): %s", w.Code, w.NodeID, w.Message)
}

// Result is the outcome of normalizing one document.
type Result struct {
	Screens  []*ast.Screen
	Warnings []Warning

	// Elements counts every node in every screen tree, screen roots included.
	Elements int
}

// Normalizer converts raw documents into screen trees under an explicit
// configuration. The zero value is not usable; construct with New.
type Normalizer struct {
	cfg config.Pipeline
}

// New returns a Normalizer for the given pipeline configuration. Zero or
// negative thresholds are replaced with defaults.
func New(cfg config.Pipeline) *Normalizer {
	return &Normalizer{cfg: cfg.Sanitize()}
}

// slot pairs a raw screen root with its normalized tree so the fallback pass
// can revisit raw subtrees whose primary normalization was filtered away.
type slot struct {
	raw  *figma.Node
	root *ast.Node
}

// Normalize builds the screen trees for a parsed document. It never fails on
// malformed or missing node fields; the only error condition is a document from
// which nothing at all can be extracted.
func (nz *Normalizer) Normalize(doc *figma.Document) (*Result, error) {
	res := &Result{}
	if doc == nil {
		return nil, ErrEmptyDesign
	}

	roots := doc.ScreenRoots()
	admitted := make(map[*figma.Node]bool)
	slots := make([]slot, 0, len(roots))
	for _, raw := range roots {
		slots = append(slots, slot{raw: raw, root: nz.normalize(raw, 1, res, admitted)})
	}

	total := 0
	for _, s := range slots {
		total += countTree(s.root)
	}
	if total < nz.cfg.LowYieldThreshold {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnLowYield,
			Message: fmt.Sprintf("primary pass yielded %d elements, running aggressive extraction", total),
		})
		for i := range slots {
			nz.aggressive(&slots[i], admitted)
		}
	}

	for _, s := range slots {
		if s.root == nil {
			continue
		}
		w, h := screenDims(s.root)
		res.Screens = append(res.Screens, &ast.Screen{Root: s.root, Width: w, Height: h})
	}
	if len(res.Screens) == 0 {
		return nil, ErrEmptyDesign
	}
	res.Elements = ast.CountNodes(res.Screens)
	return res, nil
}

// normalize converts one raw node and, depth permitting, its children. Returns
// nil when the node is hidden or fails the visual-content filter; the whole
// subtree is dropped with it. Admitted raw nodes are recorded so the fallback
// pass never contributes a node twice; tracking is by identity because raw
// documents are not guaranteed to carry node IDs.
func (nz *Normalizer) normalize(raw *figma.Node, depth int, res *Result, admitted map[*figma.Node]bool) *ast.Node {
	if !raw.IsVisible() || !nz.passesFilter(raw) {
		return nil
	}

	admitted[raw] = true
	node := nz.build(raw)
	if len(raw.Children) == 0 {
		return node
	}
	if depth >= nz.cfg.MaxDepth {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnDepthExceeded,
			NodeID:  raw.ID,
			Message: fmt.Sprintf("children beyond depth %d truncated", nz.cfg.MaxDepth),
		})
		return node
	}
	for i := range raw.Children {
		if child := nz.normalize(&raw.Children[i], depth+1, res, admitted); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// passesFilter applies the visual-content filter: a node survives if it has
// its own text, a resolvable fill or stroke color, or both dimensions strictly
// above the minimum visible size.
func (nz *Normalizer) passesFilter(raw *figma.Node) bool {
	if raw.Characters != "" {
		return true
	}
	if styles.HasResolvableColor(raw) {
		return true
	}
	b := raw.Bounds()
	return b.Width > nz.cfg.MinVisibleSize && b.Height > nz.cfg.MinVisibleSize
}

// build constructs the AST node for one raw node, without children.
func (nz *Normalizer) build(raw *figma.Node) *ast.Node {
	return &ast.Node{
		ID:      raw.ID,
		Type:    mapType(raw),
		Name:    raw.Name,
		Visible: true,
		Layout:  styles.ResolveLayout(raw),
		Styles:  styles.Resolve(raw, nz.cfg),
		Metadata: ast.Metadata{
			TextContent: raw.Characters,
			HasImage:    raw.HasImageFill(),
			IsComponent: raw.Type == "COMPONENT" || raw.Type == "INSTANCE",
		},
	}
}

// aggressive runs the fallback extraction over one screen slot: a flat,
// unbounded re-walk of the raw subtree admitting any visible node whose
// bounding-box area clears the minimal threshold. Contributed nodes cannot
// rely on meaningful document order, so they are sorted by ascending y then x
// to approximate reading order before being appended to the screen's children.
func (nz *Normalizer) aggressive(s *slot, admitted map[*figma.Node]bool) {
	var extra []*ast.Node
	flatWalk(s.raw, func(raw *figma.Node) {
		if raw == s.raw || admitted[raw] {
			return
		}
		if !raw.IsVisible() || raw.Bounds().Area() < nz.cfg.FallbackMinArea {
			return
		}
		extra = append(extra, nz.build(raw))
	})
	if len(extra) == 0 {
		return
	}

	sort.SliceStable(extra, func(i, j int) bool {
		a, b := extra[i].Layout, extra[j].Layout
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	if s.root == nil {
		s.root = nz.build(s.raw)
	}
	s.root.Children = append(s.root.Children, extra...)
}

func flatWalk(raw *figma.Node, fn func(*figma.Node)) {
	fn(raw)
	for i := range raw.Children {
		flatWalk(&raw.Children[i], fn)
	}
}

func countTree(n *ast.Node) int {
	if n == nil {
		return 0
	}
	total := 0
	ast.Walk(n, func(*ast.Node) bool {
		total++
		return true
	})
	return total
}

// screenDims returns the screen dimensions: the root's own bounds, or the
// extent of its children when the root carries no usable geometry (a common
// case for roots synthesized by the fallback pass).
func screenDims(root *ast.Node) (w, h float64) {
	w, h = root.Layout.Width, root.Layout.Height
	if w > 0 && h > 0 {
		return w, h
	}
	for _, c := range root.Children {
		if right := c.Layout.X + c.Layout.Width; right > w {
			w = right
		}
		if bottom := c.Layout.Y + c.Layout.Height; bottom > h {
			h = bottom
		}
	}
	return w, h
}

// mapType folds the open raw type vocabulary into the closed AST enum.
// Shape-like raw types collapse into VECTOR; nodes with no recognizable type
// are inferred from content.
func mapType(raw *figma.Node) ast.NodeType {
	switch raw.Type {
	case "FRAME":
		return ast.TypeFrame
	case "TEXT":
		return ast.TypeText
	case "RECTANGLE":
		return ast.TypeRectangle
	case "ELLIPSE":
		return ast.TypeEllipse
	case "VECTOR", "LINE", "STAR", "POLYGON", "REGULAR_POLYGON", "BOOLEAN_OPERATION":
		return ast.TypeVector
	case "GROUP":
		return ast.TypeGroup
	case "COMPONENT":
		return ast.TypeComponent
	case "INSTANCE":
		return ast.TypeInstance
	}
	if raw.Characters != "" {
		return ast.TypeText
	}
	if len(raw.Children) > 0 {
		return ast.TypeFrame
	}
	return ast.TypeRectangle
}
