package figma

import (
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrInputShape indicates the raw document matched none of the recognized input
// shapes. It is fatal and surfaced verbatim to the caller; nothing is retried.
var ErrInputShape = errors.New("unrecognized design document shape")

// Document is a parsed raw design document: an ordered list of top-level nodes,
// independent of which API shape delivered them.
type Document struct {
	Name  string
	Roots []Node
}

// ParseDocument decodes a raw design document from JSON. Three shapes are
// recognized, tried in order:
//
//  1. a file API response: {"document": {"children": [...]}}
//  2. a bare node wrapper: {"children": [...]}
//  3. a by-id node map: {"nodes": {"<id>": {"document": ...}}} or the map itself
//     keyed by node ID
//
// Map-shaped input is ordered by ascending node ID so repeated parses of the
// same document always yield the same root order. Input matching none of the
// shapes fails with ErrInputShape.
func ParseDocument(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(ErrInputShape, "document is not a JSON object")
	}

	doc := &Document{}
	if raw, ok := probe["name"]; ok {
		// Best effort; a malformed name never fails the parse.
		_ = json.Unmarshal(raw, &doc.Name)
	}

	if raw, ok := probe["document"]; ok {
		var root Node
		if err := json.Unmarshal(raw, &root); err != nil {
			return nil, errors.Wrap(ErrInputShape, "document field is not a node")
		}
		doc.Roots = rootsOf(root)
		return doc, nil
	}

	if raw, ok := probe["children"]; ok {
		var children []Node
		if err := json.Unmarshal(raw, &children); err != nil {
			return nil, errors.Wrap(ErrInputShape, "children field is not a node list")
		}
		doc.Roots = children
		return doc, nil
	}

	if raw, ok := probe["nodes"]; ok {
		var nodes map[string]NodeData
		if err := json.Unmarshal(raw, &nodes); err != nil {
			return nil, errors.Wrap(ErrInputShape, "nodes field is not a node map")
		}
		doc.Roots = orderedNodeDocs(nodes)
		return doc, nil
	}

	// Last resort: the object itself may be a node map keyed by ID.
	if roots, ok := bareNodeMap(probe); ok {
		doc.Roots = roots
		return doc, nil
	}

	return nil, errors.Wrap(ErrInputShape, "no document, children, or node map found")
}

// rootsOf unwraps a document root: its children when present, otherwise the
// node itself (a single-frame document).
func rootsOf(root Node) []Node {
	if len(root.Children) > 0 || root.Type == "DOCUMENT" {
		return root.Children
	}
	return []Node{root}
}

// orderedNodeDocs flattens a by-id node map into a deterministic slice,
// ascending by node ID.
func orderedNodeDocs(nodes map[string]NodeData) []Node {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	roots := make([]Node, 0, len(ids))
	for _, id := range ids {
		roots = append(roots, nodes[id].Document)
	}
	return roots
}

// bareNodeMap interprets the probed object as {"<id>": {"document": ...}}.
// It qualifies only if every value is an object and at least one carries a
// document; anything else is not a recognized shape.
func bareNodeMap(probe map[string]json.RawMessage) ([]Node, bool) {
	if len(probe) == 0 {
		return nil, false
	}

	nodes := make(map[string]NodeData, len(probe))
	found := false
	for id, raw := range probe {
		var nd NodeData
		if err := json.Unmarshal(raw, &nd); err != nil {
			return nil, false
		}
		if nd.Document.ID != "" || nd.Document.Type != "" || len(nd.Document.Children) > 0 {
			found = true
		}
		nodes[id] = nd
	}
	if !found {
		return nil, false
	}
	return orderedNodeDocs(nodes), true
}

// ScreenRoots returns the screen candidates of the document in order:
// page-level containers (DOCUMENT, CANVAS, PAGE) are descended through, every
// other top-level node is one navigable screen.
func (d *Document) ScreenRoots() []*Node {
	var roots []*Node
	var collect func(nodes []Node)
	collect = func(nodes []Node) {
		for i := range nodes {
			n := &nodes[i]
			switch n.Type {
			case "DOCUMENT", "CANVAS", "PAGE":
				collect(n.Children)
			default:
				roots = append(roots, n)
			}
		}
	}
	collect(d.Roots)
	return roots
}

// AsDocument converts a file API response into a Document.
func (fr *FileResponse) AsDocument() *Document {
	return &Document{
		Name:  fr.Name,
		Roots: rootsOf(fr.Document),
	}
}

// AsDocument converts a nodes API response into a Document, ordered by node ID.
func (nr *NodesResponse) AsDocument() *Document {
	return &Document{
		Name:  nr.Name,
		Roots: orderedNodeDocs(nr.Nodes),
	}
}
