package emitter

import (
	"fmt"
	"html"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

// Output is one emitted file set plus the asset references the caller must
// populate before packaging when image emission is enabled.
type Output struct {
	Format Format
	Files  *FileMap
	Assets []Asset
}

// Emit renders the annotated screen trees into the file set of the chosen
// format. It is a pure function of its inputs: no shared state, safe to call
// concurrently.
func Emit(screens []*ast.Screen, format Format, opts Options) (*Output, error) {
	d, ok := descriptors[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if len(screens) == 0 {
		return nil, errors.New("no screens to emit")
	}

	e := &emission{
		screens: screens,
		opts:    opts,
		d:       d,
		files:   NewFileMap(),
	}
	return e.run()
}

// descriptor captures everything that differs between target formats. The
// engine owns traversal, positioning, escaping, and class assignment; the
// descriptor owns tag mapping, attribute syntax, and file scaffolding.
type descriptor struct {
	format Format

	// tagFor maps a classified node to its markup element.
	tagFor func(n *ast.Node, opts Options) tagSpec

	// classAttr names the CSS class attribute ("class" or "className").
	classAttr string

	// styleAttr renders the complete inline style attribute.
	styleAttr func(props []styleProp) string

	// escapeText escapes raw text for embedding in this target's markup.
	escapeText func(s string) string

	// rebase positions nodes relative to their nearest Card/Dialog ancestor
	// instead of the document origin.
	rebase bool

	// scaffold assembles the full file set from the rendered screen bodies.
	scaffold func(e *emission, screens []renderedScreen) error
}

// tagSpec describes the markup element for one node. Attribute strings arrive
// fully formatted (and escaped) by the descriptor's tag mapping.
type tagSpec struct {
	name  string
	void  bool
	attrs []string
	text  string // raw inner text; the engine escapes it
}

// renderedScreen is one screen's inner markup with its container metadata.
type renderedScreen struct {
	name   string
	class  string // per-screen appearance class, "" when styling is off
	width  float64
	height float64
	body   string
}

// emission carries the mutable state of a single Emit call.
type emission struct {
	screens []*ast.Screen
	opts    Options
	d       *descriptor

	files    *FileMap
	assets   []Asset
	rules    []cssRule
	seq      int
	baseFont string
}

func (e *emission) run() (*Output, error) {
	e.baseFont = dominantFont(e.screens)

	rendered := make([]renderedScreen, 0, len(e.screens))
	for _, s := range e.screens {
		rs := renderedScreen{name: s.Name(), width: s.Width, height: s.Height}
		if e.opts.IncludeStyles {
			if props := appearanceProps(s.Root); len(props) > 0 {
				rs.class = e.className(s.Root)
				e.rules = append(e.rules, cssRule{selector: "." + rs.class, props: props})
			}
		}
		rs.body = e.renderScreenBody(s)
		rendered = append(rendered, rs)
	}

	if err := e.d.scaffold(e, rendered); err != nil {
		return nil, err
	}
	return &Output{Format: e.d.format, Files: e.files, Assets: e.assets}, nil
}

// renderScreenBody renders the children of the screen root. The root itself
// becomes the screen container element, which the scaffold emits.
func (e *emission) renderScreenBody(s *ast.Screen) string {
	var b strings.Builder
	ancestors := []*ast.Node{s.Root}
	for _, c := range s.Root.Children {
		e.renderNode(&b, c, ancestors, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (e *emission) renderNode(b *strings.Builder, n *ast.Node, ancestors []*ast.Node, depth int) {
	spec := e.tagSpecFor(n)

	x, y := n.Layout.X, n.Layout.Y
	if e.d.rebase {
		if anc := nearestSurface(ancestors); anc != nil {
			x -= anc.Layout.X
			y -= anc.Layout.Y
		}
	}

	class := ""
	if e.opts.IncludeStyles {
		if props := appearanceProps(n); len(props) > 0 {
			class = e.className(n)
			e.rules = append(e.rules, cssRule{selector: "." + class, props: props})
		}
	}

	pad := strings.Repeat("  ", depth)
	b.WriteString(pad + "<" + spec.name)
	if class != "" {
		fmt.Fprintf(b, ` %s="%s"`, e.d.classAttr, class)
	}
	for _, a := range spec.attrs {
		b.WriteString(" " + a)
	}
	b.WriteString(" " + e.d.styleAttr(geometryProps(n, x, y)))

	if spec.void {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">")

	text := ""
	if spec.text != "" {
		text = e.d.escapeText(spec.text)
	}
	if len(n.Children) == 0 {
		b.WriteString(text + "</" + spec.name + ">\n")
		return
	}

	b.WriteString("\n")
	if text != "" {
		b.WriteString(pad + "  " + text + "\n")
	}
	for _, c := range n.Children {
		e.renderNode(b, c, append(ancestors, n), depth+1)
	}
	b.WriteString(pad + "</" + spec.name + ">\n")
}

// tagSpecFor resolves the element for a node. Leaf nodes with an image fill
// become img elements when image emission is on; everything else goes through
// the target's tag mapping.
func (e *emission) tagSpecFor(n *ast.Node) tagSpec {
	if e.opts.IncludeImages && n.Metadata.HasImage && len(n.Children) == 0 {
		path := assetPath(n)
		e.assets = append(e.assets, Asset{Path: path, NodeID: n.ID, ImageRef: imageRef(n)})
		return tagSpec{
			name: "img",
			void: true,
			attrs: []string{
				htmlAttr("src", path),
				htmlAttr("alt", n.Name),
			},
		}
	}
	return e.d.tagFor(n, e.opts)
}

// className assigns a stable, unique stylesheet class derived from the node
// name, falling back to the node type.
func (e *emission) className(n *ast.Node) string {
	base := kebabCase(n.Name)
	if base == "" {
		base = strings.ToLower(string(n.Type))
	}
	e.seq++
	return fmt.Sprintf("%s-%d", base, e.seq)
}

// stylesheet renders the accumulated rules behind the shared base rules.
func (e *emission) stylesheet() string {
	rules := append(baseRules(e.baseFont), e.rules...)
	return renderCSS(rules, e.opts.Minify)
}

func nearestSurface(ancestors []*ast.Node) *ast.Node {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Is(ast.CategoryCard) || ancestors[i].Is(ast.CategoryDialog) {
			return ancestors[i]
		}
	}
	return nil
}

// dominantFont picks the first font family the document resolves, used for the
// body font stack.
func dominantFont(screens []*ast.Screen) string {
	font := ""
	ast.WalkScreens(screens, func(n *ast.Node) bool {
		if font == "" && n.Styles.Text != nil && n.Styles.Text.FontFamily != "" {
			font = n.Styles.Text.FontFamily
		}
		return font == ""
	})
	if font == "" {
		font = "Roboto"
	}
	return font
}

func assetPath(n *ast.Node) string {
	id := strings.NewReplacer(":", "-", ";", "-", "/", "-").Replace(n.ID)
	if id == "" {
		id = "node"
	}
	return "assets/" + id + ".png"
}

func imageRef(n *ast.Node) string {
	for _, f := range n.Styles.Fills {
		if f.Type == "IMAGE" && f.ImageRef != "" {
			return f.ImageRef
		}
	}
	return ""
}

// htmlAttr formats one name="value" attribute with the value escaped.
func htmlAttr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

// escapeHTMLText escapes raw text for HTML documents.
func escapeHTMLText(s string) string {
	return html.EscapeString(s)
}

// escapeExprText escapes raw text for templates where braces carry expression
// syntax (JSX, Vue interpolation); braces become character references on top
// of standard HTML escaping.
func escapeExprText(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "{", "&#123;")
	s = strings.ReplaceAll(s, "}", "&#125;")
	return s
}

// descriptors is the closed registry of target formats, populated by the
// per-target files at init time.
var descriptors = map[Format]*descriptor{}

func register(d *descriptor) {
	descriptors[d.format] = d
}
