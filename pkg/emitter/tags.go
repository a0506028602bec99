package emitter

import (
	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

// category returns the node's classification category, treating unannotated
// nodes as generic containers.
func category(n *ast.Node) ast.Category {
	if n.Classification == nil {
		return ast.CategoryContainer
	}
	return n.Classification.Category
}

// prop reads a typed classification prop with a fallback.
func prop[T any](n *ast.Node, key string, fallback T) T {
	if n.Classification == nil {
		return fallback
	}
	v, ok := n.Classification.Props[key]
	if !ok {
		return fallback
	}
	t, ok := v.(T)
	if !ok {
		return fallback
	}
	return t
}

// intrinsicTag maps a node to a plain HTML element. The html, react, and vue
// targets all share this mapping; only attribute syntax differs between them.
// Nodes with children never map to void elements, so no subtree is lost to a
// self-closing tag.
func intrinsicTag(n *ast.Node, _ Options) tagSpec {
	if len(n.Children) > 0 {
		switch category(n) {
		case ast.CategoryTextField, ast.CategoryCheckbox, ast.CategoryToggle,
			ast.CategoryRadioButton, ast.CategorySlider:
			spec := tagSpec{name: "div"}
			if n.HasText() {
				spec.text = n.Metadata.TextContent
			}
			return spec
		}
	}
	switch category(n) {
	case ast.CategoryButton:
		return tagSpec{name: "button", text: n.Label()}
	case ast.CategoryTypography:
		return tagSpec{name: typographyTag(n), text: n.Metadata.TextContent}
	case ast.CategoryTextField:
		return tagSpec{name: "input", void: true, attrs: []string{
			htmlAttr("type", "text"),
			htmlAttr("placeholder", prop(n, "placeholder", n.Name)),
		}}
	case ast.CategoryCheckbox, ast.CategoryToggle:
		return tagSpec{name: "input", void: true, attrs: []string{htmlAttr("type", "checkbox")}}
	case ast.CategoryRadioButton:
		return tagSpec{name: "input", void: true, attrs: []string{htmlAttr("type", "radio")}}
	case ast.CategorySlider:
		return tagSpec{name: "input", void: true, attrs: []string{
			htmlAttr("type", "range"),
			htmlAttr("min", "0"),
			htmlAttr("max", "100"),
		}}
	case ast.CategoryIcon:
		return tagSpec{name: "span", attrs: []string{htmlAttr("aria-hidden", "true")}}
	case ast.CategoryChip:
		return tagSpec{name: "span", text: n.Label()}
	case ast.CategoryTab:
		return tagSpec{name: "button", text: n.Label()}
	default:
		// Card, Dialog, List, Container: a positioned block with children.
		spec := tagSpec{name: "div"}
		if n.HasText() {
			spec.text = n.Metadata.TextContent
		}
		return spec
	}
}

// typographyTag picks the heading level from the typography variant; body text
// becomes a paragraph.
func typographyTag(n *ast.Node) string {
	switch prop(n, "variant", "body1") {
	case "h3":
		return "h3"
	case "h4":
		return "h4"
	case "h5":
		return "h5"
	case "h6":
		return "h6"
	default:
		return "p"
	}
}
