package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

// styleProp is one CSS property with its value already carrying units.
type styleProp struct {
	name  string
	value string
}

// px formats a document-unit measurement as a pixel value with minimal digits.
func px(v float64) string {
	return num(v) + "px"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// geometryProps builds the inline positioning of one node at an already
// resolved (x, y). Geometry is always inline so the layout survives even when
// stylesheet generation is disabled.
func geometryProps(n *ast.Node, x, y float64) []styleProp {
	props := []styleProp{
		{"position", "absolute"},
		{"left", px(x)},
		{"top", px(y)},
		{"width", px(n.Layout.Width)},
		{"height", px(n.Layout.Height)},
	}
	if n.Layout.Rotation != 0 {
		props = append(props, styleProp{"transform", fmt.Sprintf("rotate(%sdeg)", num(n.Layout.Rotation))})
	}
	return props
}

// appearanceProps builds the class-level styling of one node. Text nodes use
// their first solid fill as text color, every other type as background color.
func appearanceProps(n *ast.Node) []styleProp {
	var props []styleProp

	if fill := n.Styles.Background(); fill != "" {
		if n.Type == ast.TypeText {
			props = append(props, styleProp{"color", fill})
		} else {
			props = append(props, styleProp{"background-color", fill})
		}
	}

	if n.HasText() && n.Styles.Text != nil {
		t := n.Styles.Text
		props = append(props,
			styleProp{"font-family", fontStack(t.FontFamily)},
			styleProp{"font-size", px(t.FontSize)},
			styleProp{"font-weight", num(t.FontWeight)},
			styleProp{"text-align", t.TextAlign},
		)
		if t.LetterSpacing != 0 {
			props = append(props, styleProp{"letter-spacing", px(t.LetterSpacing)})
		}
	}

	if bc := n.Styles.BorderColor(); bc != "" && n.Styles.StrokeWeight > 0 {
		props = append(props, styleProp{"border", fmt.Sprintf("%s solid %s", px(n.Styles.StrokeWeight), bc)})
	}

	switch {
	case n.Type == ast.TypeEllipse:
		props = append(props, styleProp{"border-radius", "50%"})
	case n.Styles.CornerRadius > 0:
		props = append(props, styleProp{"border-radius", px(n.Styles.CornerRadius)})
	}

	if n.Layout.Opacity < 1 {
		props = append(props, styleProp{"opacity", num(n.Layout.Opacity)})
	}
	return props
}

func fontStack(family string) string {
	if family == "" {
		return "system-ui, sans-serif"
	}
	return fmt.Sprintf("'%s', system-ui, -apple-system, sans-serif", family)
}

// cssRule is one selector with its declarations.
type cssRule struct {
	selector string
	props    []styleProp
}

// baseRules returns the target-independent stylesheet scaffolding shared by
// every format.
func baseRules(bodyFont string) []cssRule {
	return []cssRule{
		{"*", []styleProp{{"box-sizing", "border-box"}}},
		{"body", []styleProp{
			{"margin", "0"},
			{"font-family", fontStack(bodyFont)},
			{"background-color", "#f5f5f5"},
		}},
		{".screen", []styleProp{
			{"position", "relative"},
			{"margin", "0 auto"},
			{"overflow", "hidden"},
			{"background-color", "#ffffff"},
		}},
		{".screen-nav", []styleProp{
			{"position", "fixed"},
			{"left", "50%"},
			{"bottom", "16px"},
			{"transform", "translateX(-50%)"},
			{"display", "flex"},
			{"align-items", "center"},
			{"gap", "8px"},
		}},
		{".screen-nav button", []styleProp{
			{"padding", "4px 12px"},
			{"cursor", "pointer"},
		}},
	}
}

// renderCSS serializes rules in order. Minified output drops all whitespace
// between tokens.
func renderCSS(rules []cssRule, minify bool) string {
	var b strings.Builder
	for i, r := range rules {
		if minify {
			b.WriteString(r.selector)
			b.WriteByte('{')
			for _, p := range r.props {
				b.WriteString(p.name)
				b.WriteByte(':')
				b.WriteString(p.value)
				b.WriteByte(';')
			}
			b.WriteByte('}')
			continue
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.selector + " {\n")
		for _, p := range r.props {
			fmt.Fprintf(&b, "  %s: %s;\n", p.name, p.value)
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// minifyMarkup collapses indentation and newlines. Emitted markup and scripts
// are newline-safe by construction (no line comments, every statement
// terminated), so joining trimmed lines is sufficient.
func minifyMarkup(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "")
}

// indent prefixes every non-empty line of s with n two-space levels.
func indent(s string, n int) string {
	if s == "" {
		return s
	}
	prefix := strings.Repeat("  ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// kebabCase converts a node or component name to kebab-case for CSS class and
// package names. Case boundaries become hyphens; anything outside [a-z0-9-]
// is dropped.
func kebabCase(s string) string {
	var b strings.Builder
	prevLower := false
	prevDash := true // suppress a leading dash
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLower && !prevDash {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevLower = false
			prevDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevLower = r >= 'a' && r <= 'z'
			prevDash = false
		case r == ' ' || r == '_' || r == '-' || r == '/':
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
			prevLower = false
		}
	}
	return strings.TrimRight(b.String(), "-")
}
