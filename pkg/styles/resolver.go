// Package styles resolves raw node paint, typography, and border attributes
// into the concrete values carried on the Abstract Screen Tree. Every function
// is pure: absent source fields resolve to the configured defaults and never
// raise.
package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// RGBA converts a fractional color to the rgba(r, g, b, a) quadruple used in
// emitted stylesheets: channels rounded to 0-255 integers, alpha printed with
// minimal digits. {1, 0, 0, 1} becomes "rgba(255, 0, 0, 1)".
func RGBA(c *figma.Color) string {
	if c == nil {
		return ""
	}
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.A))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// ResolvePaint converts one raw paint entry. Non-color paints (gradients,
// images) keep their type and reference but resolve no color string.
func ResolvePaint(p figma.Paint) ast.Paint {
	out := ast.Paint{
		Type:     p.Type,
		Visible:  p.IsVisible(),
		Opacity:  1,
		ImageRef: p.ImageRef,
	}
	if p.Opacity != nil {
		out.Opacity = *p.Opacity
	}
	if p.Type == "SOLID" && p.Color != nil {
		out.Color = RGBA(p.Color)
	}
	return out
}

// ResolvePaints converts a raw paint list, preserving order. Stacked paints
// beyond the first solid entry are carried through but never consulted; see
// ast.FirstSolid.
func ResolvePaints(paints []figma.Paint) []ast.Paint {
	if len(paints) == 0 {
		return nil
	}
	out := make([]ast.Paint, 0, len(paints))
	for _, p := range paints {
		out = append(out, ResolvePaint(p))
	}
	return out
}

// FirstSolidColor returns the resolved color of the first visible solid paint
// in a raw list, or "" when none resolves.
func FirstSolidColor(paints []figma.Paint) string {
	for i := range paints {
		p := &paints[i]
		if p.Type == "SOLID" && p.IsVisible() && p.Color != nil {
			return RGBA(p.Color)
		}
	}
	return ""
}

// HasResolvableColor reports whether a fill or stroke color resolves for the
// raw node. The node background color counts; it behaves as an implicit fill.
func HasResolvableColor(n *figma.Node) bool {
	if FirstSolidColor(n.Fills) != "" || FirstSolidColor(n.Strokes) != "" {
		return true
	}
	return n.BackgroundColor != nil
}

// ResolveText extracts typography for a node, applying the configured defaults
// for any absent field: fallback font family, size 14, weight 400. Nodes with
// neither characters nor a type style resolve to nil.
func ResolveText(n *figma.Node, cfg config.Pipeline) *ast.TextStyle {
	if n.Characters == "" && n.Style == nil {
		return nil
	}

	ts := &ast.TextStyle{
		FontFamily: cfg.FallbackFontFamily,
		FontSize:   cfg.DefaultFontSize,
		FontWeight: cfg.DefaultFontWeight,
		TextAlign:  "left",
	}
	if n.Style == nil {
		return ts
	}

	if n.Style.FontFamily != "" {
		ts.FontFamily = n.Style.FontFamily
	}
	if n.Style.FontSize > 0 {
		ts.FontSize = n.Style.FontSize
	}
	if n.Style.FontWeight > 0 {
		ts.FontWeight = n.Style.FontWeight
	}
	if n.Style.TextAlignHorizontal != "" {
		ts.TextAlign = cssTextAlign(n.Style.TextAlignHorizontal)
	}
	ts.LetterSpacing = n.Style.LetterSpacing
	return ts
}

func cssTextAlign(align string) string {
	if align == "JUSTIFIED" {
		return "justify"
	}
	return strings.ToLower(align)
}

// Resolve builds the full resolved style bundle for a raw node. A background
// color on the node itself is appended after explicit fills so the explicit
// list keeps precedence.
func Resolve(n *figma.Node, cfg config.Pipeline) ast.Styles {
	s := ast.Styles{
		Fills:        ResolvePaints(n.Fills),
		Strokes:      ResolvePaints(n.Strokes),
		CornerRadius: n.CornerRadius,
		StrokeWeight: n.StrokeWeight,
		Text:         ResolveText(n, cfg),
	}
	if n.BackgroundColor != nil {
		s.Fills = append(s.Fills, ast.Paint{
			Type:    "SOLID",
			Color:   RGBA(n.BackgroundColor),
			Opacity: 1,
			Visible: true,
		})
	}
	return s
}

// ResolveLayout extracts node geometry without unit conversion; document units
// map one-to-one to output pixels.
func ResolveLayout(n *figma.Node) ast.Layout {
	b := n.Bounds()
	return ast.Layout{
		X:        b.X,
		Y:        b.Y,
		Width:    b.Width,
		Height:   b.Height,
		Rotation: n.Rotation,
		Opacity:  n.EffectiveOpacity(),
	}
}
