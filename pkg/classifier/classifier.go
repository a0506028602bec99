// Package classifier attaches design-system categories and default prop
// bundles to screen-tree nodes. Classification is a fixed, ordered rule list
// over (type, geometry, hasText, hasBackground); the first matching rule wins.
//
// The rule order is load-bearing and must not be reordered: geometric ranges
// of later rules overlap earlier ones, and several rules are partially or
// fully shadowed by predecessors. That is inherited heuristic tuning, kept
// as-is for compatibility with existing conversions.
package classifier

import (
	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

// Classify assigns a category and default props to one node. It is pure and
// deterministic: identical (type, geometry, text, background) inputs always
// yield the identical classification, independent of call order. Geometry is
// never mutated.
func Classify(n *ast.Node) ast.Classification {
	var (
		w          = n.Layout.Width
		h          = n.Layout.Height
		text       = n.HasText()
		background = n.HasBackground()
	)

	switch {
	// 1. Large text-bearing rectangle.
	case n.Type == ast.TypeRectangle && text && w > 80 && h > 30:
		return classification(ast.CategoryButton, map[string]any{
			"label":   n.Label(),
			"variant": "contained",
		})

	// 2. Wide frame with a resolvable background.
	case n.Type == ast.TypeFrame && background && w > 200:
		return classification(ast.CategoryCard, map[string]any{
			"variant":   "elevation",
			"elevation": 1,
		})

	// 3. Any text-bearing node not matched above.
	case text:
		return classification(ast.CategoryTypography, map[string]any{
			"text":    n.Metadata.TextContent,
			"variant": typographyVariant(n),
		})

	// 4. Wide, short rectangle without text.
	case n.Type == ast.TypeRectangle && !text && w > 150 && h < 50:
		return classification(ast.CategoryTextField, map[string]any{
			"variant":     "outlined",
			"placeholder": n.Name,
		})

	// 5. Vectors, and anything small enough to read as an icon.
	case n.Type == ast.TypeVector || (w < 50 && h < 50):
		return classification(ast.CategoryIcon, map[string]any{
			"size": iconSize(w, h),
		})

	// 6. Tiny rectangle.
	case n.Type == ast.TypeRectangle && w < 30 && h < 30:
		return classification(ast.CategoryCheckbox, map[string]any{
			"checked": false,
		})

	// 7. Small text-bearing rectangle.
	case n.Type == ast.TypeRectangle && text && w < 100 && h < 40:
		return classification(ast.CategoryChip, map[string]any{
			"label": n.Label(),
			"size":  "small",
		})

	// 8. Large frame.
	case n.Type == ast.TypeFrame && w > 300 && h > 200:
		return classification(ast.CategoryDialog, map[string]any{
			"open":     true,
			"maxWidth": "sm",
		})

	// 9. Tall frame not matched above.
	case n.Type == ast.TypeFrame && h > 100:
		return classification(ast.CategoryList, map[string]any{
			"dense": false,
		})

	// 10. Tiny ellipse.
	case n.Type == ast.TypeEllipse && w < 30 && h < 30:
		return classification(ast.CategoryRadioButton, map[string]any{
			"checked": false,
		})

	// 11. Long, flat rectangle.
	case n.Type == ast.TypeRectangle && w > 100 && h < 20:
		return classification(ast.CategorySlider, map[string]any{
			"min":   0,
			"max":   100,
			"value": 50,
		})

	// 12. Mid-sized text-bearing rectangle.
	case n.Type == ast.TypeRectangle && text && w < 150 && h < 50:
		return classification(ast.CategoryTab, map[string]any{
			"label": n.Label(),
		})

	// 13. Small, flat rectangle.
	case n.Type == ast.TypeRectangle && w < 60 && h < 30:
		return classification(ast.CategoryToggle, map[string]any{
			"checked": false,
		})

	// 14. Everything else: a generic container with no design-system binding.
	default:
		return classification(ast.CategoryContainer, map[string]any{})
	}
}

// Annotate classifies every node in every screen tree in place. Screen roots
// are classified like any other node; emitters treat them as containers
// regardless, so root classifications only inform positioning decisions.
func Annotate(screens []*ast.Screen) {
	ast.WalkScreens(screens, func(n *ast.Node) bool {
		c := Classify(n)
		n.Classification = &c
		return true
	})
}

func classification(cat ast.Category, props map[string]any) ast.Classification {
	return ast.Classification{Category: cat, Props: props}
}

// typographyVariant buckets a text node into a heading or body variant by its
// resolved font size.
func typographyVariant(n *ast.Node) string {
	size := 0.0
	if n.Styles.Text != nil {
		size = n.Styles.Text.FontSize
	}
	switch {
	case size >= 32:
		return "h3"
	case size >= 24:
		return "h4"
	case size >= 20:
		return "h5"
	case size >= 16:
		return "h6"
	default:
		return "body1"
	}
}

func iconSize(w, h float64) string {
	if w < 25 && h < 25 {
		return "small"
	}
	return "medium"
}
