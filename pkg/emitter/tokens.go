package emitter

import (
	"fmt"
	"sort"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

// Design-token scales for the utility stylesheet. Observed values are sorted
// ascending and mapped onto the scale names; values beyond the scale are
// dropped.
var (
	fontScaleNames   = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}
	radiusScaleNames = []string{"sm", "md", "lg", "xl", "2xl"}
)

// utilitiesCSS builds the moneyview utility-class stylesheet from the design
// tokens observed in the screen trees: font sizes and corner radii, normalized
// to named scales.
func utilitiesCSS(screens []*ast.Screen, minify bool) string {
	fonts := normalizeScale(collectFontSizes(screens), fontScaleNames)
	radii := normalizeScale(collectRadii(screens), radiusScaleNames)

	var rules []cssRule
	for _, t := range fonts {
		rules = append(rules, cssRule{
			selector: ".mv-text-" + t.name,
			props:    []styleProp{{"font-size", px(t.value)}},
		})
	}
	for _, t := range radii {
		rules = append(rules, cssRule{
			selector: ".mv-rounded-" + t.name,
			props:    []styleProp{{"border-radius", px(t.value)}},
		})
	}
	rules = append(rules, cssRule{
		selector: ".mv-rounded-full",
		props:    []styleProp{{"border-radius", "9999px"}},
	})

	header := "/* Utility classes derived from the document's design tokens. */\n"
	if minify {
		header = ""
	}
	return header + renderCSS(rules, minify)
}

type token struct {
	name  string
	value float64
}

// normalizeScale maps the unique observed values, ascending, onto the scale
// names, mirroring how extracted design tokens are normalized elsewhere in
// the pipeline.
func normalizeScale(values []float64, names []string) []token {
	seen := make(map[float64]bool)
	unique := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 && !seen[v] {
			unique = append(unique, v)
			seen[v] = true
		}
	}
	sort.Float64s(unique)

	tokens := make([]token, 0, len(unique))
	for i, v := range unique {
		if i >= len(names) {
			break
		}
		tokens = append(tokens, token{name: names[i], value: v})
	}
	return tokens
}

func collectFontSizes(screens []*ast.Screen) []float64 {
	var sizes []float64
	ast.WalkScreens(screens, func(n *ast.Node) bool {
		if n.Styles.Text != nil && n.Styles.Text.FontSize > 0 {
			sizes = append(sizes, n.Styles.Text.FontSize)
		}
		return true
	})
	return sizes
}

func collectRadii(screens []*ast.Screen) []float64 {
	var radii []float64
	ast.WalkScreens(screens, func(n *ast.Node) bool {
		if n.Styles.CornerRadius > 0 {
			radii = append(radii, n.Styles.CornerRadius)
		}
		return true
	})
	return radii
}

// TokenSummary lists the normalized design-token scales, one "name: value"
// line per token, for inspection output.
func TokenSummary(screens []*ast.Screen) []string {
	fonts := normalizeScale(collectFontSizes(screens), fontScaleNames)
	radii := normalizeScale(collectRadii(screens), radiusScaleNames)

	lines := make([]string, 0, len(fonts)+len(radii))
	for _, t := range fonts {
		lines = append(lines, fmt.Sprintf("text-%s: %s", t.name, px(t.value)))
	}
	for _, t := range radii {
		lines = append(lines, fmt.Sprintf("rounded-%s: %s", t.name, px(t.value)))
	}
	return lines
}
