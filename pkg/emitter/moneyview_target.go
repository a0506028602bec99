package emitter

import (
	"fmt"
	"html"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

func init() {
	register(&descriptor{
		format:     FormatMoneyview,
		tagFor:     moneyviewTag,
		classAttr:  "className",
		styleAttr:  jsxStyleAttr,
		escapeText: escapeExprText,
		rebase:     true,
		scaffold:   moneyviewScaffold,
	})
}

// mvComponents maps categories to the branded component names, in a stable
// order for import statements.
var mvComponents = []struct {
	category  ast.Category
	component string
}{
	{ast.CategoryButton, "MvButton"},
	{ast.CategoryCard, "MvCard"},
	{ast.CategoryTypography, "MvTypography"},
	{ast.CategoryTextField, "MvTextField"},
	{ast.CategoryIcon, "MvIcon"},
	{ast.CategoryCheckbox, "MvCheckbox"},
	{ast.CategoryChip, "MvChip"},
	{ast.CategoryDialog, "MvDialog"},
	{ast.CategoryList, "MvList"},
	{ast.CategoryRadioButton, "MvRadio"},
	{ast.CategorySlider, "MvSlider"},
	{ast.CategoryTab, "MvTab"},
	{ast.CategoryToggle, "MvToggle"},
}

func mvComponentFor(cat ast.Category) string {
	for _, mc := range mvComponents {
		if mc.category == cat {
			return mc.component
		}
	}
	return ""
}

// moneyviewTag maps a classified node to its branded component, carrying the
// classification props as JSX attributes. Label and text props become element
// children for the components that render their own content; generic
// containers stay plain divs.
func moneyviewTag(n *ast.Node, _ Options) tagSpec {
	cat := category(n)
	component := mvComponentFor(cat)
	if component == "" {
		spec := tagSpec{name: "div"}
		if n.HasText() {
			spec.text = n.Metadata.TextContent
		}
		return spec
	}

	spec := tagSpec{name: component}
	switch cat {
	case ast.CategoryButton:
		spec.text = prop(n, "label", n.Label())
	case ast.CategoryTypography:
		spec.text = prop(n, "text", n.Metadata.TextContent)
	}

	if n.Classification != nil {
		for _, key := range n.Classification.PropKeys() {
			if skip := (cat == ast.CategoryButton && key == "label") ||
				(cat == ast.CategoryTypography && key == "text"); skip {
				continue
			}
			spec.attrs = append(spec.attrs, jsxProp(key, n.Classification.Props[key]))
		}
	}

	// Leaf components self-close; anything carrying children must wrap them.
	if spec.text == "" && len(n.Children) == 0 {
		spec.void = true
	}
	return spec
}

// jsxProp formats one classification prop as a JSX attribute: strings become
// quoted attributes, everything else an expression.
func jsxProp(key string, value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf(`%s="%s"`, key, html.EscapeString(v))
	case bool:
		return fmt.Sprintf("%s={%t}", key, v)
	case int:
		return fmt.Sprintf("%s={%d}", key, v)
	case float64:
		return fmt.Sprintf("%s={%s}", key, num(v))
	default:
		return fmt.Sprintf(`%s="%s"`, key, html.EscapeString(fmt.Sprint(v)))
	}
}

func moneyviewScaffold(e *emission, screens []renderedScreen) error {
	name := e.opts.componentName()

	e.files.SetString("index.html", viteIndexHTML(e, name, "/src/main.jsx"))
	e.files.SetString("src/main.jsx", reactMain(e, name))
	e.files.SetString("src/"+name+".jsx", reactComponent(e, name, screens, moneyviewImports(screens)))
	if e.opts.IncludeStyles {
		e.files.SetString("src/styles.css", e.stylesheet())
	}
	e.files.SetString("src/utilities.css", utilitiesCSS(e.screens, e.opts.Minify))
	e.files.SetString("vite.config.js", viteConfig("react"))
	e.files.Set("package.json", moneyviewManifest(name))
	e.files.SetString("README.md", e.readme(screens, moneyviewReadmeRun))
	return nil
}

// moneyviewImports builds the import lines for the component file: the
// branded components actually present in the rendered markup, plus the
// utility stylesheet.
func moneyviewImports(screens []renderedScreen) []string {
	var used []string
	for _, mc := range mvComponents {
		for _, s := range screens {
			if strings.Contains(s.body, "<"+mc.component+" ") || strings.Contains(s.body, "<"+mc.component+">") {
				used = append(used, mc.component)
				break
			}
		}
	}

	imports := []string{}
	if len(used) > 0 {
		imports = append(imports, fmt.Sprintf("import { %s } from '@moneyview/ui';", strings.Join(used, ", ")))
	}
	imports = append(imports, "import './utilities.css';")
	return imports
}
