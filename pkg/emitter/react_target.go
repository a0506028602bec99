package emitter

import (
	"fmt"
	"html"
	"strings"
)

func init() {
	register(&descriptor{
		format:     FormatReact,
		tagFor:     intrinsicTag,
		classAttr:  "className",
		styleAttr:  jsxStyleAttr,
		escapeText: escapeExprText,
		scaffold:   reactScaffold,
	})
}

// jsxStyleAttr renders style={{camelCaseName: 'value', ...}} attributes.
func jsxStyleAttr(props []styleProp) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, cssNameToCamel(p.name)+": "+jsString(p.value))
	}
	return "style={{" + strings.Join(parts, ", ") + "}}"
}

func cssNameToCamel(name string) string {
	segs := strings.Split(name, "-")
	for i := 1; i < len(segs); i++ {
		if segs[i] != "" {
			segs[i] = strings.ToUpper(segs[i][:1]) + segs[i][1:]
		}
	}
	return strings.Join(segs, "")
}

// jsString quotes a value as a JS string literal, switching to double quotes
// when the value itself contains single quotes (font stacks do).
func jsString(v string) string {
	if strings.Contains(v, "'") {
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	return "'" + v + "'"
}

func reactScaffold(e *emission, screens []renderedScreen) error {
	name := e.opts.componentName()

	e.files.SetString("index.html", viteIndexHTML(e, name, "/src/main.jsx"))
	e.files.SetString("src/main.jsx", reactMain(e, name))
	e.files.SetString("src/"+name+".jsx", reactComponent(e, name, screens, nil))
	if e.opts.IncludeStyles {
		e.files.SetString("src/styles.css", e.stylesheet())
	}
	e.files.SetString("vite.config.js", viteConfig("react"))
	e.files.Set("package.json", reactManifest(name))
	e.files.SetString("README.md", e.readme(screens, viteReadmeRun))
	return nil
}

// viteIndexHTML is the entry page shared by the Vite-based targets.
func viteIndexHTML(e *emission, title, entry string) string {
	mount := "root"
	if strings.HasSuffix(entry, ".js") {
		mount = "app"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <meta charset=\"UTF-8\" />\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", html.EscapeString(title))
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	fmt.Fprintf(&b, "    <div id=\"%s\"></div>\n", mount)
	fmt.Fprintf(&b, "    <script type=\"module\" src=\"%s\"></script>\n", entry)
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")

	page := b.String()
	if e.opts.Minify {
		page = minifyMarkup(page)
	}
	return page
}

func reactMain(e *emission, name string) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import ReactDOM from 'react-dom/client';\n")
	fmt.Fprintf(&b, "import %s from './%s.jsx';\n", name, name)
	if e.opts.IncludeStyles {
		b.WriteString("import './styles.css';\n")
	}
	b.WriteString("\n")
	b.WriteString("ReactDOM.createRoot(document.getElementById('root')).render(\n")
	b.WriteString("  <React.StrictMode>\n")
	fmt.Fprintf(&b, "    <%s />\n", name)
	b.WriteString("  </React.StrictMode>,\n")
	b.WriteString(");\n")
	return b.String()
}

// reactComponent renders the root component: one conditionally shown section
// per screen and the cyclic next/previous navigation.
func reactComponent(e *emission, name string, screens []renderedScreen, imports []string) string {
	var b strings.Builder
	b.WriteString("import { useState } from 'react';\n")
	for _, imp := range imports {
		b.WriteString(imp + "\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "const SCREENS = %d;\n\n", len(screens))
	fmt.Fprintf(&b, "export default function %s() {\n", name)
	b.WriteString("  const [screen, setScreen] = useState(0);\n")
	b.WriteString("  const next = () => setScreen((screen + 1) % SCREENS);\n")
	b.WriteString("  const prev = () => setScreen((screen + SCREENS - 1) % SCREENS);\n")
	b.WriteString("\n")
	b.WriteString("  return (\n")
	b.WriteString("    <div className=\"app\">\n")

	for i, s := range screens {
		class := "screen"
		if s.class != "" {
			class += " " + s.class
		}
		fmt.Fprintf(&b, "      {screen === %d && (\n", i)
		fmt.Fprintf(&b, "        <section className=\"%s\" style={{position: 'relative', width: '%s', height: '%s'}}>\n",
			class, px(s.width), px(s.height))
		if s.body != "" {
			b.WriteString(indent(s.body, 5) + "\n")
		}
		b.WriteString("        </section>\n")
		b.WriteString("      )}\n")
	}

	b.WriteString("      <nav className=\"screen-nav\">\n")
	b.WriteString("        <button type=\"button\" onClick={prev}>Prev</button>\n")
	b.WriteString("        <span>{screen + 1} / {SCREENS}</span>\n")
	b.WriteString("        <button type=\"button\" onClick={next}>Next</button>\n")
	b.WriteString("      </nav>\n")
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

func viteConfig(plugin string) string {
	var b strings.Builder
	b.WriteString("import { defineConfig } from 'vite';\n")
	fmt.Fprintf(&b, "import %s from '@vitejs/plugin-%s';\n", plugin, plugin)
	b.WriteString("\n")
	b.WriteString("export default defineConfig({\n")
	fmt.Fprintf(&b, "  plugins: [%s()],\n", plugin)
	b.WriteString("});\n")
	return b.String()
}
