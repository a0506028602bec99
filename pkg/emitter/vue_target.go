package emitter

import (
	"fmt"
	"strings"
)

func init() {
	register(&descriptor{
		format:     FormatVue,
		tagFor:     intrinsicTag,
		classAttr:  "class",
		styleAttr:  htmlStyleAttr,
		escapeText: escapeExprText,
		scaffold:   vueScaffold,
	})
}

func vueScaffold(e *emission, screens []renderedScreen) error {
	name := e.opts.componentName()

	e.files.SetString("index.html", viteIndexHTML(e, name, "/src/main.js"))
	e.files.SetString("src/main.js", vueMain(e, name))
	e.files.SetString("src/"+name+".vue", vueComponent(name, screens))
	if e.opts.IncludeStyles {
		e.files.SetString("src/styles.css", e.stylesheet())
	}
	e.files.SetString("vite.config.js", viteConfig("vue"))
	e.files.Set("package.json", vueManifest(name))
	e.files.SetString("README.md", e.readme(screens, viteReadmeRun))
	return nil
}

func vueMain(e *emission, name string) string {
	var b strings.Builder
	b.WriteString("import { createApp } from 'vue';\n")
	fmt.Fprintf(&b, "import %s from './%s.vue';\n", name, name)
	if e.opts.IncludeStyles {
		b.WriteString("import './styles.css';\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "createApp(%s).mount('#app');\n", name)
	return b.String()
}

// vueComponent renders the single-file component: one v-if section per screen
// and the cyclic next/previous navigation.
func vueComponent(name string, screens []renderedScreen) string {
	var b strings.Builder
	b.WriteString("<template>\n")
	b.WriteString("  <div class=\"app\">\n")

	for i, s := range screens {
		class := "screen"
		if s.class != "" {
			class += " " + s.class
		}
		fmt.Fprintf(&b, "    <section v-if=\"screen === %d\" class=\"%s\" style=\"position:relative; width:%s; height:%s\">\n",
			i, class, px(s.width), px(s.height))
		if s.body != "" {
			b.WriteString(indent(s.body, 3) + "\n")
		}
		b.WriteString("    </section>\n")
	}

	b.WriteString("    <nav class=\"screen-nav\">\n")
	b.WriteString("      <button type=\"button\" @click=\"prev\">Prev</button>\n")
	b.WriteString("      <span>{{ screen + 1 }} / {{ total }}</span>\n")
	b.WriteString("      <button type=\"button\" @click=\"next\">Next</button>\n")
	b.WriteString("    </nav>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</template>\n")
	b.WriteString("\n")
	b.WriteString("<script>\n")
	b.WriteString("export default {\n")
	fmt.Fprintf(&b, "  name: '%s',\n", name)
	b.WriteString("  data() {\n")
	b.WriteString("    return {\n")
	b.WriteString("      screen: 0,\n")
	fmt.Fprintf(&b, "      total: %d,\n", len(screens))
	b.WriteString("    };\n")
	b.WriteString("  },\n")
	b.WriteString("  methods: {\n")
	b.WriteString("    next() {\n")
	b.WriteString("      this.screen = (this.screen + 1) % this.total;\n")
	b.WriteString("    },\n")
	b.WriteString("    prev() {\n")
	b.WriteString("      this.screen = (this.screen + this.total - 1) % this.total;\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	b.WriteString("</script>\n")
	return b.String()
}
