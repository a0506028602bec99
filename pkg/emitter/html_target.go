package emitter

import (
	"fmt"
	"html"
	"strings"
)

func init() {
	register(&descriptor{
		format:     FormatHTML,
		tagFor:     intrinsicTag,
		classAttr:  "class",
		styleAttr:  htmlStyleAttr,
		escapeText: escapeHTMLText,
		scaffold:   htmlScaffold,
	})
}

// htmlStyleAttr renders style="name:value; ..." attributes.
func htmlStyleAttr(props []styleProp) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.name+":"+p.value)
	}
	return `style="` + strings.Join(parts, "; ") + `"`
}

func htmlScaffold(e *emission, screens []renderedScreen) error {
	name := e.opts.componentName()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\" />\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(name))
	if e.opts.IncludeStyles {
		b.WriteString("  <link rel=\"stylesheet\" href=\"styles.css\" />\n")
	}
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("  <div id=\"app\">\n")

	for i, s := range screens {
		display := "none"
		if i == 0 {
			display = "block"
		}
		class := "screen"
		if s.class != "" {
			class += " " + s.class
		}
		fmt.Fprintf(&b, "    <section class=\"%s\" id=\"screen-%d\" style=\"position:relative; width:%s; height:%s; display:%s\">\n",
			class, i, px(s.width), px(s.height), display)
		if s.body != "" {
			b.WriteString(indent(s.body, 3) + "\n")
		}
		b.WriteString("    </section>\n")
	}

	b.WriteString("  </div>\n")
	b.WriteString("  <nav class=\"screen-nav\">\n")
	b.WriteString("    <button type=\"button\" id=\"prev-screen\">Prev</button>\n")
	fmt.Fprintf(&b, "    <span id=\"screen-indicator\">1 / %d</span>\n", len(screens))
	b.WriteString("    <button type=\"button\" id=\"next-screen\">Next</button>\n")
	b.WriteString("  </nav>\n")
	b.WriteString(htmlNavScript())
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	page := b.String()
	if e.opts.Minify {
		page = minifyMarkup(page)
	}

	e.files.SetString("index.html", page)
	if e.opts.IncludeStyles {
		e.files.SetString("styles.css", e.stylesheet())
	}
	e.files.Set("package.json", htmlManifest(name))
	e.files.SetString("README.md", e.readme(screens, htmlReadmeRun))
	return nil
}

// htmlNavScript wires the next/previous controls: the visible screen index
// starts at 0 and wraps cyclically in both directions.
func htmlNavScript() string {
	return `  <script>
    (function () {
      var current = 0;
      var screens = document.querySelectorAll('.screen');
      var total = screens.length;
      var indicator = document.getElementById('screen-indicator');
      function show(index) {
        for (var i = 0; i < total; i += 1) {
          screens[i].style.display = i === index ? 'block' : 'none';
        }
        indicator.textContent = (index + 1) + ' / ' + total;
      }
      document.getElementById('next-screen').addEventListener('click', function () {
        current = (current + 1) % total;
        show(current);
      });
      document.getElementById('prev-screen').addEventListener('click', function () {
        current = (current + total - 1) % total;
        show(current);
      });
      show(current);
    })();
  </script>
`
}
