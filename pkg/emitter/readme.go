package emitter

import (
	"fmt"
	"strings"
)

// readme builds the generated project README: a screen inventory, run
// instructions for the target, and notes on the emitted layout.
func (e *emission) readme(screens []renderedScreen, run string) string {
	name := e.opts.componentName()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", name))
	sb.WriteString(fmt.Sprintf("UI source code generated from a design document (%s target).\n\n", e.d.format))

	sb.WriteString("## Screens\n\n")
	sb.WriteString("| # | Screen | Size |\n")
	sb.WriteString("|---|--------|------|\n")
	for i, s := range screens {
		label := s.name
		if label == "" {
			label = fmt.Sprintf("Screen %d", i+1)
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %.0fx%.0f |\n", i+1, label, s.width, s.height))
	}
	sb.WriteString("\n")

	sb.WriteString("## Getting Started\n\n")
	sb.WriteString(run)
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- Elements are positioned absolutely with coordinates taken from the design document.\n")
	sb.WriteString("- Navigation controls cycle through the screens; the first screen is shown initially.\n")
	if !e.opts.IncludeStyles {
		sb.WriteString("- Stylesheet generation was disabled; only element geometry is emitted.\n")
	}
	if len(e.assets) > 0 {
		sb.WriteString(fmt.Sprintf("- %d image asset(s) are referenced under `assets/` and must be exported from the design file.\n", len(e.assets)))
	}

	return sb.String()
}

const htmlReadmeRun = "```bash\nnpm start\n```\n\n" +
	"Serves the static page locally. Any static file server works; `index.html` has no build step.\n"

const viteReadmeRun = "```bash\nnpm install\nnpm run dev\n```\n\n" +
	"Starts the Vite dev server. `npm run build` produces a production bundle in `dist/`.\n"

const moneyviewReadmeRun = "```bash\nnpm install\nnpm run dev\n```\n\n" +
	"Components import from `@moneyview/ui`; make sure your npm registry resolves the " +
	"`@moneyview` scope before installing. `npm run build` produces a production bundle.\n"
