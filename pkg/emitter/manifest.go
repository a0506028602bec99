package emitter

import "encoding/json"

// manifest is the package.json shape shared by all targets. Map keys render
// sorted, so manifest output is deterministic.
type manifest struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

func (m manifest) bytes() []byte {
	b, _ := json.MarshalIndent(m, "", "  ")
	return append(b, '\n')
}

// htmlManifest declares no runtime dependencies; the page is served statically.
func htmlManifest(component string) []byte {
	return manifest{
		Name:    kebabCase(component),
		Private: true,
		Version: "0.1.0",
		Scripts: map[string]string{
			"start": "npx serve .",
		},
	}.bytes()
}

func reactManifest(component string) []byte {
	return manifest{
		Name:    kebabCase(component),
		Private: true,
		Version: "0.1.0",
		Type:    "module",
		Scripts: viteScripts(),
		Dependencies: map[string]string{
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@vitejs/plugin-react": "^4.2.0",
			"vite":                 "^5.0.0",
		},
	}.bytes()
}

func vueManifest(component string) []byte {
	return manifest{
		Name:    kebabCase(component),
		Private: true,
		Version: "0.1.0",
		Type:    "module",
		Scripts: viteScripts(),
		Dependencies: map[string]string{
			"vue": "^3.4.0",
		},
		DevDependencies: map[string]string{
			"@vitejs/plugin-vue": "^5.0.0",
			"vite":               "^5.0.0",
		},
	}.bytes()
}

// moneyviewManifest extends the react manifest with the branded component
// packages resolved through the @moneyview npm scope.
func moneyviewManifest(component string) []byte {
	return manifest{
		Name:    kebabCase(component),
		Private: true,
		Version: "0.1.0",
		Type:    "module",
		Scripts: viteScripts(),
		Dependencies: map[string]string{
			"@moneyview/ui": "^2.1.0",
			"react":         "^18.2.0",
			"react-dom":     "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@vitejs/plugin-react": "^4.2.0",
			"vite":                 "^5.0.0",
		},
	}.bytes()
}

func viteScripts() map[string]string {
	return map[string]string{
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
	}
}
