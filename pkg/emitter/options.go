package emitter

import "strings"

// DefaultComponentName names the generated root component when the caller does
// not provide one.
const DefaultComponentName = "GeneratedApp"

// Options control emission across all targets.
type Options struct {
	// IncludeStyles controls whether a stylesheet file is generated and class
	// styling applied. Node geometry stays inline either way.
	IncludeStyles bool

	// Minify collapses indentation and newlines in HTML and CSS outputs.
	// Component and script sources keep their formatting.
	Minify bool

	// IncludeImages emits img elements for image-fill nodes and records the
	// referenced asset paths on the output for the caller to populate.
	IncludeImages bool

	// ComponentName names the root component and its file. It is sanitized to
	// a valid capitalized identifier; empty falls back to DefaultComponentName.
	ComponentName string
}

func (o Options) componentName() string {
	return sanitizeComponentName(o.ComponentName)
}

// sanitizeComponentName folds an arbitrary name into a PascalCase identifier.
// Component frameworks treat lowercase element names as intrinsics, so the
// first character is always forced upper.
func sanitizeComponentName(name string) string {
	var b strings.Builder
	boundary := true
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if boundary && r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			boundary = false
		case r >= '0' && r <= '9':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
			boundary = false
		default:
			boundary = true
		}
	}
	out := b.String()
	if out == "" {
		return DefaultComponentName
	}
	if out[0] >= 'a' && out[0] <= 'z' {
		out = string(out[0]-'a'+'A') + out[1:]
	}
	return out
}
