// Package figmacodegen converts design documents exported from design tools
// into runnable UI source code: plain HTML/CSS, React, Vue, or the in-house
// moneyview component library. The output is a zip archive containing a
// complete, self-contained project.
//
// The CLI lives in cmd/figma-codegen and the HTTP service in pkg/server;
// this root package exposes the same pipeline as a Go API so that callers
// can embed conversion in their own tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmacodegen:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	raw, err := os.ReadFile("design.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := figmacodegen.GenerateJSON(raw, figmacodegen.Options{
//	    Format:        emitter.FormatReact,
//	    IncludeStyles: true,
//	    ComponentName: "CheckoutFlow",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("generated.zip", result.Archive, 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Pipeline
//
// Conversion runs in four stages: normalization prunes invisible and
// degenerate elements into screen trees (pkg/normalizer), classification
// tags each element with a component role (pkg/classifier), emission renders
// the screen trees into the chosen format's file set (pkg/emitter), and
// packaging assembles the files into a deterministic zip (pkg/packager).
// Tuning knobs for the normalization stage live in [Options.Pipeline]; the
// zero value is sanitized to the documented defaults.
//
// # Fetching documents
//
// The pipeline never talks to the network. To convert a live file, fetch it
// first with a [pkg/figma] Client (GetFile or GetFileNodes) and feed the
// response to [Generate]; with [Options.IncludeImages] enabled, download the
// referenced image assets afterwards via pkg/imager and repackage.
package figmacodegen
