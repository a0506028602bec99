package figmacodegen

import (
	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/classifier"
	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/emitter"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
	"github.com/hellenic-development/figma-codegen/pkg/packager"
)

// Options configures the conversion.
type Options struct {
	Format        emitter.Format // empty = html
	IncludeStyles bool
	Minify        bool
	IncludeImages bool
	ComponentName string          // empty = "GeneratedApp"
	Pipeline      config.Pipeline // zero value = documented defaults
	Logger        Logger          // nil = no logging
}

// DefaultOptions returns the options of a plain styled HTML conversion.
func DefaultOptions() Options {
	return Options{
		Format:        emitter.FormatHTML,
		IncludeStyles: true,
		Pipeline:      config.DefaultPipeline(),
	}
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	Archive  []byte               // finished zip archive
	Files    *emitter.FileMap     // emitted files in archive order
	Assets   []emitter.Asset      // image members the caller must still fetch
	Screens  []*ast.Screen        // annotated screen trees
	Warnings []normalizer.Warning // non-fatal normalization findings
	Elements int                  // node count across all screens
	Format   emitter.Format
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Generate runs the conversion pipeline on a parsed design document and
// returns the generated project archive.
func Generate(doc *figma.Document, opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Format == "" {
		opts.Format = emitter.FormatHTML
	}
	format, err := emitter.ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}

	opts.logInfo("Normalizing design document...")
	norm, err := normalizer.New(opts.Pipeline).Normalize(doc)
	if err != nil {
		return nil, err
	}
	for _, w := range norm.Warnings {
		opts.logWarn("%s", w)
	}
	opts.logInfo("Normalized %d element(s) across %d screen(s)", norm.Elements, len(norm.Screens))

	opts.logInfo("Classifying components...")
	classifier.Annotate(norm.Screens)

	opts.logInfo("Emitting %s source...", format)
	out, err := emitter.Emit(norm.Screens, format, emitter.Options{
		IncludeStyles: opts.IncludeStyles,
		Minify:        opts.Minify,
		IncludeImages: opts.IncludeImages,
		ComponentName: opts.ComponentName,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Assets) > 0 {
		opts.logInfo("Referenced %d image asset(s) to be fetched separately", len(out.Assets))
	}

	opts.logInfo("Packaging %d file(s)...", out.Files.Len())
	archive, err := packager.Pack(out.Files)
	if err != nil {
		return nil, err
	}

	return &Result{
		Archive:  archive,
		Files:    out.Files,
		Assets:   out.Assets,
		Screens:  norm.Screens,
		Warnings: norm.Warnings,
		Elements: norm.Elements,
		Format:   format,
	}, nil
}

// GenerateJSON parses a raw design document and runs the conversion pipeline
// on it. The document may be a file API response, a nodes-by-id response, or
// a bare node wrapper; anything else fails with [figma.ErrInputShape].
func GenerateJSON(data []byte, opts Options) (*Result, error) {
	opts.logInfo("Parsing design document...")
	doc, err := figma.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return Generate(doc, opts)
}

// ScreenCount reports how many navigable screens a conversion produced.
func ScreenCount(screens []*ast.Screen) int {
	return ast.ScreenCount(screens)
}

// ExtractAllText returns the text content of every text element in document
// order, screen by screen.
func ExtractAllText(screens []*ast.Screen) []string {
	return ast.ExtractAllText(screens)
}
