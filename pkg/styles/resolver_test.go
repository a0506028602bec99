package styles

import (
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		name  string
		color *figma.Color
		want  string
	}{
		{
			name:  "opaque red",
			color: &figma.Color{R: 1, G: 0, B: 0, A: 1},
			want:  "rgba(255, 0, 0, 1)",
		},
		{
			name:  "opaque white",
			color: &figma.Color{R: 1, G: 1, B: 1, A: 1},
			want:  "rgba(255, 255, 255, 1)",
		},
		{
			name:  "half transparent black",
			color: &figma.Color{R: 0, G: 0, B: 0, A: 0.5},
			want:  "rgba(0, 0, 0, 0.5)",
		},
		{
			name:  "channels round to nearest integer",
			color: &figma.Color{R: 0.502, G: 0.2, B: 0.8, A: 1},
			want:  "rgba(128, 51, 204, 1)",
		},
		{
			name:  "quarter alpha keeps minimal digits",
			color: &figma.Color{R: 0, G: 0.4, B: 0, A: 0.25},
			want:  "rgba(0, 102, 0, 0.25)",
		},
		{
			name:  "fully transparent",
			color: &figma.Color{R: 1, G: 1, B: 1, A: 0},
			want:  "rgba(255, 255, 255, 0)",
		},
		{
			name:  "nil color resolves to empty",
			color: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBA(tt.color); got != tt.want {
				t.Errorf("RGBA() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePaint(t *testing.T) {
	opacity := 0.6
	hidden := false

	tests := []struct {
		name  string
		paint figma.Paint
		want  ast.Paint
	}{
		{
			name:  "solid paint resolves color",
			paint: figma.Paint{Type: "SOLID", Color: &figma.Color{R: 0, G: 0, B: 1, A: 1}},
			want:  ast.Paint{Type: "SOLID", Color: "rgba(0, 0, 255, 1)", Opacity: 1, Visible: true},
		},
		{
			name:  "paint opacity carried through",
			paint: figma.Paint{Type: "SOLID", Opacity: &opacity, Color: &figma.Color{R: 0, G: 0, B: 0, A: 1}},
			want:  ast.Paint{Type: "SOLID", Color: "rgba(0, 0, 0, 1)", Opacity: 0.6, Visible: true},
		},
		{
			name:  "hidden paint keeps color but records visibility",
			paint: figma.Paint{Type: "SOLID", Visible: &hidden, Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
			want:  ast.Paint{Type: "SOLID", Color: "rgba(255, 0, 0, 1)", Opacity: 1, Visible: false},
		},
		{
			name:  "gradient resolves no color string",
			paint: figma.Paint{Type: "GRADIENT_LINEAR", Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
			want:  ast.Paint{Type: "GRADIENT_LINEAR", Opacity: 1, Visible: true},
		},
		{
			name:  "image paint keeps its reference",
			paint: figma.Paint{Type: "IMAGE", ImageRef: "abc123"},
			want:  ast.Paint{Type: "IMAGE", Opacity: 1, Visible: true, ImageRef: "abc123"},
		},
		{
			name:  "solid paint without color",
			paint: figma.Paint{Type: "SOLID"},
			want:  ast.Paint{Type: "SOLID", Opacity: 1, Visible: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePaint(tt.paint); got != tt.want {
				t.Errorf("ResolvePaint() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFirstSolidColor(t *testing.T) {
	hidden := false

	tests := []struct {
		name   string
		paints []figma.Paint
		want   string
	}{
		{
			name: "first visible solid wins",
			paints: []figma.Paint{
				{Type: "SOLID", Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
				{Type: "SOLID", Color: &figma.Color{R: 0, G: 1, B: 0, A: 1}},
			},
			want: "rgba(255, 0, 0, 1)",
		},
		{
			name: "hidden solid skipped",
			paints: []figma.Paint{
				{Type: "SOLID", Visible: &hidden, Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
				{Type: "SOLID", Color: &figma.Color{R: 0, G: 1, B: 0, A: 1}},
			},
			want: "rgba(0, 255, 0, 1)",
		},
		{
			name: "gradient entries skipped",
			paints: []figma.Paint{
				{Type: "GRADIENT_LINEAR"},
				{Type: "SOLID", Color: &figma.Color{R: 0, G: 0, B: 1, A: 1}},
			},
			want: "rgba(0, 0, 255, 1)",
		},
		{
			name:   "no resolvable entry",
			paints: []figma.Paint{{Type: "IMAGE", ImageRef: "ref"}},
			want:   "",
		},
		{
			name:   "empty list",
			paints: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstSolidColor(tt.paints); got != tt.want {
				t.Errorf("FirstSolidColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveText(t *testing.T) {
	cfg := config.DefaultPipeline()

	tests := []struct {
		name string
		node figma.Node
		want *ast.TextStyle
	}{
		{
			name: "no characters and no style",
			node: figma.Node{Type: "RECTANGLE"},
			want: nil,
		},
		{
			name: "characters without style get all defaults",
			node: figma.Node{Type: "TEXT", Characters: "Hello"},
			want: &ast.TextStyle{FontFamily: "Roboto", FontSize: 14, FontWeight: 400, TextAlign: "left"},
		},
		{
			name: "explicit style wins over defaults",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Title",
				Style: &figma.TypeStyle{
					FontFamily:          "Inter",
					FontSize:            32,
					FontWeight:          700,
					TextAlignHorizontal: "CENTER",
					LetterSpacing:       0.5,
				},
			},
			want: &ast.TextStyle{FontFamily: "Inter", FontSize: 32, FontWeight: 700, TextAlign: "center", LetterSpacing: 0.5},
		},
		{
			name: "partial style keeps defaults for the rest",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Body",
				Style:      &figma.TypeStyle{FontSize: 16},
			},
			want: &ast.TextStyle{FontFamily: "Roboto", FontSize: 16, FontWeight: 400, TextAlign: "left"},
		},
		{
			name: "justified maps to css justify",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Paragraph",
				Style:      &figma.TypeStyle{TextAlignHorizontal: "JUSTIFIED"},
			},
			want: &ast.TextStyle{FontFamily: "Roboto", FontSize: 14, FontWeight: 400, TextAlign: "justify"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveText(&tt.node, cfg)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ResolveText() = %+v, want %+v", got, tt.want)
			}
			if got == nil {
				return
			}
			if *got != *tt.want {
				t.Errorf("ResolveText() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestResolve_BackgroundColorBecomesFill(t *testing.T) {
	n := figma.Node{
		Type:            "FRAME",
		BackgroundColor: &figma.Color{R: 1, G: 1, B: 1, A: 1},
		Fills: []figma.Paint{
			{Type: "SOLID", Color: &figma.Color{R: 0, G: 0, B: 0, A: 1}},
		},
	}

	s := Resolve(&n, config.DefaultPipeline())
	if len(s.Fills) != 2 {
		t.Fatalf("Resolve() produced %d fills, want 2", len(s.Fills))
	}
	// Explicit fills keep precedence over the implicit background entry.
	if s.Fills[0].Color != "rgba(0, 0, 0, 1)" {
		t.Errorf("Fills[0].Color = %q, want %q", s.Fills[0].Color, "rgba(0, 0, 0, 1)")
	}
	if s.Fills[1].Color != "rgba(255, 255, 255, 1)" {
		t.Errorf("Fills[1].Color = %q, want %q", s.Fills[1].Color, "rgba(255, 255, 255, 1)")
	}
	if got := ast.FirstSolid(s.Fills); got == nil || got.Color != "rgba(0, 0, 0, 1)" {
		t.Errorf("FirstSolid() = %+v, want the explicit fill", got)
	}
}

func TestResolveLayout(t *testing.T) {
	opacity := 0.8

	n := figma.Node{
		Type:        "FRAME",
		BoundingBox: &figma.Rectangle{X: 12, Y: 34, Width: 375, Height: 812},
		Rotation:    45,
		Opacity:     &opacity,
	}

	got := ResolveLayout(&n)
	want := ast.Layout{X: 12, Y: 34, Width: 375, Height: 812, Rotation: 45, Opacity: 0.8}
	if got != want {
		t.Errorf("ResolveLayout() = %+v, want %+v", got, want)
	}
}

func TestResolveLayout_MissingBoundsAndOpacity(t *testing.T) {
	n := figma.Node{Type: "RECTANGLE"}

	got := ResolveLayout(&n)
	want := ast.Layout{Opacity: 1}
	if got != want {
		t.Errorf("ResolveLayout() = %+v, want %+v", got, want)
	}
}

func TestHasResolvableColor(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want bool
	}{
		{
			name: "solid fill",
			node: figma.Node{Fills: []figma.Paint{{Type: "SOLID", Color: &figma.Color{A: 1}}}},
			want: true,
		},
		{
			name: "solid stroke",
			node: figma.Node{Strokes: []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1, A: 1}}}},
			want: true,
		},
		{
			name: "background color counts as implicit fill",
			node: figma.Node{BackgroundColor: &figma.Color{R: 1, G: 1, B: 1, A: 1}},
			want: true,
		},
		{
			name: "image fill alone does not resolve a color",
			node: figma.Node{Fills: []figma.Paint{{Type: "IMAGE", ImageRef: "ref"}}},
			want: false,
		},
		{
			name: "bare node",
			node: figma.Node{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasResolvableColor(&tt.node); got != tt.want {
				t.Errorf("HasResolvableColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
