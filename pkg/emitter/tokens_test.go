package emitter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
)

func TestNormalizeScale(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		names  []string
		want   []token
	}{
		{
			name:   "ascending names follow ascending values",
			values: []float64{24, 14, 32},
			names:  []string{"xs", "sm", "base"},
			want:   []token{{"xs", 14}, {"sm", 24}, {"base", 32}},
		},
		{
			name:   "duplicates collapse",
			values: []float64{14, 14, 14, 20},
			names:  []string{"xs", "sm"},
			want:   []token{{"xs", 14}, {"sm", 20}},
		},
		{
			name:   "values beyond the scale are dropped",
			values: []float64{10, 12, 14, 16},
			names:  []string{"sm", "md"},
			want:   []token{{"sm", 10}, {"md", 12}},
		},
		{
			name:   "non-positive values are ignored",
			values: []float64{0, -4, 16},
			names:  []string{"sm", "md"},
			want:   []token{{"sm", 16}},
		},
		{
			name:   "empty input yields no tokens",
			values: nil,
			names:  []string{"sm"},
			want:   []token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeScale(tt.values, tt.names)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUtilitiesCSS(t *testing.T) {
	text := func(id string, size float64) *ast.Node {
		return &ast.Node{
			ID: id, Type: ast.TypeText, Visible: true,
			Layout:   ast.Layout{Width: 100, Height: 20, Opacity: 1},
			Styles:   ast.Styles{Text: &ast.TextStyle{FontSize: size}},
			Metadata: ast.Metadata{TextContent: "x"},
		}
	}
	root := &ast.Node{
		ID: "1:0", Type: ast.TypeFrame, Visible: true,
		Layout: ast.Layout{Width: 375, Height: 667, Opacity: 1},
		Styles: ast.Styles{CornerRadius: 12},
		Children: []*ast.Node{
			text("1:1", 14),
			text("1:2", 24),
			text("1:3", 14),
		},
	}
	screens := []*ast.Screen{{Root: root, Width: 375, Height: 667}}

	css := utilitiesCSS(screens, false)

	for _, want := range []string{
		".mv-text-xs {\n  font-size: 14px;\n}",
		".mv-text-sm {\n  font-size: 24px;\n}",
		".mv-rounded-sm {\n  border-radius: 12px;\n}",
		".mv-rounded-full {\n  border-radius: 9999px;\n}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("utilities stylesheet missing %q:\n%s", want, css)
		}
	}
	if strings.Contains(css, ".mv-text-base") {
		t.Errorf("only two font sizes observed, base must not appear:\n%s", css)
	}

	minified := utilitiesCSS(screens, true)
	if strings.Contains(minified, "\n") {
		t.Errorf("minified utilities must be a single line: %q", minified)
	}
	if !strings.Contains(minified, ".mv-text-xs{font-size:14px;}") {
		t.Errorf("minified utilities missing compact rule: %q", minified)
	}

	lines := TokenSummary(screens)
	want := []string{"text-xs: 14px", "text-sm: 24px", "rounded-sm: 12px"}
	if len(lines) != len(want) {
		t.Fatalf("summary = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("summary[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
