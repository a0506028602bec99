package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/classifier"
)

func node(typ ast.NodeType, w, h float64) *ast.Node {
	return &ast.Node{Type: typ, Visible: true, Layout: ast.Layout{Width: w, Height: h}}
}

func textNode(typ ast.NodeType, w, h float64, text string) *ast.Node {
	n := node(typ, w, h)
	n.Metadata.TextContent = text
	return n
}

func filledNode(typ ast.NodeType, w, h float64) *ast.Node {
	n := node(typ, w, h)
	n.Styles.Fills = []ast.Paint{{Type: "SOLID", Color: "rgba(255, 255, 255, 1)", Opacity: 1, Visible: true}}
	return n
}

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want ast.Category
	}{
		{
			name: "large text rectangle is a button",
			node: textNode(ast.TypeRectangle, 160, 48, "Submit"),
			want: ast.CategoryButton,
		},
		{
			name: "wide filled frame is a card",
			node: filledNode(ast.TypeFrame, 250, 80),
			want: ast.CategoryCard,
		},
		{
			name: "text node is typography",
			node: textNode(ast.TypeText, 100, 20, "Hello"),
			want: ast.CategoryTypography,
		},
		{
			name: "wide short rectangle without text is a text field",
			node: node(ast.TypeRectangle, 200, 40),
			want: ast.CategoryTextField,
		},
		{
			name: "vector is an icon regardless of size",
			node: node(ast.TypeVector, 120, 120),
			want: ast.CategoryIcon,
		},
		{
			name: "small node of any type is an icon",
			node: node(ast.TypeGroup, 40, 40),
			want: ast.CategoryIcon,
		},
		{
			name: "large plain frame is a dialog",
			node: node(ast.TypeFrame, 320, 250),
			want: ast.CategoryDialog,
		},
		{
			name: "tall narrow frame is a list",
			node: node(ast.TypeFrame, 150, 150),
			want: ast.CategoryList,
		},
		{
			name: "long flat rectangle is a slider",
			node: node(ast.TypeRectangle, 120, 15),
			want: ast.CategorySlider,
		},
		{
			name: "small flat rectangle is a toggle",
			node: node(ast.TypeRectangle, 55, 25),
			want: ast.CategoryToggle,
		},
		{
			name: "unmatched node falls through to container",
			node: node(ast.TypeFrame, 250, 80),
			want: ast.CategoryContainer,
		},
		{
			name: "instance with no other signal is a container",
			node: node(ast.TypeInstance, 200, 90),
			want: ast.CategoryContainer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.node)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

// The rule list resolves overlapping ranges purely by order. These cases pin
// the inherited precedence behavior so a reorder can never slip through.
func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want ast.Category
	}{
		{
			// Matches the button, chip, and tab ranges at once; the button
			// rule comes first and must win.
			name: "text rectangle 160x35 resolves to button",
			node: textNode(ast.TypeRectangle, 160, 35, "OK"),
			want: ast.CategoryButton,
		},
		{
			// The small-node icon rule shadows the checkbox rule entirely:
			// every sub-30 rectangle is also a sub-50 node.
			name: "tiny rectangle resolves to icon, not checkbox",
			node: node(ast.TypeRectangle, 20, 20),
			want: ast.CategoryIcon,
		},
		{
			// Same shadowing for the radio-button rule.
			name: "tiny ellipse resolves to icon, not radio button",
			node: node(ast.TypeEllipse, 20, 20),
			want: ast.CategoryIcon,
		},
		{
			// The typography rule catches every text node the button rule
			// passed over, so the chip rule never sees one.
			name: "small text rectangle resolves to typography, not chip",
			node: textNode(ast.TypeRectangle, 70, 35, "New"),
			want: ast.CategoryTypography,
		},
		{
			name: "filled frame wider than 200 is a card even at dialog size",
			node: filledNode(ast.TypeFrame, 375, 667),
			want: ast.CategoryCard,
		},
		{
			name: "unfilled frame at dialog size is a dialog, not a list",
			node: node(ast.TypeFrame, 375, 667),
			want: ast.CategoryDialog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.node)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	n := textNode(ast.TypeRectangle, 160, 48, "Submit")

	first := classifier.Classify(n)
	for i := 0; i < 10; i++ {
		again := classifier.Classify(n)
		assert.Equal(t, first, again, "identical input must classify identically")
	}
	assert.Equal(t, ast.Layout{Width: 160, Height: 48}, n.Layout, "classification must not mutate geometry")
}

func TestClassify_ButtonProps(t *testing.T) {
	got := classifier.Classify(textNode(ast.TypeRectangle, 160, 48, "Sign in"))

	require.Equal(t, ast.CategoryButton, got.Category)
	assert.Equal(t, "Sign in", got.Props["label"])
	assert.Equal(t, "contained", got.Props["variant"])
}

func TestClassify_TextFieldPlaceholderFromName(t *testing.T) {
	n := node(ast.TypeRectangle, 200, 40)
	n.Name = "Email input"

	got := classifier.Classify(n)
	require.Equal(t, ast.CategoryTextField, got.Category)
	assert.Equal(t, "outlined", got.Props["variant"])
	assert.Equal(t, "Email input", got.Props["placeholder"])
}

func TestClassify_TypographyVariantByFontSize(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{size: 34, want: "h3"},
		{size: 32, want: "h3"},
		{size: 24, want: "h4"},
		{size: 20, want: "h5"},
		{size: 16, want: "h6"},
		{size: 14, want: "body1"},
		{size: 0, want: "body1"},
	}

	for _, tt := range tests {
		n := textNode(ast.TypeText, 200, 40, "Heading")
		if tt.size > 0 {
			n.Styles.Text = &ast.TextStyle{FontSize: tt.size}
		}

		got := classifier.Classify(n)
		require.Equal(t, ast.CategoryTypography, got.Category)
		assert.Equal(t, tt.want, got.Props["variant"], "font size %v", tt.size)
		assert.Equal(t, "Heading", got.Props["text"])
	}
}

func TestClassify_IconSize(t *testing.T) {
	small := classifier.Classify(node(ast.TypeVector, 16, 16))
	assert.Equal(t, "small", small.Props["size"])

	medium := classifier.Classify(node(ast.TypeVector, 32, 32))
	assert.Equal(t, "medium", medium.Props["size"])
}

func TestAnnotate_ClassifiesEveryNode(t *testing.T) {
	screen := &ast.Screen{
		Width:  375,
		Height: 667,
		Root:   node(ast.TypeFrame, 375, 667),
	}
	screen.Root.Children = []*ast.Node{
		textNode(ast.TypeText, 100, 20, "Title"),
		node(ast.TypeRectangle, 200, 40),
	}

	classifier.Annotate([]*ast.Screen{screen})

	require.NotNil(t, screen.Root.Classification)
	assert.Equal(t, ast.CategoryDialog, screen.Root.Classification.Category)

	require.NotNil(t, screen.Root.Children[0].Classification)
	assert.Equal(t, ast.CategoryTypography, screen.Root.Children[0].Classification.Category)

	require.NotNil(t, screen.Root.Children[1].Classification)
	assert.Equal(t, ast.CategoryTextField, screen.Root.Children[1].Classification.Category)
}
