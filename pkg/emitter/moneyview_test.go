package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/ast"
	"github.com/hellenic-development/figma-codegen/pkg/emitter"
)

// checkoutScreen nests a summary card inside the screen so surface-relative
// positioning has something to rebase against.
func checkoutScreen() *ast.Screen {
	cardTitle := &ast.Node{
		ID: "3:2", Type: ast.TypeText, Name: "Card Title", Visible: true,
		Layout:   layout(70, 120, 200, 30),
		Metadata: ast.Metadata{TextContent: "Order summary"},
	}
	payButton := &ast.Node{
		ID: "3:3", Type: ast.TypeRectangle, Name: "Pay", Visible: true,
		Layout:   layout(70, 260, 200, 44),
		Metadata: ast.Metadata{TextContent: "Pay now"},
	}
	card := &ast.Node{
		ID: "3:1", Type: ast.TypeFrame, Name: "Summary", Visible: true,
		Layout:   layout(50, 100, 240, 220),
		Styles:   ast.Styles{Fills: solid("rgba(255, 255, 255, 1)")},
		Children: []*ast.Node{cardTitle, payButton},
	}
	amountField := &ast.Node{
		ID: "3:4", Type: ast.TypeRectangle, Name: "Amount", Visible: true,
		Layout: layout(20, 400, 300, 40),
	}
	root := &ast.Node{
		ID: "3:0", Type: ast.TypeFrame, Name: "Checkout", Visible: true,
		Layout:   layout(0, 0, 375, 667),
		Children: []*ast.Node{card, amountField},
	}
	return &ast.Screen{Root: root, Width: 375, Height: 667}
}

func TestEmit_MoneyviewComponents(t *testing.T) {
	out, err := emitter.Emit(annotated(checkoutScreen()), emitter.FormatMoneyview,
		emitter.Options{ComponentName: "App"})
	require.NoError(t, err)

	src := mustGet(t, out, "src/App.jsx")

	assert.Contains(t, src, ">Pay now</MvButton>")
	assert.Contains(t, src, `<MvButton variant="contained"`)
	assert.Contains(t, src, ">Order summary</MvTypography>")
	assert.Contains(t, src, `<MvTypography variant="body1"`)
	assert.Contains(t, src, `<MvCard elevation={1} variant="elevation"`)
	assert.Contains(t, src, `<MvTextField placeholder="Amount" variant="outlined"`)
	assert.Contains(t, src, " />", "leaf components self-close")

	assert.Contains(t, src, "import { MvButton, MvCard, MvTypography, MvTextField } from '@moneyview/ui';")
	assert.Contains(t, src, "import './utilities.css';")
	assert.NotContains(t, src, "MvDialog", "unused components stay out of the import")
}

func TestEmit_MoneyviewRebasesInsideSurfaces(t *testing.T) {
	screens := annotated(checkoutScreen())

	out, err := emitter.Emit(screens, emitter.FormatMoneyview, emitter.Options{ComponentName: "App"})
	require.NoError(t, err)
	src := mustGet(t, out, "src/App.jsx")

	// The card keeps its document position; its children are repositioned
	// relative to the card's origin.
	assert.Contains(t, src, "left: '50px', top: '100px'")
	assert.Contains(t, src, "left: '20px', top: '20px', width: '200px', height: '30px'",
		"card title must be card-relative")
	assert.Contains(t, src, "left: '20px', top: '160px'", "pay button must be card-relative")
	assert.NotContains(t, src, "left: '70px'", "no child keeps document coordinates inside a card")

	// The other targets keep document-origin coordinates even for nested
	// children.
	out, err = emitter.Emit(screens, emitter.FormatHTML, emitter.Options{})
	require.NoError(t, err)
	page := mustGet(t, out, "index.html")
	assert.Contains(t, page, "left:70px; top:120px")
}

func TestEmit_MoneyviewUtilityStylesheet(t *testing.T) {
	small := &ast.Node{
		ID: "4:1", Type: ast.TypeText, Name: "Caption", Visible: true,
		Layout:   layout(10, 10, 100, 20),
		Styles:   ast.Styles{Text: &ast.TextStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 400, TextAlign: "left"}},
		Metadata: ast.Metadata{TextContent: "Caption"},
	}
	big := &ast.Node{
		ID: "4:2", Type: ast.TypeText, Name: "Heading", Visible: true,
		Layout:   layout(10, 40, 300, 40),
		Styles:   ast.Styles{Text: &ast.TextStyle{FontFamily: "Inter", FontSize: 32, FontWeight: 700, TextAlign: "left"}},
		Metadata: ast.Metadata{TextContent: "Heading"},
	}
	rounded := &ast.Node{
		ID: "4:3", Type: ast.TypeRectangle, Name: "Panel", Visible: true,
		Layout: layout(10, 100, 300, 120),
		Styles: ast.Styles{Fills: solid("rgba(240, 240, 240, 1)"), CornerRadius: 8},
	}
	root := &ast.Node{
		ID: "4:0", Type: ast.TypeFrame, Name: "Tokens", Visible: true,
		Layout:   layout(0, 0, 375, 667),
		Children: []*ast.Node{small, big, rounded},
	}
	screens := annotated(&ast.Screen{Root: root, Width: 375, Height: 667})

	// Utilities are derived from the document even when the stylesheet is off.
	out, err := emitter.Emit(screens, emitter.FormatMoneyview, emitter.Options{IncludeStyles: false})
	require.NoError(t, err)

	css := mustGet(t, out, "src/utilities.css")
	assert.Contains(t, css, ".mv-text-xs {\n  font-size: 14px;\n}")
	assert.Contains(t, css, ".mv-text-sm {\n  font-size: 32px;\n}")
	assert.Contains(t, css, ".mv-rounded-sm {\n  border-radius: 8px;\n}")
	assert.Contains(t, css, ".mv-rounded-full")

	for _, path := range out.Files.Paths() {
		assert.NotEqual(t, "src/styles.css", path, "per-node stylesheet stays disabled")
	}
}
