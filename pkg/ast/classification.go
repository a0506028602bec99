package ast

import "sort"

// Category is a design-system component category assigned by the classifier.
type Category string

// Categories, in no particular order. CategoryContainer is the default for
// nodes no heuristic rule claims; it carries no design-system binding.
const (
	CategoryButton      Category = "Button"
	CategoryCard        Category = "Card"
	CategoryTypography  Category = "Typography"
	CategoryTextField   Category = "TextField"
	CategoryIcon        Category = "Icon"
	CategoryCheckbox    Category = "Checkbox"
	CategoryChip        Category = "Chip"
	CategoryDialog      Category = "Dialog"
	CategoryList        Category = "List"
	CategoryRadioButton Category = "RadioButton"
	CategorySlider      Category = "Slider"
	CategoryTab         Category = "Tab"
	CategoryToggle      Category = "Toggle"
	CategoryContainer   Category = "Container"
)

// Classification is the category plus the default prop bundle the classifier
// attaches to a node.
type Classification struct {
	Category Category
	Props    map[string]any
}

// PropKeys returns the prop names in sorted order so emitted attribute lists
// are deterministic.
func (c *Classification) PropKeys() []string {
	keys := make([]string, 0, len(c.Props))
	for k := range c.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Is reports whether the node has been classified into the given category.
func (n *Node) Is(cat Category) bool {
	return n.Classification != nil && n.Classification.Category == cat
}
