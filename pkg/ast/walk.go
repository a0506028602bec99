package ast

// Walk visits every node of the subtree rooted at n in depth-first document
// order, parents before children. Returning false from fn skips the node's
// children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// WalkScreens visits every node of every screen in order.
func WalkScreens(screens []*Screen, fn func(*Node) bool) {
	for _, s := range screens {
		Walk(s.Root, fn)
	}
}

// ScreenCount returns the number of navigable screens.
func ScreenCount(screens []*Screen) int {
	return len(screens)
}

// CountNodes returns the total number of nodes across all screens, screen
// roots included. This is the element count the low-yield check measures.
func CountNodes(screens []*Screen) int {
	total := 0
	WalkScreens(screens, func(*Node) bool {
		total++
		return true
	})
	return total
}

// ExtractAllText collects the text content of every text-bearing node across
// all screens, in document order.
func ExtractAllText(screens []*Screen) []string {
	var texts []string
	WalkScreens(screens, func(n *Node) bool {
		if n.Metadata.TextContent != "" {
			texts = append(texts, n.Metadata.TextContent)
		}
		return true
	})
	return texts
}

// Depth returns the depth of the subtree rooted at n; a leaf has depth 1.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, child := range n.Children {
		if d := Depth(child); d > max {
			max = d
		}
	}
	return max + 1
}

// ContainsID reports whether any node in the screen set carries the given ID.
func ContainsID(screens []*Screen, id string) bool {
	found := false
	WalkScreens(screens, func(n *Node) bool {
		if n.ID == id {
			found = true
		}
		return !found
	})
	return found
}
