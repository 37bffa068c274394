package shortcode

import (
	"strings"
)

// WalkFunc is called for every node visited by Walk. Returning false skips
// the node's children.
type WalkFunc func(node *Node, depth int) bool

// Walk visits node and its descendants depth-first, in source order.
func Walk(node *Node, fn WalkFunc) {
	walk(node, 0, fn)
}

func walk(node *Node, depth int, fn WalkFunc) {
	if node == nil || !fn(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}

// Tags returns every tag in the tree in document order.
func Tags(root *Node) []*Tag {
	var tags []*Tag
	Walk(root, func(n *Node, _ int) bool {
		if n.Tag != nil {
			tags = append(tags, n.Tag)
		}
		return true
	})
	return tags
}

// PlainText returns the text of the tree with the markup removed. Sibling
// texts are trimmed and joined with a single space; self-closing tags
// contribute nothing.
func PlainText(node *Node) string {
	if node == nil {
		return ""
	}
	if !node.HasChildren() {
		if node.Tag != nil && node.Tag.SelfClosing {
			return ""
		}
		return node.Text
	}

	parts := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if text := strings.TrimSpace(PlainText(child)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
