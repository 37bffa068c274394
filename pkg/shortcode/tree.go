// tree.go builds a node hierarchy of tags and the text around them.
package shortcode

import (
	"strings"
)

// NodeType indicates whether a node wraps a tag or a text fragment.
type NodeType int

const (
	NodeTag  NodeType = iota // a tag, or the root holding the whole input
	NodeText                 // a literal text fragment between tags
)

func (t NodeType) String() string {
	switch t {
	case NodeTag:
		return "tag"
	case NodeText:
		return "text"
	default:
		return "unknown"
	}
}

// MarshalText encodes the node type by name.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node is one element of a parsed tree.
//
// A tag node wraps a Tag (or, for the root, the raw input) and holds its
// children in source order. A text node holds a fragment and no children.
// Concatenating the sources of a node's children reproduces the node's Text.
type Node struct {
	Type     NodeType `json:"type" yaml:"type"`
	Tag      *Tag     `json:"tag,omitempty" yaml:"tag,omitempty"`           // nil for the root and text nodes
	Text     string   `json:"text" yaml:"text"`                             // root input, tag content, or text fragment
	Children []*Node  `json:"children,omitempty" yaml:"children,omitempty"` // empty for text and leaf tag nodes
}

// NewRootNode creates the root node for a whole input text.
func NewRootNode(text string) *Node {
	return &Node{Type: NodeTag, Text: text}
}

// NewTagNode creates a node for a parsed tag; its text is the tag content.
func NewTagNode(tag *Tag) *Node {
	return &Node{Type: NodeTag, Tag: tag, Text: tag.Content}
}

// NewTextNode creates a text node.
func NewTextNode(text string) *Node {
	return &Node{Type: NodeText, Text: text}
}

// IsRoot reports whether the node was built from raw text rather than a tag.
func (n *Node) IsRoot() bool {
	return n.Type == NodeTag && n.Tag == nil
}

// IsText reports whether the node is a text fragment.
func (n *Node) IsText() bool {
	return n.Type == NodeText
}

// HasChildren reports whether the node has any child nodes.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Source returns the node's original span: the tag source for a tag node,
// the input for the root, the fragment for a text node.
func (n *Node) Source() string {
	if n.Type == NodeTag && n.Tag != nil {
		return n.Tag.Source
	}
	return n.Text
}

// Reconstruct concatenates the sources of the node's children, or returns the
// node's text when it has none. The result always equals n.Text.
func (n *Node) Reconstruct() string {
	if !n.HasChildren() {
		return n.Text
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.Source())
	}
	return sb.String()
}

// Append adds children to the node.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// BuildTree parses text into a tree rooted at a node holding the whole text.
// A nil opts uses DefaultExtractOptions. opts.Offset is ignored: every level
// is scanned from its start.
func BuildTree(text string, opts *Options) (*Node, error) {
	if opts == nil {
		opts = DefaultExtractOptions()
	}
	scan := opts.Clone()
	scan.Offset = 0
	scan.Mode = ModeNormal

	root := NewRootNode(text)
	if err := traverse(root, scan, 0); err != nil {
		return root, err
	}
	return root, nil
}

// traverse extracts the tags of node.Text into child nodes and descends into them.
func traverse(node *Node, opts *Options, depth int) error {
	tags, err := ExtractTags(node.Text, opts)
	if err != nil {
		return err
	}

	last := 0
	for _, tag := range tags {
		if tag.Offset > last {
			node.Append(NewTextNode(node.Text[last:tag.Offset]))
		}

		child := NewTagNode(tag)
		node.Append(child)
		last = tag.EndOffset()

		if tag.SelfClosing || tag.Content == "" {
			continue
		}
		if depth+1 > opts.maxDepth() {
			return newParseError(KindTooDeep, tag.Offset,
				"tag %q exceeds the maximum depth of %d", tag.Name, opts.maxDepth())
		}
		if err := traverse(child, opts, depth+1); err != nil {
			return err
		}
	}

	if len(tags) > 0 && last < len(node.Text) {
		node.Append(NewTextNode(node.Text[last:]))
	}

	Logger.WithField("depth", depth).Tracef("traversed %d tags", len(tags))
	return nil
}
