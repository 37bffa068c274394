// formatter.go renders tags back to markup or to HTML elements.
package shortcode

import (
	"html"
	"regexp"
	"strings"
)

// FormatOptions configures Format.
type FormatOptions struct {
	// HTML renders <name attrs>content</name> instead of bracket markup.
	HTML bool

	// OmitFlags drops attributes that have no value instead of writing the bare key.
	OmitFlags bool
}

var rxInteger = regexp.MustCompile(`^-?[0-9]+$`)

// Quoted markup values hide brackets behind character references so the
// header still ends at the first ']'. The tokenizer reverses this.
var (
	literalEscaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "&", "&amp;", "[", "&#91;", "]", "&#93;")
	literalUnescaper = strings.NewReplacer("&amp;", "&", "&#91;", "[", "&#93;", "]")
)

// Format renders tag as markup: [name key=1 key="text"]content[/name], or
// [name key="text"/] when self-closing. A nil opts renders markup with flags.
//
// In HTML mode the name, keys and values are HTML-escaped. In markup mode
// quoted values escape '\' and '"' with a backslash and write '&', '[' and ']'
// as &amp;, &#91; and &#93;, so ParseOne reads back the original value.
func Format(tag *Tag, opts *FormatOptions) string {
	if opts == nil {
		opts = &FormatOptions{}
	}

	open, end := "[", "]"
	if opts.HTML {
		open, end = "<", ">"
	}

	var sb strings.Builder
	name := tag.Name
	if opts.HTML {
		name = html.EscapeString(name)
	}

	sb.WriteString(open)
	sb.WriteString(name)

	if tag.Attributes != nil {
		for _, key := range tag.Attributes.Keys {
			var value string
			if v := tag.Attributes.Lookup[key]; v != nil {
				value = strings.TrimSpace(*v)
			}
			if opts.HTML {
				key = html.EscapeString(key)
			}
			if value == "" {
				if !opts.OmitFlags {
					sb.WriteByte(attrSeparator)
					sb.WriteString(key)
				}
				continue
			}

			sb.WriteByte(attrSeparator)
			sb.WriteString(key)
			sb.WriteByte(attrAssign)
			switch {
			case opts.HTML:
				sb.WriteByte(literalWrapper)
				sb.WriteString(html.EscapeString(value))
				sb.WriteByte(literalWrapper)
			case rxInteger.MatchString(value):
				sb.WriteString(value)
			default:
				sb.WriteByte(literalWrapper)
				sb.WriteString(literalEscaper.Replace(value))
				sb.WriteByte(literalWrapper)
			}
		}
	}

	if tag.SelfClosing {
		sb.WriteByte(tagCloser)
		sb.WriteString(end)
		return sb.String()
	}

	sb.WriteString(end)
	sb.WriteString(tag.Content)
	sb.WriteString(open)
	sb.WriteByte(tagCloser)
	sb.WriteString(name)
	sb.WriteString(end)
	return sb.String()
}

// FormatTree re-renders every tag in the tree through Format, copying text
// nodes verbatim. Nested tags are formatted before their parents.
func FormatTree(node *Node, opts *FormatOptions) string {
	if node == nil {
		return ""
	}
	if node.IsText() {
		return node.Text
	}

	content := node.Text
	if node.HasChildren() {
		var sb strings.Builder
		for _, child := range node.Children {
			sb.WriteString(FormatTree(child, opts))
		}
		content = sb.String()
	}

	if node.IsRoot() {
		return content
	}

	tag := *node.Tag
	tag.Content = content
	return Format(&tag, opts)
}
