// Package render converts text containing shortcodes to HTML or markdown.
package render

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// mdParser is a pre-configured goldmark instance with GFM table and strikethrough.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Rendered tags are swapped for placeholders while the surrounding markdown is
// converted. The marker contains no markdown punctuation. A render extends the
// prefix until it no longer occurs in the input.
const (
	placeholderPrefix = "SCMACRO"
	placeholderSuffix = "END"
)

// Options configures ToHTML and ToMarkdown.
type Options struct {
	// Markdown converts text between tags as markdown. When false, text is
	// HTML-escaped and copied verbatim.
	Markdown bool

	// Sanitize passes the output through a user-generated-content policy.
	Sanitize bool

	// Registry overrides DefaultRegistry.
	Registry Registry

	// Parse configures tree building. Nil uses shortcode.DefaultExtractOptions.
	Parse *shortcode.Options
}

// DefaultOptions returns options that convert markdown without sanitizing.
func DefaultOptions() *Options {
	return &Options{Markdown: true}
}

// FormatPlaceholder returns the default placeholder marker for a rendered tag ID.
func FormatPlaceholder(id int) string {
	return formatMarker(placeholderPrefix, id)
}

func formatMarker(prefix string, id int) string {
	return prefix + strconv.Itoa(id) + placeholderSuffix
}

// markerPrefix returns a placeholder prefix that input cannot contain, either
// literally or through character references.
func markerPrefix(input string) string {
	decoded := html.UnescapeString(input)
	prefix := placeholderPrefix
	for strings.Contains(input, prefix) || strings.Contains(decoded, prefix) {
		prefix += "X"
	}
	return prefix
}

type renderer struct {
	opts     *Options
	registry Registry
	prefix   string
	warned   map[string]bool
}

// ToHTML renders every tag in input to its registered HTML element.
// A nil opts uses DefaultOptions.
func ToHTML(input string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if input == "" {
		return "", nil
	}

	root, err := shortcode.BuildTree(input, opts.Parse)
	if err != nil {
		return "", fmt.Errorf("failed to parse shortcodes: %w", err)
	}

	r := &renderer{
		opts:     opts,
		registry: opts.Registry,
		prefix:   markerPrefix(input),
		warned:   map[string]bool{},
	}
	if r.registry == nil {
		r.registry = DefaultRegistry
	}

	out, err := r.renderBody(root, true)
	if err != nil {
		return "", err
	}

	if opts.Sanitize {
		out = bluemonday.UGCPolicy().Sanitize(out)
	}
	return out, nil
}

// renderBody renders the children of node. Tag children become placeholders
// while the text is converted, then are swapped back in.
func (r *renderer) renderBody(node *shortcode.Node, block bool) (string, error) {
	children := node.Children
	if !node.HasChildren() {
		children = []*shortcode.Node{shortcode.NewTextNode(node.Text)}
	}

	var body strings.Builder
	rendered := make(map[int]string)
	blocks := make(map[int]bool)
	for _, child := range children {
		if child.IsText() {
			if r.opts.Markdown {
				body.WriteString(child.Text)
			} else {
				body.WriteString(html.EscapeString(child.Text))
			}
			continue
		}

		out, isBlock, err := r.renderTag(child)
		if err != nil {
			return "", err
		}
		id := len(rendered)
		rendered[id] = out
		blocks[id] = isBlock
		body.WriteString(formatMarker(r.prefix, id))
	}

	text := body.String()
	if r.opts.Markdown && block {
		var buf bytes.Buffer
		if err := mdParser.Convert([]byte(text), &buf); err != nil {
			return "", fmt.Errorf("failed to convert markdown: %w", err)
		}
		text = buf.String()
	} else if r.opts.Markdown {
		text = html.EscapeString(text)
	}

	return postprocess(text, r.prefix, rendered, blocks), nil
}

// renderTag renders a tag node and reports whether its element is block-level.
func (r *renderer) renderTag(node *shortcode.Node) (string, bool, error) {
	tag := node.Tag
	el, ok := r.registry.Lookup(tag.Name)
	if !ok && !r.warned[el.Name] {
		r.warned[el.Name] = true
		shortcode.Logger.WithFields(logrus.Fields{
			"tag":    tag.Name,
			"offset": tag.Offset,
		}).Warn("unknown tag, rendering as a plain element")
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(el.Name)
	if tag.Attributes != nil {
		for _, key := range tag.Attributes.Keys {
			sb.WriteString(" ")
			sb.WriteString(html.EscapeString(el.attrName(key)))
			if value, ok := tag.Attributes.Get(key); ok {
				sb.WriteString(`="`)
				sb.WriteString(html.EscapeString(value))
				sb.WriteString(`"`)
			}
		}
	}

	if el.SelfClosing {
		sb.WriteString("/>")
		return sb.String(), el.Block, nil
	}
	sb.WriteString(">")

	switch {
	case el.Raw:
		sb.WriteString(html.EscapeString(tag.Content))
	case tag.SelfClosing:
	default:
		inner, err := r.renderBody(node, el.Block)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(inner)
	}

	sb.WriteString("</")
	sb.WriteString(el.Name)
	sb.WriteString(">")
	return sb.String(), el.Block, nil
}

// postprocess replaces placeholder markers with rendered tags. Block-level
// tags that goldmark wrapped in a paragraph of their own are unwrapped.
func postprocess(text, prefix string, rendered map[int]string, blocks map[int]bool) string {
	ids := make([]int, 0, len(rendered))
	for id := range rendered {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		placeholder := formatMarker(prefix, id)
		wrapped := "<p>" + placeholder + "</p>"
		if blocks[id] && strings.Contains(text, wrapped) {
			text = strings.Replace(text, wrapped, rendered[id], 1)
			continue
		}
		text = strings.Replace(text, placeholder, rendered[id], 1)
	}
	return text
}
