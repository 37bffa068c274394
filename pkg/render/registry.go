// registry.go maps tag names to the HTML elements they render as.
package render

import "strings"

// Element defines how a tag renders to HTML.
type Element struct {
	Name        string            // HTML element name
	Block       bool              // body is converted as markdown blocks
	Raw         bool              // body is escaped verbatim, nested tags are not rendered
	SelfClosing bool              // void element, content is dropped
	Attrs       map[string]string // tag attribute -> HTML attribute renames
}

// Registry maps tag names to their element definitions.
// Adding a new tag = adding one entry here.
type Registry map[string]Element

// DefaultRegistry is the registry used when Options.Registry is nil.
var DefaultRegistry = Registry{
	"b":      {Name: "strong"},
	"i":      {Name: "em"},
	"u":      {Name: "u"},
	"s":      {Name: "del"},
	"sub":    {Name: "sub"},
	"sup":    {Name: "sup"},
	"color":  {Name: "span", Attrs: map[string]string{"value": "data-color"}},
	"url":    {Name: "a", Attrs: map[string]string{"to": "href"}},
	"code":   {Name: "code", Raw: true},
	"pre":    {Name: "pre", Raw: true, Block: true},
	"quote":  {Name: "blockquote", Block: true},
	"center": {Name: "div", Block: true},
	"list":   {Name: "ul", Block: true},
	"item":   {Name: "li", Block: true},
	"img":    {Name: "img", SelfClosing: true},
	"br":     {Name: "br", SelfClosing: true},
	"hr":     {Name: "hr", SelfClosing: true},
}

// Lookup returns the element for a tag name, normalizing to lowercase.
// Returns ok=false if the tag is not registered; the element then carries the
// tag name itself.
func (r Registry) Lookup(name string) (Element, bool) {
	el, ok := r[strings.ToLower(name)]
	if !ok {
		return Element{Name: strings.ToLower(name)}, false
	}
	return el, true
}

// attrName returns the HTML attribute a tag attribute renders as.
func (el Element) attrName(key string) string {
	if renamed, ok := el.Attrs[key]; ok {
		return renamed
	}
	return key
}
