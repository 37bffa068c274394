// Package shortcode parses bracketed [name attr="value"]content[/name] tags
// out of free text and builds a tree of tag and text nodes.
package shortcode

import "github.com/samber/lo"

// Mode selects how far ParseOne goes.
type Mode int

const (
	ModeNormal  Mode = iota // full parse: name, attributes, content and span
	ModeTagName             // stop as soon as the opening tag name is known
)

// DefaultMaxDepth bounds the nesting depth BuildTree descends to.
const DefaultMaxDepth = 256

// Options configures parsing, extraction and tree building.
type Options struct {
	// Offset is the byte position in the input to start scanning from.
	Offset int

	// Strict reports an absent closing tag as ErrMissingClosingTag. When false,
	// a tag whose closing tag cannot be found is treated as self-closing.
	Strict bool

	// Precise matches closing tags with a nesting counter so that nested
	// same-named tags balance. The fast strategy takes the first literal closer.
	Precise bool

	// SelfClosingTags lists names that are self-closing even without [name/].
	SelfClosingTags []string

	// Mode selects a full parse or a name-only parse.
	Mode Mode

	// MaxDepth bounds tree depth; zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the options ParseOne uses when none are given.
func DefaultOptions() *Options {
	return &Options{
		Strict:   true,
		MaxDepth: DefaultMaxDepth,
	}
}

// DefaultExtractOptions returns the options ExtractTags and BuildTree use when
// none are given: lenient and precise.
func DefaultExtractOptions() *Options {
	return &Options{
		Precise:  true,
		MaxDepth: DefaultMaxDepth,
	}
}

// Clone returns a copy of the options.
func (o *Options) Clone() *Options {
	cloned := *o
	cloned.SelfClosingTags = append([]string(nil), o.SelfClosingTags...)
	return &cloned
}

// IsSelfClosingTag reports whether name is listed in SelfClosingTags.
func (o *Options) IsSelfClosingTag(name string) bool {
	return lo.Contains(o.SelfClosingTags, name)
}

func (o *Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
