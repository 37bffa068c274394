// tag.go defines the parsed tag record and its attribute set.
package shortcode

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// Tag is one parsed occurrence of [name attrs]content[/name] or [name attrs/].
type Tag struct {
	Name        string      `yaml:"name"`              // tag identifier, never empty for a parsed tag
	Attributes  *Attributes `yaml:"attributes"`        // attributes in source order
	Content     string      `yaml:"content,omitempty"` // raw text between the tags; empty when SelfClosing
	SelfClosing bool        `yaml:"self_closing"`      // true if the tag has no closing tag
	Source      string      `yaml:"source"`            // exact source span, opening bracket to last closing bracket
	Offset      int         `yaml:"offset"`            // byte offset of Source in the scanned input
}

// NewTag creates a tag with the given name and content and no attributes.
func NewTag(name, content string) *Tag {
	return &Tag{
		Name:       name,
		Content:    content,
		Attributes: NewAttributes(),
	}
}

// NewSelfClosingTag creates a self-closing tag with no attributes.
func NewSelfClosingTag(name string) *Tag {
	return &Tag{
		Name:        name,
		SelfClosing: true,
		Attributes:  NewAttributes(),
	}
}

// EndOffset returns the byte offset just past the tag's source span.
func (t *Tag) EndOffset() int {
	return t.Offset + len(t.Source)
}

// HasContent reports whether the tag has a body (possibly empty).
func (t *Tag) HasContent() bool {
	return !t.SelfClosing
}

// ClosingTag returns the literal closing tag for this tag's name.
func (t *Tag) ClosingTag() string {
	return closingTagFor(t.Name)
}

// String renders the tag back to markup.
func (t *Tag) String() string {
	return Format(t, nil)
}

// MarshalJSON encodes the tag with a null content for self-closing tags.
func (t *Tag) MarshalJSON() ([]byte, error) {
	var content *string
	if !t.SelfClosing {
		content = &t.Content
	}
	attrs := t.Attributes
	if attrs == nil {
		attrs = NewAttributes()
	}
	return json.Marshal(struct {
		Name        string      `json:"name"`
		Attributes  *Attributes `json:"attributes"`
		Content     *string     `json:"content"`
		SelfClosing bool        `json:"self_closing"`
		Source      string      `json:"source"`
		Offset      int         `json:"offset"`
	}{t.Name, attrs, content, t.SelfClosing, t.Source, t.Offset})
}

// Attributes is an insertion-ordered set of tag attributes. A flag attribute
// (written without a value) is stored with a nil value.
type Attributes struct {
	Keys   []string
	Lookup map[string]*string
}

// NewAttributes creates an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{
		Keys:   make([]string, 0),
		Lookup: make(map[string]*string),
	}
}

// Set stores key=value. Re-setting a key keeps its original position.
func (a *Attributes) Set(key, value string) {
	a.set(key, &value)
}

// SetFlag stores key as a flag attribute without a value.
func (a *Attributes) SetFlag(key string) {
	a.set(key, nil)
}

func (a *Attributes) set(key string, value *string) {
	if _, present := a.Lookup[key]; !present {
		a.Keys = append(a.Keys, key)
	}
	a.Lookup[key] = value
}

// Get returns the value of key. ok is false when the key is absent or a flag.
func (a *Attributes) Get(key string) (value string, ok bool) {
	if a == nil {
		return "", false
	}
	if v := a.Lookup[key]; v != nil {
		return *v, true
	}
	return "", false
}

// Has reports whether key is present, with or without a value.
func (a *Attributes) Has(key string) bool {
	if a == nil {
		return false
	}
	_, present := a.Lookup[key]
	return present
}

// IsFlag reports whether key is present without a value.
func (a *Attributes) IsFlag(key string) bool {
	if a == nil {
		return false
	}
	v, present := a.Lookup[key]
	return present && v == nil
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Keys)
}

// Map returns the attributes as a plain map; flags map to the empty string.
func (a *Attributes) Map() map[string]string {
	if a == nil {
		return map[string]string{}
	}
	return lo.MapValues(a.Lookup, func(v *string, _ string) string {
		return lo.FromPtr(v)
	})
}

// Clone returns a deep copy of the attribute set.
func (a *Attributes) Clone() *Attributes {
	cloned := NewAttributes()
	if a == nil {
		return cloned
	}
	for _, key := range a.Keys {
		if v := a.Lookup[key]; v != nil {
			cloned.Set(key, *v)
		} else {
			cloned.SetFlag(key)
		}
	}
	return cloned
}

// MarshalJSON encodes the attributes as an object in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if a != nil {
		for i, key := range a.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(a.Lookup[key])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the attributes as a mapping.
func (a *Attributes) MarshalYAML() (interface{}, error) {
	out := make(map[string]*string, a.Len())
	if a != nil {
		for _, key := range a.Keys {
			out[key] = a.Lookup[key]
		}
	}
	return out, nil
}

func closingTagFor(name string) string {
	return "[/" + name + "]"
}
