package shortcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTag(name, content string, selfClosing bool, attrs ...string) *Tag {
	tag := NewTag(name, content)
	tag.SelfClosing = selfClosing
	for i := 0; i+1 < len(attrs); i += 2 {
		tag.Attributes.Set(attrs[i], attrs[i+1])
	}
	return tag
}

func TestFormat_Markup(t *testing.T) {
	flagged := NewTag("b", "Bold text")
	flagged.Attributes.SetFlag("checked")

	tests := []struct {
		name string
		tag  *Tag
		opts *FormatOptions
		want string
	}{
		{
			"simple with content",
			NewTag("b", "Bold text"),
			nil,
			"[b]Bold text[/b]",
		},
		{
			"text attribute",
			newTestTag("b", "Bold text", false, "font-weight", "bolder"),
			nil,
			`[b font-weight="bolder"]Bold text[/b]`,
		},
		{
			"flag attribute",
			flagged,
			nil,
			"[b checked]Bold text[/b]",
		},
		{
			"flag attribute omitted",
			flagged,
			&FormatOptions{OmitFlags: true},
			"[b]Bold text[/b]",
		},
		{
			"self-closing",
			NewSelfClosingTag("img"),
			nil,
			"[img/]",
		},
		{
			"self-closing with attributes",
			newTestTag("img", "", true, "src", "sample.jpeg", "align", "center"),
			nil,
			`[img src="sample.jpeg" align="center"/]`,
		},
		{
			"escapes quotes",
			newTestTag("b", "Bold text", false, "name", `Mr. "Badass" McGee`),
			nil,
			`[b name="Mr. \"Badass\" McGee"]Bold text[/b]`,
		},
		{
			"escapes square brackets",
			newTestTag("b", "Bold text", false, "name", "[b]embedded[/b]"),
			nil,
			`[b name="&#91;b&#93;embedded&#91;/b&#93;"]Bold text[/b]`,
		},
		{
			"escapes ampersands",
			newTestTag("url", "link", false, "to", "a?x=1&y=[2]"),
			nil,
			`[url to="a?x=1&amp;y=&#91;2&#93;"]link[/url]`,
		},
		{
			"integers are not literals",
			newTestTag("b", "Bold text", false, "one", "100%", "two", "123", "three", "123.45", "four", "-12345"),
			nil,
			`[b one="100%" two=123 three="123.45" four=-12345]Bold text[/b]`,
		},
		{
			"values are trimmed",
			newTestTag("b", "", false, "x", "  spaced  ", "y", "   "),
			nil,
			`[b x="spaced" y][/b]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.tag, tt.opts))
		})
	}
}

func TestFormat_HTML(t *testing.T) {
	opts := &FormatOptions{HTML: true}
	flagged := NewTag("b", "Bold text")
	flagged.Attributes.SetFlag("checked")

	tests := []struct {
		name string
		tag  *Tag
		want string
	}{
		{"simple with content", NewTag("b", "Bold text"), "<b>Bold text</b>"},
		{"text attribute", newTestTag("b", "Bold text", false, "font-weight", "bolder"), `<b font-weight="bolder">Bold text</b>`},
		{"flag attribute", flagged, "<b checked>Bold text</b>"},
		{"self-closing", NewSelfClosingTag("img"), "<img/>"},
		{
			"self-closing with attributes",
			newTestTag("img", "", true, "src", "sample.jpeg", "align", "center"),
			`<img src="sample.jpeg" align="center"/>`,
		},
		{
			"escapes quotes",
			newTestTag("b", "Bold text", false, "name", `Mr. "Badass" McGee`),
			`<b name="Mr. &#34;Badass&#34; McGee">Bold text</b>`,
		},
		{
			"escapes markup in values",
			newTestTag("a", "x", false, "title", `say "hi" <b> & 'bye'`),
			`<a title="say &#34;hi&#34; &lt;b&gt; &amp; &#39;bye&#39;">x</a>`,
		},
		{
			"escapes name and keys",
			newTestTag("x<y", "x", false, `k"<`, "v"),
			`<x&lt;y k&#34;&lt;="v">x</x&lt;y>`,
		},
		{
			"backslash kept verbatim",
			newTestTag("b", "x", false, "path", `C:\dir`),
			`<b path="C:\dir">x</b>`,
		},
		{
			"every value is quoted",
			newTestTag("b", "Bold text", false, "one", "100%", "two", "123", "three", "123.45", "four", "12345"),
			`<b one="100%" two="123" three="123.45" four="12345">Bold text</b>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.tag, opts))
		})
	}
}

func TestTag_StringIsMarkup(t *testing.T) {
	tag := newTestTag("any", "Whatever", false, "sample", "123")
	assert.Equal(t, Format(tag, nil), tag.String())
	assert.Equal(t, "[any sample=123]Whatever[/any]", tag.String())
}

func TestFormat_RoundTrip(t *testing.T) {
	values := []string{
		`Mr. "Badass" McGee`,
		`"`,
		`back\slash`,
		`trailing\`,
		`mixed \" both`,
		"a[b]c",
		"[/b]",
		"&#91;literal&#93;",
		"fish & chips",
		`&amp; \&#93;`,
		"plain",
		"42",
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			tag := newTestTag("b", "body", false, "name", value)

			parsed, err := ParseOne(Format(tag, nil), nil)
			require.NoError(t, err)

			got, ok := parsed.Attributes.Get("name")
			require.True(t, ok)
			assert.Equal(t, value, got)
			assert.Equal(t, "body", parsed.Content)
		})
	}
}

func TestFormatTree(t *testing.T) {
	root, err := BuildTree(`pre [b  x=1]hi [i k=v]t[/i][/b] tail [hr /]`, nil)
	require.NoError(t, err)

	assert.Equal(t, `pre [b x=1]hi [i k="v"]t[/i][/b] tail [hr/]`, FormatTree(root, nil))
	assert.Equal(t, `pre <b x="1">hi <i k="v">t</i></b> tail <hr/>`, FormatTree(root, &FormatOptions{HTML: true}))
}

func TestFormatTree_PlainText(t *testing.T) {
	root, err := BuildTree("no tags", nil)
	require.NoError(t, err)
	assert.Equal(t, "no tags", FormatTree(root, nil))
}
