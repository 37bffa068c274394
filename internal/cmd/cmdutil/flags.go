package cmdutil

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// ParserFlags are the matching flags shared by every parsing command.
// Only flags that are set change the options.
type ParserFlags struct {
	Precise     bool
	Fast        bool
	Strict      bool
	Lenient     bool
	SelfClosing []string
	MaxDepth    int
}

// AddParserFlags registers the parser flags on cmd.
func AddParserFlags(cmd *cobra.Command, f *ParserFlags) {
	cmd.Flags().BoolVar(&f.Precise, "precise", false, "Match closing tags with a nesting counter")
	cmd.Flags().BoolVar(&f.Fast, "fast", false, "Match the first closing tag with the same name")
	cmd.Flags().BoolVar(&f.Strict, "strict", false, "Fail when a closing tag is missing")
	cmd.Flags().BoolVar(&f.Lenient, "lenient", false, "Treat a tag without a closing tag as self-closing")
	cmd.Flags().StringSliceVar(&f.SelfClosing, "self-closing", nil, "Tag names that are always self-closing (comma separated)")
	cmd.Flags().IntVar(&f.MaxDepth, "max-depth", 0, "Maximum nesting depth of the tree")

	cmd.MarkFlagsMutuallyExclusive("precise", "fast")
	cmd.MarkFlagsMutuallyExclusive("strict", "lenient")
}

// Apply sets the options selected by the flags.
func (f *ParserFlags) Apply(opts *shortcode.Options) {
	switch {
	case f.Precise:
		opts.Precise = true
	case f.Fast:
		opts.Precise = false
	}
	switch {
	case f.Strict:
		opts.Strict = true
	case f.Lenient:
		opts.Strict = false
	}
	if len(f.SelfClosing) > 0 {
		opts.SelfClosingTags = lo.Uniq(append(opts.SelfClosingTags, f.SelfClosing...))
	}
	if f.MaxDepth > 0 {
		opts.MaxDepth = f.MaxDepth
	}
}
