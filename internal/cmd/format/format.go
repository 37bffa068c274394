// Package format provides the format command.
package format

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type formatOptions struct {
	*cmdutil.Options
	parser    cmdutil.ParserFlags
	html      bool
	omitFlags bool
}

// NewCmdFormat creates the format command.
func NewCmdFormat() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Rewrite every tag in normalized form",
		Long: `Re-emit the input with every tag rewritten in normalized form: attributes
in source order, integers unquoted, other values quoted and escaped,
self-closing tags written as [name/]. Text between tags is copied verbatim.

With --html, tags are written as HTML elements instead.`,
		Example: `  # Normalize a file
  shortcode format page.txt

  # Write tags as HTML elements, dropping valueless attributes
  shortcode format page.txt --html --omit-flags`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := cmdutil.NewOptions(cmd)
			if err != nil {
				return err
			}
			opts.Options = global

			input, err := cmdutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runFormat(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)
	cmd.Flags().BoolVar(&opts.html, "html", false, "Write tags as HTML elements")
	cmd.Flags().BoolVar(&opts.omitFlags, "omit-flags", false, "Drop attributes that have no value")

	return cmd
}

func runFormat(input string, opts *formatOptions) error {
	root, err := shortcode.BuildTree(input, opts.ParseOptions(shortcode.DefaultExtractOptions(), &opts.parser))
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	out := shortcode.FormatTree(root, &shortcode.FormatOptions{
		HTML:      opts.html,
		OmitFlags: opts.omitFlags,
	})
	_, err = fmt.Fprint(opts.Out, out)
	return err
}
