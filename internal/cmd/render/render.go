// Package render provides the render command.
package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/render"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type renderOptions struct {
	*cmdutil.Options
	parser     cmdutil.ParserFlags
	to         string
	noMarkdown bool
	sanitize   bool
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render tags to HTML or markdown",
		Long: `Render the input to HTML. Known tags become their HTML elements
([b] -> <strong>, [url to=...] -> <a href=...>, [quote] -> <blockquote>, ...);
unknown tags become elements of the same name. Text between tags is treated
as markdown unless --no-markdown is set.

With --to markdown, the HTML is converted back to markdown.`,
		Example: `  # Render to HTML
  shortcode render post.txt

  # Render untrusted input
  shortcode render post.txt --sanitize

  # Convert to markdown
  shortcode render post.txt --to markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := cmdutil.NewOptions(cmd)
			if err != nil {
				return err
			}
			opts.Options = global
			if !cmd.Flags().Changed("sanitize") {
				opts.sanitize = global.Config.Sanitize
			}

			input, err := cmdutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runRender(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)
	cmd.Flags().StringVar(&opts.to, "to", "html", "Output format: html, markdown")
	cmd.Flags().BoolVar(&opts.noMarkdown, "no-markdown", false, "Copy text between tags verbatim instead of converting markdown")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize the HTML for untrusted input")

	return cmd
}

func runRender(input string, opts *renderOptions) error {
	renderOpts := &render.Options{
		Markdown: opts.Config.RenderMarkdown() && !opts.noMarkdown,
		Sanitize: opts.sanitize,
		Parse:    opts.ParseOptions(shortcode.DefaultExtractOptions(), &opts.parser),
	}

	var (
		out string
		err error
	)
	switch opts.to {
	case "", "html":
		out, err = render.ToHTML(input, renderOpts)
	case "markdown", "md":
		out, err = render.ToMarkdown(input, renderOpts)
	default:
		return fmt.Errorf("invalid render target: %s (valid targets: html, markdown)", opts.to)
	}
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	_, err = fmt.Fprintln(opts.Out, out)
	return err
}
