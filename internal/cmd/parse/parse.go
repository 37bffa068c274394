// Package parse provides the parse command.
package parse

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type parseOptions struct {
	*cmdutil.Options
	parser   cmdutil.ParserFlags
	offset   int
	nameOnly bool
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse the first tag in the input",
		Long: `Parse the first opening tag at or after --offset, together with its
content and closing tag. Reads stdin when no file is given.

Parsing is strict by default: a tag without a closing tag is an error unless
--lenient is set or the tag is written as [name/].`,
		Example: `  # Parse a tag from stdin
  echo '[quote author="Ann"]hi[/quote]' | shortcode parse

  # Start searching at byte 120, allowing unclosed tags
  shortcode parse page.txt --offset 120 --lenient

  # Only print the tag name
  shortcode parse page.txt --name-only`,
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
			return runParse(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Byte offset to start searching from")
	cmd.Flags().BoolVar(&opts.nameOnly, "name-only", false, "Only print the tag name")

	return cmd
}

func runParse(input string, opts *parseOptions) error {
	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}

	parseOpts := opts.ParseOptions(shortcode.DefaultOptions(), &opts.parser)
	parseOpts.Offset = opts.offset

	if opts.nameOnly {
		name, err := shortcode.ParseName(input, parseOpts)
		if err != nil {
			return fmt.Errorf("failed to parse tag: %w", err)
		}
		return renderer.Render(map[string]string{"name": name}, func() {
			renderer.RenderText(name)
		})
	}

	tag, err := shortcode.ParseOne(input, parseOpts)
	if err != nil {
		return fmt.Errorf("failed to parse tag: %w", err)
	}

	return renderer.Render(tag, func() {
		if renderer.Format() == view.FormatPlain {
			renderer.RenderText(tag.Source)
			return
		}
		renderer.RenderKeyValue("Name", tag.Name)
		renderer.RenderKeyValue("Offset", strconv.Itoa(tag.Offset))
		renderer.RenderKeyValue("Self-closing", strconv.FormatBool(tag.SelfClosing))
		if attrs := view.FormatAttributes(tag.Attributes); attrs != "" {
			renderer.RenderKeyValue("Attributes", attrs)
		}
		if !tag.SelfClosing {
			renderer.RenderKeyValue("Content", strconv.Quote(tag.Content))
		}
		renderer.RenderKeyValue("Source", strconv.Quote(tag.Source))
	})
}
