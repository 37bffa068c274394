// Package extract provides the extract command.
package extract

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type extractOptions struct {
	*cmdutil.Options
	parser cmdutil.ParserFlags
	spans  bool
}

// NewCmdExtract creates the extract command.
func NewCmdExtract() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the top-level tags in the input",
		Long: `List every top-level tag in the input in source order. Tags nested
inside another tag's content are not listed; use 'shortcode tree' for those.

Extraction is lenient and precise by default: it stops quietly at the first
malformed tag. With --strict the malformed tag is reported as an error after
the tags found before it.`,
		Example: `  # List tags in a file
  shortcode extract page.txt

  # Print each tag's source span
  shortcode extract page.txt --spans

  # JSON output
  cat page.txt | shortcode extract -o json`,
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
			return runExtract(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)
	cmd.Flags().BoolVar(&opts.spans, "spans", false, "Print the source span of each tag")

	return cmd
}

func runExtract(input string, opts *extractOptions) error {
	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}

	parseOpts := opts.ParseOptions(shortcode.DefaultExtractOptions(), &opts.parser)
	tags, extractErr := shortcode.ExtractTags(input, parseOpts)

	if opts.spans && !renderer.IsStructured() {
		for _, tag := range tags {
			renderer.RenderText(tag.Source)
		}
	} else {
		if tags == nil {
			tags = []*shortcode.Tag{}
		}
		err := renderer.Render(tags, func() {
			headers := []string{"OFFSET", "NAME", "SELF-CLOSING", "ATTRIBUTES"}
			rows := make([][]string, 0, len(tags))
			for _, tag := range tags {
				rows = append(rows, []string{
					strconv.Itoa(tag.Offset),
					tag.Name,
					strconv.FormatBool(tag.SelfClosing),
					view.Truncate(view.FormatAttributes(tag.Attributes), 60),
				})
			}
			renderer.RenderTable(headers, rows)
		})
		if err != nil {
			return err
		}
	}

	if extractErr != nil {
		return fmt.Errorf("extraction stopped after %d tags: %w", len(tags), extractErr)
	}
	return nil
}
