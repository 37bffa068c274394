// Package text provides the text command.
package text

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type textOptions struct {
	*cmdutil.Options
	parser cmdutil.ParserFlags
}

// NewCmdText creates the text command.
func NewCmdText() *cobra.Command {
	opts := &textOptions{}

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Print the input with all tags removed",
		Long: `Print the text of the input with the markup removed. Text fragments are
trimmed and joined with single spaces; self-closing tags contribute nothing.`,
		Example: `  shortcode text page.txt`,
		Args:    cobra.MaximumNArgs(1),
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
			return runText(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)

	return cmd
}

func runText(input string, opts *textOptions) error {
	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}

	root, err := shortcode.BuildTree(input, opts.ParseOptions(shortcode.DefaultExtractOptions(), &opts.parser))
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	text := shortcode.PlainText(root)
	return renderer.Render(map[string]string{"text": text}, func() {
		renderer.RenderText(text)
	})
}
