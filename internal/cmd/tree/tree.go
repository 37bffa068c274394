// Package tree provides the tree command.
package tree

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type treeOptions struct {
	*cmdutil.Options
	parser cmdutil.ParserFlags
}

// NewCmdTree creates the tree command.
func NewCmdTree() *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Show the nested tag tree of the input",
		Long: `Build the tree of tags and the text between them, descending into the
content of every tag. The default output is an indented trace; use -o json
or -o yaml for the full node structure.`,
		Example: `  # Trace the tree
  shortcode tree page.txt

  # Full node structure as YAML
  shortcode tree page.txt -o yaml`,
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
			return runTree(input, opts)
		},
	}

	cmdutil.AddParserFlags(cmd, &opts.parser)

	return cmd
}

func runTree(input string, opts *treeOptions) error {
	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}

	root, err := shortcode.BuildTree(input, opts.ParseOptions(shortcode.DefaultExtractOptions(), &opts.parser))
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	return renderer.Render(root, func() {
		renderer.RenderTree(root)
	})
}
