package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// sampleInput exercises nesting, attributes and a self-closing tag.
const sampleInput = `[quote author="Ann" n=1]Hello [b]world[/b][br/][/quote]`

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check the configuration",
		Long: `Validate the current configuration and parse a sample document with the
parser settings it selects.`,
		Example: `  # Test configuration
  shortcode config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(cmdutil.ConfigPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runTest(configPath string, w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Testing configuration %s...\n", configPath)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Could not load configuration:", err)
		fmt.Fprintln(w, "\nReconfigure with: shortcode init")
		return err
	}
	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid configuration:", err)
		fmt.Fprintln(w, "\nCheck your settings with: shortcode config show")
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Configuration valid")

	if _, err := cfg.LogConfiguration().New(); err != nil {
		_, _ = red.Fprintln(w, "✗ Logging:", err)
		return err
	}
	_, _ = green.Fprintln(w, "✓ Logging configured")

	opts := cfg.ParseOptions(shortcode.DefaultExtractOptions())
	root, err := shortcode.BuildTree(sampleInput, opts)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Sample parse failed:", err)
		return fmt.Errorf("sample parse failed: %w", err)
	}
	_, _ = green.Fprintf(w, "✓ Sample parsed: %d tags\n", len(shortcode.Tags(root)))
	fmt.Fprintf(w, "\nPrecise: %t  Strict: %t  Max depth: %d\n", opts.Precise, opts.Strict, opts.MaxDepth)

	return nil
}
