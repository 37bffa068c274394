// Package root provides the root command for the shortcode CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/extract"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/format"
	initcmd "github.com/open-cli-collective/shortcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/parse"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/render"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/text"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/tree"
	"github.com/open-cli-collective/shortcode-cli/internal/log"
	"github.com/open-cli-collective/shortcode-cli/internal/version"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// NewCmdRoot creates the root command for shortcode.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcode",
		Short: "Parse and render bracketed shortcode markup",
		Long: `shortcode is a CLI tool for working with bracketed tag markup such as
[quote author="Ann"]Hello [b]world[/b][/quote] embedded in free text.

It parses single tags, extracts and nests them into a tree, strips them to
plain text, normalizes them, and renders them to HTML or markdown.

Get started by running: shortcode init`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version.Version,
		PersistentPreRunE: setupLogging,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/shortcode/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain, yaml")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", "", "log level: error, warn, info, debug, trace")

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(parse.NewCmdParse())
	cmd.AddCommand(extract.NewCmdExtract())
	cmd.AddCommand(tree.NewCmdTree())
	cmd.AddCommand(text.NewCmdText())
	cmd.AddCommand(format.NewCmdFormat())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// setupLogging points the parser's logger at stderr with the configured
// level and format. A broken config file leaves logging at its defaults so
// that config commands can still run.
func setupLogging(cmd *cobra.Command, _ []string) error {
	lc := log.DefaultConfiguration()
	if cfg, err := cmdutil.LoadConfig(cmd); err == nil {
		lc = cfg.LogConfiguration()
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		lc.Level = level
	}
	lc.Output = cmd.ErrOrStderr()

	logger, err := lc.New()
	if err != nil {
		return err
	}
	shortcode.Logger = logger
	return nil
}
