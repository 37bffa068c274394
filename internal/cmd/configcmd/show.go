package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current shortcode configuration with source indicators.`,
		Example: `  # Show current config
  shortcode config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmdutil.ConfigPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func boolString(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func runShow(configPath string, w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue string, envVar string) {
		_, _ = bold.Fprintf(w, "%-18s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		fmt.Fprint(w, value)

		source := "config"
		switch {
		case os.Getenv(envVar) != "" && value != fileValue:
			source = envVar
		case fileErr != nil || value != fileValue:
			source = "-"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Precise", boolString(cfg.Precise), boolString(fileCfg.Precise), config.EnvPrecise)
	printField("Strict", boolString(cfg.Strict), boolString(fileCfg.Strict), config.EnvStrict)
	printField("Self-closing tags", strings.Join(cfg.SelfClosingTags, ","), strings.Join(fileCfg.SelfClosingTags, ","), config.EnvSelfClosingTags)
	printField("Max depth", intString(cfg.MaxDepth), intString(fileCfg.MaxDepth), "")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, config.EnvOutput)
	printField("Markdown", boolString(cfg.Markdown), boolString(fileCfg.Markdown), "")
	printField("Sanitize", lo.Ternary(cfg.Sanitize, "true", ""), lo.Ternary(fileCfg.Sanitize, "true", ""), "")
	printField("Log level", cfg.LogLevel, fileCfg.LogLevel, config.EnvLogLevel)
	printField("Log format", cfg.LogFormat, fileCfg.LogFormat, config.EnvLogFormat)

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
