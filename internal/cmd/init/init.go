// Package init provides the init command for shortcode.
package init

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/log"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
)

// answers holds the raw form values before they are applied to a config.
type answers struct {
	mode        string
	selfClosing string
	maxDepth    string
	output      string
	markdown    bool
	sanitize    bool
	logLevel    string
}

const (
	modeDefault = "default"
	modePrecise = "precise"
	modeFast    = "fast"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize shortcode configuration",
		Long: `Initialize shortcode with your preferred parser and output settings.

This command will guide you through choosing the closing-tag matching mode,
the tags that are always self-closing, and the default output format. The
configuration will be saved to ~/.config/shortcode/config.yml.`,
		Example: `  # Interactive setup
  shortcode init

  # Write the default configuration without prompting
  shortcode init --defaults`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := cmdutil.ConfigPath(cmd)
			if defaults {
				return save(&config.Config{}, path, cmd.OutOrStdout())
			}
			return runInit(path, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write the default configuration without prompting")

	return cmd
}

func runInit(configPath string, w io.Writer) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	}

	a := &answers{mode: modeDefault, output: string(view.FormatTable), markdown: true, logLevel: "warn"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Closing-tag matching").
				Description("Precise mode counts nested tags of the same name").
				Options(
					huh.NewOption("Per-command default", modeDefault),
					huh.NewOption("Always precise", modePrecise),
					huh.NewOption("Always fast", modeFast),
				).
				Value(&a.mode),

			huh.NewInput().
				Title("Self-closing tags (optional)").
				Description("Comma-separated names that never take a closing tag").
				Placeholder("img,br,hr").
				Value(&a.selfClosing),

			huh.NewInput().
				Title("Maximum nesting depth (optional)").
				Placeholder("256").
				Value(&a.maxDepth).
				Validate(validateDepth),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&a.output),

			huh.NewConfirm().
				Title("Render text between tags as markdown?").
				Value(&a.markdown),

			huh.NewConfirm().
				Title("Sanitize rendered HTML?").
				Value(&a.sanitize),

			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("error", "warn", "info", "debug", "trace")...).
				Value(&a.logLevel),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}
	return save(cfg, configPath, w)
}

func validateDepth(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("depth must be a non-negative number")
	}
	return nil
}

// config converts the form answers to a configuration.
func (a *answers) config() (*config.Config, error) {
	cfg := &config.Config{
		SelfClosingTags: config.SplitList(a.selfClosing),
		Sanitize:        a.sanitize,
	}

	switch a.mode {
	case modePrecise:
		precise := true
		cfg.Precise = &precise
	case modeFast:
		precise := false
		cfg.Precise = &precise
	}

	if err := validateDepth(a.maxDepth); err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(a.maxDepth); s != "" {
		cfg.MaxDepth, _ = strconv.Atoi(s)
	}

	if a.output != string(view.FormatTable) {
		cfg.OutputFormat = a.output
	}
	if !a.markdown {
		markdown := false
		cfg.Markdown = &markdown
	}
	if a.logLevel != log.DefaultConfiguration().Level {
		cfg.LogLevel = a.logLevel
	}
	if len(cfg.SelfClosingTags) == 0 {
		cfg.SelfClosingTags = nil
	}

	return cfg, nil
}

func save(cfg *config.Config, configPath string, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  echo '[b]hello[/b]' | shortcode tree")
	fmt.Fprintln(w, "  shortcode render page.txt")

	return nil
}
