// Package cmdutil holds the setup shared by the shortcode subcommands:
// global flags, config loading, input reading and parser flags.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Options carries the global flag values and loaded config into a command.
type Options struct {
	Output  string
	NoColor bool
	Config  *config.Config
	Out     io.Writer
}

// NewOptions reads the global flags of cmd and loads the config file they point at.
func NewOptions(cmd *cobra.Command) (*Options, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	output, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return &Options{
		Output:  output,
		NoColor: noColor,
		Config:  cfg,
		Out:     cmd.OutOrStdout(),
	}, nil
}

// ConfigPath returns the --config flag value, or the default path.
func ConfigPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads and validates the config selected by cmd's flags.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(ConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'shortcode init' to recreate it)", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Renderer builds the view renderer. The --output flag wins over output_format.
func (o *Options) Renderer() (*view.Renderer, error) {
	format := o.Output
	if format == "" && o.Config != nil {
		format = o.Config.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return nil, err
	}

	r := view.NewRenderer(view.Format(format), o.NoColor)
	if o.Out != nil {
		r.SetWriter(o.Out)
	}
	return r, nil
}

// ParseOptions applies the config and then flags over base.
func (o *Options) ParseOptions(base *shortcode.Options, flags *ParserFlags) *shortcode.Options {
	cfg := o.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	opts := cfg.ParseOptions(base)
	if flags != nil {
		flags.Apply(opts)
	}
	return opts
}

// ReadInput reads the file named by the first argument, or stdin when there
// is no argument or the argument is "-".
func ReadInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
