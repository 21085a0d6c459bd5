package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sushengloong/maestro-spike/internal/config"
	"github.com/sushengloong/maestro-spike/internal/dump"
	"github.com/sushengloong/maestro-spike/internal/log"
	"github.com/sushengloong/maestro-spike/internal/report"
)

// NewRootCmd creates the root command for persist.
// The root command itself runs the dump; init and version are subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persist [flags] " + dump.Usage(),
		Short: "Print Rails security review reports in one place",
		Long: `persist prints the inputs of a Rails security review to stdout, in order:

1. the four arguments, one "Label: value" line each
2. the Brakeman JSON report, pretty-printed
3. the RuboCop JSON report, pretty-printed
4. the bundle-audit output, verbatim

Object keys keep the order they have in the report files. The command stops
at the first missing or invalid file and exits with a code that tells the
failure apart:

  2  invalid argument (empty or missing argument, bad flag)
  3  a report file could not be read
  4  a JSON report could not be parsed

Examples:
  # Dump a review with the default text format
  persist ./app brakeman.json rubocop.json bundle-audit.txt

  # Render the JSON reports as YAML with two-space indentation
  persist -f yaml -i 2 ./app brakeman.json rubocop.json bundle-audit.txt

  # Write a Markdown document
  persist -f markdown ./app brakeman.json rubocop.json bundle-audit.txt > review.md

  # Dump a directory named like a subcommand ("init" or "version")
  persist -- version brakeman.json rubocop.json bundle-audit.txt

Configuration file (.persist.yaml) example:
  format: text
  indent: 4
  color: auto`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("format", "f", string(config.DefaultFormat),
		"Output format for JSON reports ("+formatNames()+")")
	cmd.Flags().IntP("indent", "i", config.DefaultIndent,
		fmt.Sprintf("Spaces per nesting level (%d-%d)", config.MinIndent, config.MaxIndent))
	cmd.Flags().String("color", string(config.DefaultColorMode),
		"Colorize the text format (auto, always, never)")
	cmd.Flags().Bool("no-color", false, "Disable colors (same as --color never)")
	cmd.Flags().StringP("config", "c", "", "Configuration file path")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return dump.InvalidArgument(err)
	})

	// Only init and version are reserved words for the first argument.
	// -h/--help still prints help.
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{
		Use:    "__help",
		Hidden: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Root().Help()
		},
	})

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the code of the failure kind.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(dump.ExitCode(err))
	}
}

// runRootCmd executes the dump.
func runRootCmd(cmd *cobra.Command, args []string) error {
	dumpArgs, err := dump.ParseArguments(args)
	if err != nil {
		return err
	}

	// Build config from defaults, config file and flags
	cfg, configPath, err := buildConfig(cmd)
	if err != nil {
		return dump.InvalidArgument(err)
	}

	if err := cfg.Validate(); err != nil {
		return dump.InvalidArgument(fmt.Errorf("configuration error: %w", err))
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("configuration loaded",
		"configFile", configPath,
		"format", string(cfg.Format),
		"indent", cfg.Indent,
		"color", string(cfg.Color),
	)

	out := cmd.OutOrStdout()
	writer, err := report.New(cfg.Format, out,
		report.WithIndent(cfg.Indent),
		report.WithColor(report.ColorEnabled(cfg.Color, out)),
	)
	if err != nil {
		return dump.InvalidArgument(err)
	}

	return dump.New(writer, dump.WithLogger(logger)).Run(cmd.Context(), dumpArgs)
}

// subcommandArgs rejects positional arguments of a subcommand with a hint
// to use "--" for a directory named like the subcommand.
func subcommandArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return dump.InvalidArgument(fmt.Errorf(
		"%q takes no arguments; use \"persist -- %s ...\" to dump a directory named %q",
		cmd.Name(), cmd.Name(), cmd.Name()))
}

// buildConfig creates a Config from the config file and cobra command flags.
// Only flags the user actually set override values from the config file.
// It also returns the config file path that was loaded, if any.
func buildConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, "", err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, keep the defaults when no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, "", fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("format") {
		format, err := flags.GetString("format")
		if err != nil {
			return nil, "", err
		}
		cfg.Format = config.Format(format)
	}

	if flags.Changed("indent") {
		cfg.Indent, err = flags.GetInt("indent")
		if err != nil {
			return nil, "", err
		}
	}

	if flags.Changed("color") {
		color, err := flags.GetString("color")
		if err != nil {
			return nil, "", err
		}
		cfg.Color = config.ColorMode(color)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, "", err
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// formatNames returns the supported formats as a comma separated list.
func formatNames() string {
	names := make([]string, 0, len(config.Formats))
	for _, f := range config.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
