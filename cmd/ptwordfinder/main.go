package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/ptwordfinder/internal/app"
	"github.com/chriscorrea/ptwordfinder/internal/config"

	"github.com/spf13/cobra"
)

// rootOptions carries state shared by the command tree.
type rootOptions struct {
	configFile string
	file       *config.Config // loaded in PersistentPreRunE
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// requireArgs reports the first missing positional argument by name.
// The last name may repeat, so requireArgs("WORD", "FILE") accepts
// WORD FILE [FILE...].
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("missing argument %s", names[len(args)])
		}
		return nil
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ptwordfinder WORDLIST FILE...",
		Short: "Count words and patterns in text files",
		Long: `PTWordFinder counts how often words from a list, a single word, or a regular
expression pattern occur in text files. Files may be local paths, glob patterns,
URLs, or "-" for standard input.

Examples:
  ptwordfinder words.txt pan-tadeusz.txt
  ptwordfinder word Litwo pan-tadeusz.txt
  ptwordfinder pattern '\d+' notes.txt
  ptwordfinder stats --top 5 'books/**/*.txt'`,
		Args:          requireArgs("WORDLIST", "FILE"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			setupLogger(debug)

			var err error
			if opts.configFile != "" {
				opts.file, err = config.Load(opts.configFile)
			} else {
				var dir string
				dir, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				opts.file, err = config.LoadFromDir(dir)
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.WordList, args)
		},
	}

	// output format flags are mutually exclusive
	rootCmd.PersistentFlags().Bool("text", false, "Output in plain text format (default)")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.MarkFlagsMutuallyExclusive("text", "json")

	// html flags
	rootCmd.PersistentFlags().Bool("html", false, "Treat every file as HTML and count its text")
	rootCmd.PersistentFlags().StringP("selector", "s", "", "CSS selector restricting HTML extraction")
	rootCmd.PersistentFlags().BoolP("include-all", "i", false, "Include all HTML content without readability filtering")

	rootCmd.PersistentFlags().Bool("strip-boilerplate", false, "Drop front matter and license paragraphs (e.g. Project Gutenberg headers) before counting")

	// other flags
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().Int("max-line-bytes", 0, "Longest accepted line in bytes (default 1MiB)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	addWordListFlags(rootCmd)

	rootCmd.AddCommand(
		newWordsCmd(opts),
		newWordCmd(opts),
		newPatternCmd(opts),
		newStatsCmd(opts),
	)

	return rootCmd
}

// runMode builds the app configuration for mode and prints the report.
func runMode(cmd *cobra.Command, opts *rootOptions, mode app.Mode, args []string) error {
	cfg, err := buildConfig(cmd, opts.file, mode, args)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := app.Run(ctx, cfg)
	if err != nil {
		return err
	}

	out, err := report.Format(cfg.OutputFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
