package main

import (
	"io"
	"os"

	"github.com/chriscorrea/ptwordfinder/internal/app"
	"github.com/chriscorrea/ptwordfinder/internal/config"
	"github.com/chriscorrea/ptwordfinder/internal/spinner"
	"github.com/chriscorrea/ptwordfinder/internal/stats"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from the config file, command flags and
// arguments. Flags set on the command line win over file values.
func buildConfig(cmd *cobra.Command, file *config.Config, mode app.Mode, args []string) (app.Config, error) {
	if file == nil {
		file = config.DefaultConfig()
	}

	// determine output format
	output := file.Output
	switch {
	case boolFlag(cmd, "json", false):
		output = "json"
	case boolFlag(cmd, "text", false):
		output = "text"
	}
	outputFormat, err := app.ParseOutputFormat(output)
	if err != nil {
		return app.Config{}, err
	}

	cfg := app.Config{
		Mode:             mode,
		OutputFormat:     outputFormat,
		SkipBlankWords:   boolFlag(cmd, "skip-blank-words", file.SkipBlankWords),
		StemLanguage:     stringFlag(cmd, "stem", file.StemLanguage),
		MaxLineBytes:     intFlag(cmd, "max-line-bytes", file.MaxLineBytes),
		HTML:             boolFlag(cmd, "html", file.HTML.Enabled),
		Selector:         stringFlag(cmd, "selector", file.HTML.Selector),
		IncludeAll:       boolFlag(cmd, "include-all", file.HTML.IncludeAll),
		StripBoilerplate: boolFlag(cmd, "strip-boilerplate", file.StripBoilerplate),
		Stats: stats.Options{
			Top:       intFlag(cmd, "top", file.Stats.Top),
			LLMTokens: boolFlag(cmd, "llm-tokens", file.Stats.LLMTokens),
			Sentences: boolFlag(cmd, "sentences", file.Stats.Sentences),
		},
	}

	// the first positional argument is the query, except in stats mode
	switch mode {
	case app.WordList:
		cfg.WordList, cfg.Targets = args[0], args[1:]
	case app.SingleWord:
		cfg.Word, cfg.Targets = args[0], args[1:]
	case app.Pattern:
		cfg.Pattern, cfg.Targets = args[0], args[1:]
		cfg.Literal = boolFlag(cmd, "literal", false)
	case app.Stats:
		cfg.Targets = args
	}

	// progress goes to stderr, and only when a person is watching text output
	quiet := boolFlag(cmd, "quiet", file.Quiet)
	if !quiet && outputFormat == app.Text && isTerminal(cmd.ErrOrStderr()) {
		cfg.Progress = cmd.ErrOrStderr()
	}

	return cfg, nil
}

// boolFlag returns the named flag if it exists on cmd and was set, else fallback.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
		return fallback
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func stringFlag(cmd *cobra.Command, name string, fallback string) string {
	if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
		return fallback
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && spinner.IsTerminal(f)
}
