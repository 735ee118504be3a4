package main

import (
	"github.com/chriscorrea/ptwordfinder/internal/app"

	"github.com/spf13/cobra"
)

// addWordListFlags registers the flags of word list mode, which both the root
// command and "words" run.
func addWordListFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-blank-words", false, "Ignore blank lines in the word list")
	cmd.Flags().String("stem", "", "Match snowball stems in the given language (e.g. english) instead of exact words")
}

func newWordsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words WORDLIST FILE...",
		Short: "Count tokens that appear in a word list",
		Long: `Count every token of FILE that appears in WORDLIST (one word per line),
and report the number of non-blank lines read.

Examples:
  ptwordfinder words words.txt pan-tadeusz.txt
  ptwordfinder words --stem english words.txt essay.txt`,
		Args: requireArgs("WORDLIST", "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.WordList, args)
		},
	}
	addWordListFlags(cmd)
	return cmd
}

func newWordCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "word WORD FILE...",
		Short: "Count occurrences of a single word",
		Long: `Count the tokens of FILE that equal WORD exactly (case-sensitive).

Example:
  ptwordfinder word Litwo pan-tadeusz.txt`,
		Args: requireArgs("WORD", "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.SingleWord, args)
		},
	}
}

func newPatternCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern PATTERN FILE...",
		Short: "Count regular expression matches",
		Long: `Count the non-overlapping matches of PATTERN on each line of FILE.
With --literal, PATTERN is escaped first and matched as plain text.

Examples:
  ptwordfinder pattern '\d+' notes.txt
  ptwordfinder pattern --literal 'a.b' notes.txt`,
		Args: requireArgs("PATTERN", "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.Pattern, args)
		},
	}
	cmd.Flags().BoolP("literal", "l", false, "Escape regular expression characters in PATTERN")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Summarize lines, words and characters",
		Long: `Print a summary of each FILE: non-blank lines, words, characters and the
most frequent words, optionally with LLM token and sentence counts.

Example:
  ptwordfinder stats --top 5 --llm-tokens pan-tadeusz.txt`,
		Args: requireArgs("FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.Stats, args)
		},
	}
	cmd.Flags().IntP("top", "n", 0, "Number of most frequent words to list (default 10)")
	cmd.Flags().Bool("llm-tokens", false, "Count cl100k_base LLM tokens")
	cmd.Flags().Bool("sentences", false, "Count sentences")
	return cmd
}
