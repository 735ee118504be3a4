package app

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/chriscorrea/ptwordfinder/internal/source"
)

// ExpandTargets replaces glob arguments (e.g. "texts/**/*.txt") with the files
// they match, in lexical order. Existing paths, URLs and "-" are kept as given,
// and so are paths without glob characters, so a missing file still fails
// when it is opened.
func ExpandTargets(args []string) ([]string, error) {
	targets := make([]string, 0, len(args))

	for _, arg := range args {
		if !isGlob(arg) {
			targets = append(targets, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", arg, err)
		}

		files := matches[:0]
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				files = append(files, match)
			}
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}

		sort.Strings(files)
		targets = append(targets, files...)
	}

	return targets, nil
}

// isGlob reports whether arg should be expanded rather than opened as is.
func isGlob(arg string) bool {
	if arg == source.Stdin || source.IsURL(arg) {
		return false
	}
	if !strings.ContainsAny(arg, "*?[{") {
		return false
	}
	// a file that really has glob characters in its name wins
	_, err := os.Stat(arg)
	return err != nil
}
