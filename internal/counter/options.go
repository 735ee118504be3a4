package counter

import "github.com/chriscorrea/ptwordfinder/internal/tokenize"

// options collects the settings accepted by the counter constructors.
// Settings a strategy does not use are ignored.
type options struct {
	maxLineBytes int
	stemLanguage string
	literal      bool
}

// Option configures a counter.
type Option func(*options)

// WithMaxLineBytes sets the longest line a counter accepts.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		o.maxLineBytes = n
	}
}

// WithStemming makes WordSetCounter compare snowball stems in the given
// language instead of exact tokens.
func WithStemming(language string) Option {
	return func(o *options) {
		o.stemLanguage = language
	}
}

// Literal makes PatternCounter match its pattern as plain text.
func Literal() Option {
	return func(o *options) {
		o.literal = true
	}
}

func buildOptions(opts []Option) options {
	o := options{maxLineBytes: tokenize.DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
