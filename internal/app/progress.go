package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/chriscorrea/ptwordfinder/internal/spinner"
)

// progress reports per-target advancement while Run works.
type progress interface {
	begin(target string)
	advance()
	finish()
}

// newProgress picks a spinner for one target and a progress bar for several.
// A nil writer disables progress output.
func newProgress(ctx context.Context, w io.Writer, mode Mode, targets []string) progress {
	switch {
	case w == nil:
		return noProgress{}
	case len(targets) == 1:
		return &spinnerProgress{sp: spinner.New(ctx, w, ""), mode: mode}
	default:
		return &barProgress{
			bar: progressbar.NewOptions(len(targets),
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("Counting %s", mode)),
				progressbar.OptionClearOnFinish(),
			),
			mode: mode,
		}
	}
}

type noProgress struct{}

func (noProgress) begin(string) {}
func (noProgress) advance()     {}
func (noProgress) finish()      {}

type spinnerProgress struct {
	sp   *spinner.Spinner
	mode Mode
}

func (p *spinnerProgress) begin(target string) {
	p.sp.Update(fmt.Sprintf("Counting %s in %s...", p.mode, filepath.Base(target)))
	p.sp.Start()
}

func (p *spinnerProgress) advance() {}

func (p *spinnerProgress) finish() {
	p.sp.Stop()
}

type barProgress struct {
	bar  *progressbar.ProgressBar
	mode Mode
}

func (p *barProgress) begin(target string) {
	p.bar.Describe(fmt.Sprintf("Counting %s in %s", p.mode, filepath.Base(target)))
}

func (p *barProgress) advance() {
	_ = p.bar.Add(1)
}

func (p *barProgress) finish() {
	_ = p.bar.Finish()
}
