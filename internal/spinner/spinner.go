// Package spinner shows a progress indicator with elapsed time while a
// single target is counted.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// Spinner writes an animated status line to a writer.
type Spinner struct {
	writer  io.Writer
	delay   time.Duration
	parent  context.Context
	cancel  context.CancelFunc
	started time.Time

	mu      sync.RWMutex
	active  bool
	message string
	wg      sync.WaitGroup
}

// New creates a spinner. ctx cancellation also stops the animation goroutine.
func New(ctx context.Context, writer io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  writer,
		delay:   100 * time.Millisecond,
		parent:  ctx,
		message: message,
	}
}

// Start begins the animation. Calling Start on a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	s.active = true
	s.started = time.Now()

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop ends the animation and clears the status line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	// only erase the line on a terminal; redirected output just gets a carriage return
	if f, ok := s.writer.(*os.File); ok && IsTerminal(f) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// IsActive returns whether the spinner is currently running
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Update replaces the message shown next to the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			message := s.message
			elapsed := time.Since(s.started).Seconds()
			s.mu.RUnlock()

			fmt.Fprintf(s.writer, "\r%s %s (%.1fs)", frames[i%len(frames)], message, elapsed)
		}
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
