package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a progress indicator on stderr until stopped or the
// parent context is cancelled.
type Spinner struct {
	message  string
	ctx      context.Context
	quit     chan struct{}
	finished chan struct{}
	stop     sync.Once
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return &Spinner{
		message:  message,
		ctx:      ctx,
		quit:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.finished)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.erase()
			return
		case <-s.quit:
			return
		case <-ticker.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleSpinner.Render(glyph), StyleDim.Render(s.message))
		}
	}
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.quit)
		<-s.finished
		s.erase()
	})
}

func (s *Spinner) erase() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
