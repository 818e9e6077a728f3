package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// progress times an operation and reports its duration when done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the tracker was created, rounded to the
// nearest millisecond for log output.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg with the elapsed duration appended, e.g.
// "Rendered \"Observability\" (142ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}
