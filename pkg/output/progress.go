package output

import (
	"io"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/dircmp/pkg/models"
)

// progressTemplate shows the side being hashed, counters and a bar
const progressTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{etime . }}`

// ProgressBar displays hashing progress across both scans
type ProgressBar struct {
	mu       sync.Mutex
	bar      *pb.ProgressBar
	total    int64
	started  bool
	finished bool
}

// NewProgressBar creates a progress bar writing to w
func NewProgressBar(w io.Writer) *ProgressBar {
	bar := pb.ProgressBarTemplate(progressTemplate).New(0)
	bar.SetWriter(w)
	bar.SetRefreshRate(100 * time.Millisecond)
	bar.Set("prefix", "hashing")

	return &ProgressBar{bar: bar}
}

// Update consumes scanner progress notifications.
// It is safe for concurrent use by both scans.
func (p *ProgressBar) Update(update models.ProgressUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished {
		return
	}

	switch update.Type {
	case "scan_start":
		p.total += int64(update.Files)
		p.bar.SetTotal(p.total)
		if !p.started {
			p.bar.Start()
			p.started = true
		}
	case "file_hashed":
		p.bar.Increment()
	}
}

// Finish stops the bar and renders its final state
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started && !p.finished {
		p.bar.Finish()
	}
	p.finished = true
}
