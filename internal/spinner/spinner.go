// Package spinner provides a transient progress indicator for the
// network fetch when stderr is a terminal.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const defaultInterval = 80 * time.Millisecond

// Spinner animates a message on its writer until stopped. Start and
// Stop are safe to call more than once.
type Spinner struct {
	writer   io.Writer
	message  string
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a spinner that writes to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{writer: w, message: message, interval: defaultInterval}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.loop(s.stopCh, s.doneCh)
}

// Stop halts the animation and erases the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	<-s.doneCh
}

func (s *Spinner) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	width := runewidth.StringWidth(s.message) + 2
	for {
		select {
		case <-stop:
			fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", width))
			return
		case <-ticker.C:
			fmt.Fprintf(s.writer, "\r%s %s", frames[frame%len(frames)], s.message)
			frame++
		}
	}
}
