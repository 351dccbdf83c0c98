package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer against the render goroutine.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestSpinner_RendersAndErases(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "fetching")
	s.interval = time.Millisecond

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "fetching") {
		t.Errorf("expected message in output: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("expected trailing erase, got %q", out)
	}
}

func TestSpinner_StartStopIdempotent(t *testing.T) {
	var buf syncBuffer
	s := New(&buf, "x")
	s.interval = time.Millisecond

	s.Start()
	s.Start()
	s.Stop()
	s.Stop() // second Stop must not panic or block
}
