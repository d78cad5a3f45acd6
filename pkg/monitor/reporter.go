package monitor

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"
)

// Reporter receives the timing and result lines of a run.
type Reporter interface {
	Duration(op string, d time.Duration)
	Result(format string, args ...any)
}

type ConsoleReporter struct {
	logger *log.Logger
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{logger: log.New(w, "", 0)}
}

func (r *ConsoleReporter) Duration(op string, d time.Duration) {
	r.logger.Printf("\n>>>>>>>>> Elapsed time for '%s': %d ns", op, d.Nanoseconds())
}

func (r *ConsoleReporter) Result(format string, args ...any) {
	r.logger.Printf(format, args...)
}

// Event is one line captured by a Recorder.
type Event struct {
	Op       string
	Duration time.Duration
	Text     string
}

// Recorder keeps every reported line in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recorder) Duration(op string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Op: op, Duration: d})
}

func (r *Recorder) Result(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Text: fmt.Sprintf(format, args...)})
}

// Ops returns the timed operation names in report order.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ops []string
	for _, e := range r.Events {
		if e.Op != "" {
			ops = append(ops, e.Op)
		}
	}
	return ops
}

// Lines returns the result lines in report order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []string
	for _, e := range r.Events {
		if e.Op == "" {
			lines = append(lines, e.Text)
		}
	}
	return lines
}
