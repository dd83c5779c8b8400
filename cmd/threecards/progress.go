package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// SimpleProgressMonitor prints a row of dots as games complete
type SimpleProgressMonitor struct {
	mu          sync.Mutex
	out         io.Writer
	dotsPrinted int
	startTime   time.Time
	finished    bool
}

const progressDots = 40

func NewSimpleProgressMonitor(out io.Writer) *SimpleProgressMonitor {
	return &SimpleProgressMonitor{
		out:       out,
		startTime: time.Now(),
	}
}

// OnGamesProgress implements simulator.ProgressReporter
func (m *SimpleProgressMonitor) OnGamesProgress(completed, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if total <= 0 || m.finished {
		return
	}
	if completed > total {
		completed = total
	}

	// Each dot represents 2.5% progress
	target := completed * progressDots / total
	for ; m.dotsPrinted < target; m.dotsPrinted++ {
		fmt.Fprint(m.out, ".")
	}

	if completed == total {
		m.finished = true
		duration := time.Since(m.startTime)
		fmt.Fprintf(m.out, " ✓ %d games in %.1fs (%.0f/sec)\n",
			total, duration.Seconds(), float64(total)/duration.Seconds())
	}
}
