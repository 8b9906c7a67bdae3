package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Indicator shows that a lookup is in progress. On a terminal it animates a
// spinner on one line; otherwise it prints a single line per lookup.
type Indicator struct {
	w        io.Writer
	label    string
	animate  bool
	interval time.Duration

	mu     sync.Mutex
	active bool
	stop   chan struct{}
	done   chan struct{}
}

// NewIndicator creates an Indicator writing to w.
func NewIndicator(w io.Writer, animate bool) *Indicator {
	return &Indicator{
		w:        w,
		label:    "Looking up...",
		animate:  animate,
		interval: 120 * time.Millisecond,
	}
}

// SetLoading starts or stops the indicator. Repeated calls with the same
// value are no-ops. Its signature fits translate.NewSession.
func (ind *Indicator) SetLoading(loading bool) {
	ind.mu.Lock()
	defer ind.mu.Unlock()

	if loading == ind.active {
		return
	}
	ind.active = loading

	if !ind.animate {
		if loading {
			fmt.Fprintln(ind.w, ind.label)
		}
		return
	}

	if loading {
		ind.stop = make(chan struct{})
		ind.done = make(chan struct{})
		go ind.spin(ind.stop, ind.done)
		return
	}

	close(ind.stop)
	<-ind.done
	// Clear the spinner line.
	fmt.Fprintf(ind.w, "\r%*s\r", len(ind.label)+2, "")
}

func (ind *Indicator) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(ind.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(ind.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], ind.label)
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
