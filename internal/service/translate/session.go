package translate

import "sync/atomic"

// Session is the in-progress guard for one user's lookups. At most one
// Translate call runs per Session; callers own it and may keep many.
// The zero value is ready to use.
type Session struct {
	busy      atomic.Bool
	onLoading func(loading bool)
}

// NewSession creates a Session. onLoading, if non-nil, is called with true
// when a lookup starts and with false when it ends.
func NewSession(onLoading func(loading bool)) *Session {
	return &Session{onLoading: onLoading}
}

// Busy reports whether a lookup is in flight.
func (s *Session) Busy() bool { return s.busy.Load() }

// begin marks the session busy. It returns false if it already was.
func (s *Session) begin() bool {
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	s.notify(true)
	return true
}

func (s *Session) end() {
	s.busy.Store(false)
	s.notify(false)
}

func (s *Session) notify(loading bool) {
	if s.onLoading != nil {
		s.onLoading(loading)
	}
}
