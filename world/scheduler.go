package world

// Scheduler runs callbacks after a number of ticks. Timers are keyed so a
// recurring job re-arms by scheduling its own key again, and scheduling a key
// that is still pending replaces the old timer instead of running both.
type Scheduler struct {
	timers []*timer
	firing []*timer
}

type timer struct {
	key       string
	remaining int
	fn        func()
	cancelled bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule runs fn after ticks calls to Advance. Values below 1 run on the
// next Advance.
func (s *Scheduler) Schedule(key string, ticks int, fn func()) {
	s.Cancel(key)
	if ticks < 1 {
		ticks = 1
	}
	s.timers = append(s.timers, &timer{key: key, remaining: ticks, fn: fn})
}

// Cancel drops the pending timer for key, including one that is due in the
// Advance currently running. It reports whether anything was cancelled.
func (s *Scheduler) Cancel(key string) bool {
	cancelled := false
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.key == key {
			t.cancelled = true
			cancelled = true
			continue
		}
		kept = append(kept, t)
	}
	s.timers = kept
	for _, t := range s.firing {
		if t.key == key && !t.cancelled {
			t.cancelled = true
			cancelled = true
		}
	}
	return cancelled
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	for _, t := range s.firing {
		t.cancelled = true
	}
	s.timers = nil
}

// Pending reports whether key has a timer waiting.
func (s *Scheduler) Pending(key string) bool {
	_, ok := s.Remaining(key)
	return ok
}

// Remaining returns the ticks left on key's timer.
func (s *Scheduler) Remaining(key string) (int, bool) {
	for _, t := range s.timers {
		if t.key == key {
			return t.remaining, true
		}
	}
	return 0, false
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance counts every timer down by one tick and runs the ones that are due,
// in the order they were scheduled. Callbacks may schedule and cancel freely.
func (s *Scheduler) Advance() {
	timers := s.timers
	s.timers = nil

	var due []*timer
	for _, t := range timers {
		t.remaining--
		if t.remaining <= 0 {
			due = append(due, t)
			continue
		}
		s.timers = append(s.timers, t)
	}

	s.firing = due
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
	}
	s.firing = nil
}
