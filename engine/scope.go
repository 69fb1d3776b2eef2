package engine

// Scope collects release functions for everything a component acquires
// (timers, bus subscriptions, scheduled animators) and releases them together
type Scope struct {
	releases []func()
	closed   bool
}

// NewScope creates an open scope
func NewScope() *Scope {
	return &Scope{}
}

// Add registers a release function; on a closed scope it runs immediately
func (s *Scope) Add(release func()) {
	if release == nil {
		return
	}
	if s.closed {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// AddTimer ties a timer's lifetime to the scope
func (s *Scope) AddTimer(t *Timer) *Timer {
	s.Add(func() { t.Stop() })
	return t
}

// AddAnimator cancels a scheduled animator on release
func (s *Scope) AddAnimator(fs *FrameScheduler, a Animator) {
	s.Add(func() { fs.Cancel(a) })
}

// Close runs every release in reverse acquisition order, exactly once
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Closed reports whether Close has run
func (s *Scope) Closed() bool {
	return s.closed
}
