package reactive

// Scope groups computations for bulk disposal. Computations created
// while a scope is ambient (inside Scope.Run) register into it; scopes
// created while another scope is ambient become children and are
// stopped with the parent, unless detached.
type Scope struct {
	rt *Runtime

	live     bool
	owned    []*Computation
	children []*Scope
	cleanups []func()
	parent   *Scope
}

// NewScope creates a scope. A detached scope ignores the ambient scope
// and must be stopped on its own.
func NewScope(rt *Runtime, detached bool) *Scope {
	s := &Scope{rt: rt, live: true}
	if !detached {
		if p := rt.activeScope; p != nil && p.live {
			s.parent = p
			p.children = append(p.children, s)
		}
	}
	return s
}

// Run executes fn with this scope ambient, restoring the previous
// ambient scope on every exit path. Running a stopped scope executes
// nothing and reports it.
func (s *Scope) Run(fn func() error) error {
	if !s.live {
		s.rt.warnf("ripple: cannot run a stopped scope")
		return nil
	}
	prev := s.rt.activeScope
	s.rt.activeScope = s
	defer func() { s.rt.activeScope = prev }()
	return fn()
}

// OnCleanup registers fn to run when the scope stops. A stopped scope
// runs fn immediately.
func (s *Scope) OnCleanup(fn func()) {
	if !s.live {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Live reports whether the scope can still own computations.
func (s *Scope) Live() bool { return s.live }

// Stop stops every owned computation, runs the cleanup callbacks, then
// stops child scopes recursively. Idempotent and irreversible.
func (s *Scope) Stop() {
	if !s.live {
		return
	}
	s.live = false

	for _, c := range s.owned {
		c.Stop()
	}
	s.owned = nil

	for _, fn := range s.cleanups {
		fn()
	}
	s.cleanups = nil

	for _, child := range s.children {
		child.Stop()
	}
	s.children = nil

	if s.parent != nil && s.parent.live {
		for i, child := range s.parent.children {
			if child == s {
				s.parent.children = append(s.parent.children[:i], s.parent.children[i+1:]...)
				break
			}
		}
		s.parent = nil
	}
}
