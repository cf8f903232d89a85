package reactive

import (
	"log"

	mapset "github.com/deckarep/golang-set/v2"
)

// OnErrorFunc receives errors raised by computation bodies that were
// re-run from trigger dispatch, where no caller is on the stack to
// return them to.
type OnErrorFunc func(err error)

// WarnFunc receives non-fatal usage diagnostics, such as writes to
// read-only handles or attempts to wrap unwrappable values.
type WarnFunc func(format string, args ...any)

// Runtime owns one reactive dependency graph: the dependency store, the
// active-computation registry, the ambient scope, and the flush queue.
// All of a Runtime's signals, computeds, effects and wrapped collections
// belong to it and must not be mixed with another Runtime's.
//
// A Runtime is single-threaded by design. Every suspension point is
// explicit (the Flusher boundary); nothing inside the engine blocks.
type Runtime struct {
	// active is the computation currently collecting dependencies.
	// Reads track against it; nil means reads are untracked.
	active      *Computation
	activeScope *Scope
	pauseStack  []*Computation

	batchDepth int

	// store maps target id -> key -> subscriber set.
	store map[uint64]map[string]mapset.Set[*Computation]

	nextTargetID      uint64
	nextComputationID uint64

	sched *Scheduler

	maps      map[uintptr]*Map
	roMaps    map[uintptr]*Map
	lists     map[uintptr]*List
	roLists   map[uintptr]*List
	targetIDs map[uintptr]uint64

	onError OnErrorFunc
	warnf   WarnFunc
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithOnError routes computation errors raised during trigger dispatch.
// The default logs them.
func WithOnError(fn OnErrorFunc) Option {
	return func(rt *Runtime) { rt.onError = fn }
}

// WithWarnFunc routes usage diagnostics. The default logs them.
func WithWarnFunc(fn WarnFunc) Option {
	return func(rt *Runtime) { rt.warnf = fn }
}

// WithFlusher sets the platform hook used to defer queue flushes.
func WithFlusher(f Flusher) Option {
	return func(rt *Runtime) { rt.sched.flusher = f }
}

// WithMaxFlushRecursion bounds how many times a single job may run
// within one flush pass before it is dropped with a diagnostic.
func WithMaxFlushRecursion(n int) Option {
	return func(rt *Runtime) { rt.sched.maxRecursion = n }
}

// New creates an empty Runtime.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		store:     map[uint64]map[string]mapset.Set[*Computation]{},
		maps:      map[uintptr]*Map{},
		roMaps:    map[uintptr]*Map{},
		lists:     map[uintptr]*List{},
		roLists:   map[uintptr]*List{},
		targetIDs: map[uintptr]uint64{},
		onError:   func(err error) { log.Printf("ripple: computation error: %v", err) },
		warnf:     log.Printf,
	}
	rt.sched = newScheduler(rt)
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) newTargetID() uint64 {
	rt.nextTargetID++
	return rt.nextTargetID
}

// NewTargetID allocates a dependency-store identity for a custom
// tracked source built directly on Track and Trigger.
func (rt *Runtime) NewTargetID() uint64 {
	return rt.newTargetID()
}

func (rt *Runtime) newComputationID() uint64 {
	rt.nextComputationID++
	return rt.nextComputationID
}

func (rt *Runtime) reportError(err error) {
	if err == nil {
		return
	}
	if rt.onError != nil {
		rt.onError(err)
	}
}

// PauseTracking suspends dependency collection until ResumeTracking.
// Reads in between behave as if no computation were active.
func (rt *Runtime) PauseTracking() {
	rt.pauseStack = append(rt.pauseStack, rt.active)
	rt.active = nil
}

// ResumeTracking restores the computation saved by the matching
// PauseTracking call.
func (rt *Runtime) ResumeTracking() {
	if len(rt.pauseStack) == 0 {
		rt.warnf("ripple: ResumeTracking without a matching PauseTracking")
		return
	}
	lastIdx := len(rt.pauseStack) - 1
	rt.active = rt.pauseStack[lastIdx]
	rt.pauseStack = rt.pauseStack[:lastIdx]
}

// Untracked runs fn with tracking paused.
func (rt *Runtime) Untracked(fn func()) {
	rt.PauseTracking()
	defer rt.ResumeTracking()
	fn()
}

// withActiveComputation runs fn with c as the active computation,
// restoring the previous one on every exit path. The previous
// computation is kept on c.parent so nested runs unwind correctly.
func (rt *Runtime) withActiveComputation(c *Computation, fn func() error) error {
	c.parent = rt.active
	rt.active = c
	defer func() {
		rt.active = c.parent
		c.parent = nil
	}()
	return fn()
}
