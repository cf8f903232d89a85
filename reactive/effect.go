package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ErrFn is a computation body.
type ErrFn func() error

// SchedulerFunc lets a computation delegate its re-invocation instead
// of re-running synchronously when a dependency triggers.
type SchedulerFunc func(c *Computation)

// Computation is a stoppable, re-runnable unit of work. While it runs
// it is registered as the active computation, so every tracked read
// inside the body subscribes it to that dependency. Each run starts
// from an empty dependency set; the previous run's subscriptions are
// dropped first because conditional branches may have made them stale.
type Computation struct {
	rt *Runtime

	id        uint64
	fn        ErrFn
	scheduler SchedulerFunc

	// deps is the inverse index: every subscriber set this computation
	// currently belongs to.
	deps []mapset.Set[*Computation]

	live   bool
	parent *Computation
	scope  *Scope
	onStop func()

	// queue bookkeeping, owned by the Scheduler
	queued     bool
	flushCount int
}

// NewComputation creates an inert computation. It subscribes to nothing
// until its first Run. A scheduler of nil means dependency triggers
// re-run the body synchronously.
//
// If a scope is ambient, the computation registers into it and will be
// stopped when the scope stops.
func (rt *Runtime) NewComputation(fn ErrFn, scheduler SchedulerFunc) *Computation {
	c := &Computation{
		rt:        rt,
		id:        rt.newComputationID(),
		fn:        fn,
		scheduler: scheduler,
		live:      true,
	}
	if s := rt.activeScope; s != nil && s.live {
		c.scope = s
		s.owned = append(s.owned, c)
	}
	return c
}

// ID returns the creation-order identifier. The scheduler flushes jobs
// in ascending ID order.
func (c *Computation) ID() uint64 { return c.id }

// Live reports whether the computation still subscribes to triggers.
func (c *Computation) Live() bool { return c.live }

// Run executes the body. A live computation first unsubscribes from
// everything it tracked last run, then collects fresh dependencies as
// the body reads. The previously active computation is restored even
// when the body returns an error or panics.
//
// A stopped computation just executes the body without tracking.
func (c *Computation) Run() error {
	if !c.live {
		return c.fn()
	}
	c.clearDeps()
	return c.rt.withActiveComputation(c, c.fn)
}

func (c *Computation) clearDeps() {
	for _, subs := range c.deps {
		subs.Remove(c)
	}
	c.deps = c.deps[:0]
}

// Stop unsubscribes the computation from every dependency and marks it
// permanently inert. Idempotent; there is no restart.
func (c *Computation) Stop() {
	if !c.live {
		return
	}
	c.live = false
	c.clearDeps()
	if c.onStop != nil {
		onStop := c.onStop
		c.onStop = nil
		onStop()
	}
}

// OnStop registers a callback invoked once when the computation stops.
// A stopped computation runs fn immediately.
func (c *Computation) OnStop(fn func()) {
	if !c.live {
		fn()
		return
	}
	c.onStop = fn
}

// Effect creates a computation that re-runs synchronously whenever a
// dependency changes, and runs it immediately to collect its initial
// dependency set. Errors from re-runs triggered by writes go to the
// runtime's error sink; the initial run's error is reported the same
// way so effect setup never needs two code paths.
func Effect(rt *Runtime, fn ErrFn) *Computation {
	c := rt.NewComputation(fn, nil)
	rt.reportError(c.Run())
	return c
}
