package reactive

import "sort"

// Flusher abstracts the platform's deferred-execution boundary. The
// scheduler hands it a run function once per pending flush; the Flusher
// decides when run executes. The creation-order contract of the flush
// itself does not depend on the Flusher.
type Flusher interface {
	ScheduleFlush(run func())
}

// DeferredFlusher never runs the flush on its own. Pending jobs are
// drained by Runtime.Flush or Runtime.NextTick on the caller's
// goroutine, which keeps the engine single-threaded and makes flush
// timing explicit in tests. This is the default.
type DeferredFlusher struct{}

func (DeferredFlusher) ScheduleFlush(func()) {}

// ImmediateFlusher runs the flush as soon as it is scheduled, giving
// eager semantics: the first enqueue of a quiescent queue drains it
// before the enqueueing call returns.
type ImmediateFlusher struct{}

func (ImmediateFlusher) ScheduleFlush(run func()) { run() }

// FlusherFunc adapts a function to the Flusher interface.
type FlusherFunc func(run func())

func (f FlusherFunc) ScheduleFlush(run func()) { f(run) }

const defaultMaxRecursion = 100

// Scheduler is the deduplicating batch queue. Jobs are computations;
// each appears at most once and the queue drains in creation order, so
// structurally-outer subscribers (created earlier) run before inner
// ones. Jobs enqueued during a flush join the same pass. A per-job
// counter bounds how many times one job may run within a pass; beyond
// the bound the job is dropped with a diagnostic instead of looping.
type Scheduler struct {
	rt *Runtime

	queue      []*Computation
	flushing   bool
	flushIndex int
	scheduled  bool

	flusher      Flusher
	maxRecursion int
	afterFlush   []func()
}

func newScheduler(rt *Runtime) *Scheduler {
	return &Scheduler{
		rt:           rt,
		flusher:      DeferredFlusher{},
		maxRecursion: defaultMaxRecursion,
	}
}

// enqueue inserts c respecting ascending creation order unless it is
// already pending. During a flush the insertion point never precedes
// the job currently running, so the new job still executes this pass.
func (s *Scheduler) enqueue(c *Computation) {
	if c.queued || !c.live {
		return
	}
	c.queued = true

	lo := 0
	if s.flushing {
		lo = s.flushIndex + 1
	}
	at := lo + sort.Search(len(s.queue)-lo, func(i int) bool {
		return s.queue[lo+i].id > c.id
	})
	s.queue = append(s.queue, nil)
	copy(s.queue[at+1:], s.queue[at:])
	s.queue[at] = c

	if !s.flushing && !s.scheduled {
		s.scheduled = true
		s.flusher.ScheduleFlush(s.flush)
	}
}

// flush drains the queue. Reentrant calls are no-ops; the outer pass
// picks up anything enqueued meanwhile.
func (s *Scheduler) flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	s.scheduled = false

	defer func() {
		for _, c := range s.queue {
			c.queued = false
			c.flushCount = 0
		}
		s.queue = s.queue[:0]
		s.flushIndex = 0
		s.flushing = false

		after := s.afterFlush
		s.afterFlush = nil
		for _, fn := range after {
			fn()
		}
	}()

	for s.flushIndex = 0; s.flushIndex < len(s.queue); s.flushIndex++ {
		c := s.queue[s.flushIndex]
		c.queued = false
		c.flushCount++
		if c.flushCount > s.maxRecursion {
			s.rt.warnf("ripple: job %d exceeded the flush recursion limit (%d), dropping it for this flush", c.id, s.maxRecursion)
			continue
		}
		if !c.live {
			continue
		}
		s.rt.reportError(c.Run())
	}
}

// Queue is the SchedulerFunc that routes a computation's re-runs
// through the batch queue instead of running them synchronously.
func (rt *Runtime) Queue(c *Computation) {
	rt.sched.enqueue(c)
}

// Flush drains any pending jobs now, on the calling goroutine.
func (rt *Runtime) Flush() {
	rt.sched.flush()
}

// NextTick flushes pending jobs, then runs fns. It is the
// "wait until pending updates are applied" signal: after NextTick
// returns, every write made before the call has been observed by its
// queued subscribers.
func (rt *Runtime) NextTick(fns ...func()) {
	if rt.sched.flushing {
		rt.sched.afterFlush = append(rt.sched.afterFlush, fns...)
		return
	}
	rt.sched.flush()
	for _, fn := range fns {
		fn()
	}
}
