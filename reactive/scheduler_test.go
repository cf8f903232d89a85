package reactive_test

import (
	"strings"
	"testing"

	"github.com/ripplefn/ripple/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// N synchronous writes re-run a queued watcher once
func TestQueueCoalescesWrites(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)
	c := reactive.NewRef(rt, 0)

	runs := 0
	reactive.WatchEffect(rt, func() error {
		a.Value()
		b.Value()
		c.Value()
		runs++
		return nil
	})
	require.Equal(t, 1, runs)

	a.SetValue(1)
	b.SetValue(1)
	c.SetValue(1)
	assert.Equal(t, 1, runs, "no flush yet")
	rt.Flush()
	assert.Equal(t, 2, runs, "three writes, one re-run")
	rt.Flush()
	assert.Equal(t, 2, runs, "flushing an empty queue is a no-op")
}

// jobs flush in creation order regardless of trigger order
func TestFlushCreationOrder(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)

	var order []string
	first := true
	reactive.WatchEffect(rt, func() error {
		a.Value()
		if !first {
			order = append(order, "outer")
		}
		return nil
	})
	reactive.WatchEffect(rt, func() error {
		b.Value()
		if !first {
			order = append(order, "inner")
		}
		return nil
	})
	first = false

	b.SetValue(1) // enqueues the later-created watcher first
	a.SetValue(1)
	rt.Flush()
	assert.Equal(t, []string{"outer", "inner"}, order)
}

// a job enqueued during the flush joins the same pass
func TestEnqueueDuringFlushSamePass(t *testing.T) {
	rt := newRuntime(t)
	src := reactive.NewRef(rt, 0)
	derived := reactive.NewRef(rt, 0)

	reactive.WatchEffect(rt, func() error {
		derived.SetValue(src.Value() * 10)
		return nil
	})
	downstream := 0
	reactive.WatchEffect(rt, func() error {
		derived.Value()
		downstream++
		return nil
	})
	require.Equal(t, 1, downstream)

	src.SetValue(2)
	rt.Flush()
	assert.Equal(t, 2, downstream, "second watcher ran in the same flush")
	assert.Equal(t, 20, derived.Peek())
}

// a trigger storm between jobs is cut off by the recursion guard
func TestFlushRecursionGuard(t *testing.T) {
	var warns []string
	rt := reactive.New(
		reactive.WithWarnFunc(func(format string, args ...any) {
			warns = append(warns, format)
		}),
		reactive.WithMaxFlushRecursion(5),
	)
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)

	aRuns, bRuns := 0, 0
	reactive.WatchEffect(rt, func() error {
		aRuns++
		b.SetValue(a.Value() + 1)
		return nil
	})
	reactive.WatchEffect(rt, func() error {
		bRuns++
		a.SetValue(b.Value() + 1)
		return nil
	})

	a.SetValue(100)
	rt.Flush()

	assert.LessOrEqual(t, aRuns, 8)
	assert.LessOrEqual(t, bRuns, 8)
	require.NotEmpty(t, warns, "the guard must report the runaway cycle")
	assert.Contains(t, warns[0], "recursion")
}

// after the guard fires, the queue works again on the next turn
func TestQueueRecoversAfterGuard(t *testing.T) {
	rt := reactive.New(
		reactive.WithWarnFunc(func(format string, args ...any) {}),
		reactive.WithMaxFlushRecursion(3),
	)
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)

	reactive.WatchEffect(rt, func() error {
		b.SetValue(a.Value() + 1)
		return nil
	})
	reactive.WatchEffect(rt, func() error {
		a.SetValue(b.Value() + 1)
		return nil
	})
	a.SetValue(100)
	rt.Flush()

	quiet := reactive.NewRef(rt, 0)
	runs := 0
	reactive.WatchEffect(rt, func() error {
		quiet.Value()
		runs++
		return nil
	})
	quiet.SetValue(1)
	rt.Flush()
	assert.Equal(t, 2, runs)
}

// NextTick observes the post-flush state
func TestNextTick(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 0)

	var rendered []int
	reactive.WatchEffect(rt, func() error {
		rendered = append(rendered, count.Value())
		return nil
	})

	count.SetValue(1)
	count.SetValue(2)

	observed := -1
	rt.NextTick(func() {
		observed = rendered[len(rendered)-1]
	})
	assert.Equal(t, 2, observed)
	assert.Equal(t, []int{0, 2}, rendered)
}

// the immediate flusher drains the queue as soon as it is scheduled
func TestImmediateFlusher(t *testing.T) {
	rt := reactive.New(reactive.WithFlusher(reactive.ImmediateFlusher{}))
	count := reactive.NewRef(rt, 0)

	runs := 0
	reactive.WatchEffect(rt, func() error {
		count.Value()
		runs++
		return nil
	})

	count.SetValue(1)
	assert.Equal(t, 2, runs, "no explicit flush needed")
}

// a custom flusher receives exactly one schedule per pending flush
func TestFlusherScheduledOncePerTurn(t *testing.T) {
	scheduled := 0
	var pending func()
	rt := reactive.New(reactive.WithFlusher(reactive.FlusherFunc(func(run func()) {
		scheduled++
		pending = run
	})))
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)

	reactive.WatchEffect(rt, func() error {
		a.Value()
		b.Value()
		return nil
	})

	a.SetValue(1)
	b.SetValue(1)
	assert.Equal(t, 1, scheduled)
	pending()

	a.SetValue(2)
	assert.Equal(t, 2, scheduled)
}

// a stopped watcher pending in the queue does not run
func TestStoppedJobSkipped(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.NewRef(rt, 0)

	runs := 0
	w := reactive.WatchEffect(rt, func() error {
		a.Value()
		runs++
		return nil
	})

	a.SetValue(1)
	w.Stop()
	rt.Flush()
	assert.Equal(t, 1, runs)
}

// sanity: the guard diagnostic names the limit
func TestGuardDiagnosticText(t *testing.T) {
	var warn string
	rt := reactive.New(
		reactive.WithWarnFunc(func(format string, args ...any) {
			if warn == "" && strings.Contains(format, "recursion") {
				warn = format
			}
		}),
		reactive.WithMaxFlushRecursion(2),
	)
	a := reactive.NewRef(rt, 0)
	b := reactive.NewRef(rt, 0)
	reactive.WatchEffect(rt, func() error {
		b.SetValue(a.Value() + 1)
		return nil
	})
	reactive.WatchEffect(rt, func() error {
		a.SetValue(b.Value() + 1)
		return nil
	})
	a.SetValue(10)
	rt.Flush()
	assert.Contains(t, warn, "flush recursion limit")
}
