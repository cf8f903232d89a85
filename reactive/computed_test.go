package reactive_test

import (
	"testing"

	"github.com/ripplefn/ripple/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a computed never runs if its value is never read
func TestComputedLazy(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 0)

	runs := 0
	reactive.Computed(rt, func(_ int) int {
		runs++
		return count.Value() * 2
	})

	count.SetValue(1)
	count.SetValue(2)
	count.SetValue(3)
	assert.Equal(t, 0, runs)
}

// consecutive reads with no intervening write compute once
func TestComputedCaches(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 2)

	runs := 0
	double := reactive.Computed(rt, func(_ int) int {
		runs++
		return count.Value() * 2
	})

	assert.Equal(t, 4, double.Value())
	assert.Equal(t, 4, double.Value())
	assert.Equal(t, 4, double.Value())
	assert.Equal(t, 1, runs)
}

// read, write, read runs the body exactly twice
func TestComputedTwoRuns(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 0)

	runs := 0
	doubled := reactive.Computed(rt, func(_ int) int {
		runs++
		return count.Value() * 2
	})

	assert.Equal(t, 0, doubled.Value())
	count.SetValue(5)
	assert.Equal(t, 10, doubled.Value())
	assert.Equal(t, 2, runs)
}

// multiple upstream writes before a read notify downstream once
func TestComputedIdempotentDirtying(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 0)
	double := reactive.Computed(rt, func(_ int) int {
		return count.Value() * 2
	})

	runs := 0
	reactive.WatchEffect(rt, func() error {
		double.Value()
		runs++
		return nil
	})
	require.Equal(t, 1, runs)

	count.SetValue(1)
	count.SetValue(2)
	count.SetValue(3)
	rt.Flush()
	assert.Equal(t, 2, runs, "three writes, one notification")
	assert.Equal(t, 6, double.Value())
}

// chains of computeds stay consistent and recompute minimally
func TestComputedChain(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 1)

	doubleRuns, quadRuns := 0, 0
	double := reactive.Computed(rt, func(_ int) int {
		doubleRuns++
		return count.Value() * 2
	})
	quad := reactive.Computed(rt, func(_ int) int {
		quadRuns++
		return double.Value() * 2
	})

	assert.Equal(t, 4, quad.Value())
	count.SetValue(2)
	assert.Equal(t, 8, quad.Value())
	assert.Equal(t, 4, double.Value())
	assert.Equal(t, 2, doubleRuns)
	assert.Equal(t, 2, quadRuns)
}

// a writable computed delegates writes to its setter
func TestWritableComputed(t *testing.T) {
	rt := newRuntime(t)
	celsius := reactive.NewRef(rt, 0.0)

	fahrenheit := reactive.WritableComputed(rt,
		func(_ float64) float64 { return celsius.Value()*9/5 + 32 },
		func(f float64) { celsius.SetValue((f - 32) * 5 / 9) },
	)

	assert.InDelta(t, 32.0, fahrenheit.Value(), 1e-9)
	fahrenheit.SetValue(212)
	assert.InDelta(t, 100.0, celsius.Peek(), 1e-9)
	assert.InDelta(t, 212.0, fahrenheit.Value(), 1e-9)
}

// writing a setterless computed is a diagnostic no-op
func TestComputedReadOnlyWrite(t *testing.T) {
	var warns []string
	rt := reactive.New(reactive.WithWarnFunc(func(format string, args ...any) {
		warns = append(warns, format)
	}))
	count := reactive.NewRef(rt, 2)
	double := reactive.Computed(rt, func(_ int) int {
		return count.Value() * 2
	})

	double.SetValue(99)
	assert.Equal(t, 4, double.Value())
	assert.Len(t, warns, 1)
}

// a stopped computed keeps serving its last cached value
func TestComputedStop(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 2)

	runs := 0
	double := reactive.Computed(rt, func(_ int) int {
		runs++
		return count.Value() * 2
	})
	assert.Equal(t, 4, double.Value())

	double.Stop()
	count.SetValue(10)
	assert.Equal(t, 4, double.Value())
	assert.Equal(t, 1, runs)
}

// computeds are trackable sources for effects
func TestEffectOnComputed(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 1)
	double := reactive.Computed(rt, func(_ int) int {
		return count.Value() * 2
	})

	var seen []int
	reactive.Effect(rt, func() error {
		seen = append(seen, double.Value())
		return nil
	})

	count.SetValue(3)
	assert.Equal(t, []int{2, 6}, seen)
}

// peek refreshes a dirty cache without subscribing
func TestComputedPeek(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 1)
	double := reactive.Computed(rt, func(_ int) int {
		return count.Value() * 2
	})

	runs := 0
	reactive.Effect(rt, func() error {
		runs++
		rt.Untracked(func() { double.Value() })
		return nil
	})

	count.SetValue(2)
	assert.Equal(t, 1, runs, "untracked read must not subscribe the effect")
	assert.Equal(t, 4, double.Peek())
}

// the getter receives the previously cached value
func TestComputedOldValue(t *testing.T) {
	rt := newRuntime(t)
	count := reactive.NewRef(rt, 1)

	var olds []int
	c := reactive.Computed(rt, func(oldValue int) int {
		olds = append(olds, oldValue)
		return count.Value()
	})

	assert.Equal(t, 1, c.Value())
	count.SetValue(7)
	assert.Equal(t, 7, c.Value())
	assert.Equal(t, []int{0, 1}, olds)
}
