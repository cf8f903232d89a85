package reactive_test

import (
	"errors"
	"testing"

	"github.com/ripplefn/ripple/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a batch coalesces synchronous effect re-runs into one
func TestBatchCoalesces(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.NewRef(rt, 1)
	b := reactive.NewRef(rt, 2)

	var sums []int
	reactive.Effect(rt, func() error {
		sums = append(sums, a.Value()+b.Value())
		return nil
	})
	require.Equal(t, []int{3}, sums)

	rt.Batch(func() {
		a.SetValue(10)
		b.SetValue(20)
		assert.Equal(t, []int{3}, sums, "no re-run inside the batch")
	})
	assert.Equal(t, []int{3, 30}, sums)
}

// nested batches flush once, at the outermost end
func TestBatchNesting(t *testing.T) {
	rt := newRuntime(t)
	n := reactive.NewRef(rt, 0)

	runs := 0
	reactive.Effect(rt, func() error {
		n.Value()
		runs++
		return nil
	})

	rt.StartBatch()
	n.SetValue(1)
	rt.StartBatch()
	n.SetValue(2)
	rt.EndBatch()
	assert.Equal(t, 1, runs, "inner end must not flush")
	rt.EndBatch()
	assert.Equal(t, 2, runs)
}

// effects still re-run in creation order when batched
func TestBatchOrder(t *testing.T) {
	rt := newRuntime(t)
	n := reactive.NewRef(rt, 0)

	var order []string
	reactive.Effect(rt, func() error {
		n.Value()
		order = append(order, "first")
		return nil
	})
	reactive.Effect(rt, func() error {
		n.Value()
		order = append(order, "second")
		return nil
	})
	order = nil

	rt.Batch(func() {
		n.SetValue(1)
	})
	assert.Equal(t, []string{"first", "second"}, order)
}

// a batched write that settles back to the original value still re-runs once
func TestBatchIntermediateValues(t *testing.T) {
	rt := newRuntime(t)
	n := reactive.NewRef(rt, 0)

	var seen []int
	reactive.Effect(rt, func() error {
		seen = append(seen, n.Value())
		return nil
	})

	rt.Batch(func() {
		n.SetValue(5)
		n.SetValue(0)
	})
	assert.Equal(t, []int{0, 0}, seen, "the effect observes only the final value")
}

// errors during a batched re-run route to the error callback
func TestBatchErrorRouting(t *testing.T) {
	var got error
	rt := reactive.New(reactive.WithOnError(func(err error) { got = err }))
	n := reactive.NewRef(rt, 0)

	boom := errors.New("boom")
	first := true
	reactive.Effect(rt, func() error {
		n.Value()
		if !first {
			return boom
		}
		first = false
		return nil
	})

	rt.Batch(func() {
		n.SetValue(1)
	})
	assert.Equal(t, boom, got)
}

// an unmatched end warns and leaves later batches intact
func TestEndBatchUnmatched(t *testing.T) {
	var warns int
	rt := reactive.New(reactive.WithWarnFunc(func(format string, args ...any) {
		warns++
	}))

	rt.EndBatch()
	require.Equal(t, 1, warns)

	a := reactive.NewRef(rt, 1)
	runs := 0
	reactive.Effect(rt, func() error {
		a.Value()
		runs++
		return nil
	})

	rt.Batch(func() {
		a.SetValue(2)
		a.SetValue(3)
	})
	assert.Equal(t, 2, runs, "the batch still coalesces after the stray end")
}
