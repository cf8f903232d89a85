package reactive

import (
	"math"
	"reflect"
)

// Readable is any tracked source of T values. Ref and Derived both
// satisfy it; reading through it inside a computation subscribes the
// computation as usual.
type Readable[T any] interface {
	Value() T
}

// Ref is a single reactive cell. Reads track, writes trigger; there is
// no laziness because there is nothing to compute.
type Ref[T any] struct {
	rt     *Runtime
	target uint64
	value  T
}

// NewRef creates a cell holding initial.
func NewRef[T any](rt *Runtime, initial T) *Ref[T] {
	return &Ref[T]{
		rt:     rt,
		target: rt.newTargetID(),
		value:  initial,
	}
}

// Value returns the cell contents and subscribes the active
// computation.
func (r *Ref[T]) Value() T {
	r.rt.Track(r.target, KeyValue)
	return r.value
}

// Peek returns the cell contents without subscribing.
func (r *Ref[T]) Peek() T {
	return r.value
}

// SetValue stores v and triggers subscribers when it differs from the
// current value. Equality is NaN-aware: overwriting NaN with NaN does
// not trigger.
func (r *Ref[T]) SetValue(v T) {
	if sameValue(r.value, v) {
		return
	}
	r.value = v
	r.rt.Trigger(r.target, KeyValue, ChangeSet)
}

// Update applies fn to the current value and stores the result.
func (r *Ref[T]) Update(fn func(old T) T) {
	r.SetValue(fn(r.value))
}

// sameValue is the change-detection equality: like ==, except NaN is
// considered equal to NaN so repeated NaN writes do not retrigger, and
// uncomparable kinds fall back to reflect.DeepEqual.
func sameValue(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return av == bv
	case float32:
		bv, ok := b.(float32)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bv)) {
			return true
		}
		return av == bv
	}
	ra := reflect.ValueOf(a)
	if ra.IsValid() && ra.Comparable() {
		rb := reflect.ValueOf(b)
		if !rb.IsValid() || ra.Type() != rb.Type() {
			return a == nil && b == nil
		}
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
