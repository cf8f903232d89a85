package reactive

// Derived is a lazily evaluated, cached computation exposed as a
// readable value. It is also a dependency source: computations that
// read it subscribe to it like any other cell.
//
// The inner computation never re-runs eagerly. When an upstream
// dependency triggers, the scheduler only flips the dirty flag; the
// body runs again on the next read. Between reads the body runs at
// most once, and never if the value is never pulled.
type Derived[T any] struct {
	rt     *Runtime
	inner  *Computation
	target uint64

	value  T
	dirty  bool
	setter func(T)
}

// Computed creates a read-only derived value. The getter receives the
// previously cached value, which starts as T's zero value.
func Computed[T any](rt *Runtime, getter func(oldValue T) T) *Derived[T] {
	d := &Derived[T]{
		rt:     rt,
		target: rt.newTargetID(),
		dirty:  true,
	}
	d.inner = rt.NewComputation(func() error {
		d.value = getter(d.value)
		return nil
	}, func(*Computation) {
		// Idempotent dirtying: only a fresh transition propagates, so
		// N upstream writes before a read notify downstream once.
		if !d.dirty {
			d.dirty = true
			d.rt.Trigger(d.target, KeyValue, ChangeSet)
		}
	})
	return d
}

// WritableComputed is Computed plus a setter. Writing delegates to the
// setter, which is expected to mutate upstream state; the cache is
// refreshed through the normal dependency graph, not directly.
func WritableComputed[T any](rt *Runtime, getter func(oldValue T) T, setter func(T)) *Derived[T] {
	d := Computed(rt, getter)
	d.setter = setter
	return d
}

// Value registers the derived value as a dependency of the active
// computation, recomputes if dirty, and returns the cache.
func (d *Derived[T]) Value() T {
	d.rt.Track(d.target, KeyValue)
	if d.dirty {
		d.dirty = false
		d.rt.reportError(d.inner.Run())
	}
	return d.value
}

// Peek returns the current value without registering a dependency.
// A dirty cache is still refreshed.
func (d *Derived[T]) Peek() T {
	if d.dirty {
		d.dirty = false
		d.rt.reportError(d.inner.Run())
	}
	return d.value
}

// SetValue delegates to the setter. Without one the derived value is
// read-only and the write is dropped with a diagnostic.
func (d *Derived[T]) SetValue(v T) {
	if d.setter == nil {
		d.rt.warnf("ripple: write to read-only computed ignored")
		return
	}
	d.setter(v)
}

// Stop permanently detaches the derived value from its dependencies.
// Reads keep returning the last cached value.
func (d *Derived[T]) Stop() {
	d.inner.Stop()
}
