package reactive

// WatchOption configures Watch and WatchEffect.
type WatchOption func(*watchConfig)

type watchConfig struct {
	immediate bool
	sync      bool
}

// Immediate makes Watch fire its callback on the initial run, with the
// zero value as the old value.
func Immediate() WatchOption {
	return func(cfg *watchConfig) { cfg.immediate = true }
}

// Sync bypasses the batch queue: the watcher re-runs synchronously
// inside the trigger instead of on the next flush.
func Sync() WatchOption {
	return func(cfg *watchConfig) { cfg.sync = true }
}

// WatchEffect is Effect with its re-runs routed through the batch
// queue, so a burst of synchronous writes re-runs it once on the next
// flush rather than once per write. The initial run is synchronous to
// collect dependencies.
func WatchEffect(rt *Runtime, fn ErrFn, opts ...WatchOption) *Computation {
	var cfg watchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	var scheduler SchedulerFunc
	if !cfg.sync {
		scheduler = rt.Queue
	}
	c := rt.NewComputation(fn, scheduler)
	rt.reportError(c.Run())
	return c
}

// Watch tracks a source getter and invokes cb with the new and old
// values whenever the source's result changes. The callback itself is
// untracked. Re-evaluation goes through the batch queue unless Sync
// is given. Stop the returned computation to stop watching.
func Watch[T any](rt *Runtime, source func() T, cb func(newV, oldV T), opts ...WatchOption) *Computation {
	var cfg watchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var old T
	first := true
	body := func() error {
		v := source()
		if first {
			first = false
			if cfg.immediate {
				rt.Untracked(func() { cb(v, old) })
			}
			old = v
			return nil
		}
		if sameValue(old, v) {
			return nil
		}
		prev := old
		old = v
		rt.Untracked(func() { cb(v, prev) })
		return nil
	}

	var scheduler SchedulerFunc
	if !cfg.sync {
		scheduler = rt.Queue
	}
	c := rt.NewComputation(body, scheduler)
	rt.reportError(c.Run())
	return c
}
