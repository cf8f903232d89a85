package reactive

// StartBatch suspends synchronous effect re-runs. Until the matching
// EndBatch, triggers route scheduler-less computations into the queue
// instead of running them inline.
func (rt *Runtime) StartBatch() {
	rt.batchDepth++
}

// EndBatch closes the innermost batch. When the outermost batch closes,
// everything coalesced during it flushes in creation order.
func (rt *Runtime) EndBatch() {
	if rt.batchDepth == 0 {
		rt.warnf("ripple: EndBatch without a matching StartBatch")
		return
	}
	rt.batchDepth--
	if rt.batchDepth == 0 {
		rt.sched.flush()
	}
}

// Batch runs fn between StartBatch and EndBatch, so that N writes
// inside fn re-run each affected subscriber once rather than N times.
func (rt *Runtime) Batch(fn func()) {
	rt.StartBatch()
	defer rt.EndBatch()
	fn()
}
