// Package reactive is a dependency-tracking and scheduling engine.
//
// A Runtime maintains a live bipartite graph between data cells
// (refs, wrapped maps and lists, computed values) and the computations
// that read them. Reads performed while a computation runs subscribe
// it to what it read; writes trigger exactly the subscribers of the
// changed cell. Derived values are pull-based: an upstream write only
// marks them dirty, and the body re-runs on the next read, at most
// once per dirty period.
//
//	rt := reactive.New()
//	count := reactive.NewRef(rt, 1)
//	double := reactive.Computed(rt, func(_ int) int {
//		return count.Value() * 2
//	})
//	reactive.Effect(rt, func() error {
//		log.Printf("double is %d", double.Value())
//		return nil
//	})
//	count.SetValue(3) // effect re-runs, double recomputes lazily
//
// Writes can be coalesced with Runtime.Batch, or by watchers created
// through WatchEffect and Watch, whose re-runs go through a
// deduplicating queue flushed in creation order by Runtime.Flush or
// Runtime.NextTick. Scopes group computations so a consumer can
// dispose everything it created in one Stop call.
package reactive
