package reactive

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// ChangeKind tells Trigger what shape of mutation happened, so that
// structural subscribers (key enumeration, list length) are notified
// only when the shape actually changed.
type ChangeKind uint8

const (
	// ChangeSet is a value mutation on an existing key.
	ChangeSet ChangeKind = iota
	// ChangeAdd is a newly created key.
	ChangeAdd
	// ChangeDelete is a removed key.
	ChangeDelete
	// ChangeClear removed every key at once.
	ChangeClear
)

// Reserved keys live in a namespace no real property key can collide
// with: a NUL byte followed by the xxhash of the sentinel name.
func sentinelKey(name string) string {
	return "\x00" + strconv.FormatUint(xxhash.Sum64String(name), 16)
}

var (
	// KeyIterate is the structural-shape sentinel. Enumerating a map's
	// keys tracks it; adds and deletes trigger it.
	KeyIterate = sentinelKey("iterate")
	// KeyLength is the list length sentinel.
	KeyLength = sentinelKey("length")
	// KeyValue is the single-cell sentinel used by refs and computeds.
	KeyValue = sentinelKey("value")
)

// Track records that the active computation reads (target, key).
// No-op when no computation is collecting dependencies. The link is
// bidirectional: the subscriber set gains the computation, and the
// computation records the set for later cleanup.
func (rt *Runtime) Track(target uint64, key string) {
	c := rt.active
	if c == nil || !c.live {
		return
	}
	keyMap := rt.store[target]
	if keyMap == nil {
		keyMap = map[string]mapset.Set[*Computation]{}
		rt.store[target] = keyMap
	}
	subs := keyMap[key]
	if subs == nil {
		subs = mapset.NewThreadUnsafeSet[*Computation]()
		keyMap[key] = subs
	}
	if !subs.Contains(c) {
		subs.Add(c)
		c.deps = append(c.deps, subs)
	}
}

// Trigger notifies every computation subscribed to (target, key). Adds
// and deletes additionally notify the KeyIterate subscribers of the
// target, since they changed the key set. The active computation never
// receives its own trigger.
//
// Subscribers with a scheduler delegate to it; the rest re-run
// synchronously, their errors routed to the runtime's error sink.
func (rt *Runtime) Trigger(target uint64, key string, kind ChangeKind) {
	keyMap := rt.store[target]
	if keyMap == nil {
		return
	}
	if kind == ChangeSet {
		// Hot path: value mutations concern only this key's subscribers.
		if subs := keyMap[key]; subs == nil || subs.Cardinality() == 0 {
			return
		}
	}

	collected := mapset.NewThreadUnsafeSet[*Computation]()
	collect := func(subs mapset.Set[*Computation]) {
		if subs == nil {
			return
		}
		for c := range subs.Iter() {
			if c == rt.active {
				continue
			}
			collected.Add(c)
		}
	}

	collect(keyMap[key])
	if kind == ChangeAdd || kind == ChangeDelete || kind == ChangeClear {
		collect(keyMap[KeyIterate])
	}
	if kind == ChangeClear {
		for k, subs := range keyMap {
			if k == key || k == KeyIterate {
				continue
			}
			collect(subs)
		}
	}

	if collected.Cardinality() == 0 {
		return
	}

	// Creation order keeps dispatch deterministic.
	ordered := collected.ToSlice()
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	for _, c := range ordered {
		if !c.live {
			continue
		}
		switch {
		case c.scheduler != nil:
			c.scheduler(c)
		case rt.batchDepth > 0:
			rt.sched.enqueue(c)
		default:
			rt.reportError(c.Run())
		}
	}
}

// indexKey maps a list index into the property key space.
func indexKey(i int) string {
	return strconv.Itoa(i)
}
