package reactive

import "sort"

// Map is the reactive handle over a map[string]any. Reads track the
// accessed key, writes trigger it, and key enumeration tracks the
// structural KeyIterate sentinel so enumerators re-run on adds and
// deletes but not on same-key value mutation.
//
// Nested maps and slices are wrapped lazily when accessed, never
// eagerly at wrap time.
type Map struct {
	rt       *Runtime
	target   uint64
	raw      map[string]any
	readonly bool
}

// Get tracks key and returns its value. Object-like values come back
// as handles, read-only ones if this handle is read-only.
func (m *Map) Get(key string) any {
	m.rt.Track(m.target, key)
	return m.wrapNested(m.raw[key])
}

// Has tracks key and reports whether it exists.
func (m *Map) Has(key string) bool {
	m.rt.Track(m.target, key)
	_, ok := m.raw[key]
	return ok
}

// Set assigns key. A new key triggers as an add, which also notifies
// enumeration subscribers; overwriting triggers only when the value
// changed under NaN-aware equality. Writes on a read-only handle are
// dropped with a diagnostic.
func (m *Map) Set(key string, v any) {
	if m.readonly {
		m.rt.warnf("ripple: write to key %q of read-only map ignored", key)
		return
	}
	v = rawOf(v)
	old, existed := m.raw[key]
	m.raw[key] = v
	if !existed {
		m.rt.Trigger(m.target, key, ChangeAdd)
	} else if !sameValue(old, v) {
		m.rt.Trigger(m.target, key, ChangeSet)
	}
}

// Delete removes key, triggering only when it existed.
func (m *Map) Delete(key string) {
	if m.readonly {
		m.rt.warnf("ripple: delete of key %q of read-only map ignored", key)
		return
	}
	if _, ok := m.raw[key]; !ok {
		return
	}
	delete(m.raw, key)
	m.rt.Trigger(m.target, key, ChangeDelete)
}

// Clear removes every key at once, notifying all per-key and
// enumeration subscribers.
func (m *Map) Clear() {
	if m.readonly {
		m.rt.warnf("ripple: clear of read-only map ignored")
		return
	}
	if len(m.raw) == 0 {
		return
	}
	for key := range m.raw {
		delete(m.raw, key)
	}
	m.rt.Trigger(m.target, KeyIterate, ChangeClear)
}

// Keys tracks the structural sentinel and returns the keys sorted.
func (m *Map) Keys() []string {
	m.rt.Track(m.target, KeyIterate)
	keys := make([]string, 0, len(m.raw))
	for key := range m.raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len tracks the structural sentinel and returns the entry count.
func (m *Map) Len() int {
	m.rt.Track(m.target, KeyIterate)
	return len(m.raw)
}

// Range visits entries in key order until fn returns false. It tracks
// the structural sentinel plus every visited key, since the values are
// read.
func (m *Map) Range(fn func(key string, v any) bool) {
	for _, key := range m.Keys() {
		if !fn(key, m.Get(key)) {
			return
		}
	}
}

// Raw returns the underlying map. Mutations through it are invisible
// to subscribers.
func (m *Map) Raw() map[string]any { return m.raw }

// IsReactive implements Wrapped.
func (m *Map) IsReactive() bool { return true }

// IsReadonly implements Wrapped.
func (m *Map) IsReadonly() bool { return m.readonly }

func (m *Map) wrapNested(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return m.rt.wrapMap(x, m.readonly)
	case []any:
		return m.rt.wrapList(x, m.readonly)
	default:
		return v
	}
}
