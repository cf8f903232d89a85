package reactive

// List is the reactive handle over a []any. Index reads track the
// index key; Len and iteration track the KeyLength sentinel, which is
// triggered whenever the list grows or shrinks.
type List struct {
	rt       *Runtime
	target   uint64
	raw      []any
	readonly bool
}

// Get tracks index i and returns its value, or nil when out of range.
// Object-like values come back as handles.
func (l *List) Get(i int) any {
	l.rt.Track(l.target, indexKey(i))
	if i < 0 || i >= len(l.raw) {
		return nil
	}
	return l.wrapNested(l.raw[i])
}

// Set assigns index i. Writing one past the end appends, triggering
// both the new index (as an add) and the length sentinel. In-range
// writes trigger only under NaN-aware inequality. Anything further out
// of range is dropped with a diagnostic.
func (l *List) Set(i int, v any) {
	if l.readonly {
		l.rt.warnf("ripple: write to index %d of read-only list ignored", i)
		return
	}
	v = rawOf(v)
	switch {
	case i >= 0 && i < len(l.raw):
		old := l.raw[i]
		if sameValue(old, v) {
			return
		}
		l.raw[i] = v
		l.rt.Trigger(l.target, indexKey(i), ChangeSet)
	case i == len(l.raw):
		l.raw = append(l.raw, v)
		l.rt.Trigger(l.target, indexKey(i), ChangeAdd)
		l.rt.Trigger(l.target, KeyLength, ChangeSet)
	default:
		l.rt.warnf("ripple: write to out-of-range index %d of list with length %d ignored", i, len(l.raw))
	}
}

// Append adds values at the end.
func (l *List) Append(vs ...any) {
	if l.readonly {
		l.rt.warnf("ripple: append to read-only list ignored")
		return
	}
	if len(vs) == 0 {
		return
	}
	for _, v := range vs {
		i := len(l.raw)
		l.raw = append(l.raw, rawOf(v))
		l.rt.Trigger(l.target, indexKey(i), ChangeAdd)
	}
	l.rt.Trigger(l.target, KeyLength, ChangeSet)
}

// SetLen truncates or zero-extends the list. Removed indices trigger
// deletes; the length sentinel triggers when the length changed.
func (l *List) SetLen(n int) {
	if l.readonly {
		l.rt.warnf("ripple: resize of read-only list ignored")
		return
	}
	if n < 0 || n == len(l.raw) {
		return
	}
	if n < len(l.raw) {
		removed := len(l.raw)
		l.raw = l.raw[:n]
		for i := n; i < removed; i++ {
			l.rt.Trigger(l.target, indexKey(i), ChangeDelete)
		}
	} else {
		for i := len(l.raw); i < n; i++ {
			l.raw = append(l.raw, nil)
			l.rt.Trigger(l.target, indexKey(i), ChangeAdd)
		}
	}
	l.rt.Trigger(l.target, KeyLength, ChangeSet)
}

// Len tracks the length sentinel and returns the element count.
func (l *List) Len() int {
	l.rt.Track(l.target, KeyLength)
	return len(l.raw)
}

// Range visits elements in order until fn returns false, tracking the
// length sentinel and every visited index.
func (l *List) Range(fn func(i int, v any) bool) {
	n := l.Len()
	for i := 0; i < n; i++ {
		if !fn(i, l.Get(i)) {
			return
		}
	}
}

// Values tracks the length sentinel and every index, and returns a
// copy of the elements with object-like values wrapped.
func (l *List) Values() []any {
	out := make([]any, 0, len(l.raw))
	l.Range(func(_ int, v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Raw returns the underlying slice. Mutations through it are invisible
// to subscribers.
func (l *List) Raw() []any { return l.raw }

// IsReactive implements Wrapped.
func (l *List) IsReactive() bool { return true }

// IsReadonly implements Wrapped.
func (l *List) IsReadonly() bool { return l.readonly }

func (l *List) wrapNested(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return l.rt.wrapMap(x, l.readonly)
	case []any:
		return l.rt.wrapList(x, l.readonly)
	default:
		return v
	}
}
