package reactive

import "reflect"

// Wrapped is the capability interface shared by reactive collection
// handles. The handle's introspection methods replace the magic-key
// lookups a dynamic language would use.
type Wrapped interface {
	// IsReactive always reports true for a handle.
	IsReactive() bool
	// IsReadonly reports whether writes through this handle are
	// rejected.
	IsReadonly() bool
}

// Wrap makes a value reactive. Maps become *Map handles and slices
// become *List handles; an existing handle passes through unchanged.
// Repeated wraps of the same underlying map or slice return the
// identical handle, so Wrap(x) == Wrap(x) always.
//
// Anything else is returned as-is with a diagnostic: primitives cannot
// be wrapped and callers should use a Ref instead.
func Wrap(rt *Runtime, v any) any {
	switch x := v.(type) {
	case *Map:
		return x
	case *List:
		return x
	case map[string]any:
		return rt.wrapMap(x, false)
	case []any:
		return rt.wrapList(x, false)
	default:
		rt.warnf("ripple: value of type %T cannot be made reactive", v)
		return v
	}
}

// Readonly wraps v like Wrap but returns a read-only handle: writes
// and deletes are dropped with a diagnostic. A read-only handle over
// the same underlying data as a reactive handle shares its dependency
// entries, so mutations through the writable handle still notify
// read-only readers.
func Readonly(rt *Runtime, v any) any {
	switch x := v.(type) {
	case *Map:
		if x.readonly {
			return x
		}
		return rt.wrapMap(x.raw, true)
	case *List:
		if x.readonly {
			return x
		}
		return rt.wrapList(x.raw, true)
	case map[string]any:
		return rt.wrapMap(x, true)
	case []any:
		return rt.wrapList(x, true)
	default:
		rt.warnf("ripple: value of type %T cannot be made readonly", v)
		return v
	}
}

// WrapMap is Wrap specialized to maps, returning the concrete handle.
func WrapMap(rt *Runtime, raw map[string]any) *Map {
	return rt.wrapMap(raw, false)
}

// WrapList is Wrap specialized to slices, returning the concrete
// handle.
func WrapList(rt *Runtime, raw []any) *List {
	return rt.wrapList(raw, false)
}

func (rt *Runtime) wrapMap(raw map[string]any, readonly bool) *Map {
	if raw == nil {
		// A handle over a nil map would panic on the first write.
		rt.warnf("ripple: wrapping a nil map, substituting an empty one")
		raw = map[string]any{}
	}
	cache := rt.maps
	if readonly {
		cache = rt.roMaps
	}
	ptr := reflect.ValueOf(raw).Pointer()
	if ptr != 0 {
		if m, ok := cache[ptr]; ok {
			return m
		}
	}
	m := &Map{
		rt:       rt,
		target:   rt.targetIDFor(ptr),
		raw:      raw,
		readonly: readonly,
	}
	if ptr != 0 {
		cache[ptr] = m
	}
	return m
}

func (rt *Runtime) wrapList(raw []any, readonly bool) *List {
	cache := rt.lists
	if readonly {
		cache = rt.roLists
	}
	ptr := reflect.ValueOf(raw).Pointer()
	if cap(raw) == 0 {
		// Zero-capacity slices all point at the runtime's zero-size
		// allocation, so the pointer cannot identify the slice.
		ptr = 0
	}
	if ptr != 0 {
		if l, ok := cache[ptr]; ok {
			return l
		}
	}
	l := &List{
		rt:       rt,
		target:   rt.targetIDFor(ptr),
		raw:      raw,
		readonly: readonly,
	}
	if ptr != 0 {
		cache[ptr] = l
	}
	return l
}

// targetIDFor hands out one dependency-store id per underlying
// collection, so writable and read-only handles over the same data
// share subscriber entries.
func (rt *Runtime) targetIDFor(ptr uintptr) uint64 {
	if ptr == 0 {
		return rt.newTargetID()
	}
	if id, ok := rt.targetIDs[ptr]; ok {
		return id
	}
	id := rt.newTargetID()
	rt.targetIDs[ptr] = id
	return id
}

// rawOf unwraps a handle back to its underlying data, so storing a
// reactive handle inside another reactive collection nests raw data
// rather than handles.
func rawOf(v any) any {
	switch x := v.(type) {
	case *Map:
		return x.raw
	case *List:
		return x.raw
	default:
		return v
	}
}
