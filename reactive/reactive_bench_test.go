package reactive_test

import (
	"testing"

	"github.com/ripplefn/ripple/reactive"
)

func benchRuntime() *reactive.Runtime {
	return reactive.New(reactive.WithWarnFunc(func(string, ...any) {}))
}

func BenchmarkRefValueNoTracking(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 42)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = n.Value()
	}
}

func BenchmarkRefValueTracked(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 42)
	c := rt.NewComputation(func() error {
		_ = n.Value()
		return nil
	}, nil)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.Run()
	}
}

func BenchmarkRefSetNoSubscribers(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.SetValue(i)
	}
}

func BenchmarkRefSet10Subscribers(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 0)
	for i := 0; i < 10; i++ {
		reactive.Effect(rt, func() error {
			_ = n.Value()
			return nil
		})
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.SetValue(i)
	}
}

func BenchmarkComputedCached(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 42)
	double := reactive.Computed(rt, func(int) int { return n.Value() * 2 })
	_ = double.Value()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = double.Value()
	}
}

func BenchmarkComputedRecompute(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 0)
	double := reactive.Computed(rt, func(int) int { return n.Value() * 2 })
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.SetValue(i)
		_ = double.Value()
	}
}

func BenchmarkComputedChain5(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 0)
	prev := reactive.Readable[int](n)
	for i := 0; i < 5; i++ {
		src := prev
		prev = reactive.Computed(rt, func(int) int { return src.Value() + 1 })
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.SetValue(i)
		_ = prev.Value()
	}
}

func BenchmarkBatch100Writes(b *testing.B) {
	rt := benchRuntime()
	refs := make([]*reactive.Ref[int], 100)
	for i := range refs {
		refs[i] = reactive.NewRef(rt, 0)
	}
	reactive.Effect(rt, func() error {
		for _, r := range refs {
			_ = r.Value()
		}
		return nil
	})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rt.Batch(func() {
			for j, r := range refs {
				r.SetValue(i*100 + j)
			}
		})
	}
}

func BenchmarkWatchEffectFlush(b *testing.B) {
	rt := benchRuntime()
	n := reactive.NewRef(rt, 0)
	reactive.WatchEffect(rt, func() error {
		_ = n.Value()
		return nil
	})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.SetValue(i)
		rt.Flush()
	}
}

func BenchmarkMapSet(b *testing.B) {
	rt := benchRuntime()
	m := reactive.WrapMap(rt, map[string]any{})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Set("key", i)
	}
}

func BenchmarkListAppend(b *testing.B) {
	rt := benchRuntime()
	l := reactive.WrapList(rt, []any{})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}
