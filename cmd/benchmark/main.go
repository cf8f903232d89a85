package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ripplefn/ripple/arity"
	"github.com/ripplefn/ripple/reactive"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100

	profilePath = flag.String("profile", "default.pgo", "CPU profile output path")
)

func main() {
	flag.Parse()

	f, err := os.Create(*profilePath)
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkBatched(true)
	benchmarkQueued(true)
}

func addOne(oldValue int) int {
	return oldValue + 1
}

func pass(int) error {
	return nil
}

func newRuntime() *reactive.Runtime {
	return reactive.New(reactive.WithOnError(func(err error) {
		log.Panic(err)
	}))
}

// w parallel chains of h computeds hanging off one source, each chain
// terminated by a synchronous effect.
func buildGrid(rt *reactive.Runtime, w, h int) *reactive.Ref[int] {
	src := reactive.NewRef(rt, 1)
	for i := 0; i < w; i++ {
		var last reactive.Readable[int] = src
		for j := 0; j < h; j++ {
			last = arity.Computed1(rt, last, addOne)
		}
		arity.Effect1(rt, last, pass)
	}
	return src
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := newRuntime()
			src := buildGrid(rt, w, h)

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// same grids, but the writes land inside a batch so each effect re-runs
// once per iteration regardless of how many sources moved.
func benchmarkBatched(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Batched")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := newRuntime()
			srcs := make([]*reactive.Ref[int], 10)
			for i := range srcs {
				srcs[i] = buildGrid(rt, w/len(srcs)+1, h)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				rt.Batch(func() {
					for _, src := range srcs {
						src.SetValue(src.Peek() + 1)
					}
				})
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("batched: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// chains terminated by queued watchers drained with an explicit flush.
func benchmarkQueued(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Queued")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := newRuntime()
			src := reactive.NewRef(rt, 1)
			for i := 0; i < w; i++ {
				var last reactive.Readable[int] = src
				for j := 0; j < h; j++ {
					last = arity.Computed1(rt, last, addOne)
				}
				final := last
				reactive.WatchEffect(rt, func() error {
					final.Value()
					return nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				rt.Flush()
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("queued: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}
