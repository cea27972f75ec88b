package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nrummel/bptreedb/internal/compare"
	"github.com/nrummel/bptreedb/internal/config"
)

// benchLatency is the Prometheus histogram recording, per engine, the total
// duration of the bench's insert phase (one observation per engine per run),
// exposed on cfg.MetricsListen when set (grounded in the corpus's
// client_golang usage — see DESIGN.md).
var benchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "bptreectl_bench_insert_seconds",
	Help:    "insert latency observed during bptreectl bench, by engine",
	Buckets: prometheus.DefBuckets,
}, []string{"engine"})

func newBenchCmd(resolver *config.Resolver, log logr.Logger) *cobra.Command {
	var n int
	var plotPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compare insert/search latency against an in-memory baseline and pebble",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolver.Resolve()
			if err != nil {
				return err
			}

			if cfg.MetricsListen != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				srv := &http.Server{Addr: cfg.MetricsListen, Handler: mux}
				go func() { _ = srv.ListenAndServe() }()
				defer srv.Close()
			}

			results, err := runBench(cfg, log, n)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s insert=%v search=%v\n", r.engine, r.insertPerOp, r.searchPerOp)
			}
			if plotPath != "" {
				return plotResults(results, plotPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10000, "number of keys to insert/search per engine")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a latency comparison chart to this PNG path")
	return cmd
}

type benchResult struct {
	engine      string
	insertPerOp time.Duration
	searchPerOp time.Duration
}

func runBench(cfg config.Config, log logr.Logger, n int) ([]benchResult, error) {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(strconv.Itoa(i))
	}
	value := []byte("v")

	var results []benchResult

	// 1. The disk-backed engine under test.
	tree, f, err := openTree(cfg, log)
	if err != nil {
		return nil, errors.Wrap(err, "bench: open tree")
	}
	defer f.Close()
	results = append(results, timeEngine("bptree", n, func(i int) {
		_ = tree.Insert(keys[i], value)
	}, func(i int) {
		_, _, _ = tree.Search(keys[i])
	}))

	// 2. The in-memory baseline with no I/O at all.
	mem := compare.NewBPlusTree(cfg.Degree / 2)
	results = append(results, timeEngine("in-memory", n, func(i int) {
		mem.Insert(keys[i], value)
	}, func(i int) {
		_, _ = mem.Search(keys[i])
	}))

	// 3. pebble, as the production-grade reference point.
	pebbleDir, err := os.MkdirTemp("", "bptreectl-bench-pebble-*")
	if err != nil {
		return nil, errors.Wrap(err, "bench: create pebble dir")
	}
	defer os.RemoveAll(pebbleDir)

	db, err := pebble.Open(pebbleDir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "bench: open pebble")
	}
	defer db.Close()

	results = append(results, timeEngine("pebble", n, func(i int) {
		_ = db.Set(keys[i], value, pebble.Sync)
	}, func(i int) {
		v, closer, err := db.Get(keys[i])
		if err == nil {
			closer.Close()
			_ = v
		}
	}))

	return results, nil
}

func timeEngine(name string, n int, insert, search func(i int)) benchResult {
	start := time.Now()
	for i := 0; i < n; i++ {
		insert(i)
	}
	insertElapsed := time.Since(start)
	benchLatency.WithLabelValues(name).Observe(insertElapsed.Seconds())

	start = time.Now()
	for i := 0; i < n; i++ {
		search(i)
	}
	searchElapsed := time.Since(start)

	return benchResult{
		engine:      name,
		insertPerOp: insertElapsed / time.Duration(n),
		searchPerOp: searchElapsed / time.Duration(n),
	}
}

// plotResults renders a grouped bar chart of per-op latency across engines,
// following the corpus's "sweep configs into a chart" pattern (see
// main.go/benchmark.go) but via gonum/plot instead of a raw CSV.
func plotResults(results []benchResult, path string) error {
	p := plot.New()
	p.Title.Text = "bptreectl bench: latency per op"
	p.Y.Label.Text = "nanoseconds/op"

	insertValues := make(plotter.Values, len(results))
	searchValues := make(plotter.Values, len(results))
	labels := make([]string, len(results))
	for i, r := range results {
		insertValues[i] = float64(r.insertPerOp.Nanoseconds())
		searchValues[i] = float64(r.searchPerOp.Nanoseconds())
		labels[i] = r.engine
	}

	width := vg.Points(15)
	insertBars, err := plotter.NewBarChart(insertValues, width)
	if err != nil {
		return errors.Wrap(err, "bench: build insert bar chart")
	}
	insertBars.Offset = -width

	searchBars, err := plotter.NewBarChart(searchValues, width)
	if err != nil {
		return errors.Wrap(err, "bench: build search bar chart")
	}
	searchBars.Offset = width

	p.Add(insertBars, searchBars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "bench: save plot")
	}
	return nil
}
