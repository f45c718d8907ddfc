package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/viant/setcover/solver/branchbound"
)

// Metrics holds the collectors of one process, registered on Registry.
type Metrics struct {
	Registry *prometheus.Registry

	SearchCalls   prometheus.Counter
	Dominated     prometheus.Counter
	Forced        prometheus.Counter
	Branches      prometheus.Counter
	MemoHits      prometheus.Counter
	Unfinished    *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	CoverSize     *prometheus.GaugeVec
	SearchDepth   *prometheus.GaugeVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		SearchCalls: factory.NewCounter(prometheus.CounterOpts{
			Name: "msc_search_calls_total",
			Help: "Total number of recursive search calls",
		}),
		Dominated: factory.NewCounter(prometheus.CounterOpts{
			Name: "msc_dominated_entries_total",
			Help: "Total number of entries discarded as dominated",
		}),
		Forced: factory.NewCounter(prometheus.CounterOpts{
			Name: "msc_forced_selections_total",
			Help: "Total number of entries selected as the sole holder of an element",
		}),
		Branches: factory.NewCounter(prometheus.CounterOpts{
			Name: "msc_branches_total",
			Help: "Total number of include/exclude branchings",
		}),
		MemoHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "msc_memo_hits_total",
			Help: "Total number of subproblems answered from the cache",
		}),
		Unfinished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msc_unfinished_total",
			Help: "Total number of searches abandoned at their deadline",
		}, []string{"testcase"}),
		SolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "msc_solve_duration_seconds",
			Help:    "Search wall-clock time per testcase",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 10),
		}),
		CoverSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "msc_cover_size",
			Help: "Number of sets in the minimum cover found for a testcase",
		}, []string{"testcase"}),
		SearchDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "msc_search_max_depth",
			Help: "Deepest recursion reached while solving a testcase",
		}, []string{"testcase"}),
	}
}

// Observe records one finished search.
func (m *Metrics) Observe(testcase string, stats branchbound.Stats, elapsed time.Duration, size int) {
	m.SearchCalls.Add(float64(stats.Calls))
	m.Dominated.Add(float64(stats.Dominated))
	m.Forced.Add(float64(stats.Forced))
	m.Branches.Add(float64(stats.Branches))
	m.MemoHits.Add(float64(stats.MemoHits))
	m.SolveDuration.Observe(elapsed.Seconds())
	m.CoverSize.WithLabelValues(testcase).Set(float64(size))
	m.SearchDepth.WithLabelValues(testcase).Set(float64(stats.MaxDepth))
}

// ObserveUnfinished records a testcase that hit its deadline.
func (m *Metrics) ObserveUnfinished(testcase string) {
	m.Unfinished.WithLabelValues(testcase).Inc()
}

// WriteTextfile writes every collector to path in the textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.Registry), "metrics: write %s", path)
}
