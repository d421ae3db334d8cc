package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DictionaryWords - distinct words in the loaded tree.
	DictionaryWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordpool_dictionary_words",
		Help: "Number of distinct words in the loaded dictionary",
	})

	// TreeNodes - nodes in the loaded tree.
	TreeNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordpool_tree_nodes",
		Help: "Number of nodes in the loaded prefix tree",
	})

	// BuildDuration - time to build the tree from the word list.
	BuildDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordpool_build_seconds",
		Help: "Time taken by the last tree build",
	})

	// SolveRequests - boards solved, by outcome.
	SolveRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordpool_solve_total",
			Help: "Total number of boards solved",
		},
		[]string{"result"},
	)

	// SolveDuration - time to solve one board.
	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordpool_solve_seconds",
			Help:    "Time taken to solve a board",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 20),
		},
	)

	// SolveWords - words found per board.
	SolveWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordpool_solve_words",
			Help:    "Number of words found per board",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
	)

	// CacheLookups - solve cache lookups, by hit or miss.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordpool_cache_lookups_total",
			Help: "Total number of solve cache lookups",
		},
		[]string{"result"},
	)
)

// ObserveBuild records a finished tree build.
func ObserveBuild(words, nodes int, took time.Duration) {
	DictionaryWords.Set(float64(words))
	TreeNodes.Set(float64(nodes))
	BuildDuration.Set(took.Seconds())
}

// ObserveSolve records one solved board. A non-nil err counts as invalid.
func ObserveSolve(found int, took time.Duration, err error) {
	if err != nil {
		SolveRequests.WithLabelValues("invalid").Inc()
		return
	}
	SolveRequests.WithLabelValues("ok").Inc()
	SolveDuration.Observe(took.Seconds())
	SolveWords.Observe(float64(found))
}
