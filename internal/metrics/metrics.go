package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes used as the "outcome" label of LookupsTotal.
const (
	OutcomeMatch   = "match"
	OutcomeMiss    = "miss"
	OutcomeInvalid = "invalid"
)

var (
	LookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "koppen_lookups_total",
		Help: "Total nearest-classification lookups by outcome",
	}, []string{"outcome"})
	LookupDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "koppen_lookup_duration_seconds",
		Help:    "Duration of the nearest-point scan",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
	MatchDistanceKm = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "koppen_match_distance_km",
		Help:    "Distance between the query and the matched reference point",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
	DatasetPoints = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "koppen_dataset_points",
		Help: "Number of reference points loaded",
	})
)

func init() {
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(LookupDurationSeconds)
	prometheus.MustRegister(MatchDistanceKm)
	prometheus.MustRegister(DatasetPoints)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
