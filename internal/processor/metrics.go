package processor

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	jobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sr",
			Subsystem: "processor",
			Name:      "jobs_total",
			Help:      "Total enhancement jobs by outcome",
		},
		[]string{"outcome"},
	)

	jobDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sr",
			Subsystem: "processor",
			Name:      "job_duration_seconds",
			Help:      "Wall time of enhancement jobs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	pollsPerJob = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sr",
			Subsystem: "processor",
			Name:      "polls_per_job",
			Help:      "Result poll attempts per submitted job",
			Buckets:   prometheus.LinearBuckets(5, 5, 12),
		},
	)

	engineInitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sr",
			Subsystem: "engine",
			Name:      "init_total",
			Help:      "Engine initializations by resulting mode",
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(jobsTotal, jobDuration, pollsPerJob, engineInitsTotal)
}
