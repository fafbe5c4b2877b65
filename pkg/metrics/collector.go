// Package metrics exposes pool activity as prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jzx17/taskpool/pkg/pool"
)

// StatsProvider is the part of pool.Pool the collector reads
type StatsProvider interface {
	Stats() pool.Stats
}

// Collector implements prometheus.Collector over a pool's stats snapshot.
// Register it with a prometheus.Registerer; it holds no state of its own and
// reads the pool only at scrape time.
type Collector struct {
	provider StatsProvider

	workers     *prometheus.Desc
	queueLength *prometheus.Desc
	state       *prometheus.Desc
	submitted   *prometheus.Desc
	completed   *prometheus.Desc
	failed      *prometheus.Desc
	busySeconds *prometheus.Desc
}

// NewCollector creates a collector for the given pool. namespace prefixes
// every metric name and may be empty.
func NewCollector(provider StatsProvider, namespace string) *Collector {
	return &Collector{
		provider: provider,
		workers: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "workers"),
			"Fixed number of workers in the pool.",
			nil, nil,
		),
		queueLength: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "queue_length"),
			"Number of tasks waiting in the queue.",
			nil, nil,
		),
		state: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "state"),
			"Pool lifecycle state: 0=running, 1=stopping, 2=drained.",
			nil, nil,
		),
		submitted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "tasks_submitted_total"),
			"Total number of tasks accepted by the pool.",
			nil, nil,
		),
		completed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "tasks_completed_total"),
			"Total number of tasks that finished without failure.",
			nil, nil,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "tasks_failed_total"),
			"Total number of tasks that resolved with a failure.",
			nil, nil,
		),
		busySeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "taskpool", "busy_seconds_total"),
			"Accumulated task execution time across all workers.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.queueLength
	ch <- c.state
	ch <- c.submitted
	ch <- c.completed
	ch <- c.failed
	ch <- c.busySeconds
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.provider.Stats()

	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(s.WorkerCount))
	ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(s.QueueLength))
	ch <- prometheus.MustNewConstMetric(c.state, prometheus.GaugeValue, float64(s.State))
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(s.Completed))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
	ch <- prometheus.MustNewConstMetric(c.busySeconds, prometheus.CounterValue, s.TotalDuration.Seconds())
}
