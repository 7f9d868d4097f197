// File: metrics/collector.go
// License: Apache-2.0
//
// Prometheus collector for pool accounting. Scrapes read the pool's
// Stats snapshot; nothing is incremented on the allocate/release path.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fastpath/pktpool/api"
)

// Collector exports api.PoolStats as prometheus metrics.
type Collector struct {
	source api.StatsProvider

	capacity  *prometheus.Desc
	available *prometheus.Desc
	inUse     *prometheus.Desc
	highWater *prometheus.Desc

	allocates     *prometheus.Desc
	releases      *prometheus.Desc
	releasedBytes *prometheus.Desc
}

// NewCollector builds a collector for one pool. namespace prefixes every
// metric name, typically the owning service.
func NewCollector(namespace string, source api.StatsProvider) *Collector {
	fqName := func(name string) string {
		return prometheus.BuildFQName(namespace, "freelist", name)
	}
	return &Collector{
		source: source,
		capacity: prometheus.NewDesc(fqName("capacity"),
			"Fixed number of packets the pool owns.", nil, nil),
		available: prometheus.NewDesc(fqName("available"),
			"Packets currently in the pool.", nil, nil),
		inUse: prometheus.NewDesc(fqName("in_use"),
			"Packets currently checked out.", nil, nil),
		highWater: prometheus.NewDesc(fqName("high_water"),
			"Maximum packets ever checked out concurrently.", nil, nil),
		allocates: prometheus.NewDesc(fqName("allocates_total"),
			"Completed allocate operations.", nil, nil),
		releases: prometheus.NewDesc(fqName("releases_total"),
			"Completed release operations.", nil, nil),
		releasedBytes: prometheus.NewDesc(fqName("released_bytes_total"),
			"Sum of packet lengths at release time.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.available
	ch <- c.inUse
	ch <- c.highWater
	ch <- c.allocates
	ch <- c.releases
	ch <- c.releasedBytes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Capacity))
	ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(st.Available))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(st.InUse))
	ch <- prometheus.MustNewConstMetric(c.highWater, prometheus.GaugeValue, float64(st.HighWater))
	ch <- prometheus.MustNewConstMetric(c.allocates, prometheus.CounterValue, float64(st.TotalAllocates))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(st.TotalReleases))
	ch <- prometheus.MustNewConstMetric(c.releasedBytes, prometheus.CounterValue, float64(st.ReleasedBytes))
}

var _ prometheus.Collector = (*Collector)(nil)
