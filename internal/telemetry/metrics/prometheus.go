package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on /metrics: go runtime,
// process and build info collectors, a constant liftplan_version_info gauge
// and any extra collectors, like the db pool one.
func SetupPrometheus(version string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versionInfo(version),
	)
	for _, c := range extra {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}

func versionInfo(version string) prometheus.GaugeFunc {
	if version == "" {
		version = "unknown"
	}
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "liftplan",
		Name:        "version_info",
		Help:        "Running liftplan version, always 1.",
		ConstLabels: prometheus.Labels{"version": version},
	}, func() float64 { return 1 })
}
