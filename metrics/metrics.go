package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for packetlens metrics.
const (
	Fail = "fail"
	Ok   = "ok"

	Inbound  = "inbound"
	Outbound = "outbound"

	NoRepair = "no_repair"
	Repaired = "repaired"
)

// Collectors for intercept.Interception metrics.
var (
	InterceptedPacketsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_intercepted_packets_total",
		Help: "Cumulative number of packets presented to an observer.",
	}, []string{"direction"})
	InterceptedBytesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_intercepted_bytes_total",
		Help: "Cumulative number of uncompressed packet bytes presented to an observer.",
	}, []string{"direction"})
	DroppedPacketsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_dropped_packets_total",
		Help: "Cumulative number of packets cancelled by an observer.",
	}, []string{"direction"})
	ObserverFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_observer_failures_total",
		Help: "Cumulative number of observer invocations which failed or panicked.",
	}, []string{"direction"})
	CompressionChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_compression_checks_total",
		Help: "Cumulative number of per-connection compression ordering checks, by outcome.",
	}, []string{"outcome"})
	StructuralRepairsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_structural_repairs_total",
		Help: "Cumulative number of compression ordering repairs, by status.",
	}, []string{"status"})
)

// Collectors for registry.Catalog and registry.Builder metrics.
var (
	CatalogLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_catalog_loads_total",
		Help: "Cumulative number of catalog mapping document loads, by status.",
	}, []string{"catalog", "status"})
	RegistryDefinitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_registry_definitions_total",
		Help: "Cumulative number of registry entries defined, by catalog.",
	}, []string{"catalog"})
)

// Collectors for proxy.Proxy and proxy.Session metrics.
var (
	ProxySessionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_proxy_sessions_total",
		Help: "Cumulative number of proxied sessions, by completion status.",
	}, []string{"status"})
	ProxySessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "packetlens_proxy_sessions_active",
		Help: "Number of currently proxied sessions.",
	})
	ProxyRelayedBytesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_proxy_relayed_bytes_total",
		Help: "Cumulative number of framed bytes relayed, by direction.",
	}, []string{"direction"})
	ObservedPacketsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "packetlens_observed_packets_total",
		Help: "Cumulative number of packets seen by the logging observer, by direction and packet id.",
	}, []string{"direction", "packet_id"})
)

// InterceptCollectors returns interception metrics.
func InterceptCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		InterceptedPacketsTotal,
		InterceptedBytesTotal,
		DroppedPacketsTotal,
		ObserverFailuresTotal,
		CompressionChecksTotal,
		StructuralRepairsTotal,
	}
}

// RegistryCollectors returns catalog and registry metrics.
func RegistryCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		CatalogLoadsTotal,
		RegistryDefinitionsTotal,
	}
}

// ProxyCollectors returns proxy metrics.
func ProxyCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		ProxySessionsTotal,
		ProxySessionsActive,
		ProxyRelayedBytesTotal,
		ObservedPacketsTotal,
	}
}
