package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConstraintViolationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "constraint_violations_total",
		Help: "Stored rows that broke an invariant while being converted, by field.",
	}, []string{"field"})

	StatusQueryCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deployment_status_queries_total",
		Help: "Number of deployment status queries.",
	})

	DeploymentEntityQueryCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deployment_entity_queries_total",
		Help: "Number of deployment entity queries.",
	})

	ManifestCacheHitCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "manifest_cache_hits_total",
		Help: "Manifests served from the local cache.",
	})

	BuildVersionGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "build_version_id",
		Help: "Id of the build_version row of the running binary.",
	})

	MetricsItems = []prometheus.Collector{
		ConstraintViolationCounter,
		StatusQueryCounter,
		DeploymentEntityQueryCounter,
		ManifestCacheHitCounter,
		BuildVersionGauge,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	if address == "" {
		address = DefaultMetricsAddress
	}
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

// Start registers the collectors and serves /metrics in the background. errCh receives the error
// the server stops with.
func (m *Metrics) Start(errCh chan<- error) {
	m.registry.MustRegister(MetricsItems...)
	go func() {
		errCh <- m.serve()
	}()
}

func (m *Metrics) Handler() http.Handler {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return router
}

func (m *Metrics) serve() error {
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: m.Handler(),
	}
	return m.httpServer.ListenAndServe()
}
