// Package metrics expõe os contadores Prometheus do painel
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SectionFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecom_dashboard_section_fetch_total",
		Help: "Buscas de blocos do painel por resultado",
	}, []string{"section", "status"})
	SectionFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecom_dashboard_section_fetch_duration_seconds",
		Help:    "Duração das buscas de blocos na API de métricas",
		Buckets: prometheus.DefBuckets,
	}, []string{"section"})
	GeocodeLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecom_dashboard_geocode_lookups_total",
		Help: "Consultas ao geocodificador por resultado",
	}, []string{"status"})
	BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ecom_dashboard_breaker_state",
		Help: "Estado do circuit breaker (0 fechado, 1 meio-aberto, 2 aberto)",
	}, []string{"name"})
	KeepAliveTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecom_dashboard_keepalive_total",
		Help: "Execuções do keep-alive da API de métricas por resultado",
	}, []string{"status"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecom_dashboard_http_requests_total",
		Help: "Requisições HTTP atendidas",
	}, []string{"method", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecom_dashboard_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(
		SectionFetchTotal,
		SectionFetchDuration,
		GeocodeLookupsTotal,
		BreakerState,
		KeepAliveTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Status converte um erro no rótulo usado pelos contadores
func Status(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}

func ObserveSectionFetch(section string, started time.Time, err error) {
	SectionFetchTotal.WithLabelValues(section, Status(err)).Inc()
	SectionFetchDuration.WithLabelValues(section).Observe(time.Since(started).Seconds())
}

func ObserveGeocode(err error) {
	GeocodeLookupsTotal.WithLabelValues(Status(err)).Inc()
}

func SetBreakerState(name string, state int) {
	BreakerState.WithLabelValues(name).Set(float64(state))
}

func ObserveKeepAlive(err error) {
	KeepAliveTotal.WithLabelValues(Status(err)).Inc()
}

func ObserveRequest(method string, statusCode int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func Handler() http.Handler { return promhttp.Handler() }
