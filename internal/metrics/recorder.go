package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weighbridge/internal/domain"
	"weighbridge/internal/port"
)

const namespace = "weighbridge"

// Recorder exports parse outcomes as Prometheus metrics on its own registry.
type Recorder struct {
	registry  *prometheus.Registry
	parsed    *prometheus.CounterVec
	extracted *prometheus.CounterVec
	repairs   *prometheus.CounterVec
	duration  prometheus.Histogram
}

var _ port.ParseRecorder = (*Recorder)(nil)

// NewRecorder registers the parse metrics plus Go and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		parsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_parsed_total",
			Help:      "Parse calls by outcome.",
		}, []string{"outcome"}),
		extracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_extracted_total",
			Help:      "Ticket fields successfully extracted, by field.",
		}, []string{"field"}),
		repairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weight_repairs_total",
			Help:      "Weight corrections and derivations, by rule.",
		}, []string{"rule"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time spent parsing one ticket.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	r.registry.MustRegister(
		r.parsed, r.extracted, r.repairs, r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveTicket counts a successful parse and each field it produced.
func (r *Recorder) ObserveTicket(t *domain.Ticket, seconds float64) {
	r.parsed.WithLabelValues("success").Inc()
	r.duration.Observe(seconds)
	for field, present := range map[string]bool{
		"company_name":   t.CompanyName != nil,
		"product_name":   t.ProductName != nil,
		"vehicle_number": t.VehicleNumber != nil,
		"date":           t.Date != nil,
		"in_time":        t.InTime != nil,
		"out_time":       t.OutTime != nil,
		"total_weight":   t.TotalWeight != nil,
		"empty_weight":   t.EmptyWeight != nil,
		"net_weight":     t.NetWeight != nil,
	} {
		if present {
			r.extracted.WithLabelValues(field).Inc()
		}
	}
}

// ObserveFailure counts a rejected parse.
func (r *Recorder) ObserveFailure(reason string) {
	r.parsed.WithLabelValues(reason).Inc()
}

// ObserveRepair counts one weight repair.
func (r *Recorder) ObserveRepair(rule string) {
	r.repairs.WithLabelValues(rule).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
