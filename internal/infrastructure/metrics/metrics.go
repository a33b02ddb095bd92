package metrics

import (
	"net/http"
	"strconv"

	"orcamento_bot/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orcamento_bot"

// Registry holds the bot collectors on a private registry and implements
// interfaces.IMetrics.
type Registry struct {
	reg            *prometheus.Registry
	Inbound        *prometheus.CounterVec
	Dropped        *prometheus.CounterVec
	StepFailures   *prometheus.CounterVec
	Submissions    *prometheus.CounterVec
	PostalLookups  *prometheus.CounterVec
	CatalogSize    prometheus.Gauge
	ActiveHandoffs prometheus.Gauge
}

var _ interfaces.IMetrics = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	inbound := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inbound_messages_total",
		Help:      "Inbound chat messages by routing kind.",
	}, []string{"kind"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_messages_total",
		Help:      "Inbound messages not handled by the bot.",
	}, []string{"reason"})
	stepFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_step_failures_total",
		Help:      "Conversation steps that failed, by stage.",
	}, []string{"stage"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_submissions_total",
		Help:      "Order submissions to the backend by intake channel and result.",
	}, []string{"channel", "ok"})
	postal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postal_lookups_total",
		Help:      "Postal code lookups by result.",
	}, []string{"result"})
	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_entries",
		Help:      "Entries in the published catalog index.",
	})
	handoffs := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_handoffs",
		Help:      "Chats currently handled by a human operator.",
	})

	r.MustRegister(
		inbound, dropped, stepFailures, submissions, postal, catalogSize, handoffs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:            r,
		Inbound:        inbound,
		Dropped:        dropped,
		StepFailures:   stepFailures,
		Submissions:    submissions,
		PostalLookups:  postal,
		CatalogSize:    catalogSize,
		ActiveHandoffs: handoffs,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) ObserveInbound(kind string)      { r.Inbound.WithLabelValues(kind).Inc() }
func (r *Registry) ObserveDropped(reason string)    { r.Dropped.WithLabelValues(reason).Inc() }
func (r *Registry) ObserveStepFailure(stage string) { r.StepFailures.WithLabelValues(stage).Inc() }
func (r *Registry) ObservePostalLookup(result string) {
	r.PostalLookups.WithLabelValues(result).Inc()
}
func (r *Registry) ObserveSubmission(channel string, ok bool) {
	r.Submissions.WithLabelValues(channel, strconv.FormatBool(ok)).Inc()
}
func (r *Registry) SetCatalogSize(n int)    { r.CatalogSize.Set(float64(n)) }
func (r *Registry) SetActiveHandoffs(n int) { r.ActiveHandoffs.Set(float64(n)) }
