package metrics

import "github.com/prometheus/client_golang/prometheus"

// RelayMetrics 对话中继的计数器与延迟直方图
type RelayMetrics struct {
	requestsTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// NewRelayMetrics 注册中继指标，reg 为 nil 时使用默认 Registerer
func NewRelayMetrics(reg prometheus.Registerer) *RelayMetrics {
	m := &RelayMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat relay requests by terminal state",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "chat",
			Name:      "upstream_latency_seconds",
			Help:      "Latency of upstream completion calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.upstreamLatency)
	return m
}

func (m *RelayMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *RelayMetrics) ObserveUpstreamLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamLatency.WithLabelValues(outcome).Observe(seconds)
}

// RequestsCounter 返回指定结果的请求计数器
func (m *RelayMetrics) RequestsCounter(outcome string) prometheus.Counter {
	return m.requestsTotal.WithLabelValues(outcome)
}
