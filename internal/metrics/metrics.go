package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChatRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_chat_requests_total",
			Help: "Total chat requests handled",
		},
	)
	CompletionFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_completion_failures_total",
			Help: "Total failed completion API calls",
		},
	)
	ActiveConversations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_active_conversations",
			Help: "Conversations currently held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(ChatRequests, CompletionFailures, ActiveConversations)
}
