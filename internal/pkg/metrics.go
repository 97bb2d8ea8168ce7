package pkg

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	PostsRemoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "moderation_posts_removed_total", Help: "Reported posts removed by admins"},
		[]string{"kind"},
	)
	SideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "moderation_side_effect_failures_total", Help: "Failed post-removal steps"},
		[]string{"step"},
	)
	PollTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "poll_transitions_total", Help: "Poll lifecycle transitions"},
		[]string{"transition"},
	)
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal, ReqDuration, PostsRemoved, SideEffectFailures, PollTransitions)
}
