package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Sessions
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"}, // success|empty_username|empty_password|unknown_username|wrong_password
	)
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Content
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Posts saved to the feed",
		},
	)
	CommentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_total",
			Help: "Comments added to posts",
		},
	)
	MessagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_total",
			Help: "Direct messages sent",
		},
	)
	ThreadsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "threads_created_total",
			Help: "DM threads created",
		},
	)

	// Collection sizes
	Accounts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "accounts",
			Help: "Registered accounts",
		},
	)
	Posts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "posts",
			Help: "Posts currently on the feed",
		},
	)
)

// Handler serves the /metrics endpoint on the debug listener.
var Handler = promhttp.Handler

// Init registers all collectors. Call once, from main; tests leave the
// collectors unregistered and the counters still work.
func Init() {
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(CommentsTotal)
	prometheus.MustRegister(MessagesTotal)
	prometheus.MustRegister(ThreadsCreated)
	prometheus.MustRegister(Accounts)
	prometheus.MustRegister(Posts)
}
