package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "unibot", Name: "updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "unibot", Name: "handler_errors_total", Help: "Handler errors",
	})
	BroadcastSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "unibot", Name: "broadcast_sent_total", Help: "Broadcast messages delivered",
	})
	BroadcastFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "unibot", Name: "broadcast_failed_total", Help: "Broadcast messages failed to deliver",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "unibot", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(BotUpdates, HandlerErrors, BroadcastSent, BroadcastFailed, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
