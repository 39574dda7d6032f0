// Package metrics defines the custom Prometheus metrics of the dashgrid API.
// Metrics register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashgrid"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests turned away by the authorization gate.
// Label:
//   - reason: "missing", "expired" or "invalid"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success", "not_found" or "mismatch"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardViewsTotal counts recorded dashboard views.
// Label:
//   - path: "owner", "shared" or "password"
var DashboardViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_views_total",
		Help:      "Total number of dashboard views, by access path.",
	},
	[]string{"path"},
)

// PasswordChecksTotal counts dashboard password challenges.
// Label:
//   - result: "correct" or "incorrect"
var PasswordChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_checks_total",
		Help:      "Total number of dashboard password challenges, by result.",
	},
	[]string{"result"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailQueueDepth tracks pending messages in each mail worker channel.
// Label:
//   - worker_id: numeric worker index
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of e-mails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MailsSentTotal counts delivery attempts.
// Label:
//   - result: "sent", "failed" or "dropped"
var MailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of e-mail delivery attempts, by result.",
	},
	[]string{"result"},
)

// MailDeliveryDuration measures how long a single delivery takes.
var MailDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_delivery_duration_seconds",
		Help:      "Duration of a single e-mail delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Probe metrics ─────────────────────────────────────────────────────────────

// ProbeCacheTotal counts URL probe cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProbeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "probe_cache_total",
		Help:      "Total number of URL probe cache lookups, by result.",
	},
	[]string{"result"},
)
