// Package metrics defines all custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly published listings.
// Label:
//   - category: the listing category (e.g. "books")
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of listings created, by category.",
	},
	[]string{"category"},
)

// ProductsDeletedTotal counts removed listings.
// Label:
//   - cause: "owner", "admin", or "cascade"
var ProductsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of listings deleted, by cause.",
	},
	[]string{"cause"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts created messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent.",
	},
)

// MessagesReadTotal counts successful mark-read calls, including idempotent
// re-marks of an already-read message.
var MessagesReadTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_read_total",
		Help:      "Total number of messages marked read.",
	},
)

// ── Favorite metrics ──────────────────────────────────────────────────────────

// FavoriteOpsTotal counts favorite mutations.
// Labels:
//   - op: "add" or "remove"
//   - result: "ok", "conflict", or "error"
var FavoriteOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_ops_total",
		Help:      "Total number of favorite add/remove operations, by result.",
	},
	[]string{"op", "result"},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// CascadeDeletesTotal counts admin cascading user deletions.
var CascadeDeletesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletes_total",
		Help:      "Total number of cascading user deletions performed by admins.",
	},
)
