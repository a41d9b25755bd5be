// Package metrics defines and registers all custom Prometheus metrics for
// the client service. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clientservice"

// ── Client metrics ────────────────────────────────────────────────────────────

// ClientsRegisteredTotal counts self-service and admin registrations.
var ClientsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_registered_total",
		Help:      "Total number of clients created through POST /api/clients.",
	},
)

// ── Basket metrics ────────────────────────────────────────────────────────────

// BasketOpsTotal counts basket mutations.
// Label:
//   - op: "add", "update", "delete", "clear"
var BasketOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "basket_ops_total",
		Help:      "Total number of basket mutations, by operation.",
	},
	[]string{"op"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts finalized orders.
// Label:
//   - status: the order status at creation time (usually "NEW")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheRequestsTotal counts read-through cache lookups.
// Labels:
//   - region: "clients", "basket", "orders", "pagination"
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of cache lookups, by region and result.",
	},
	[]string{"region", "result"},
)
