// Package metrics exposes Prometheus counters for the settlement engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PayoutsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_payouts_created_total",
		Help: "Total number of payouts created",
	})

	PayoutsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_payouts_claimed_total",
		Help: "Total number of payouts claimed",
	})

	PayoutsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_payouts_expired_total",
		Help: "Total number of payouts expired",
	})

	PayoutsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_payouts_failed_total",
		Help: "Total number of payouts marked failed",
	})

	PayoutsAutoDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_payouts_auto_delivered_total",
		Help: "Total number of payouts delivered without a claim link",
	})

	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_treasury_reservations_total",
		Help: "Total number of treasury reservations created",
	})

	ReservationsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_treasury_reservations_rejected_total",
		Help: "Total number of reservations rejected for insufficient balance",
	})

	AuthTokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlr_auth_tokens_issued_total",
		Help: "Total number of magic-link auth tokens issued",
	})

	WebhooksDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlr_webhooks_delivered_total",
		Help: "Total number of webhook deliveries by outcome",
	}, []string{"outcome"})
)
