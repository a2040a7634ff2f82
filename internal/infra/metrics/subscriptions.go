package metrics

import (
	"chatcart/internal/domain/model"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		subscriptionActionsTotal,
		subscriptionsTotal,
	)
}

var (
	subscriptionActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_actions_total",
			Help: "Total number of subscription store mutations by action.",
		},
		[]string{"action"}, // 'create', 'pause', 'resume', 'cancel', 'reschedule'
	)

	subscriptionsTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "subscriptions_total",
			Help: "Current number of subscriptions by status.",
		},
		[]string{"status"}, // 'active', 'paused'
	)
)

func IncSubscriptionAction(action string) {
	subscriptionActionsTotal.WithLabelValues(action).Inc()
}

func SetSubscriptionsTotal(counts map[model.SubscriptionStatus]int) {
	statuses := []model.SubscriptionStatus{
		model.SubscriptionStatusActive,
		model.SubscriptionStatusPaused,
	}
	for _, status := range statuses {
		subscriptionsTotal.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}
