// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_turns_processed_total",
			Help: "Total number of conversation turns handled",
		},
	)

	TurnsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_turns_recovered_total",
			Help: "Total number of turns that hit the top-level recovery path",
		},
	)

	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_intents_classified_total",
			Help: "Total number of utterances classified, by resolved intent",
		},
		[]string{"intent"},
	)

	ClassifierFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_classifier_fallbacks_total",
			Help: "Total number of classifications that fell below the confidence threshold",
		},
	)

	BookingsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_bookings_confirmed_total",
			Help: "Total number of bookings confirmed",
		},
	)

	BookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_bookings_cancelled_total",
			Help: "Total number of bookings cancelled",
		},
	)

	ProfileSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_profile_save_failures_total",
			Help: "Total number of identity-store writes that failed",
		},
	)
)
