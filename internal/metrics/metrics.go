package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerroom_booking",
			Name:      "reservation_created_total",
			Help:      "Count of reservations created by status.",
		},
		[]string{"status"},
	)

	reservationCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pokerroom_booking",
			Name:      "reservation_cancelled_total",
			Help:      "Count of reservations cancelled.",
		},
	)

	reservationConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pokerroom_booking",
			Name:      "reservation_conflict_total",
			Help:      "Count of reservation attempts rejected for overlapping time slots.",
		},
	)

	emailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerroom_booking",
			Name:      "emails_sent_total",
			Help:      "Count of notification emails by kind and result.",
		},
		[]string{"kind", "result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationCancelled, reservationConflict, emailsSent)
	})
}

func IncReservationCreated(status string) {
	reservationCreated.WithLabelValues(status).Inc()
}

func IncReservationCancelled() {
	reservationCancelled.Inc()
}

func IncReservationConflict() {
	reservationConflict.Inc()
}

func IncEmailSent(kind string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	emailsSent.WithLabelValues(kind, result).Inc()
}
