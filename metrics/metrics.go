package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendora",
			Name:      "bookings_created_total",
			Help:      "Bookings created, by kind.",
		},
		[]string{"kind"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendora",
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions, by target status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingTransitions)
	})
}

// BookingCreated increments the creation counter.
func BookingCreated(recurring bool) {
	kind := "specific"
	if recurring {
		kind = "recurring"
	}
	bookingsCreated.WithLabelValues(kind).Inc()
}

// BookingTransitioned increments the transition counter for a target status.
func BookingTransitioned(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

// Handler exposes the Prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
