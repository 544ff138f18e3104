// Package metrics registers the application's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is safe to use; increments become no-ops, which keeps tests quiet.
type Metrics struct {
	UsersRegistered    *prometheus.CounterVec
	AppointmentsBooked prometheus.Counter
	ServicesCreated    prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "petlink_users_registered_total",
			Help: "Total number of accounts registered, by role",
		}, []string{"role"}),
		AppointmentsBooked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petlink_appointments_booked_total",
			Help: "Total number of appointments booked",
		}),
		ServicesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petlink_services_created_total",
			Help: "Total number of catalog services created",
		}),
	}
}

// IncUsersRegistered increments the registration counter for a role.
func (m *Metrics) IncUsersRegistered(role string) {
	if m == nil {
		return
	}
	m.UsersRegistered.WithLabelValues(role).Inc()
}

// IncAppointmentsBooked increments the appointments booked counter.
func (m *Metrics) IncAppointmentsBooked() {
	if m == nil {
		return
	}
	m.AppointmentsBooked.Inc()
}

// IncServicesCreated increments the services created counter.
func (m *Metrics) IncServicesCreated() {
	if m == nil {
		return
	}
	m.ServicesCreated.Inc()
}
