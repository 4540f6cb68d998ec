package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for participation counters.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics groups the collectors the HTTP layer updates.
type Metrics struct {
	Signups      *prometheus.CounterVec
	Cancels      *prometheus.CounterVec
	Participants *prometheus.GaugeVec
	Notifies     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Signups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "signups_total",
			Help:      "Signup attempts by result.",
		}, []string{"result"}),
		Cancels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by result.",
		}, []string{"result"}),
		Participants: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "mergington",
			Name:      "activity_participants",
			Help:      "Current number of participants per activity.",
		}, []string{"activity"}),
		Notifies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "notifications_enqueued_total",
			Help:      "Participation notifications handed to the queue, by result.",
		}, []string{"result"}),
	}
}

// SetParticipants records the current membership count of an activity.
func (m *Metrics) SetParticipants(activity string, n int) {
	m.Participants.WithLabelValues(activity).Set(float64(n))
}
