package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service records metrics in Prometheus collectors
type Service struct {
	Transitions    *prometheus.CounterVec
	Logins         *prometheus.CounterVec
	Logouts        prometheus.Counter
	DialogOpens    *prometheus.CounterVec
	SessionRepairs prometheus.Counter
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "major_session_transitions_total",
			Help: "The total number of session state changes, by target view.",
		}, []string{"view"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "major_logins_total",
			Help: "The total number of authentications, by role.",
		}, []string{"role"}),
		Logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "major_logouts_total",
			Help: "The total number of logouts.",
		}),
		DialogOpens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "major_player_dialog_opens_total",
			Help: "The total number of player stats dialogs opened, by player.",
		}, []string{"player"}),
		SessionRepairs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "major_session_repairs_total",
			Help: "The total number of persisted sessions repaired on load.",
		}),
	}

	reg.MustRegister(
		s.Transitions,
		s.Logins,
		s.Logouts,
		s.DialogOpens,
		s.SessionRepairs,
	)

	return s
}

func (s *Service) IncTransition(view string) {
	s.Transitions.WithLabelValues(view).Inc()
}

func (s *Service) IncLogin(role string) {
	s.Logins.WithLabelValues(role).Inc()
}

func (s *Service) IncLogout() {
	s.Logouts.Inc()
}

func (s *Service) IncDialogOpen(playerID string) {
	s.DialogOpens.WithLabelValues(playerID).Inc()
}

func (s *Service) IncSessionRepair() {
	s.SessionRepairs.Inc()
}
