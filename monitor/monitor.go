// monitor/monitor.go
package monitor

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/turn"
)

type Metrics struct {
	GamesFinished  prometheus.Counter
	TurnsPlayed    prometheus.Counter
	ThrowsPerTurn  prometheus.Histogram
	CategoryPoints *prometheus.CounterVec
	Scratches      *prometheus.CounterVec
	WinningTotal   prometheus.Gauge
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Number of games played to the last round",
		}),
		TurnsPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_played_total",
			Help:      "Number of turns committed to a sheet",
		}),
		ThrowsPerTurn: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "throws_per_turn",
			Help:      "Throws used before the hand was scored",
			Buckets:   []float64{1, 2, 3},
		}),
		CategoryPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_points_total",
			Help:      "Points scored per category",
		}, []string{"category"}),
		Scratches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_scratches_total",
			Help:      "Categories used for zero points",
		}, []string{"category"}),
		WinningTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_winning_total",
			Help:      "Total of the winner of the last finished game",
		}),
	}

	reg.MustRegister(
		m.GamesFinished,
		m.TurnsPlayed,
		m.ThrowsPerTurn,
		m.CategoryPoints,
		m.Scratches,
		m.WinningTotal,
	)

	return m
}

// Monitor records game metrics. It implements game.Observer.
type Monitor struct {
	metrics   *Metrics
	registry  *prometheus.Registry
	startTime time.Time
	server    *http.Server
}

func NewMonitor(namespace string) *Monitor {
	registry := prometheus.NewRegistry()
	return &Monitor{
		metrics:   NewMetrics(namespace, registry),
		registry:  registry,
		startTime: time.Now(),
	}
}

// Metrics exposes the collectors, mostly for tests.
func (m *Monitor) Metrics() *Metrics {
	return m.metrics
}

// StartServer serves /metrics on addr in the background.
func (m *Monitor) StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.server = &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Log.Infof("Metrics listening on %s", addr)
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("Metrics server stopped: %v", err)
		}
	}()
}

// Stop closes the metrics server if one was started.
func (m *Monitor) Stop() {
	if m.server != nil {
		_ = m.server.Close()
	}
	logger.Log.Infof("Monitor stopped after %s", time.Since(m.startTime).Round(time.Second))
}

func (m *Monitor) TurnFinished(player models.Player, outcome turn.Outcome, category models.Category, mark models.Mark) {
	m.metrics.TurnsPlayed.Inc()
	m.metrics.ThrowsPerTurn.Observe(float64(outcome.Throws))
	if mark.Scratched() {
		m.metrics.Scratches.WithLabelValues(category.Label()).Inc()
		return
	}
	m.metrics.CategoryPoints.WithLabelValues(category.Label()).Add(float64(mark.Points()))
}

func (m *Monitor) GameFinished(players []models.Player, winners []models.Player) {
	m.metrics.GamesFinished.Inc()
	if len(winners) > 0 {
		total, _ := winners[0].Sheet.Entry(models.Total)
		m.metrics.WinningTotal.Set(float64(total.Mark.Points()))
	}
}
