package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

// Collector records refresh and preference activity on a private registry.
type Collector struct {
	registry         *prometheus.Registry
	refreshes        prometheus.Counter
	dayIndex         prometheus.Gauge
	prepAlerts       prometheus.Gauge
	mealSlot         *prometheus.GaugeVec
	preferenceWrites *prometheus.CounterVec
}

func NewCollector() *Collector {
	collector := &Collector{
		registry: prometheus.NewRegistry(),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aajkakhana_refresh_total",
			Help: "Number of schedule snapshots computed.",
		}),
		dayIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aajkakhana_day_index",
			Help: "Current position in the fourteen-day rotation.",
		}),
		prepAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aajkakhana_prep_alerts",
			Help: "Prep reminders shown in the latest snapshot.",
		}),
		mealSlot: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "aajkakhana_meal_slot",
			Help: "Set to 1 for the active meal slot.",
		}, []string{"meal"}),
		preferenceWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aajkakhana_preference_writes_total",
			Help: "Preference updates by key.",
		}, []string{"key"}),
	}

	collector.registry.MustRegister(
		collector.refreshes,
		collector.dayIndex,
		collector.prepAlerts,
		collector.mealSlot,
		collector.preferenceWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return collector
}

func (collector *Collector) Registry() *prometheus.Registry {
	return collector.registry
}

func (collector *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(collector.registry, promhttp.HandlerOpts{})
}

func (collector *Collector) ObserveRefresh(snapshot services.Snapshot) {
	collector.refreshes.Inc()
	collector.dayIndex.Set(float64(snapshot.DayIndex))
	collector.prepAlerts.Set(float64(len(snapshot.PrepAlerts)))

	collector.mealSlot.Reset()
	collector.mealSlot.WithLabelValues(string(snapshot.MealType)).Set(1)
}

func (collector *Collector) ObservePreferenceWrite(key string) {
	collector.preferenceWrites.WithLabelValues(key).Inc()
}
