// Package waterprom exports ReactiveSystem activity as Prometheus counters.
package waterprom

import (
	"strconv"

	"github.com/delaneyj/water/water"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Config struct {
	// Namespace is the metrics namespace (default: "water").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are added to every metric, e.g. to tell systems apart.
	ConstLabels prometheus.Labels

	// Registry is where the collectors are registered.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "water",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Observer implements water.Observer.
type Observer struct {
	EffectsCreated   prometheus.Counter
	EffectRuns       *prometheus.CounterVec
	EffectsStopped   prometheus.Counter
	Tracks           prometheus.Counter
	Triggers         *prometheus.CounterVec
	TriggeredEffects prometheus.Counter
}

var _ water.Observer = (*Observer)(nil)

// New builds the counters and registers them with the configured registry.
// Registration happens on every call, so a second New against the same
// registry, prometheus.DefaultRegisterer included, panics with a duplicate
// registration error. Give each observer its own registry with WithRegistry,
// or tell them apart with WithSubsystem or WithConstLabels.
func New(opts ...Option) *Observer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}

	return &Observer{
		EffectsCreated:   counter("effects_created_total", "Total number of effects defined"),
		EffectRuns:       counterVec("effect_runs_total", "Total number of effect body runs", "tracked"),
		EffectsStopped:   counter("effects_stopped_total", "Total number of effects stopped"),
		Tracks:           counter("tracks_total", "Total number of dependencies registered"),
		Triggers:         counterVec("triggers_total", "Total number of triggers that found a dependency list", "level"),
		TriggeredEffects: counter("triggered_effects_total", "Total number of active effects notified by triggers"),
	}
}

func (o *Observer) EffectCreated(uint64) {
	o.EffectsCreated.Inc()
}

func (o *Observer) EffectRun(_ uint64, tracked bool) {
	o.EffectRuns.WithLabelValues(strconv.FormatBool(tracked)).Inc()
}

func (o *Observer) EffectStopped(uint64) {
	o.EffectsStopped.Inc()
}

func (o *Observer) Tracked(uint64) {
	o.Tracks.Inc()
}

func (o *Observer) Triggered(effects int, keyed bool) {
	level := "object"
	if keyed {
		level = "key"
	}
	o.Triggers.WithLabelValues(level).Inc()
	o.TriggeredEffects.Add(float64(effects))
}
