package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/skirmish/internal/domain"
)

// Collector records simulation metrics. It satisfies possession.Observer and
// combat.Observer.
type Collector struct {
	Exchanges            *prometheus.CounterVec
	DamageDealt          prometheus.Counter
	Deaths               *prometheus.CounterVec
	FightRounds          prometheus.Histogram
	PossessionsDestroyed *prometheus.CounterVec
	PurseBursts          prometheus.Counter
	LootTransfers        *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Exchanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameExchanges,
				Help:      HelpTextExchanges,
			},
			[]string{LabelRole, LabelOutcome},
		),
		DamageDealt: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameDamageDealt,
				Help:      HelpTextDamageDealt,
			},
		),
		Deaths: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameDeaths,
				Help:      HelpTextDeaths,
			},
			[]string{LabelRole},
		),
		FightRounds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      MetricNameFightRounds,
				Help:      HelpTextFightRounds,
				Buckets:   FightRoundBuckets,
			},
		),
		PossessionsDestroyed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNamePossessionsDestroyed,
				Help:      HelpTextPossessionsDestroyed,
			},
			[]string{LabelKind},
		),
		PurseBursts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNamePurseBursts,
				Help:      HelpTextPurseBursts,
			},
		),
		LootTransfers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameLootTransfers,
				Help:      HelpTextLootTransfers,
			},
			[]string{LabelKind, LabelOutcome},
		),
	}
}

// PossessionDestroyed counts a destroyed possession.
func (c *Collector) PossessionDestroyed(kind domain.Kind) {
	c.PossessionsDestroyed.WithLabelValues(string(kind)).Inc()
}

// PurseBurst counts an overfilled purse.
func (c *Collector) PurseBurst() {
	c.PurseBursts.Inc()
}

// ExchangeResolved counts an exchange by attacker role and outcome.
func (c *Collector) ExchangeResolved(attacker domain.Role, outcome string, damage int) {
	c.Exchanges.WithLabelValues(string(attacker), outcome).Inc()
	if damage > 0 {
		c.DamageDealt.Add(float64(damage))
	}
}

// EntityKilled counts a death by the role of the victim.
func (c *Collector) EntityKilled(victim domain.Role) {
	c.Deaths.WithLabelValues(string(victim)).Inc()
}

// FightFinished observes the number of rounds a fight lasted.
func (c *Collector) FightFinished(rounds int) {
	c.FightRounds.Observe(float64(rounds))
}

// LootTransferred counts a loot decision by possession kind and outcome.
func (c *Collector) LootTransferred(kind domain.Kind, outcome string) {
	c.LootTransfers.WithLabelValues(string(kind), outcome).Inc()
}
