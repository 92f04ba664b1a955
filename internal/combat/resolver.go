// Package combat resolves exchanges between two entities: hit roll, damage,
// protection, wear, death and looting.
package combat

import (
	"fmt"
	"log/slog"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
	"github.com/osse101/skirmish/internal/utils"
)

// Observer receives combat events. metrics.Collector implements it.
type Observer interface {
	ExchangeResolved(attacker domain.Role, outcome string, damage int)
	EntityKilled(victim domain.Role)
	FightFinished(rounds int)
	LootTransferred(kind domain.Kind, outcome string)
}

// Config tunes the supplementary combat rules.
type Config struct {
	// WearPerHit is the durability lost by every piece of gear involved in a hit. 0 disables wear.
	WearPerHit int
	// VictoryHealPercent of max hit points is restored to a hero that kills.
	VictoryHealPercent int
}

// DefaultConfig returns the default rules.
func DefaultConfig() Config {
	return Config{
		WearPerHit:         DefaultWearPerHit,
		VictoryHealPercent: DefaultVictoryHealPercent,
	}
}

// withDefaults replaces out-of-range fields with their defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.WearPerHit < 0 {
		c.WearPerHit = def.WearPerHit
	}
	if c.VictoryHealPercent < 0 || c.VictoryHealPercent > 100 {
		c.VictoryHealPercent = def.VictoryHealPercent
	}
	return c
}

// Resolver runs exchanges. It holds no state between calls besides its roller.
type Resolver struct {
	roller   utils.Roller
	cfg      Config
	log      *slog.Logger
	observer Observer
}

// NewResolver creates a resolver. Out-of-range cfg fields take their defaults.
// A nil log uses slog.Default(); observer may be nil.
func NewResolver(roller utils.Roller, cfg Config, log *slog.Logger, observer Observer) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		roller:   roller,
		cfg:      cfg.withDefaults(),
		log:      log,
		observer: observer,
	}
}

// Exchange records one attack.
type Exchange struct {
	Attacker *entity.Entity
	Defender *entity.Entity
	Phase    domain.Phase
	Trace    []domain.Phase

	Roll       int
	Protection int
	RawDamage  int
	Damage     int
	Healed     int
	// WornOut lists gear destroyed by wear during this exchange
	WornOut []possession.Possession
}

func newExchange(attacker, defender *entity.Entity) *Exchange {
	return &Exchange{
		Attacker: attacker,
		Defender: defender,
		Phase:    domain.PhaseIdle,
		Trace:    []domain.Phase{domain.PhaseIdle},
	}
}

func (x *Exchange) advance(p domain.Phase) {
	x.Phase = p
	x.Trace = append(x.Trace, p)
}

// Hit reports whether the attack connected.
func (x *Exchange) Hit() bool {
	for _, p := range x.Trace {
		if p == domain.PhaseHit {
			return true
		}
	}
	return false
}

// Killed reports whether the defender died in this exchange.
func (x *Exchange) Killed() bool { return x.Phase == domain.PhaseDead }

// Outcome is OutcomeKill, OutcomeHit or OutcomeMiss.
func (x *Exchange) Outcome() string {
	switch {
	case x.Killed():
		return OutcomeKill
	case x.Hit():
		return OutcomeHit
	default:
		return OutcomeMiss
	}
}

// Attack runs one exchange of attacker against defender.
func (r *Resolver) Attack(attacker, defender *entity.Entity) (*Exchange, error) {
	if attacker == nil || defender == nil {
		return nil, fmt.Errorf("%w: missing participant", domain.ErrInvalidTarget)
	}
	if attacker == defender {
		return nil, fmt.Errorf("%w: %s cannot attack itself", domain.ErrInvalidTarget, attacker.Name())
	}
	if attacker.IsDead() {
		return nil, fmt.Errorf("%w: attacker %s", domain.ErrDeadEntityTarget, attacker.Name())
	}
	if defender.IsDead() {
		return nil, fmt.Errorf("%w: defender %s", domain.ErrDeadEntityTarget, defender.Name())
	}

	x := newExchange(attacker, defender)

	x.advance(domain.PhaseHitRoll)
	x.Roll = r.rollToHit(attacker)
	x.Protection = defender.Protection()

	if x.Roll < x.Protection {
		x.advance(domain.PhaseMiss)
		r.finish(x)
		return x, nil
	}

	x.advance(domain.PhaseHit)
	weapons := attacker.Weapons()
	armor := defender.ArmorPieces()

	x.RawDamage = attacker.Damage()
	x.Damage = max(0, x.RawDamage-x.Protection)

	died, err := defender.TakeDamage(x.Damage)
	if err != nil {
		return nil, fmt.Errorf("apply damage: %w", err)
	}

	for _, w := range weapons {
		r.wear(x, w)
	}
	for _, a := range armor {
		r.wear(x, a)
	}

	if died {
		x.advance(domain.PhaseDead)
		r.victory(x)
	}

	r.finish(x)
	return x, nil
}

// rollToHit draws from [0, MaxRoll]. Monsters cannot roll above their current hit points.
func (r *Resolver) rollToHit(attacker *entity.Entity) int {
	roll := utils.RandomInt(r.roller, 0, MaxRoll)
	if attacker.Role() == domain.RoleMonster {
		roll = min(roll, attacker.HP())
	}
	return roll
}

func (r *Resolver) wear(x *Exchange, gear possession.Degradable) {
	if r.cfg.WearPerHit <= 0 || gear.IsBroken() {
		return
	}
	if err := gear.Degrade(r.cfg.WearPerHit); err != nil {
		r.log.Warn(LogMsgWearFailed, "gear", gear.String(), "error", err)
		return
	}
	if gear.IsBroken() {
		x.WornOut = append(x.WornOut, gear)
		r.log.Info(LogMsgGearWornOut, "kind", gear.Kind(), "id", gear.ID())
	}
}

func (r *Resolver) victory(x *Exchange) {
	r.log.Info(LogMsgEntityKilled, "victim", x.Defender.Name(), "killer", x.Attacker.Name())
	if r.observer != nil {
		r.observer.EntityKilled(x.Defender.Role())
	}

	if x.Attacker.Role() != domain.RoleHero {
		return
	}
	amount := utils.PercentOf(x.Attacker.MaxHP(), r.cfg.VictoryHealPercent)
	if amount == 0 {
		return
	}
	before := x.Attacker.HP()
	if err := x.Attacker.Heal(amount); err != nil {
		return
	}
	x.Healed = x.Attacker.HP() - before
	r.log.Info(LogMsgVictoryHeal, "hero", x.Attacker.Name(), "healed", x.Healed)
}

// finish settles an exchange that did not kill in PhaseAlive, then reports it.
func (r *Resolver) finish(x *Exchange) {
	if !x.Phase.IsTerminal() {
		x.advance(domain.PhaseAlive)
	}
	r.log.Debug(LogMsgExchangeResolved,
		"attacker", x.Attacker.Name(),
		"defender", x.Defender.Name(),
		"roll", x.Roll,
		"protection", x.Protection,
		"damage", x.Damage,
		"outcome", x.Outcome(),
	)
	if r.observer != nil {
		r.observer.ExchangeResolved(x.Attacker.Role(), x.Outcome(), x.Damage)
	}
}
