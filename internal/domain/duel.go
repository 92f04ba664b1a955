package domain

// Role distinguishes the combat variants of an entity.
type Role string

const (
	RoleHero    Role = "hero"
	RoleMonster Role = "monster"
)

// Phase is a step of a single combat exchange.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseHitRoll Phase = "hit_roll"
	PhaseHit     Phase = "hit"
	PhaseMiss    Phase = "miss"
	PhaseDead    Phase = "dead"
	PhaseAlive   Phase = "alive"
)

// IsTerminal reports whether an exchange ends in this phase.
// A miss still ends in PhaseAlive.
func (p Phase) IsTerminal() bool {
	return p == PhaseDead || p == PhaseAlive
}
