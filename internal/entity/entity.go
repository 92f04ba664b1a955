// Package entity implements heroes and monsters: holders with fixed anchors,
// hit points and a strength-derived carry capacity.
package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/possession"
	"github.com/osse101/skirmish/internal/validation"
)

// Spec holds raw construction values. Out-of-range values are replaced by the
// role's defaults; construction never fails.
type Spec struct {
	Name       string
	Role       domain.Role
	MaxHP      int
	Strength   int
	Protection int // monsters only; heroes always have HeroProtection
	Claws      int // monsters only
}

// Entity is a hero or a monster.
type Entity struct {
	id         uuid.UUID
	name       string
	role       domain.Role
	maxHP      int
	hp         int
	protection int
	strength   int
	claws      int
	order      []domain.Anchor
	anchors    map[domain.Anchor]possession.Possession
}

var names = validation.New()

// New creates a living entity from spec.
func New(spec Spec) *Entity {
	prof := profileFor(spec.Role)

	e := &Entity{
		id:         uuid.New(),
		name:       prof.name(spec.Name),
		role:       prof.role,
		maxHP:      inRange(spec.MaxHP, 1, MaxHitPoints, prof.defaultHP),
		strength:   inRange(spec.Strength, 1, MaxStrength, DefaultStrength),
		protection: prof.baseProtection(spec.Protection),
		claws:      prof.claws(spec.Claws),
		order:      prof.anchors(),
		anchors:    make(map[domain.Anchor]possession.Possession),
	}
	e.hp = e.maxHP
	for _, a := range e.order {
		e.anchors[a] = nil
	}
	return e
}

// NewHero creates a hero.
func NewHero(name string, maxHP, strength int) *Entity {
	return New(Spec{Name: name, Role: domain.RoleHero, MaxHP: maxHP, Strength: strength})
}

// NewMonster creates a monster.
func NewMonster(name string, maxHP, strength, protection, claws int) *Entity {
	return New(Spec{
		Name:       name,
		Role:       domain.RoleMonster,
		MaxHP:      maxHP,
		Strength:   strength,
		Protection: protection,
		Claws:      claws,
	})
}

func inRange(v, lo, hi, def int) int {
	if v < lo || v > hi {
		return def
	}
	return v
}

func (e *Entity) ID() uuid.UUID       { return e.id }
func (e *Entity) Name() string        { return e.name }
func (e *Entity) Role() domain.Role   { return e.role }
func (e *Entity) MaxHP() int          { return e.maxHP }
func (e *Entity) HP() int             { return e.hp }
func (e *Entity) Strength() int       { return e.strength }
func (e *Entity) BaseProtection() int { return e.protection }
func (e *Entity) Claws() int          { return e.claws }

// IsDead reports whether hit points reached zero.
func (e *Entity) IsDead() bool { return e.hp == 0 }

// Die sets hit points to zero. Possessions stay attached.
func (e *Entity) Die() { e.hp = 0 }

// TakeDamage lowers hit points by amount, flooring at zero.
// It reports whether the entity died from it.
func (e *Entity) TakeDamage(amount int) (bool, error) {
	if e.IsDead() {
		return false, fmt.Errorf("%w: %s", domain.ErrDeadEntity, e.name)
	}
	if amount < 0 {
		return false, fmt.Errorf("%w: damage %d", domain.ErrInvalidAmount, amount)
	}
	e.hp -= amount
	if e.hp <= 0 {
		e.Die()
		return true, nil
	}
	return false, nil
}

// Heal raises hit points by amount, up to MaxHP.
func (e *Entity) Heal(amount int) error {
	if e.IsDead() {
		return fmt.Errorf("%w: %s", domain.ErrDeadEntity, e.name)
	}
	if amount < 0 {
		return fmt.Errorf("%w: heal %d", domain.ErrInvalidAmount, amount)
	}
	e.hp += min(amount, e.maxHP-e.hp)
	return nil
}

// Capacity is the maximum carried weight in grams.
func (e *Entity) Capacity() int {
	return e.strength * profileFor(e.role).gramsPerStrength
}

// Anchors returns the fixed anchor set in lookup order.
func (e *Entity) Anchors() []domain.Anchor {
	out := make([]domain.Anchor, len(e.order))
	copy(out, e.order)
	return out
}

// HasAnchor reports whether a belongs to this entity's anchor set.
func (e *Entity) HasAnchor(a domain.Anchor) bool {
	_, ok := e.anchors[a]
	return ok
}

// Protection is the base protection plus the protection of all worn armor.
func (e *Entity) Protection() int {
	total := e.protection
	for _, a := range e.ArmorPieces() {
		total += a.Protection()
	}
	return total
}

// Damage is the raw damage of an attack before the target's protection.
func (e *Entity) Damage() int {
	total := 0
	switch e.role {
	case domain.RoleHero:
		total = max(0, (e.strength-HeroStrengthBaseline)/2)
	case domain.RoleMonster:
		total = e.claws
	}
	for _, w := range e.Weapons() {
		total += w.Damage()
	}
	return total
}

// Weapons returns the intact weapons at weapon anchors.
func (e *Entity) Weapons() []*possession.Weapon {
	var out []*possession.Weapon
	for _, a := range e.order {
		p := e.anchors[a]
		if p == nil || p.Kind() != domain.KindWeapon || !a.IsWeaponAnchor() {
			continue
		}
		if w, ok := p.(*possession.Weapon); ok && !w.IsBroken() {
			out = append(out, w)
		}
	}
	return out
}

// ArmorPieces returns the intact armor worn at any anchor.
func (e *Entity) ArmorPieces() []*possession.Armor {
	var out []*possession.Armor
	for _, a := range e.order {
		p := e.anchors[a]
		if p == nil || p.Kind() != domain.KindArmor {
			continue
		}
		if ar, ok := p.(*possession.Armor); ok && !ar.IsBroken() {
			out = append(out, ar)
		}
	}
	return out
}

// Purse returns the purse at the currency anchor, if any.
func (e *Entity) Purse() (*possession.Purse, bool) {
	p, ok := e.anchors[domain.CurrencyAnchor].(*possession.Purse)
	return p, ok && p != nil
}

// TotalWeight sums the effective weights of everything at the anchors.
func (e *Entity) TotalWeight() int {
	total := 0
	for _, p := range e.anchors {
		if p != nil {
			total += p.TotalWeight()
		}
	}
	return total
}

// TotalValue sums the effective values of everything at the anchors.
func (e *Entity) TotalValue() int {
	total := 0
	for _, p := range e.anchors {
		if p != nil {
			total += p.TotalValue()
		}
	}
	return total
}

func (e *Entity) String() string {
	state := fmt.Sprintf("%d/%d hp", e.hp, e.maxHP)
	if e.IsDead() {
		state = "dead"
	}
	return fmt.Sprintf("%s the %s (%s, carrying %d ducats)", e.name, e.role, state, e.TotalValue())
}
