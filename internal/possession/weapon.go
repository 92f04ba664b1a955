package possession

import (
	"github.com/osse101/skirmish/internal/domain"
)

// Weapon is a degradable possession whose durability axis is its damage.
type Weapon struct {
	core
	wear
}

// NewWeapon creates a weapon. Invalid inputs are replaced by defaults:
// an id that is not a free positive multiple of 6 is generated, a non-positive
// weight becomes DefaultWeaponWeight and a damage outside [1, 100] becomes
// DefaultWeaponDamage.
func NewWeapon(reg *Registry, id int64, weight, damage int) *Weapon {
	if damage < MinWeaponDamage || damage > MaxWeaponDamage {
		damage = DefaultWeaponDamage
	}
	w := &Weapon{
		core: newCore(reg, domain.KindWeapon, id, weight),
		wear: wear{current: damage, max: MaxWeaponDamage},
	}
	w.self = w
	return w
}

// Damage returns the current damage points.
func (w *Weapon) Damage() int { return w.current }

// Value is two ducats per damage point; zero once broken.
func (w *Weapon) Value() int {
	if w.destroyed {
		return 0
	}
	return w.scale(ValuePerDamage * MaxWeaponDamage)
}

func (w *Weapon) TotalWeight() int { return w.weight }
func (w *Weapon) TotalValue() int  { return w.Value() }

func (w *Weapon) Degrade(amount int) error { return w.degrade(w, amount) }
func (w *Weapon) Repair(amount int) error  { return w.repair(w, amount) }

func (w *Weapon) String() string { return summary(w) }
