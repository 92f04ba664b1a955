package possession

import (
	"github.com/osse101/skirmish/internal/domain"
)

// ArmorTypes looks up the maximum protection of a named armor type.
type ArmorTypes interface {
	MaxProtection(typeName string) (int, bool)
}

// Armor is a degradable possession whose durability axis is its protection.
type Armor struct {
	core
	wear
	typeName string
	maxValue int
}

// NewArmor creates armor. maxProtection outside [1, 1000] becomes
// DefaultArmorMaxProtection, protection outside [1, maxProtection] becomes
// maxProtection and maxValue outside [1, 1000] becomes DefaultArmorMaxValue.
func NewArmor(reg *Registry, id int64, weight, protection, maxProtection, maxValue int) *Armor {
	return newArmor(reg, "", id, weight, protection, maxProtection, maxValue)
}

// NewArmorOfType creates armor whose maximum protection comes from types.
// Unknown types fall back to DefaultArmorMaxProtection and keep no type name.
func NewArmorOfType(reg *Registry, types ArmorTypes, typeName string, id int64, weight, protection, maxValue int) *Armor {
	if types != nil {
		if maxProtection, ok := types.MaxProtection(typeName); ok {
			return newArmor(reg, typeName, id, weight, protection, maxProtection, maxValue)
		}
	}
	return newArmor(reg, "", id, weight, protection, DefaultArmorMaxProtection, maxValue)
}

func newArmor(reg *Registry, typeName string, id int64, weight, protection, maxProtection, maxValue int) *Armor {
	if maxProtection < 1 || maxProtection > MaxArmorProtection {
		maxProtection = DefaultArmorMaxProtection
	}
	if protection < 1 || protection > maxProtection {
		protection = maxProtection
	}
	if maxValue < 1 || maxValue > MaxArmorValue {
		maxValue = DefaultArmorMaxValue
	}
	a := &Armor{
		core:     newCore(reg, domain.KindArmor, id, weight),
		wear:     wear{current: protection, max: maxProtection},
		typeName: typeName,
		maxValue: maxValue,
	}
	a.self = a
	return a
}

// Protection returns the current protection points.
func (a *Armor) Protection() int { return a.current }

// TypeName returns the catalog type, or "" for untyped armor.
func (a *Armor) TypeName() string { return a.typeName }

// MaxValue is the value of the armor at full protection.
func (a *Armor) MaxValue() int { return a.maxValue }

// Value scales MaxValue by current over maximum protection; zero once broken.
func (a *Armor) Value() int {
	if a.destroyed {
		return 0
	}
	return a.scale(a.maxValue)
}

func (a *Armor) TotalWeight() int { return a.weight }
func (a *Armor) TotalValue() int  { return a.Value() }

func (a *Armor) Degrade(amount int) error { return a.degrade(a, amount) }
func (a *Armor) Repair(amount int) error  { return a.repair(a, amount) }

func (a *Armor) String() string {
	if a.typeName == "" || a.destroyed {
		return summary(a)
	}
	return a.typeName + " " + summary(a)
}
