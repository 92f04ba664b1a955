package possession

import (
	"fmt"
	"math"

	"github.com/osse101/skirmish/internal/domain"
)

// Purse holds a count of ducats. Overfilling it makes it burst.
type Purse struct {
	core
	capacity int
	units    int
}

// NewPurse creates a purse. A negative weight becomes DefaultPurseWeight, a
// non-positive capacity becomes DefaultPurseCapacity and units are clamped to
// [0, capacity].
func NewPurse(reg *Registry, id int64, weight, capacity, units int) *Purse {
	if capacity <= 0 {
		capacity = DefaultPurseCapacity
	}
	switch {
	case units < 0:
		units = 0
	case units > capacity:
		units = capacity
	}
	p := &Purse{
		core:     newCore(reg, domain.KindPurse, id, weight),
		capacity: capacity,
		units:    units,
	}
	p.self = p
	return p
}

// Capacity is the maximum number of ducats.
func (p *Purse) Capacity() int { return p.capacity }

// Units is the current number of ducats.
func (p *Purse) Units() int { return p.units }

// Value equals the number of ducats; zero once broken.
func (p *Purse) Value() int {
	if p.destroyed {
		return 0
	}
	return p.units
}

func (p *Purse) TotalValue() int { return p.Value() }

func (p *Purse) TotalWeight() int {
	return p.weight + p.units*UnitWeight
}

// AddUnits puts amount ducats in the purse. If the purse would exceed its
// capacity it bursts: it is destroyed and ErrPurseBurst is returned.
func (p *Purse) AddUnits(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: add %d ducats", domain.ErrInvalidAmount, amount)
	}
	if p.destroyed {
		return fmt.Errorf("%w: %s", domain.ErrBroken, p)
	}
	if p.holder != nil && heldByDead(p.holder) {
		return fmt.Errorf("%w: cannot add ducats to a purse on a dead holder", domain.ErrDeadEntity)
	}
	if amount > p.capacity-p.units {
		if err := p.Destroy(); err != nil {
			return err
		}
		p.registry.burst()
		return fmt.Errorf("%w: %d more ducats exceed capacity %d", domain.ErrPurseBurst, amount, p.capacity)
	}
	if err := canCarryUnits(p.holder, amount, nil); err != nil {
		return err
	}
	p.units += amount
	return nil
}

// unitsWeight converts a ducat count to grams. It reports false when the
// weight does not fit in an int.
func unitsWeight(amount int) (int, bool) {
	if amount > math.MaxInt/UnitWeight {
		return 0, false
	}
	return amount * UnitWeight, true
}

// canCarryUnits checks that h and its ancestors, except those in skip, can take
// the weight of amount more ducats.
func canCarryUnits(h Holder, amount int, skip map[Holder]struct{}) error {
	if h == nil {
		return nil
	}
	if heldByDead(h) {
		return fmt.Errorf("%w: cannot add ducats to a purse on a dead holder", domain.ErrDeadEntity)
	}
	weight, ok := unitsWeight(amount)
	if !ok || !roomAlong(h, weight, skip) {
		return fmt.Errorf("%w: holder cannot carry %d more ducats", domain.ErrInvalidPlacement, amount)
	}
	return nil
}

// RemoveUnits takes amount ducats out. An emptied purse is dropped to the ground.
func (p *Purse) RemoveUnits(amount int) error {
	if p.destroyed {
		return fmt.Errorf("%w: %s", domain.ErrBroken, p)
	}
	if amount <= 0 || amount > p.units {
		return fmt.Errorf("%w: remove %d of %d ducats", domain.ErrInvalidAmount, amount, p.units)
	}
	p.units -= amount
	if p.units == 0 && p.holder != nil {
		return p.drop()
	}
	return nil
}

// TransferUnits moves amount ducats from src to dst. The two steps are not
// atomic: if dst bursts, the ducats have already left src and are lost.
// Callers needing atomicity must check dst's free capacity first.
func TransferUnits(src, dst *Purse, amount int) error {
	if src == nil || dst == nil || src == dst {
		return fmt.Errorf("%w: source and destination must be two purses", domain.ErrInvalidTransfer)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: transfer %d ducats", domain.ErrInvalidAmount, amount)
	}
	if dst.destroyed {
		return fmt.Errorf("%w: destination %s", domain.ErrBroken, dst)
	}
	if err := canCarryUnits(dst.holder, amount, chain(src.holder)); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := src.RemoveUnits(amount); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	if err := dst.AddUnits(amount); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	return nil
}

// Free returns how many ducats fit before the purse bursts.
func (p *Purse) Free() int {
	if p.destroyed {
		return 0
	}
	return p.capacity - p.units
}

func (p *Purse) String() string { return summary(p) }
