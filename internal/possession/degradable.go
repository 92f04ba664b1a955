package possession

import (
	"fmt"

	"github.com/osse101/skirmish/internal/domain"
)

// Degradable is implemented by possessions that wear down along a bounded axis.
type Degradable interface {
	Possession
	Durability() int
	MaxDurability() int
	// Degrade lowers durability by amount. Reaching zero destroys the possession.
	Degrade(amount int) error
	// Repair raises durability by amount, up to MaxDurability.
	Repair(amount int) error
}

// wear is the durability axis shared by weapons and armor.
type wear struct {
	current int
	max     int
}

func (w *wear) Durability() int    { return w.current }
func (w *wear) MaxDurability() int { return w.max }

// scale maps the current durability linearly onto [0, top].
func (w *wear) scale(top int) int {
	if w.max <= 0 {
		return 0
	}
	return top * w.current / w.max
}

func (w *wear) degrade(p Possession, amount int) error {
	if p.IsBroken() {
		return fmt.Errorf("%w: cannot degrade %s", domain.ErrBroken, p)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: degrade by %d", domain.ErrInvalidAmount, amount)
	}
	if amount >= w.current {
		if err := p.Destroy(); err != nil {
			return err
		}
		w.current = 0
		return nil
	}
	w.current -= amount
	return nil
}

func (w *wear) repair(p Possession, amount int) error {
	if p.IsBroken() {
		return fmt.Errorf("%w: cannot repair %s", domain.ErrBroken, p)
	}
	if amount < 0 || amount > w.max-w.current {
		return fmt.Errorf("%w: repair by %d, at most %d allowed", domain.ErrInvalidAmount, amount, w.max-w.current)
	}
	w.current += amount
	return nil
}
