package possession

import (
	"fmt"
	"sort"

	"github.com/osse101/skirmish/internal/domain"
)

// Backpack is a possession that holds other possessions up to a weight capacity.
type Backpack struct {
	core
	value    int
	capacity int
	contents map[Key]Possession
}

// NewBackpack creates an empty backpack. A negative weight becomes
// DefaultBackpackWeight, a value outside [0, 500] becomes DefaultBackpackValue and
// a non-positive capacity becomes DefaultBackpackCapacity.
func NewBackpack(reg *Registry, id int64, weight, value, capacity int) *Backpack {
	if !validBackpackValue(value) {
		value = DefaultBackpackValue
	}
	if capacity <= 0 {
		capacity = DefaultBackpackCapacity
	}
	b := &Backpack{
		core:     newCore(reg, domain.KindBackpack, id, weight),
		value:    value,
		capacity: capacity,
		contents: make(map[Key]Possession),
	}
	b.self = b
	return b
}

func validBackpackValue(v int) bool {
	return v >= 0 && v <= MaxBackpackValue
}

// Capacity is the maximum content weight in grams.
func (b *Backpack) Capacity() int { return b.capacity }

// Value is the backpack's own value, zero once broken.
func (b *Backpack) Value() int {
	if b.destroyed {
		return 0
	}
	return b.value
}

// SetValue changes the backpack's own value.
func (b *Backpack) SetValue(v int) error {
	if b.destroyed {
		return fmt.Errorf("%w: %s", domain.ErrBroken, b)
	}
	if !validBackpackValue(v) {
		return fmt.Errorf("%w: backpack value %d", domain.ErrInvalidAmount, v)
	}
	b.value = v
	return nil
}

// ContentWeight sums the total weights of everything inside.
func (b *Backpack) ContentWeight() int {
	total := 0
	for _, p := range b.contents {
		total += p.TotalWeight()
	}
	return total
}

func (b *Backpack) TotalWeight() int {
	return b.weight + b.ContentWeight()
}

func (b *Backpack) TotalValue() int {
	if b.destroyed {
		return 0
	}
	total := b.value
	for _, p := range b.contents {
		total += p.TotalValue()
	}
	return total
}

// Len returns the number of direct contents.
func (b *Backpack) Len() int { return len(b.contents) }

// Contents returns the direct contents ordered by kind and id.
func (b *Backpack) Contents() []Possession {
	out := make([]Possession, 0, len(b.contents))
	for _, p := range b.contents {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind() != out[j].Kind() {
			return out[i].Kind() < out[j].Kind()
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// Get returns the direct content with the given kind and id.
func (b *Backpack) Get(kind domain.Kind, id int64) (Possession, bool) {
	p, ok := b.contents[Key{Kind: kind, ID: id}]
	return p, ok
}

// CanCarryWeight reports whether weight more grams stay within capacity.
func (b *Backpack) CanCarryWeight(weight int) bool {
	return weight >= 0 && weight <= b.capacity-b.ContentWeight()
}

// HasRoomFor implements Holder.
func (b *Backpack) HasRoomFor(weight int) bool {
	return !b.destroyed && b.CanCarryWeight(weight)
}

// Up implements Holder.
func (b *Backpack) Up() Holder { return b.holder }

// Holds implements Holder.
func (b *Backpack) Holds(p Possession) bool {
	if p == nil {
		return false
	}
	q, ok := b.contents[KeyOf(p)]
	return ok && any(q) == any(p)
}

// CanHold implements Holder. A backpack never takes broken possessions, itself,
// or a backpack that carries it.
func (b *Backpack) CanHold(p Possession) bool {
	if p == nil || p.IsBroken() || b.destroyed {
		return false
	}
	if b.Holds(p) {
		return true
	}
	if contains(b, p) {
		return false
	}
	return Fits(b, p)
}

// Add moves p into the backpack, taking it from its previous holder.
func (b *Backpack) Add(p Possession) error {
	if p == nil {
		return fmt.Errorf("%w: nil possession", domain.ErrInvalidPlacement)
	}
	if b.destroyed {
		return fmt.Errorf("%w: %s", domain.ErrBroken, b)
	}
	if b.Holds(p) {
		return nil
	}
	if heldByDead(b) {
		return fmt.Errorf("%w: %s is carried by a dead holder", domain.ErrDeadEntity, b)
	}
	if !b.CanHold(p) {
		return fmt.Errorf("%w: %s into %s", domain.ErrCapacityExceeded, p, b)
	}
	if prev := p.Holder(); prev != nil {
		if err := prev.Release(p); err != nil {
			return fmt.Errorf("take %s from previous holder: %w", p, err)
		}
	}
	key := KeyOf(p)
	b.contents[key] = p
	if err := p.Bind(b); err != nil {
		delete(b.contents, key)
		return err
	}
	return nil
}

// Remove puts p on the ground. Removing something not inside is a no-op.
func (b *Backpack) Remove(p Possession) error {
	if !b.Holds(p) {
		return nil
	}
	return b.Release(p)
}

// Release implements Holder.
func (b *Backpack) Release(p Possession) error {
	if !b.Holds(p) {
		return fmt.Errorf("%w: %s", domain.ErrNotHeld, p)
	}
	delete(b.contents, KeyOf(p))
	return p.Unbind(b)
}

// Empty puts every content on the ground.
func (b *Backpack) Empty() error {
	for _, p := range b.Contents() {
		if err := b.Release(p); err != nil {
			return err
		}
	}
	return nil
}

// Destroy spills the contents on the ground, then destroys the backpack.
func (b *Backpack) Destroy() error {
	if b.destroyed {
		return b.core.Destroy()
	}
	if err := b.Empty(); err != nil {
		return fmt.Errorf("destroy %s: %w", b, err)
	}
	return b.core.Destroy()
}

func (b *Backpack) String() string { return summary(b) }
