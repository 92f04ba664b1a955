// Package possession models ownable objects: weapons, armor, backpacks and purses,
// and the holder protocol that keeps every possession in at most one place.
package possession

import (
	"fmt"

	"github.com/osse101/skirmish/internal/domain"
)

// Possession is the contract shared by every ownable object.
type Possession interface {
	ID() int64
	Kind() domain.Kind
	// Weight is the intrinsic weight in grams.
	Weight() int
	// TotalWeight includes anything carried inside the possession.
	TotalWeight() int
	Value() int
	TotalValue() int
	// Holder returns nil when the possession lies on the ground.
	Holder() Holder
	IsBroken() bool
	CanBeHeldBy(h Holder) bool
	Destroy() error
	Discard() error
	// Bind records h as the holder. h must already hold the possession.
	Bind(h Holder) error
	// Unbind clears the holder. h must already have let go of the possession.
	Unbind(h Holder) error
	String() string
}

// Key identifies a live possession. IDs are unique per kind only.
type Key struct {
	Kind domain.Kind
	ID   int64
}

// KeyOf returns the key of p.
func KeyOf(p Possession) Key {
	return Key{Kind: p.Kind(), ID: p.ID()}
}

// core carries the state every possession variant shares.
// self points at the enclosing variant so protocol calls pass the right value.
type core struct {
	self      Possession
	registry  *Registry
	kind      domain.Kind
	id        int64
	weight    int
	holder    Holder
	destroyed bool
}

// newCore claims an id from reg. A nil reg is replaced by a private registry,
// so the id is only unique within that one possession.
func newCore(reg *Registry, kind domain.Kind, id int64, weight int) core {
	if reg == nil {
		reg = NewRegistry()
	}
	return core{
		registry: reg,
		kind:     kind,
		id:       reg.claim(kind, id),
		weight:   weightOrDefault(kind, weight),
	}
}

func (c *core) ID() int64         { return c.id }
func (c *core) Kind() domain.Kind { return c.kind }
func (c *core) Weight() int       { return c.weight }
func (c *core) Holder() Holder    { return c.holder }
func (c *core) IsBroken() bool    { return c.destroyed }

// CanBeHeldBy reports whether h is an acceptable holder.
// A destroyed possession accepts only the ground.
func (c *core) CanBeHeldBy(h Holder) bool {
	if c.destroyed {
		return h == nil
	}
	if h == nil || h == c.holder {
		return true
	}
	return h.CanHold(c.self)
}

func (c *core) Bind(h Holder) error {
	if h == nil {
		return fmt.Errorf("%w: bind to nil holder", domain.ErrInvalidPlacement)
	}
	if c.destroyed {
		return fmt.Errorf("%w: %s", domain.ErrBroken, c.self)
	}
	if c.holder == h {
		return nil
	}
	if c.holder != nil {
		return fmt.Errorf("%w: %s already has a holder", domain.ErrInvalidPlacement, c.self)
	}
	if !h.Holds(c.self) {
		return fmt.Errorf("%w: %s", domain.ErrNotHeld, c.self)
	}
	c.holder = h
	return nil
}

func (c *core) Unbind(h Holder) error {
	if h == nil || c.holder != h {
		return fmt.Errorf("%w: %s", domain.ErrNotHeld, c.self)
	}
	if h.Holds(c.self) {
		return fmt.Errorf("%w: holder still records %s", domain.ErrInvalidPlacement, c.self)
	}
	c.holder = nil
	return nil
}

// drop puts the possession on the ground through its current holder.
func (c *core) drop() error {
	if c.holder == nil {
		return nil
	}
	return c.holder.Release(c.self)
}

// Destroy drops the possession and marks it broken for good.
func (c *core) Destroy() error {
	if c.destroyed {
		return fmt.Errorf("%w: %s #%d", domain.ErrAlreadyDestroyed, c.kind.Label(), c.id)
	}
	if err := c.drop(); err != nil {
		return fmt.Errorf("destroy %s: %w", c.self, err)
	}
	c.destroyed = true
	c.registry.release(c.kind, c.id)
	return nil
}

// Discard drops the possession, then destroys it.
func (c *core) Discard() error {
	if c.destroyed {
		return fmt.Errorf("%w: %s #%d", domain.ErrAlreadyDestroyed, c.kind.Label(), c.id)
	}
	if err := c.drop(); err != nil {
		return fmt.Errorf("discard %s: %w", c.self, err)
	}
	return c.self.Destroy()
}

func summary(p Possession) string {
	if p.IsBroken() {
		return fmt.Sprintf(fmtBrokenSummary, p.Kind().Label(), p.ID())
	}
	return fmt.Sprintf(fmtSummary, p.Kind().Label(), p.ID(), Kilograms(p.TotalWeight()), p.TotalValue())
}

// Kilograms formats a weight in grams for display.
func Kilograms(grams int) string {
	return fmt.Sprintf(fmtKilograms, float64(grams)/1000)
}

func weightOrDefault(kind domain.Kind, weight int) int {
	switch kind {
	case domain.KindWeapon:
		if weight > 0 {
			return weight
		}
		return DefaultWeaponWeight
	case domain.KindArmor:
		if weight > 0 {
			return weight
		}
		return DefaultArmorWeight
	case domain.KindBackpack:
		if weight >= 0 {
			return weight
		}
		return DefaultBackpackWeight
	case domain.KindPurse:
		if weight >= 0 {
			return weight
		}
		return DefaultPurseWeight
	}
	return 0
}
