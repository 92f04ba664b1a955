package entity

import (
	"fmt"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/possession"
)

// PossessionAt returns the possession at anchor a, or nil when it is empty.
func (e *Entity) PossessionAt(a domain.Anchor) (possession.Possession, error) {
	p, ok := e.anchors[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", domain.ErrUnknownAnchor, e.name, a)
	}
	return p, nil
}

// CanHoldAtAnchor reports whether p may be placed at anchor a.
func (e *Entity) CanHoldAtAnchor(p possession.Possession, a domain.Anchor) bool {
	if e.IsDead() || p == nil || p.IsBroken() {
		return false
	}
	current, ok := e.anchors[a]
	if !ok {
		return false
	}
	if current != nil {
		return any(current) == any(p)
	}
	if p.Kind().IsCurrency() && a != domain.CurrencyAnchor {
		return false
	}
	return possession.Fits(e, p)
}

// FreeAnchorFor returns the first anchor, in lookup order, that can take p.
func (e *Entity) FreeAnchorFor(p possession.Possession) (domain.Anchor, bool) {
	for _, a := range e.order {
		if e.anchors[a] == nil && e.CanHoldAtAnchor(p, a) {
			return a, true
		}
	}
	return "", false
}

// AnchorOf returns the anchor holding p.
func (e *Entity) AnchorOf(p possession.Possession) (domain.Anchor, bool) {
	if p == nil {
		return "", false
	}
	for _, a := range e.order {
		if q := e.anchors[a]; q != nil && any(q) == any(p) {
			return a, true
		}
	}
	return "", false
}

// Pickup places p at anchor a, taking it from its previous holder.
// All checks run before anything moves.
func (e *Entity) Pickup(p possession.Possession, a domain.Anchor) error {
	if e.IsDead() {
		return fmt.Errorf("%w: %s cannot pick up", domain.ErrDeadEntity, e.name)
	}
	current, ok := e.anchors[a]
	if !ok {
		return fmt.Errorf("%w: %s has no %s", domain.ErrUnknownAnchor, e.name, a)
	}
	if p == nil {
		return fmt.Errorf("%w: nothing to pick up", domain.ErrInvalidPlacement)
	}
	if current != nil && any(current) == any(p) {
		return nil
	}
	if !e.CanHoldAtAnchor(p, a) {
		return fmt.Errorf("%w: %s cannot hold %s at %s", domain.ErrInvalidPlacement, e.name, p, a)
	}
	if prev := p.Holder(); prev != nil {
		if err := prev.Release(p); err != nil {
			return fmt.Errorf("take %s from previous holder: %w", p, err)
		}
	}
	e.anchors[a] = p
	if err := p.Bind(e); err != nil {
		e.anchors[a] = nil
		return err
	}
	return nil
}

// Drop puts the possession at anchor a on the ground. Dropping from an empty
// anchor does nothing.
func (e *Entity) Drop(a domain.Anchor) error {
	if e.IsDead() {
		return fmt.Errorf("%w: %s cannot drop", domain.ErrDeadEntity, e.name)
	}
	p, ok := e.anchors[a]
	if !ok {
		return fmt.Errorf("%w: %s has no %s", domain.ErrUnknownAnchor, e.name, a)
	}
	if p == nil {
		return nil
	}
	return e.Release(p)
}

// CanHold implements possession.Holder: some anchor can take p.
func (e *Entity) CanHold(p possession.Possession) bool {
	if e.Holds(p) {
		return !e.IsDead()
	}
	_, ok := e.FreeAnchorFor(p)
	return ok
}

// Holds implements possession.Holder.
func (e *Entity) Holds(p possession.Possession) bool {
	_, ok := e.AnchorOf(p)
	return ok
}

// Release implements possession.Holder. It works on dead entities so that
// looting and destruction can empty their anchors.
func (e *Entity) Release(p possession.Possession) error {
	a, ok := e.AnchorOf(p)
	if !ok {
		return fmt.Errorf("%w: %s does not hold %v", domain.ErrNotHeld, e.name, p)
	}
	e.anchors[a] = nil
	return p.Unbind(e)
}

// HasRoomFor implements possession.Holder.
func (e *Entity) HasRoomFor(weight int) bool {
	return !e.IsDead() && weight >= 0 && weight <= e.Capacity()-e.TotalWeight()
}

// Up implements possession.Holder. Entities are never carried.
func (e *Entity) Up() possession.Holder { return nil }
