package possession

// Holder is anything that can carry possessions: entities and backpacks.
type Holder interface {
	// CanHold reports whether p may be placed in this holder now.
	CanHold(p Possession) bool
	// Holds reports whether this holder records p among its contents.
	Holds(p Possession) bool
	// Release removes p from the contents and unbinds it, leaving it on the ground.
	// It fails with domain.ErrNotHeld when p is not recorded here.
	Release(p Possession) error
	// HasRoomFor reports whether this holder alone can take weight more grams.
	HasRoomFor(weight int) bool
	// Up returns the holder this holder is carried by, or nil.
	Up() Holder
}

// TopHolder returns the outermost holder of p, or nil when p lies on the ground.
// The walk is bounded and stops at the last holder before a repeated one.
func TopHolder(p Possession) Holder {
	if p == nil {
		return nil
	}
	var top Holder
	walk(p.Holder(), func(h Holder) bool {
		top = h
		return true
	})
	return top
}

// Fits reports whether p's total weight can be added under target and every holder
// above it. Holders already carrying p are skipped, so moves inside one tree are
// not counted twice.
func Fits(target Holder, p Possession) bool {
	if target == nil || p == nil {
		return false
	}
	carrying := chain(p.Holder())
	return roomAlong(target, p.TotalWeight(), carrying)
}

// roomAlong checks HasRoomFor on target and its ancestors, skipping holders in skip.
func roomAlong(target Holder, weight int, skip map[Holder]struct{}) bool {
	fits := true
	complete := walk(target, func(h Holder) bool {
		if _, ok := skip[h]; ok {
			return true
		}
		if !h.HasRoomFor(weight) {
			fits = false
			return false
		}
		return true
	})
	return fits && complete
}

// Mortal is implemented by holders that can die. Nothing can be added anywhere
// beneath a dead holder.
type Mortal interface {
	IsDead() bool
}

// heldByDead reports whether h or one of its ancestors is a dead Mortal.
func heldByDead(h Holder) bool {
	dead := false
	walk(h, func(x Holder) bool {
		if m, ok := x.(Mortal); ok && m.IsDead() {
			dead = true
			return false
		}
		return true
	})
	return dead
}

// chain returns the set of holders from h upwards.
func chain(h Holder) map[Holder]struct{} {
	set := make(map[Holder]struct{})
	walk(h, func(x Holder) bool {
		set[x] = struct{}{}
		return true
	})
	return set
}

// contains reports whether obj is h or one of h's ancestors.
func contains(h Holder, obj any) bool {
	found := false
	walk(h, func(x Holder) bool {
		if any(x) == obj {
			found = true
			return false
		}
		return true
	})
	return found
}

// walk visits h and its ancestors until visit returns false.
// It returns false when the chain loops or exceeds MaxHolderDepth.
func walk(h Holder, visit func(Holder) bool) bool {
	seen := make(map[Holder]struct{})
	for depth := 0; h != nil; depth++ {
		if depth >= MaxHolderDepth {
			return false
		}
		if _, ok := seen[h]; ok {
			return false
		}
		seen[h] = struct{}{}
		if !visit(h) {
			return true
		}
		h = h.Up()
	}
	return true
}
