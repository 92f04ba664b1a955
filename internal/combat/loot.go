package combat

import (
	"fmt"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
)

// Chooser elects the winner's anchor for a possession found on the loser.
// Returning false skips the possession.
type Chooser interface {
	Choose(winner *entity.Entity, from domain.Anchor, p possession.Possession) (domain.Anchor, bool)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(winner *entity.Entity, from domain.Anchor, p possession.Possession) (domain.Anchor, bool)

func (f ChooserFunc) Choose(winner *entity.Entity, from domain.Anchor, p possession.Possession) (domain.Anchor, bool) {
	return f(winner, from, p)
}

// GreedyLoot takes everything that fits. It keeps the loser's anchor when the
// winner has it free, otherwise it uses the first free anchor that accepts it.
var GreedyLoot Chooser = ChooserFunc(func(winner *entity.Entity, from domain.Anchor, p possession.Possession) (domain.Anchor, bool) {
	if winner.CanHoldAtAnchor(p, from) {
		return from, true
	}
	return winner.FreeAnchorFor(p)
})

// AnchorMap moves the possession at each key anchor to the mapped anchor.
// Anchors missing from the map are skipped.
type AnchorMap map[domain.Anchor]domain.Anchor

func (m AnchorMap) Choose(_ *entity.Entity, from domain.Anchor, _ possession.Possession) (domain.Anchor, bool) {
	to, ok := m[from]
	return to, ok
}

// mergingChooser pours the loser's ducats into the winner's purse before
// consulting the wrapped chooser.
type mergingChooser struct {
	Chooser
}

// MergePurses wraps next so that, when both sides carry a purse, the loser's
// ducats move into the winner's purse instead of the purse changing hands.
func MergePurses(next Chooser) Chooser {
	if next == nil {
		next = GreedyLoot
	}
	return mergingChooser{Chooser: next}
}

// LootEntry records the fate of one possession.
type LootEntry struct {
	From       domain.Anchor
	To         domain.Anchor
	Possession possession.Possession
	Outcome    string
	Units      int // ducats merged, for LootMerged
	Err        error
}

// LootReport lists every possession found on the loser, in anchor order.
type LootReport struct {
	Winner  *entity.Entity
	Loser   *entity.Entity
	Entries []LootEntry
}

// Count returns the number of entries with the given outcome.
func (r *LootReport) Count(outcome string) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Loot lets winner strip loser's anchors. Every transfer goes through
// winner.Pickup; refused transfers are recorded, never forced.
func (r *Resolver) Loot(winner, loser *entity.Entity, chooser Chooser) (*LootReport, error) {
	if winner == nil {
		return nil, fmt.Errorf("%w: missing winner", domain.ErrInvalidTarget)
	}
	if winner.IsDead() {
		return nil, fmt.Errorf("%w: %s cannot loot", domain.ErrDeadEntity, winner.Name())
	}
	if loser == nil || loser == winner {
		return nil, fmt.Errorf("%w: nothing to loot", domain.ErrInvalidTarget)
	}
	if !loser.IsDead() {
		return nil, fmt.Errorf("%w: %s is still alive", domain.ErrInvalidTarget, loser.Name())
	}
	if chooser == nil {
		chooser = GreedyLoot
	}
	_, merge := chooser.(mergingChooser)

	report := &LootReport{Winner: winner, Loser: loser}
	for _, from := range loser.Anchors() {
		p, err := loser.PossessionAt(from)
		if err != nil || p == nil {
			continue
		}

		entry, merged := LootEntry{}, false
		if merge {
			entry, merged = r.mergePurse(winner, p)
		}
		if !merged {
			entry = r.take(winner, chooser, from, p)
		}
		entry.From = from
		entry.Possession = p

		report.Entries = append(report.Entries, entry)
		r.log.Info(LogMsgLootTransfer,
			"winner", winner.Name(),
			"possession", p.String(),
			"from", from,
			"to", entry.To,
			"outcome", entry.Outcome,
		)
		if r.observer != nil {
			r.observer.LootTransferred(p.Kind(), entry.Outcome)
		}
	}

	return report, nil
}

func (r *Resolver) take(winner *entity.Entity, chooser Chooser, from domain.Anchor, p possession.Possession) LootEntry {
	to, ok := chooser.Choose(winner, from, p)
	if !ok {
		return LootEntry{Outcome: LootSkipped}
	}
	if err := winner.Pickup(p, to); err != nil {
		return LootEntry{To: to, Outcome: LootRefused, Err: err}
	}
	return LootEntry{To: to, Outcome: LootTaken}
}

// mergePurse moves the ducats of p into the winner's purse when p is a purse
// and the move cannot burst or overload anything.
func (r *Resolver) mergePurse(winner *entity.Entity, p possession.Possession) (LootEntry, bool) {
	src, ok := p.(*possession.Purse)
	if !ok || src.Units() == 0 {
		return LootEntry{}, false
	}
	dst, ok := winner.Purse()
	if !ok || dst == src || dst.Free() < src.Units() {
		return LootEntry{}, false
	}

	units := src.Units()
	if err := possession.TransferUnits(src, dst, units); err != nil {
		return LootEntry{}, false
	}
	return LootEntry{To: domain.CurrencyAnchor, Outcome: LootMerged, Units: units}, true
}
