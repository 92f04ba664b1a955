package possession

import (
	"github.com/osse101/skirmish/internal/domain"
)

// Observer is notified of terminal possession events.
type Observer interface {
	PossessionDestroyed(kind domain.Kind)
	PurseBurst()
}

// Registry tracks the identifiers of live possessions, per kind.
// Create one per simulation and pass it to every constructor. Constructors
// given a nil registry still succeed, but their ids are not checked against
// any other possession.
type Registry struct {
	live     map[domain.Kind]map[int64]struct{}
	cursor   map[domain.Kind]int64
	observer Observer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		live:   make(map[domain.Kind]map[int64]struct{}),
		cursor: make(map[domain.Kind]int64),
	}
}

// SetObserver installs o to receive destruction events. nil disables notifications.
func (r *Registry) SetObserver(o Observer) {
	r.observer = o
}

// IsLive reports whether a live possession of kind uses id.
func (r *Registry) IsLive(kind domain.Kind, id int64) bool {
	_, ok := r.live[kind][id]
	return ok
}

// Live returns the number of live possessions of kind.
func (r *Registry) Live(kind domain.Kind) int {
	return len(r.live[kind])
}

// ValidID reports whether id satisfies the identifier rule of kind.
func ValidID(kind domain.Kind, id int64) bool {
	switch kind {
	case domain.KindWeapon:
		return id > 0 && id%6 == 0
	case domain.KindArmor:
		return isPrime(id)
	case domain.KindBackpack:
		return id > 0
	case domain.KindPurse:
		return id > 0 && id%2 == 1
	}
	return false
}

// claim reserves requested when it is valid and free, otherwise a generated id.
func (r *Registry) claim(kind domain.Kind, requested int64) int64 {
	id := requested
	if !ValidID(kind, id) || r.IsLive(kind, id) {
		id = r.generate(kind)
	}
	if r.live[kind] == nil {
		r.live[kind] = make(map[int64]struct{})
	}
	r.live[kind][id] = struct{}{}
	return id
}

func (r *Registry) generate(kind domain.Kind) int64 {
	id := r.cursor[kind]
	for {
		id = nextID(kind, id)
		if !r.IsLive(kind, id) {
			break
		}
	}
	r.cursor[kind] = id
	return id
}

func (r *Registry) release(kind domain.Kind, id int64) {
	delete(r.live[kind], id)
	if r.observer != nil {
		r.observer.PossessionDestroyed(kind)
	}
}

func (r *Registry) burst() {
	if r.observer != nil {
		r.observer.PurseBurst()
	}
}

// nextID returns the smallest id of kind's sequence greater than after.
func nextID(kind domain.Kind, after int64) int64 {
	if after < 0 {
		after = 0
	}
	switch kind {
	case domain.KindWeapon:
		return (after/6 + 1) * 6
	case domain.KindArmor:
		n := after + 1
		for !isPrime(n) {
			n++
		}
		return n
	case domain.KindPurse:
		if after%2 == 0 {
			return after + 1
		}
		return after + 2
	default:
		return after + 1
	}
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
