package combat

import (
	"github.com/osse101/skirmish/internal/entity"
)

// FightResult summarizes a fight. Winner and Loser are nil when the round cap
// was reached with both sides alive.
type FightResult struct {
	Rounds    int
	Exchanges []*Exchange
	Winner    *entity.Entity
	Loser     *entity.Entity
}

// Decided reports whether someone died.
func (f *FightResult) Decided() bool { return f.Winner != nil }

// Fight alternates exchanges, a attacking first, until one side dies or
// maxRounds rounds have passed. A non-positive maxRounds uses DefaultMaxRounds.
func (r *Resolver) Fight(a, b *entity.Entity, maxRounds int) (*FightResult, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	result := &FightResult{}
	defer func() {
		r.log.Info(LogMsgFightFinished, "rounds", result.Rounds, "decided", result.Decided())
		if r.observer != nil {
			r.observer.FightFinished(result.Rounds)
		}
	}()

	for result.Rounds < maxRounds {
		result.Rounds++
		for _, pair := range [2][2]*entity.Entity{{a, b}, {b, a}} {
			x, err := r.Attack(pair[0], pair[1])
			if err != nil {
				return result, err
			}
			result.Exchanges = append(result.Exchanges, x)
			if x.Killed() {
				result.Winner, result.Loser = pair[0], pair[1]
				return result, nil
			}
		}
	}

	return result, nil
}
