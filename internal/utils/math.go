package utils

import (
	"math/rand"
	"time"
)

// Roller draws bounded random integers. *rand.Rand satisfies it.
type Roller interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRoller returns a seeded roller. A zero seed uses the current time.
func NewRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Roller, min, max int) int {
	if min >= max {
		return min
	}
	return r.Intn(max-min+1) + min
}

// PercentOf returns pct percent of value, rounded down.
func PercentOf(value, pct int) int {
	if value <= 0 || pct <= 0 {
		return 0
	}
	return value * pct / 100
}

// SequenceRoller replays a fixed list of draws, cycling when exhausted.
// Each draw is folded into [0, n).
type SequenceRoller struct {
	values []int
	next   int
}

// NewSequenceRoller creates a roller that returns values in order.
func NewSequenceRoller(values ...int) *SequenceRoller {
	return &SequenceRoller{values: values}
}

// Intn implements Roller.
func (s *SequenceRoller) Intn(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws returns how many values were consumed.
func (s *SequenceRoller) Draws() int { return s.next }
