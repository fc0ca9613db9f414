package loadout

import "slices"

// ExhaustibleSampler draws from a private copy of a pool without replacement.
type ExhaustibleSampler struct {
	pool []string
	rng  *RNG
}

// NewExhaustibleSampler copies pool; the caller's slice is never modified.
func NewExhaustibleSampler(pool []string, rng *RNG) *ExhaustibleSampler {
	return &ExhaustibleSampler{pool: slices.Clone(pool), rng: rng}
}

// HasValues returns true while candidates remain.
func (s *ExhaustibleSampler) HasValues() bool {
	return len(s.pool) > 0
}

// Len returns number of remaining candidates.
func (s *ExhaustibleSampler) Len() int {
	return len(s.pool)
}

// Pop removes and returns a uniformly random remaining candidate.
func (s *ExhaustibleSampler) Pop() (string, bool) {
	if len(s.pool) == 0 {
		return "", false
	}
	i := s.rng.IntN(len(s.pool))
	v := s.pool[i]
	last := len(s.pool) - 1
	s.pool[i] = s.pool[last]
	s.pool = s.pool[:last]
	return v, true
}
