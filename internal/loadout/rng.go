package loadout

import (
	"math/rand/v2"

	"github.com/udisondev/botloadout/internal/data"
)

// RNG is a seedable random source owned by a single generation.
// It is not safe for concurrent use; parallel generations each get their own.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n). Returns 0 for n <= 0.
func (g *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

// Between returns a value in [lo, hi]. Returns lo when hi <= lo.
func (g *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo+1)
}

// Chance rolls a uniform percentage and reports whether it falls under percent.
// 100 always passes, 0 never does.
func (g *RNG) Chance(percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return g.r.IntN(100) < percent
}

// Uint64 returns a raw 64-bit value.
func (g *RNG) Uint64() uint64 {
	return g.r.Uint64()
}

// Drawer — single weighted draw from a candidate pool.
type Drawer interface {
	Draw(rng *RNG, candidates data.SlotPool) (string, bool)
}

// WeightedDrawer picks a candidate with probability proportional to its weight.
// Candidates with non-positive weight are never picked.
type WeightedDrawer struct{}

// Draw implements Drawer.
func (WeightedDrawer) Draw(rng *RNG, candidates data.SlotPool) (string, bool) {
	total := 0
	for _, c := range candidates {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return "", false
	}

	roll := rng.IntN(total)
	cumulative := 0
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if roll < cumulative {
			return c.ID, true
		}
	}
	return "", false
}

// SeedFor derives the seed of the n-th bot of a wave (splitmix64 step).
func SeedFor(waveSeed uint64, n int) uint64 {
	z := waveSeed + uint64(n+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
