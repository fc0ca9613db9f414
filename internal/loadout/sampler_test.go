package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExhaustibleSampler_PopsEveryValueOnce(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	s := NewExhaustibleSampler(pool, NewRNG(5))

	var got []string
	for s.HasValues() {
		v, ok := s.Pop()
		assert.True(t, ok)
		got = append(got, v)
	}

	assert.ElementsMatch(t, pool, got)
	assert.Zero(t, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestExhaustibleSampler_DoesNotModifyPool(t *testing.T) {
	pool := []string{"a", "b", "c"}
	s := NewExhaustibleSampler(pool, NewRNG(1))
	for s.HasValues() {
		s.Pop()
	}
	assert.Equal(t, []string{"a", "b", "c"}, pool)
}

func TestExhaustibleSampler_Empty(t *testing.T) {
	s := NewExhaustibleSampler(nil, NewRNG(1))
	assert.False(t, s.HasValues())
	_, ok := s.Pop()
	assert.False(t, ok)
}
