package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, rng1.Roll(6), rng2.Roll(6), "roll %d", i)
	}
}

func TestRNG_Roll_Range(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Roll(6)
		if r < 1 || r > 6 {
			t.Fatalf("roll out of range [1,6]: got %d", r)
		}
	}
}

func TestRNG_Chance_Bounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 50; i++ {
		assert.True(t, rng.Chance(100))
		assert.False(t, rng.Chance(0))
	}
	assert.Zero(t, rng.Position(), "certain outcomes do not roll")
}

func TestRNG_Chance_Distribution(t *testing.T) {
	rng := NewRNG(12345)
	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		if rng.Chance(30) {
			hits++
		}
	}
	pct := float64(hits) / trials * 100
	assert.InDelta(t, 30, pct, 3)
	assert.Equal(t, int64(trials), rng.Position())
	assert.Equal(t, int64(12345), rng.Seed())
}
