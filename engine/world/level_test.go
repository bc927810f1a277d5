package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{19, 1},
		{20, 2},
		{39, 2},
		{40, 3},
		{105, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.xp, 20), "xp=%d", tt.xp)
	}
}

func TestGainExperienceLevelsUp(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.TakeDamage(6)

	assert.Zero(t, p.GainExperience(10))
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, 4, p.HP())

	assert.Equal(t, 1, p.GainExperience(10))
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 20, p.MaxHP())
	assert.Equal(t, 20, p.HP())
	assert.Equal(t, 4, p.BaseAttack())
}

func TestLevelMonotone(t *testing.T) {
	p, _ := newTestPlayer(t)
	prev := p.Level()
	for _, xp := range []int{5, 0, -10, 15, 1, 30, 7, 100} {
		p.GainExperience(xp)
		assert.GreaterOrEqual(t, p.Level(), prev)
		assert.Equal(t, p.Experience()/20+1, p.Level())
		prev = p.Level()
	}
}

func TestRecomputeLevelIdempotent(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.GainExperience(45)
	p.TakeDamage(3)
	level, hp, maxHP := p.Level(), p.HP(), p.MaxHP()

	assert.Zero(t, p.RecomputeLevel())
	assert.Equal(t, level, p.Level())
	assert.Equal(t, hp, p.HP())
	assert.Equal(t, maxHP, p.MaxHP())
}
