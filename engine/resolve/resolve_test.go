package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
)

type landmark struct{ name string }

func (l landmark) Name() string        { return l.name }
func (l landmark) Description() string { return "" }
func (l landmark) Kind() string        { return "landmark" }
func (l landmark) Enter(context.Context, *world.Entity, prompt.IO) error {
	return nil
}

func testLocation(t *testing.T) *world.Location {
	t.Helper()
	loc := world.NewLocation("barrow", "Barrow Downs", "Cold mist.")
	loc.AddMonster(world.NewMonster("Wight", "", 12, 3, world.Reward{}))
	loc.AddMonster(world.NewMonster("Orc", "", 8, 2, world.Reward{}))
	require.NoError(t, loc.AddPlace(landmark{name: "Great Barrow"}))
	return loc
}

func TestMonster(t *testing.T) {
	loc := testLocation(t)
	m, err := Monster(loc, "Orc")
	require.NoError(t, err)
	assert.Equal(t, "Orc", m.Name())
}

func TestMonster_NotFound(t *testing.T) {
	loc := testLocation(t)
	for _, name := range []string{"Troll", "orc", ""} {
		_, err := Monster(loc, name)
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf), name)
		assert.Equal(t, "monster", nf.Kind)
		assert.Equal(t, name, nf.Name)
	}
}

func TestMonster_SkipsDead(t *testing.T) {
	loc := testLocation(t)
	m, err := Monster(loc, "Orc")
	require.NoError(t, err)
	m.TakeDamage(100)

	_, err = Monster(loc, "Orc")
	assert.Error(t, err)
	assert.Equal(t, []string{"Wight"}, MonsterNames(loc))
}

func TestPlace(t *testing.T) {
	loc := testLocation(t)
	p, err := Place(loc, "Great Barrow")
	require.NoError(t, err)
	assert.Equal(t, "Great Barrow", p.Name())

	_, err = Place(loc, "great barrow")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, nf.Error(), "no place called")
	assert.Equal(t, []string{"Great Barrow"}, PlaceNames(loc))
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", JoinNames(nil))
	assert.Equal(t, "Orc", JoinNames([]string{"Orc"}))
	assert.Equal(t, "Orc and Wight", JoinNames([]string{"Orc", "Wight"}))
	assert.Equal(t, "Orc, Troll and Wight", JoinNames([]string{"Orc", "Troll", "Wight"}))
}
