package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/engine/coin"
)

func testItems() (sword, helmet, potion *Item) {
	sword = NewWeapon("sword", "made by elves", 2, 3, coin.Whole(4))
	helmet = NewArmor("helmet", "made by men", 1, 1, coin.Whole(2))
	potion = NewPotion("potion", "restores health", 1, 5, coin.Whole(3))
	return sword, helmet, potion
}

func TestContainer_CountAndWeight(t *testing.T) {
	sword, helmet, potion := testItems()
	c := NewContainer(sword, helmet, potion)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 4, c.Weight())

	rock := New("heavy rock", "weighs a ton", 2000, 0)
	require.NoError(t, c.Add(rock))
	assert.Equal(t, 2004, c.Weight())

	require.NoError(t, c.Remove(rock))
	assert.Equal(t, 4, c.Weight())
}

func TestContainer_AddRemoveContains(t *testing.T) {
	c := NewContainer()
	antidote := New("antidote", "cures poison", 1, 0)

	assert.False(t, c.Contains(antidote))
	require.NoError(t, c.Add(antidote))
	assert.True(t, c.Contains(antidote))
	assert.True(t, c.Has("antidote"))

	require.NoError(t, c.Remove(antidote))
	assert.False(t, c.Contains(antidote))
}

func TestContainer_DuplicateNameRejected(t *testing.T) {
	c := NewContainer(New("charm", "", 1, 0))
	err := c.Add(New("charm", "another one", 1, 0))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, c.Count())
}

func TestContainer_RemoveForeignInstance(t *testing.T) {
	mine := New("charm", "", 1, 0)
	c := NewContainer(mine)
	err := c.Remove(New("charm", "", 1, 0))
	assert.ErrorIs(t, err, ErrNotOwned)
	assert.True(t, c.Contains(mine))
}

func TestContainer_RemoveByName(t *testing.T) {
	sword, _, _ := testItems()
	c := NewContainer(sword)

	got, err := c.RemoveByName("sword")
	require.NoError(t, err)
	assert.Same(t, sword, got)
	assert.Equal(t, 0, c.Count())

	_, err = c.RemoveByName("sword")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContainer_ItemsSorted(t *testing.T) {
	sword, helmet, potion := testItems()
	c := NewContainer(sword, potion, helmet)
	assert.Equal(t, []string{"helmet", "potion", "sword"}, c.Names())
	items := c.Items()
	require.Len(t, items, 3)
	assert.Same(t, helmet, items[0])
}

func TestTransfer_MovesOwnership(t *testing.T) {
	sword, _, _ := testItems()
	floor := NewContainer(sword)
	pack := NewContainer()

	require.NoError(t, Transfer(floor, pack, sword))
	assert.False(t, floor.Contains(sword))
	assert.True(t, pack.Contains(sword))
}

func TestTransfer_FailsWithoutMutation(t *testing.T) {
	sword, _, _ := testItems()
	otherSword := NewWeapon("sword", "a rusty copy", 2, 1, 0)
	floor := NewContainer(sword)
	pack := NewContainer(otherSword)

	err := Transfer(floor, pack, sword)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.True(t, floor.Contains(sword))
	assert.True(t, pack.Contains(otherSword))

	err = Transfer(pack, floor, sword)
	assert.ErrorIs(t, err, ErrNotOwned)
}

func TestItem_RoleStats(t *testing.T) {
	sword, helmet, potion := testItems()

	assert.Equal(t, 3, sword.Damage())
	assert.Equal(t, 0, sword.Defense())
	assert.Equal(t, 1, helmet.Defense())
	assert.Equal(t, 5, potion.Healing())
	assert.Equal(t, 0, potion.Damage())

	assert.True(t, sword.Equippable())
	assert.True(t, helmet.Equippable())
	assert.False(t, potion.Equippable())
	assert.Equal(t, "sword (weapon, +3 attack)", sword.Summary())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"weapon", Weapon, true},
		{"armor", Armor, true},
		{"potion", Potion, true},
		{"item", Plain, true},
		{"scroll", Plain, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
