package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/engine/item"
)

func carrying(t *testing.T, items ...*item.Item) *Entity {
	t.Helper()
	p, _ := newTestPlayer(t)
	for _, it := range items {
		require.NoError(t, p.Carried().Add(it))
	}
	return p
}

func TestEquipWeaponRaisesAttack(t *testing.T) {
	sword := item.NewWeapon("Sword", "", 3, 4, 0)
	p := carrying(t, sword)

	got, replaced, err := p.Equip("Sword")
	require.NoError(t, err)
	assert.Same(t, sword, got)
	assert.Nil(t, replaced)
	assert.Equal(t, 6, p.Attack())
	assert.Same(t, sword, p.Weapon())
	assert.False(t, p.Carried().Has("Sword"))

	_, err = p.Unequip("Sword")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Attack())
	assert.True(t, p.Carried().Has("Sword"))
}

func TestEquipAlreadyEquippedRejected(t *testing.T) {
	p := carrying(t, item.NewArmor("Mail", "", 5, 3, 0))
	_, _, err := p.Equip("Mail")
	require.NoError(t, err)

	carried, equipped := p.Carried().Count(), p.Equipped().Count()
	_, _, err = p.Equip("Mail")
	assert.ErrorIs(t, err, ErrAlreadyEquipped)
	assert.Equal(t, carried, p.Carried().Count())
	assert.Equal(t, equipped, p.Equipped().Count())
	assert.Equal(t, 3, p.Defense())
}

func TestEquipRejections(t *testing.T) {
	p := carrying(t, item.New("Charm", "", 1, 0), item.NewPotion("Draught", "", 1, 5, 0))

	tests := []struct {
		name string
		item string
		want error
	}{
		{"missing", "Sword", ErrNotCarried},
		{"plain", "Charm", ErrNotEquippable},
		{"potion", "Draught", ErrNotEquippable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := p.Equip(tt.item)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 2, p.Carried().Count())
			assert.Zero(t, p.Equipped().Count())
		})
	}
}

func TestEquipSecondWeaponReplacesFirst(t *testing.T) {
	dagger := item.NewWeapon("Dagger", "", 1, 2, 0)
	sword := item.NewWeapon("Sword", "", 3, 4, 0)
	p := carrying(t, dagger, sword)

	_, _, err := p.Equip("Dagger")
	require.NoError(t, err)

	got, replaced, err := p.Equip("Sword")
	require.NoError(t, err)
	assert.Same(t, sword, got)
	assert.Same(t, dagger, replaced)
	assert.Equal(t, 1, p.Equipped().Count())
	assert.True(t, p.Carried().Contains(dagger))
	assert.Equal(t, 6, p.Attack())
}

func TestEquipArmorAndWeaponUseSeparateSlots(t *testing.T) {
	p := carrying(t, item.NewWeapon("Sword", "", 3, 4, 0), item.NewArmor("Mail", "", 5, 3, 0))
	_, _, err := p.Equip("Sword")
	require.NoError(t, err)
	_, replaced, err := p.Equip("Mail")
	require.NoError(t, err)
	assert.Nil(t, replaced)
	assert.Equal(t, 2, p.Equipped().Count())
	assert.Equal(t, 6, p.Attack())
	assert.Equal(t, 3, p.Defense())
}

func TestUnequipNotEquipped(t *testing.T) {
	p := carrying(t, item.NewWeapon("Sword", "", 3, 4, 0))
	_, err := p.Unequip("Sword")
	assert.ErrorIs(t, err, ErrNotEquipped)
	assert.Equal(t, 1, p.Carried().Count())
}
