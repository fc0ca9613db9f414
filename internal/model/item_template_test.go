package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSlotDescriptor_Allows(t *testing.T) {
	filtered := SlotDescriptor{Name: "mod_magazine", Filter: []string{"mag_a", "mag_b"}}
	assert.True(t, filtered.Allows("mag_b"))
	assert.False(t, filtered.Allows("mag_c"))

	empty := SlotDescriptor{Name: "mod_magazine"}
	assert.False(t, empty.Allows("mag_a"), "empty filter accepts nothing")

	anything := SlotDescriptor{Name: "mod_magazine", AcceptsAny: true}
	assert.True(t, anything.Allows("whatever"))
}

func TestSlotKind_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		raw     string
		want    SlotKind
		wantErr bool
	}{
		{"kind: generic", SlotKindGeneric, false},
		{"kind: slot", SlotKindGeneric, false},
		{"kind: chamber", SlotKindChamber, false},
		{"kind: cartridges", SlotKindCartridges, false},
		{"kind: 2", SlotKindCartridges, false},
		{"kind: 7", 0, true},
		{"kind: barrel", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s SlotDescriptor
			err := yaml.Unmarshal([]byte(tt.raw), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Kind)
		})
	}
}

func TestSlotKind_IsAmmo(t *testing.T) {
	assert.False(t, SlotKindGeneric.IsAmmo())
	assert.True(t, SlotKindChamber.IsAmmo())
	assert.True(t, SlotKindCartridges.IsAmmo())
	assert.Equal(t, "Chamber", SlotKindChamber.String())
}

func TestItemTemplate_SlotLookup(t *testing.T) {
	tpl := &ItemTemplate{
		ID:         "gun",
		Slots:      []SlotDescriptor{{Name: "mod_stock"}},
		Chambers:   []SlotDescriptor{{Name: "patron_in_weapon", Kind: SlotKindChamber}},
		Cartridges: []SlotDescriptor{{Name: "cartridges", Kind: SlotKindCartridges}},
		Blocks:     []string{"Earpiece"},
	}

	_, ok := tpl.Slot("mod_stock")
	assert.True(t, ok)
	_, ok = tpl.Slot("patron_in_weapon")
	assert.False(t, ok, "chambers are not generic slots")
	_, ok = tpl.Chamber("patron_in_weapon")
	assert.True(t, ok)
	_, ok = tpl.CartridgeSlot("cartridges")
	assert.True(t, ok)

	assert.True(t, tpl.BlocksSlot("Earpiece"))
	assert.False(t, tpl.BlocksSlot(""))
	assert.False(t, tpl.IsContainer())
}

func TestItem_JSONShape(t *testing.T) {
	folded := true
	it := Item{
		ID:         "a1",
		TemplateID: "rifle",
		ParentID:   "root",
		SlotID:     "FirstPrimaryWeapon",
		Location:   &Location{X: 1, Y: 2, Rotated: true},
		Props: &Props{
			Durability: &Durability{Current: 80, Max: 95},
			Folded:     &folded,
		},
	}

	raw, err := json.Marshal(it)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"_id": "a1",
		"_tpl": "rifle",
		"parentId": "root",
		"slotId": "FirstPrimaryWeapon",
		"location": {"x": 1, "y": 2, "r": true},
		"upd": {"Repairable": {"Durability": 80, "MaxDurability": 95}, "Folded": true}
	}`, string(raw))

	assert.True(t, it.IsFolded())
	assert.False(t, it.IsRoot())
	assert.Equal(t, 1, it.StackSize())
}
