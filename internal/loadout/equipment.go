package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// deferredSlots are generated outside the main equipment loop.
var deferredSlots = map[string]bool{
	data.SlotFirstPrimaryWeapon:  true,
	data.SlotSecondPrimaryWeapon: true,
	data.SlotHolster:             true,
	data.SlotArmorVest:           true,
}

// generateEquipment populates every top-level slot of the root template except
// weapons. ArmorVest always goes after TacticalVest: a rig may declare a block
// against armor, and only the rig-first order lets that block apply.
func (c *genContext) generateEquipment(root *model.ItemTemplate) {
	for i := range root.Slots {
		slot := &root.Slots[i]
		if deferredSlots[slot.Name] {
			continue
		}
		c.record(c.fillEquipmentSlot(slot, false))
	}

	if vest, ok := root.Slot(data.SlotArmorVest); ok {
		c.record(c.fillEquipmentSlot(vest, false))
	}
}

// fillEquipmentSlot rolls, draws and instantiates one top-level item.
// forced skips the chance table (used by the holster guarantee).
func (c *genContext) fillEquipmentSlot(slot *model.SlotDescriptor, forced bool) slotResult {
	pool := c.allowedPool(c.role.Equipment[slot.Name])
	if len(pool) == 0 {
		if slot.Required {
			return skipped(Issue{
				Kind:   IssueConfiguration,
				Slot:   slot.Name,
				Reason: "empty candidate pool for required slot",
			})
		}
		return empty()
	}

	chance := 100
	if !forced {
		var ok bool
		chance, ok = c.role.Chances.EquipmentChance(slot.Name)
		if !ok {
			return skipped(Issue{
				Kind:   IssueConfiguration,
				Slot:   slot.Name,
				Reason: "no spawn chance for equipment slot",
			})
		}
	}
	if !c.rng.Chance(chance) {
		return empty()
	}

	chosen, ok := c.drawer.Draw(c.rng, pool)
	if !ok {
		return empty()
	}

	if !Compatible(c.catalog, c.equipmentScope(), chosen, slot.Name) {
		return empty()
	}

	tpl, ok := c.catalog.Template(chosen)
	if !ok {
		return skipped(Issue{
			Kind:     IssueConfiguration,
			Slot:     slot.Name,
			Template: chosen,
			Reason:   "template not in catalog",
		})
	}

	idx := c.newItem(tpl, c.rootID, slot.Name, nil)
	c.generateMods(idx, 0)
	return filled(idx)
}
