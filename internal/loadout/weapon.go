package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// Container priority per caller. Magazines fall through from the rig to pockets;
// loose ammo only ever goes to the secure container and is dropped otherwise.
var (
	magazineContainers  = []string{data.SlotTacticalVest, data.SlotPockets}
	looseAmmoContainers = []string{data.SlotSecuredContainer}
)

// generateWeapons runs the weapon dependency chain:
// secondary only after a primary, holster forced when no primary spawned.
func (c *genContext) generateWeapons(root *model.ItemTemplate) {
	primary := c.fillWeaponSlot(root, data.SlotFirstPrimaryWeapon, false)
	hasPrimary := primary.status == statusFilled

	if hasPrimary {
		c.fillWeaponSlot(root, data.SlotSecondPrimaryWeapon, false)
	}
	c.fillWeaponSlot(root, data.SlotHolster, !hasPrimary)
}

func (c *genContext) fillWeaponSlot(root *model.ItemTemplate, name string, forced bool) slotResult {
	slot, ok := root.Slot(name)
	if !ok {
		return empty()
	}

	res := c.fillEquipmentSlot(slot, forced)
	c.record(res)

	if res.status == statusFilled {
		c.generateWeaponExtras(res.index)
	}
	return res
}

// generateWeaponExtras adds spare magazines and loose ammo for the weapon at idx.
func (c *genContext) generateWeaponExtras(weaponIdx int) {
	weaponID := c.items[weaponIdx].ID
	limits := c.role.Limits

	if magIdx, ok := c.childInSlot(weaponID, data.ModSlotMagazine); ok {
		n := c.rng.Between(limits.Magazines.Min, limits.Magazines.Max)
		for range n {
			mark := len(c.items)
			cloneIdx := c.cloneDetached(magIdx)
			if !c.placeInContainers(cloneIdx, magazineContainers, true) {
				c.truncate(mark)
			}
		}
	}

	ammoID, ok := c.weaponAmmo(weaponIdx)
	if !ok {
		return
	}
	ammo, ok := c.catalog.Template(ammoID)
	if !ok {
		return
	}

	n := c.rng.Between(limits.LooseAmmo.Min, limits.LooseAmmo.Max)
	for range n {
		mark := len(c.items)
		idx := c.newItem(ammo, "", "", nil)
		if !c.placeInContainers(idx, looseAmmoContainers, false) {
			c.truncate(mark)
		}
	}
}

// weaponAmmo returns the template of the first round found in the weapon tree.
func (c *genContext) weaponAmmo(weaponIdx int) (string, bool) {
	for _, it := range c.subtreeItems(weaponIdx)[1:] {
		if c.catalog.IsOfBaseClass(it.TemplateID, data.BaseClassAmmo) {
			return it.TemplateID, true
		}
	}
	return "", false
}

// cloneDetached copies the subtree at idx with new ids. The copy's root has no
// parent until it is placed.
func (c *genContext) cloneDetached(idx int) int {
	src := c.subtreeItems(idx)
	remap := make(map[string]string, len(src))

	first := -1
	for i, it := range src {
		newID := c.ids.next()
		remap[it.ID] = newID

		cp := model.Item{
			ID:         newID,
			TemplateID: it.TemplateID,
			SlotID:     it.SlotID,
			Props:      cloneProps(it.Props),
		}
		if i == 0 {
			cp.SlotID = ""
		} else {
			cp.ParentID = remap[it.ParentID]
		}

		n := c.add(cp)
		if first < 0 {
			first = n
		}
	}
	return first
}

func cloneProps(p *model.Props) *model.Props {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Durability != nil {
		d := *p.Durability
		cp.Durability = &d
	}
	if p.Folded != nil {
		f := *p.Folded
		cp.Folded = &f
	}
	if p.On != nil {
		on := *p.On
		cp.On = &on
	}
	return &cp
}
