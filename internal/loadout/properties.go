package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// DurabilitySampler produces the (current, max) condition of a freshly generated item.
type DurabilitySampler interface {
	Sample(tpl *model.ItemTemplate, role *data.RoleInventory, rng *RNG) model.Durability
}

// RangeDurability samples durability from the role's DurabilityRange.
type RangeDurability struct{}

// Sample implements DurabilitySampler.
func (RangeDurability) Sample(tpl *model.ItemTemplate, role *data.RoleInventory, rng *RNG) model.Durability {
	r := role.Durability
	if r == (data.DurabilityRange{}) {
		r = data.DefaultDurabilityRange()
	}

	maxPct := rng.Between(clampPercent(r.MaxMin), clampPercent(r.MaxMax))
	maxDur := max(tpl.MaxDurability*maxPct/100, 1)

	curPct := rng.Between(clampPercent(r.CurrentMin), 100)
	cur := max(maxDur*curPct/100, 1)

	return model.Durability{Current: cur, Max: maxDur}
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}

// newProps generates every property of a new item. Called exactly once per item.
// slot is the descriptor the item is attached through, nil for top-level and loose items.
func (c *genContext) newProps(tpl *model.ItemTemplate, slot *model.SlotDescriptor) *model.Props {
	p := &model.Props{}
	set := false

	if tpl.MaxDurability > 0 {
		d := c.durability.Sample(tpl, c.role, c.rng)
		p.Durability = &d
		set = true
	}

	switch {
	case slot != nil && slot.Kind == model.SlotKindCartridges:
		p.StackCount = max(slot.MaxCount, 1)
		set = true
	case slot != nil && slot.Kind == model.SlotKindChamber:
		p.StackCount = 1
		set = true
	case slot == nil && tpl.MaxStack > 1 && c.catalog.IsOfBaseClass(tpl.ID, data.BaseClassAmmo):
		// Loose rounds come as a full stack
		p.StackCount = tpl.MaxStack
		set = true
	}

	if len(tpl.FireModes) > 0 {
		p.FireMode = tpl.FireModes[c.rng.IntN(len(tpl.FireModes))]
		set = true
	}

	if tpl.Foldable {
		folded := c.rng.Chance(c.role.Limits.FoldedChance)
		p.Folded = &folded
		set = true
	}

	if tpl.Togglable {
		on := c.rng.Chance(c.role.Limits.ToggleOnChance)
		p.On = &on
		set = true
	}

	if tpl.MaxResource > 0 {
		p.Resource = tpl.MaxResource
		set = true
	}

	if !set {
		return nil
	}
	return p
}
