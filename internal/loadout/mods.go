package loadout

import (
	"fmt"
	"strings"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// resolveSlot finds the descriptor of a mod slot by name pattern:
// chambers (patron_in_weapon*, camora*), the cartridge stack, or a generic slot.
func resolveSlot(tpl *model.ItemTemplate, slot string) (*model.SlotDescriptor, bool) {
	switch {
	case strings.HasPrefix(slot, data.ModSlotChamber), strings.HasPrefix(slot, data.ModSlotCamora):
		return tpl.Chamber(slot)
	case slot == data.ModSlotCartridges:
		return tpl.CartridgeSlot(slot)
	default:
		return tpl.Slot(slot)
	}
}

// generateMods attaches children to every slot of the parent's mod pool, recursively.
func (c *genContext) generateMods(parentIdx, depth int) {
	parent := c.items[parentIdx]
	tpl, ok := c.catalog.Template(parent.TemplateID)
	if !ok {
		c.record(skipped(Issue{
			Kind:     IssueConfiguration,
			Template: parent.TemplateID,
			Reason:   "template not in catalog",
		}))
		return
	}

	pool, ok := c.role.ModPoolFor(tpl.ID)
	if !ok {
		return
	}

	if depth >= c.maxDepth {
		c.record(skipped(Issue{
			Kind:           IssueConfiguration,
			ParentTemplate: tpl.ID,
			Reason:         fmt.Sprintf("mod depth limit %d reached", c.maxDepth),
		}))
		return
	}

	cylinder := c.catalog.IsOfBaseClass(tpl.ID, data.BaseClassCylinderMagazine)
	if cylinder && hasCamora(pool) {
		c.record(c.fillCamora(parentIdx, tpl, pool))
	}

	for _, slot := range pool.SortedModSlots() {
		if cylinder && strings.HasPrefix(slot, data.ModSlotCamora) {
			continue
		}

		res := c.attachMod(parentIdx, tpl, slot, pool[slot])
		c.record(res)

		if res.status == statusFilled {
			c.generateMods(res.index, depth+1)
		}
	}
}

// attachMod fills one slot of the parent. It never recurses.
func (c *genContext) attachMod(parentIdx int, parentTpl *model.ItemTemplate, slot string, candidates []string) slotResult {
	desc, ok := resolveSlot(parentTpl, slot)
	if !ok {
		return skipped(Issue{
			Kind:           IssueConfiguration,
			Slot:           slot,
			ParentTemplate: parentTpl.ID,
			Reason:         "slot not declared on template",
		})
	}

	chance := 100
	if !desc.Required && !desc.Kind.IsAmmo() {
		chance, ok = c.role.Chances.ModChance(slot)
		if !ok {
			return skipped(Issue{
				Kind:           IssueConfiguration,
				Slot:           slot,
				ParentTemplate: parentTpl.ID,
				Reason:         "no spawn chance for mod slot",
			})
		}
	}
	if !c.rng.Chance(chance) {
		return empty()
	}

	scope := c.modScope(parentIdx)

	chosen, found := c.pickCompatible(candidates, slot, scope)
	if !found && desc.Required {
		chosen, found = c.fallbackCandidate(desc, parentTpl.ID, scope)
	}
	if !found {
		if desc.Required {
			return skipped(Issue{
				Kind:           IssueExhausted,
				Slot:           slot,
				ParentTemplate: parentTpl.ID,
				Reason:         "no compatible candidate in pool or slot filter",
			})
		}
		return empty()
	}

	if !desc.Allows(chosen) {
		return skipped(Issue{
			Kind:           IssueFilterMismatch,
			Slot:           slot,
			ParentTemplate: parentTpl.ID,
			Template:       chosen,
			Reason:         "candidate not in slot filter",
		})
	}

	childTpl, ok := c.catalog.Template(chosen)
	if !ok {
		return skipped(Issue{
			Kind:           IssueConfiguration,
			Slot:           slot,
			ParentTemplate: parentTpl.ID,
			Template:       chosen,
			Reason:         "template not in catalog",
		})
	}

	return filled(c.newItem(childTpl, c.items[parentIdx].ID, slot, desc))
}

// pickCompatible pops candidates at random until one passes the compatibility check.
func (c *genContext) pickCompatible(candidates []string, slot string, scope []model.Item) (string, bool) {
	sampler := NewExhaustibleSampler(candidates, c.rng)
	for sampler.HasValues() {
		id, _ := sampler.Pop()
		if c.blacklisted(id) {
			continue
		}
		if Compatible(c.catalog, scope, id, slot) {
			return id, true
		}
	}
	return "", false
}

// fallbackCandidate scans the slot filter (or the whole catalog for an "any" filter)
// by descending spawn weight and returns the first compatible template.
func (c *genContext) fallbackCandidate(desc *model.SlotDescriptor, parentTplID string, scope []model.Item) (string, bool) {
	ids := desc.Filter
	if desc.AcceptsAny {
		ids = c.catalog.IDs()
	}

	for _, id := range c.catalog.SortBySpawnWeight(ids) {
		if id == parentTplID || c.blacklisted(id) {
			continue
		}
		if Compatible(c.catalog, scope, id, desc.Name) {
			return id, true
		}
	}
	return "", false
}

func hasCamora(pool data.ModPool) bool {
	for slot := range pool {
		if strings.HasPrefix(slot, data.ModSlotCamora) {
			return true
		}
	}
	return false
}
