package loadout

import (
	"slices"
	"strings"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// fillCamora loads a cylinder magazine: one ammo template is drawn from the merged
// camora pools and replicated into every camora chamber of the template.
func (c *genContext) fillCamora(magIdx int, tpl *model.ItemTemplate, pool data.ModPool) slotResult {
	var merged []string
	for _, slot := range pool.SortedModSlots() {
		if !strings.HasPrefix(slot, data.ModSlotCamora) {
			continue
		}
		for _, id := range pool[slot] {
			if !slices.Contains(merged, id) {
				merged = append(merged, id)
			}
		}
	}

	var chambers []*model.SlotDescriptor
	for i := range tpl.Chambers {
		if strings.HasPrefix(tpl.Chambers[i].Name, data.ModSlotCamora) {
			chambers = append(chambers, &tpl.Chambers[i])
		}
	}
	if len(chambers) == 0 {
		return skipped(Issue{
			Kind:           IssueConfiguration,
			Slot:           data.ModSlotCamora,
			ParentTemplate: tpl.ID,
			Reason:         "cylinder magazine declares no camora chambers",
		})
	}

	ammoID, found := c.pickCompatible(merged, chambers[0].Name, c.modScope(magIdx))
	if !found {
		return skipped(Issue{
			Kind:           IssueExhausted,
			Slot:           data.ModSlotCamora,
			ParentTemplate: tpl.ID,
			Reason:         "no compatible ammo for camora",
		})
	}

	ammo, ok := c.catalog.Template(ammoID)
	if !ok {
		return skipped(Issue{
			Kind:           IssueConfiguration,
			Slot:           data.ModSlotCamora,
			ParentTemplate: tpl.ID,
			Template:       ammoID,
			Reason:         "template not in catalog",
		})
	}

	magID := c.items[magIdx].ID
	first := -1
	for _, ch := range chambers {
		if !ch.Allows(ammoID) {
			c.record(skipped(Issue{
				Kind:           IssueFilterMismatch,
				Slot:           ch.Name,
				ParentTemplate: tpl.ID,
				Template:       ammoID,
				Reason:         "candidate not in slot filter",
			}))
			continue
		}
		idx := c.newItem(ammo, magID, ch.Name, ch)
		if first < 0 {
			first = idx
		}
	}

	if first < 0 {
		return empty()
	}
	return filled(first)
}
