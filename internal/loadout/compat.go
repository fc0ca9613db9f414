package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// Compatible reports whether candidateTpl may be placed into candidateSlot next to existing.
//
// The item data is not symmetric, so both directions are checked:
//   - an existing item blocks candidateSlot or lists candidateTpl as conflicting;
//   - the candidate blocks an existing item's slot or lists its template as conflicting.
//
// Templates missing from the catalog contribute no constraints.
func Compatible(catalog *data.Catalog, existing []model.Item, candidateTpl, candidateSlot string) bool {
	candidate, candidateKnown := catalog.Template(candidateTpl)

	for i := range existing {
		it := &existing[i]

		if tpl, ok := catalog.Template(it.TemplateID); ok {
			if tpl.BlocksSlot(candidateSlot) || tpl.ConflictsWith(candidateTpl) {
				return false
			}
		}

		if candidateKnown {
			if candidate.BlocksSlot(it.SlotID) || candidate.ConflictsWith(it.TemplateID) {
				return false
			}
		}
	}
	return true
}
