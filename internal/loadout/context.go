package loadout

import (
	"log/slog"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// genContext — состояние одной генерации. Created per bot, discarded after Generate returns.
//
// items is the arena: parents are always appended before their children, and
// items reference each other only by ID.
type genContext struct {
	catalog    *data.Catalog
	drawer     Drawer
	durability DurabilitySampler
	logger     *slog.Logger

	role     *data.RoleInventory
	rng      *RNG
	ids      *idSource
	rootID   string
	maxDepth int

	items  []model.Item
	index  map[string]int
	report Report
}

// add appends an item to the arena and returns its index.
func (c *genContext) add(it model.Item) int {
	idx := len(c.items)
	c.items = append(c.items, it)
	c.index[it.ID] = idx
	return idx
}

// newItem creates and appends an item with freshly generated properties.
func (c *genContext) newItem(tpl *model.ItemTemplate, parentID, slotID string, slot *model.SlotDescriptor) int {
	return c.add(model.Item{
		ID:         c.ids.next(),
		TemplateID: tpl.ID,
		ParentID:   parentID,
		SlotID:     slotID,
		Props:      c.newProps(tpl, slot),
	})
}

// truncate drops every item appended at or after mark.
func (c *genContext) truncate(mark int) {
	for i := mark; i < len(c.items); i++ {
		delete(c.index, c.items[i].ID)
	}
	c.items = c.items[:mark]
}

// subtreeItems returns a copy of the subtree rooted at idx, root first.
func (c *genContext) subtreeItems(idx int) []model.Item {
	return Subtree(c.items, idx)
}

// Subtree returns a copy of items[idx] followed by all of its descendants.
// items must be ordered parent-before-child, as generated lists are.
func Subtree(items []model.Item, idx int) []model.Item {
	ids := subtreeIndexes(items, idx)
	out := make([]model.Item, len(ids))
	for i, j := range ids {
		out[i] = items[j]
	}
	return out
}

func subtreeIndexes(items []model.Item, idx int) []int {
	members := map[string]bool{items[idx].ID: true}
	out := []int{idx}
	for i := idx + 1; i < len(items); i++ {
		if members[items[i].ParentID] {
			members[items[i].ID] = true
			out = append(out, i)
		}
	}
	return out
}

// topLevel walks up from idx to the item directly under the equipment root,
// or to a detached item that has no parent yet.
func (c *genContext) topLevel(idx int) int {
	for steps := 0; steps < len(c.items); steps++ {
		parentID := c.items[idx].ParentID
		if parentID == "" || parentID == c.rootID {
			return idx
		}
		p, ok := c.index[parentID]
		if !ok {
			return idx
		}
		idx = p
	}
	return idx
}

// modScope returns the items a mod attached under parentIdx is checked against:
// the whole tree of the top-level item being built.
func (c *genContext) modScope(parentIdx int) []model.Item {
	return c.subtreeItems(c.topLevel(parentIdx))
}

// equipmentScope returns every generated item except the equipment root.
func (c *genContext) equipmentScope() []model.Item {
	if len(c.items) <= 1 {
		return nil
	}
	return c.items[1:]
}

// equipped returns the index of the top-level item in slot.
func (c *genContext) equipped(slot string) (int, bool) {
	return c.childInSlot(c.rootID, slot)
}

// childInSlot returns the index of the child of parentID occupying slot.
func (c *genContext) childInSlot(parentID, slot string) (int, bool) {
	for i := range c.items {
		if c.items[i].ParentID == parentID && c.items[i].SlotID == slot {
			return i, true
		}
	}
	return -1, false
}

// blacklisted reports whether the role forbids tplID.
func (c *genContext) blacklisted(tplID string) bool {
	return len(c.role.Blacklist) > 0 && c.catalog.IsOfAnyBaseClass(tplID, c.role.Blacklist)
}

// allowedPool filters blacklisted candidates out of a weighted pool.
func (c *genContext) allowedPool(pool data.SlotPool) data.SlotPool {
	if len(c.role.Blacklist) == 0 {
		return pool
	}
	out := make(data.SlotPool, 0, len(pool))
	for _, cand := range pool {
		if !c.blacklisted(cand.ID) {
			out = append(out, cand)
		}
	}
	return out
}

// record folds a slot result into the report and logs its issue.
func (c *genContext) record(res slotResult) {
	if res.status != statusSkipped {
		return
	}
	is := res.issue
	c.report.Issues = append(c.report.Issues, is)

	attrs := []any{
		"role", c.role.Role,
		"slot", is.Slot,
		"parent", is.ParentTemplate,
		"template", is.Template,
		"reason", is.Reason,
	}
	switch is.Kind {
	case IssueExhausted:
		c.logger.Error("required slot left empty", attrs...)
	case IssuePackingFailure:
		c.logger.Debug("item dropped, no container space", attrs...)
	case IssueFilterMismatch:
		c.logger.Warn("candidate rejected by slot filter", attrs...)
	default:
		c.logger.Warn("configuration error, slot skipped", attrs...)
	}
}
