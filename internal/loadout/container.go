package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// placeInContainers seats the detached item at idx (with its subtree) into the first
// equipped container from containers that has room.
//
// With fallThrough the containers are tried in priority order; without it only the
// first one is tried. Grids of one container are always tried in declared order.
// On failure the item is left detached and a packing failure is recorded; the caller
// decides whether to drop it.
func (c *genContext) placeInContainers(idx int, containers []string, fallThrough bool) bool {
	it := c.items[idx]
	w, h := EffectiveSize(c.catalog, c.subtreeItems(idx))

	for i, slot := range containers {
		if i > 0 && !fallThrough {
			break
		}

		containerIdx, ok := c.equipped(slot)
		if !ok {
			continue
		}
		if c.placeInto(idx, containerIdx, w, h) {
			return true
		}
	}

	c.record(skipped(Issue{
		Kind:     IssuePackingFailure,
		Slot:     firstOr(containers, ""),
		Template: it.TemplateID,
		Reason:   "no free space in containers",
	}))
	return false
}

// placeInto tries every grid of the container at containerIdx.
func (c *genContext) placeInto(idx, containerIdx, w, h int) bool {
	container := c.items[containerIdx]
	tpl, ok := c.catalog.Template(container.TemplateID)
	if !ok || !tpl.IsContainer() {
		return false
	}

	tplID := c.items[idx].TemplateID
	for gi := range tpl.Grids {
		grid := &tpl.Grids[gi]
		if len(grid.Filter) > 0 && !c.catalog.IsOfAnyBaseClass(tplID, grid.Filter) {
			continue
		}

		loc, ok := FindPlacement(grid.Width, grid.Height, c.occupiedRects(container.ID, grid.Name), w, h)
		if !ok {
			continue
		}

		c.items[idx].ParentID = container.ID
		c.items[idx].SlotID = grid.Name
		c.items[idx].Location = &loc
		return true
	}
	return false
}

// occupiedRects collects the rectangles of items already placed in one grid.
func (c *genContext) occupiedRects(containerID, grid string) []Rect {
	return Placements(c.catalog, c.items, containerID, grid)
}

// Placements returns the rectangles covered by every item placed in one container grid.
func Placements(catalog *data.Catalog, items []model.Item, containerID, grid string) []Rect {
	var rects []Rect
	for i := range items {
		it := &items[i]
		if it.ParentID != containerID || it.SlotID != grid || it.Location == nil {
			continue
		}
		w, h := EffectiveSize(catalog, Subtree(items, i))
		rects = append(rects, RectFor(*it.Location, w, h))
	}
	return rects
}

func firstOr(s []string, def string) string {
	if len(s) == 0 {
		return def
	}
	return s[0]
}
