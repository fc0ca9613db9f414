package loadout

import (
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// EffectiveSize returns the bounding box of tree[0] with everything attached to it.
//
// tree[0] is the measured item, the rest are its descendants. Per direction the box
// grows by the largest non-forced extra size among descendants plus the sum of all
// forced extra sizes. A folded root shrinks by its SizeReduceRight.
func EffectiveSize(catalog *data.Catalog, tree []model.Item) (int, int) {
	if len(tree) == 0 {
		return 0, 0
	}
	root, ok := catalog.Template(tree[0].TemplateID)
	if !ok {
		return 1, 1
	}

	var up, down, left, right int
	var forcedUp, forcedDown, forcedLeft, forcedRight int

	for i := 1; i < len(tree); i++ {
		tpl, ok := catalog.Template(tree[i].TemplateID)
		if !ok {
			continue
		}
		es := tpl.ExtraSize
		if es.ForceAdd {
			forcedUp += es.Up
			forcedDown += es.Down
			forcedLeft += es.Left
			forcedRight += es.Right
			continue
		}
		up = max(up, es.Up)
		down = max(down, es.Down)
		left = max(left, es.Left)
		right = max(right, es.Right)
	}

	w := root.Width + left + right + forcedLeft + forcedRight
	h := root.Height + up + down + forcedUp + forcedDown

	if tree[0].IsFolded() {
		w -= root.SizeReduceRight
	}
	return max(w, 1), max(h, 1)
}
