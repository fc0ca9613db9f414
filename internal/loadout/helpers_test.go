package loadout

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// logSink captures generator logs for assertions.
type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *logSink) count(level slog.Level) int {
	return strings.Count(s.buf.String(), "level="+level.String())
}

func newTestGenerator(t *testing.T, catalog *data.Catalog, opts ...Option) (*Generator, *logSink) {
	t.Helper()
	sink := &logSink{}
	opts = append([]Option{WithLogger(sink.logger())}, opts...)
	return NewGenerator(catalog, opts...), sink
}

func generate(t *testing.T, gen *Generator, role *data.RoleInventory, seed uint64) *Result {
	t.Helper()
	res, err := gen.Generate(Request{Role: role, Seed: seed})
	require.NoError(t, err)
	require.NotEmpty(t, res.Items)
	return res
}

// children returns items directly under parentID, optionally filtered by slot.
func children(items []model.Item, parentID, slot string) []model.Item {
	var out []model.Item
	for _, it := range items {
		if it.ParentID == parentID && (slot == "" || it.SlotID == slot) {
			out = append(out, it)
		}
	}
	return out
}

func equippedIn(res *Result, slot string) (model.Item, bool) {
	got := children(res.Items, res.RootID, slot)
	if len(got) == 0 {
		return model.Item{}, false
	}
	return got[0], true
}

func countTemplate(items []model.Item, tplID string) int {
	n := 0
	for _, it := range items {
		if it.TemplateID == tplID {
			n++
		}
	}
	return n
}

// assertForest checks that items form a single tree under the root,
// listed parent-before-child, with unique ids.
func assertForest(t *testing.T, res *Result) {
	t.Helper()
	seen := make(map[string]bool, len(res.Items))
	for i, it := range res.Items {
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		if i == 0 {
			assert.Equal(t, res.RootID, it.ID)
			assert.Empty(t, it.ParentID)
		} else {
			assert.True(t, seen[it.ParentID], "item %s (%s) listed before its parent %q", it.ID, it.TemplateID, it.ParentID)
			assert.NotEmpty(t, it.SlotID, "item %s has no slot", it.ID)
		}
		seen[it.ID] = true
	}
}

// assertPacking checks that every container grid holds non-overlapping,
// in-bounds placements.
func assertPacking(t *testing.T, catalog *data.Catalog, items []model.Item) {
	t.Helper()
	for _, container := range items {
		tpl, ok := catalog.Template(container.TemplateID)
		if !ok || !tpl.IsContainer() {
			continue
		}
		for _, grid := range tpl.Grids {
			occ := NewOccupancyGrid(grid.Width, grid.Height)
			for _, r := range Placements(catalog, items, container.ID, grid.Name) {
				assert.True(t, occ.Fits(r.X, r.Y, r.W, r.H),
					"%s/%s: rect %+v overlaps or leaves %dx%d grid", tpl.ID, grid.Name, r, grid.Width, grid.Height)
				occ.Mark(r)
			}
		}
	}
}

// assertSiblingsCompatible checks that no accepted item conflicts with its siblings.
func assertSiblingsCompatible(t *testing.T, catalog *data.Catalog, items []model.Item) {
	t.Helper()
	for i, it := range items {
		if it.ParentID == "" {
			continue
		}
		var siblings []model.Item
		for j, other := range items {
			if j != i && other.ParentID == it.ParentID {
				siblings = append(siblings, other)
			}
		}
		assert.True(t, Compatible(catalog, siblings, it.TemplateID, it.SlotID),
			"%s in slot %s conflicts with a sibling", it.TemplateID, it.SlotID)
	}
}
