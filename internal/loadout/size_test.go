package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

func TestEffectiveSize(t *testing.T) {
	c, err := data.NewCatalog([]*model.ItemTemplate{
		{ID: "gun", Width: 3, Height: 1, SizeReduceRight: 1},
		{ID: "mag", Width: 1, Height: 2, ExtraSize: model.ExtraSize{Down: 1}},
		{ID: "long_mag", Width: 1, Height: 3, ExtraSize: model.ExtraSize{Down: 2}},
		{ID: "stock", ExtraSize: model.ExtraSize{Right: 1}},
		{ID: "silencer", ExtraSize: model.ExtraSize{Left: 1, ForceAdd: true}},
		{ID: "barrel", ExtraSize: model.ExtraSize{Left: 1, ForceAdd: true}},
	})
	require.NoError(t, err)

	folded := true
	unfolded := false

	tests := []struct {
		name  string
		tree  []model.Item
		wantW int
		wantH int
	}{
		{
			name:  "bare",
			tree:  []model.Item{{ID: "g", TemplateID: "gun"}},
			wantW: 3, wantH: 1,
		},
		{
			name: "largest non-forced extra wins per direction",
			tree: []model.Item{
				{ID: "g", TemplateID: "gun"},
				{ID: "m", TemplateID: "mag", ParentID: "g"},
				{ID: "l", TemplateID: "long_mag", ParentID: "g"},
				{ID: "s", TemplateID: "stock", ParentID: "g"},
			},
			wantW: 4, wantH: 3,
		},
		{
			name: "forced extras add up",
			tree: []model.Item{
				{ID: "g", TemplateID: "gun"},
				{ID: "s1", TemplateID: "silencer", ParentID: "g"},
				{ID: "b1", TemplateID: "barrel", ParentID: "g"},
			},
			wantW: 5, wantH: 1,
		},
		{
			name: "folded shrinks right",
			tree: []model.Item{
				{ID: "g", TemplateID: "gun", Props: &model.Props{Folded: &folded}},
				{ID: "s", TemplateID: "stock", ParentID: "g"},
			},
			wantW: 3, wantH: 1,
		},
		{
			name: "unfolded keeps size",
			tree: []model.Item{
				{ID: "g", TemplateID: "gun", Props: &model.Props{Folded: &unfolded}},
				{ID: "s", TemplateID: "stock", ParentID: "g"},
			},
			wantW: 4, wantH: 1,
		},
		{
			name:  "unknown root counts as one cell",
			tree:  []model.Item{{ID: "x", TemplateID: "ghost"}},
			wantW: 1, wantH: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := EffectiveSize(c, tt.tree)
			assert.Equal(t, tt.wantW, w, "width")
			assert.Equal(t, tt.wantH, h, "height")
		})
	}
}

func TestSubtree(t *testing.T) {
	items := []model.Item{
		{ID: "root"},
		{ID: "a", ParentID: "root"},
		{ID: "b", ParentID: "root"},
		{ID: "a1", ParentID: "a"},
		{ID: "b1", ParentID: "b"},
		{ID: "a2", ParentID: "a1"},
	}

	got := Subtree(items, 1)
	ids := make([]string, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"a", "a1", "a2"}, ids)
}
