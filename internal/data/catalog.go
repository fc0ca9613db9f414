package data

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/botloadout/internal/model"
)

// Catalog — read-only registry of item templates keyed by template ID.
//
// Built once before generation starts and shared by every generation
// running in parallel. Nothing mutates a Catalog after NewCatalog returns.
type Catalog struct {
	templates map[string]*model.ItemTemplate
	ids       []string // sorted, for deterministic scans
}

// NewCatalog builds a Catalog from templates. Duplicate IDs are rejected.
// Chamber and cartridge slot kinds are normalised in place.
func NewCatalog(templates []*model.ItemTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[string]*model.ItemTemplate, len(templates)),
		ids:       make([]string, 0, len(templates)),
	}

	for _, tpl := range templates {
		if tpl == nil || tpl.ID == "" {
			return nil, fmt.Errorf("template without id")
		}
		if _, exists := c.templates[tpl.ID]; exists {
			return nil, fmt.Errorf("duplicate template %q", tpl.ID)
		}
		tpl.NormalizeSlotKinds()
		c.templates[tpl.ID] = tpl
		c.ids = append(c.ids, tpl.ID)
	}
	slices.Sort(c.ids)

	slog.Debug("catalog built", "templates", len(c.ids))
	return c, nil
}

// Template returns the template by ID.
func (c *Catalog) Template(id string) (*model.ItemTemplate, bool) {
	tpl, ok := c.templates[id]
	return tpl, ok
}

// Len returns number of templates.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs returns all template ids in sorted order. The slice must not be modified.
func (c *Catalog) IDs() []string {
	return c.ids
}

// Templates returns all templates in ID order.
func (c *Catalog) Templates() []*model.ItemTemplate {
	out := make([]*model.ItemTemplate, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.templates[id])
	}
	return out
}

// IsOfBaseClass reports whether id equals base or has base somewhere in its parent chain.
// A cyclic parent chain terminates after visiting every template once.
func (c *Catalog) IsOfBaseClass(id, base string) bool {
	seen := 0
	for id != "" && seen <= len(c.ids) {
		if id == base {
			return true
		}
		tpl, ok := c.templates[id]
		if !ok {
			return false
		}
		id = tpl.ParentID
		seen++
	}
	return false
}

// IsOfAnyBaseClass reports whether id descends from any of bases.
func (c *Catalog) IsOfAnyBaseClass(id string, bases []string) bool {
	for _, base := range bases {
		if c.IsOfBaseClass(id, base) {
			return true
		}
	}
	return false
}

// SortBySpawnWeight returns ids ordered by descending SpawnWeight, then by ID.
// Unknown ids are dropped.
func (c *Catalog) SortBySpawnWeight(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := c.templates[id]; ok && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		if w := cmp.Compare(c.templates[b].SpawnWeight, c.templates[a].SpawnWeight); w != 0 {
			return w
		}
		return cmp.Compare(a, b)
	})
	return out
}

// ValidationIssue describes a dangling reference found by Validate.
type ValidationIssue struct {
	Template string
	Field    string
	Ref      string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s references unknown %q", v.Template, v.Field, v.Ref)
}

// Validate reports parent ids and slot filter entries that point at missing templates.
// Dangling references are tolerated by the generator; Validate exists for import tooling.
func (c *Catalog) Validate() []ValidationIssue {
	var issues []ValidationIssue
	for _, id := range c.ids {
		tpl := c.templates[id]
		if tpl.ParentID != "" {
			if _, ok := c.templates[tpl.ParentID]; !ok {
				issues = append(issues, ValidationIssue{Template: id, Field: "parent", Ref: tpl.ParentID})
			}
		}
		for _, group := range [][]model.SlotDescriptor{tpl.Slots, tpl.Chambers, tpl.Cartridges} {
			for _, slot := range group {
				for _, ref := range slot.Filter {
					if _, ok := c.templates[ref]; !ok {
						issues = append(issues, ValidationIssue{Template: id, Field: "slot " + slot.Name, Ref: ref})
					}
				}
			}
		}
	}
	return issues
}
