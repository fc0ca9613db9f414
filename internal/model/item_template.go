package model

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ItemTemplate — шаблон предмета из каталога.
// Immutable after the catalog is loaded; every generated Item references one by ID.
type ItemTemplate struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	ParentID string `yaml:"parent" json:"parent,omitempty"` // Base class (node of the type hierarchy)

	// Footprint in grid cells
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// Footprint this item adds to the item it is attached to
	ExtraSize       ExtraSize `yaml:"extra_size" json:"extra_size"`
	SizeReduceRight int       `yaml:"size_reduce_right" json:"size_reduce_right,omitempty"`

	Slots      []SlotDescriptor `yaml:"slots" json:"slots,omitempty"`
	Chambers   []SlotDescriptor `yaml:"chambers" json:"chambers,omitempty"`
	Cartridges []SlotDescriptor `yaml:"cartridges" json:"cartridges,omitempty"`
	Grids      []Grid           `yaml:"grids" json:"grids,omitempty"`

	// Conflicts
	Blocks           []string `yaml:"blocks" json:"blocks,omitempty"` // Slot names this item blocks
	ConflictingItems []string `yaml:"conflicting_items" json:"conflicting_items,omitempty"`

	MaxDurability int      `yaml:"max_durability" json:"max_durability,omitempty"`
	MaxResource   int      `yaml:"max_resource" json:"max_resource,omitempty"`
	MaxStack      int      `yaml:"max_stack" json:"max_stack,omitempty"` // Ammo stack size
	FireModes     []string `yaml:"fire_modes" json:"fire_modes,omitempty"`
	Foldable      bool     `yaml:"foldable" json:"foldable,omitempty"`
	Togglable     bool     `yaml:"togglable" json:"togglable,omitempty"`

	// Relative weight used when a required slot falls back to a catalog scan
	SpawnWeight int `yaml:"spawn_weight" json:"spawn_weight,omitempty"`
}

// ExtraSize — дополнительный размер, который мод добавляет родителю.
type ExtraSize struct {
	Up       int  `yaml:"up" json:"up,omitempty"`
	Down     int  `yaml:"down" json:"down,omitempty"`
	Left     int  `yaml:"left" json:"left,omitempty"`
	Right    int  `yaml:"right" json:"right,omitempty"`
	ForceAdd bool `yaml:"force_add" json:"force_add,omitempty"`
}

// Grid is one spatial sub-container of a template (a rig pouch, a backpack compartment).
// Filter lists template or base-class ids accepted by the grid; empty means anything.
type Grid struct {
	Name   string   `yaml:"name" json:"name"`
	Width  int      `yaml:"width" json:"width"`
	Height int      `yaml:"height" json:"height"`
	Filter []string `yaml:"filter" json:"filter,omitempty"`
}

// SlotKind classifies a named attachment point.
type SlotKind int

const (
	SlotKindGeneric SlotKind = iota
	SlotKindChamber
	SlotKindCartridges
)

// String returns human-readable slot kind name.
func (k SlotKind) String() string {
	switch k {
	case SlotKindGeneric:
		return "Generic"
	case SlotKindChamber:
		return "Chamber"
	case SlotKindCartridges:
		return "Cartridges"
	default:
		return "Unknown"
	}
}

// UnmarshalYAML accepts either the numeric kind or its lower-case name.
func (k *SlotKind) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "", "generic", "slot":
		*k = SlotKindGeneric
	case "chamber":
		*k = SlotKindChamber
	case "cartridges":
		*k = SlotKindCartridges
	default:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("unknown slot kind %q", node.Value)
		}
		if n < int(SlotKindGeneric) || n > int(SlotKindCartridges) {
			return fmt.Errorf("slot kind %d out of range", n)
		}
		*k = SlotKind(n)
	}
	return nil
}

// IsAmmo reports whether the slot holds ammunition. Ammo slots always spawn.
func (k SlotKind) IsAmmo() bool {
	return k == SlotKindChamber || k == SlotKindCartridges
}

// SlotDescriptor — именованный слот шаблона.
type SlotDescriptor struct {
	Name       string   `yaml:"name" json:"name"`
	Kind       SlotKind `yaml:"kind" json:"kind"`
	Required   bool     `yaml:"required" json:"required,omitempty"`
	Filter     []string `yaml:"filter" json:"filter,omitempty"`
	AcceptsAny bool     `yaml:"accepts_any" json:"accepts_any,omitempty"`
	MaxCount   int      `yaml:"max_count" json:"max_count,omitempty"` // Cartridge capacity
}

// Allows reports whether tplID passes the slot's filter.
// An empty filter accepts nothing unless AcceptsAny is set.
func (s *SlotDescriptor) Allows(tplID string) bool {
	if s.AcceptsAny {
		return true
	}
	return slices.Contains(s.Filter, tplID)
}

// Slot returns the generic slot with the given name.
func (t *ItemTemplate) Slot(name string) (*SlotDescriptor, bool) {
	return findSlot(t.Slots, name)
}

// Chamber returns the chamber slot with the given name.
func (t *ItemTemplate) Chamber(name string) (*SlotDescriptor, bool) {
	return findSlot(t.Chambers, name)
}

// CartridgeSlot returns the cartridge stack slot with the given name.
func (t *ItemTemplate) CartridgeSlot(name string) (*SlotDescriptor, bool) {
	return findSlot(t.Cartridges, name)
}

// BlocksSlot reports whether this template blocks the named slot.
func (t *ItemTemplate) BlocksSlot(slot string) bool {
	return slot != "" && slices.Contains(t.Blocks, slot)
}

// ConflictsWith reports whether tplID is listed as conflicting.
func (t *ItemTemplate) ConflictsWith(tplID string) bool {
	return slices.Contains(t.ConflictingItems, tplID)
}

// IsContainer returns true if the template has at least one grid.
func (t *ItemTemplate) IsContainer() bool {
	return len(t.Grids) > 0
}

// NormalizeSlotKinds sets Kind of every chamber and cartridge slot from the list
// it is declared in. The list wins over an explicit or missing kind tag.
func (t *ItemTemplate) NormalizeSlotKinds() {
	for i := range t.Chambers {
		t.Chambers[i].Kind = SlotKindChamber
	}
	for i := range t.Cartridges {
		t.Cartridges[i].Kind = SlotKindCartridges
	}
}

func findSlot(slots []SlotDescriptor, name string) (*SlotDescriptor, bool) {
	for i := range slots {
		if slots[i].Name == name {
			return &slots[i], true
		}
	}
	return nil, false
}
