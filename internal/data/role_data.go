package data

import (
	"fmt"
	"slices"
)

// WeightedID — кандидат пула с относительным весом.
type WeightedID struct {
	ID     string `yaml:"id" json:"id"`
	Weight int    `yaml:"weight" json:"weight"`
}

// SlotPool is a weighted candidate list for one slot.
type SlotPool []WeightedID

// ModPool maps slot name to candidate template ids for one parent template.
type ModPool map[string][]string

// SpawnChances holds percent chances per slot name.
type SpawnChances struct {
	Equipment map[string]int `yaml:"equipment" json:"equipment"`
	Mods      map[string]int `yaml:"mods" json:"mods"`
}

// EquipmentChance returns the chance for a top-level slot.
// Pockets and SecuredContainer are always 100.
func (s SpawnChances) EquipmentChance(slot string) (int, bool) {
	if AlwaysSpawnSlots[slot] {
		return 100, true
	}
	chance, ok := s.Equipment[slot]
	return chance, ok
}

// ModChance returns the chance for a mod slot.
func (s SpawnChances) ModChance(slot string) (int, bool) {
	chance, ok := s.Mods[slot]
	return chance, ok
}

// CountRange is an inclusive [Min, Max] bound.
type CountRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// LootCategory describes an optional sub-collection packed into containers.
type LootCategory struct {
	Name        string     `yaml:"name" json:"name"`
	Count       CountRange `yaml:"count" json:"count"`
	Pool        SlotPool   `yaml:"pool" json:"pool"`
	Containers  []string   `yaml:"containers" json:"containers"`
	FallThrough bool       `yaml:"fall_through" json:"fall_through"`
}

// GenerationLimits bounds the optional sub-collections of a loadout.
type GenerationLimits struct {
	Magazines      CountRange     `yaml:"magazines" json:"magazines"`
	LooseAmmo      CountRange     `yaml:"loose_ammo" json:"loose_ammo"`
	Loot           []LootCategory `yaml:"loot" json:"loot"`
	ToggleOnChance int            `yaml:"toggle_on_chance" json:"toggle_on_chance"`
	FoldedChance   int            `yaml:"folded_chance" json:"folded_chance"` // Foldable stocks start folded
	MaxModDepth    int            `yaml:"max_mod_depth" json:"max_mod_depth"`
}

// DurabilityRange — percent bounds for sampled durability.
// Max is drawn from [MaxMin, MaxMax] percent of template MaxDurability,
// current from [CurrentMin, 100] percent of the drawn max.
type DurabilityRange struct {
	MaxMin     int `yaml:"max_min" json:"max_min"`
	MaxMax     int `yaml:"max_max" json:"max_max"`
	CurrentMin int `yaml:"current_min" json:"current_min"`
}

// DefaultDurabilityRange is used when a role does not declare one.
func DefaultDurabilityRange() DurabilityRange {
	return DurabilityRange{MaxMin: 80, MaxMax: 100, CurrentMin: 70}
}

// RoleInventory — resolved inventory skeleton of one bot role.
type RoleInventory struct {
	Role         string              `yaml:"role" json:"role"`
	RootTemplate string              `yaml:"root_template" json:"root_template"`
	Equipment    map[string]SlotPool `yaml:"equipment" json:"equipment"`
	Mods         map[string]ModPool  `yaml:"mods" json:"mods"`
	Chances      SpawnChances        `yaml:"chances" json:"chances"`
	Limits       GenerationLimits    `yaml:"limits" json:"limits"`
	Durability   DurabilityRange     `yaml:"durability" json:"durability"`
	Blacklist    []string            `yaml:"blacklist" json:"blacklist,omitempty"` // Template or base-class ids
}

// ModPoolFor returns the mod pool of a template, if any.
func (r *RoleInventory) ModPoolFor(tplID string) (ModPool, bool) {
	pool, ok := r.Mods[tplID]
	return pool, ok && len(pool) > 0
}

// SortedModSlots returns the slot names of a mod pool in sorted order.
func (p ModPool) SortedModSlots() []string {
	slots := make([]string, 0, len(p))
	for slot := range p {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots
}

// Normalize fills defaults and validates the role. Every loader calls it.
func (r *RoleInventory) Normalize() error {
	if r.Durability == (DurabilityRange{}) {
		r.Durability = DefaultDurabilityRange()
	}
	return r.Validate()
}

// Validate checks structural invariants of a role inventory.
func (r *RoleInventory) Validate() error {
	if r.Role == "" {
		return fmt.Errorf("role name is empty")
	}
	if r.RootTemplate == "" {
		return fmt.Errorf("role %s: root template is empty", r.Role)
	}
	for slot, chance := range r.Chances.Equipment {
		if chance < 0 || chance > 100 {
			return fmt.Errorf("role %s: equipment chance %s=%d out of range", r.Role, slot, chance)
		}
	}
	for slot, chance := range r.Chances.Mods {
		if chance < 0 || chance > 100 {
			return fmt.Errorf("role %s: mod chance %s=%d out of range", r.Role, slot, chance)
		}
	}
	for _, lc := range r.Limits.Loot {
		if lc.Count.Min > lc.Count.Max {
			return fmt.Errorf("role %s: loot %s min %d > max %d", r.Role, lc.Name, lc.Count.Min, lc.Count.Max)
		}
	}
	if r.Limits.Magazines.Min > r.Limits.Magazines.Max {
		return fmt.Errorf("role %s: magazines min > max", r.Role)
	}
	if r.Limits.LooseAmmo.Min > r.Limits.LooseAmmo.Max {
		return fmt.Errorf("role %s: loose ammo min > max", r.Role)
	}
	return nil
}
