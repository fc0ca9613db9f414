package data

import (
	"fmt"

	"github.com/udisondev/botloadout/internal/model"
)

// Fixture template ids, shared by tests of the packages built on top of data.
const (
	FixtureRoot        = "default_inventory"
	FixtureRifle       = "rifle_ak"
	FixtureRifleMag    = "mag_ak_30"
	FixtureRifleAmmo   = "ammo_545"
	FixtureStock       = "stock_ak"
	FixturePistol      = "pistol_pm"
	FixturePistolMag   = "mag_pm_8"
	FixturePistolAmmo  = "ammo_9x18"
	FixtureRevolver    = "revolver_rsh"
	FixtureCylinder    = "cylinder_rsh_6"
	FixtureMagnum      = "ammo_127x55"
	FixtureHelmet      = "helmet_6b47"
	FixtureHelmetLight = "light_helmet"
	FixtureArmor       = "armor_paca"
	FixtureRig         = "rig_alpha"
	FixturePlateRig    = "rig_plate_carrier"
	FixtureBackpack    = "backpack_mbss"
	FixturePockets     = "pockets"
	FixtureSecure      = "secure_alpha"
	FixtureMedkit      = "medkit_ai2"
)

// FixtureCatalog builds a small but complete catalog: three weapon families
// (box magazine, pistol, cylinder), armor, rigs with and without an armor block,
// containers and loot. Intended for tests from other packages.
func FixtureCatalog() *Catalog {
	c, err := NewCatalog(FixtureTemplates())
	if err != nil {
		panic(err)
	}
	return c
}

// FixtureTemplates returns fresh copies of the fixture templates.
func FixtureTemplates() []*model.ItemTemplate {
	anySlot := func(name string, required bool) model.SlotDescriptor {
		return model.SlotDescriptor{Name: name, Required: required, AcceptsAny: true}
	}
	camoras := make([]model.SlotDescriptor, 6)
	for i := range camoras {
		camoras[i] = model.SlotDescriptor{
			Name:   fmt.Sprintf("camora_%03d", i),
			Kind:   model.SlotKindChamber,
			Filter: []string{FixtureMagnum},
		}
	}

	return []*model.ItemTemplate{
		// Base classes
		{ID: "Item"},
		{ID: "Weapon", ParentID: "Item"},
		{ID: "Magazine", ParentID: "Item"},
		{ID: BaseClassCylinderMagazine, ParentID: "Magazine"},
		{ID: BaseClassAmmo, ParentID: "Item"},
		{ID: "Mod", ParentID: "Item"},
		{ID: "Equipment", ParentID: "Item"},
		{ID: "Headwear", ParentID: "Equipment"},
		{ID: "Armor", ParentID: "Equipment"},
		{ID: "Rig", ParentID: "Equipment"},
		{ID: "Container", ParentID: "Item"},
		{ID: "Meds", ParentID: "Item"},

		{
			ID: FixtureRoot, Name: "Default Inventory", ParentID: "Item",
			Slots: []model.SlotDescriptor{
				anySlot(SlotFirstPrimaryWeapon, false),
				anySlot(SlotSecondPrimaryWeapon, false),
				anySlot(SlotHolster, false),
				anySlot(SlotHeadwear, false),
				anySlot(SlotArmorVest, false),
				anySlot(SlotTacticalVest, false),
				anySlot(SlotBackpack, false),
				anySlot(SlotPockets, true),
				anySlot(SlotSecuredContainer, true),
			},
		},

		// Rifle: magazine grows the footprint down, stock grows it right
		{
			ID: FixtureRifle, Name: "AK", ParentID: "Weapon",
			Width: 4, Height: 1, MaxDurability: 100,
			FireModes: []string{"single", "fullauto"},
			Foldable:  true, SizeReduceRight: 1,
			Slots: []model.SlotDescriptor{
				{Name: ModSlotMagazine, Required: true, Filter: []string{FixtureRifleMag}},
				{Name: "mod_stock", Filter: []string{FixtureStock}},
			},
			Chambers: []model.SlotDescriptor{
				{Name: ModSlotChamber, Kind: model.SlotKindChamber, Filter: []string{FixtureRifleAmmo}},
			},
		},
		{
			ID: FixtureRifleMag, Name: "AK 30-round magazine", ParentID: "Magazine",
			Width: 1, Height: 2,
			ExtraSize: model.ExtraSize{Down: 1},
			Cartridges: []model.SlotDescriptor{
				{Name: ModSlotCartridges, Kind: model.SlotKindCartridges, MaxCount: 30, Filter: []string{FixtureRifleAmmo}},
			},
		},
		{ID: FixtureRifleAmmo, Name: "5.45x39", ParentID: BaseClassAmmo, Width: 1, Height: 1, MaxStack: 60, SpawnWeight: 10},
		{ID: FixtureStock, Name: "AK stock", ParentID: "Mod", Width: 1, Height: 1, ExtraSize: model.ExtraSize{Right: 1}},

		// Pistol
		{
			ID: FixturePistol, Name: "PM", ParentID: "Weapon",
			Width: 2, Height: 1, MaxDurability: 100,
			FireModes: []string{"single"},
			Slots: []model.SlotDescriptor{
				{Name: ModSlotMagazine, Required: true, Filter: []string{FixturePistolMag}},
			},
			Chambers: []model.SlotDescriptor{
				{Name: ModSlotChamber, Kind: model.SlotKindChamber, Filter: []string{FixturePistolAmmo}},
			},
		},
		{
			ID: FixturePistolMag, Name: "PM 8-round magazine", ParentID: "Magazine",
			Width: 1, Height: 1,
			Cartridges: []model.SlotDescriptor{
				{Name: ModSlotCartridges, Kind: model.SlotKindCartridges, MaxCount: 8, Filter: []string{FixturePistolAmmo}},
			},
		},
		{ID: FixturePistolAmmo, Name: "9x18", ParentID: BaseClassAmmo, Width: 1, Height: 1, MaxStack: 50},

		// Revolver with a six-chamber cylinder
		{
			ID: FixtureRevolver, Name: "RSh-12", ParentID: "Weapon",
			Width: 2, Height: 1, MaxDurability: 100,
			Slots: []model.SlotDescriptor{
				{Name: ModSlotMagazine, Required: true, Filter: []string{FixtureCylinder}},
			},
		},
		{ID: FixtureCylinder, Name: "RSh-12 cylinder", ParentID: BaseClassCylinderMagazine, Width: 1, Height: 1, Chambers: camoras},
		{ID: FixtureMagnum, Name: "12.7x55", ParentID: BaseClassAmmo, Width: 1, Height: 1, MaxStack: 30},

		// Gear
		{
			ID: FixtureHelmet, Name: "6B47", ParentID: "Headwear",
			Width: 2, Height: 2, MaxDurability: 45,
			Slots: []model.SlotDescriptor{{Name: "mod_equipment", Filter: []string{FixtureHelmetLight}}},
		},
		{ID: FixtureHelmetLight, Name: "Helmet light", ParentID: "Mod", Width: 1, Height: 1, Togglable: true},
		{ID: FixtureArmor, Name: "PACA", ParentID: "Armor", Width: 3, Height: 3, MaxDurability: 50},
		{
			ID: FixtureRig, Name: "Alpha rig", ParentID: "Rig", Width: 2, Height: 2,
			Grids: []model.Grid{
				{Name: "1", Width: 1, Height: 3},
				{Name: "2", Width: 1, Height: 3},
			},
		},
		{
			ID: FixturePlateRig, Name: "Plate carrier", ParentID: "Rig", Width: 3, Height: 3,
			MaxDurability: 60,
			Blocks:        []string{SlotArmorVest},
			Grids: []model.Grid{
				{Name: "1", Width: 1, Height: 3},
			},
		},
		{
			ID: FixtureBackpack, Name: "MBSS", ParentID: "Container", Width: 4, Height: 4,
			Grids: []model.Grid{{Name: "main", Width: 4, Height: 4}},
		},
		{
			ID: FixturePockets, Name: "Pockets", ParentID: "Container",
			Grids: []model.Grid{
				{Name: "pocket1", Width: 1, Height: 1},
				{Name: "pocket2", Width: 1, Height: 1},
				{Name: "pocket3", Width: 1, Height: 1},
				{Name: "pocket4", Width: 1, Height: 1},
			},
		},
		{
			ID: FixtureSecure, Name: "Secure container Alpha", ParentID: "Container", Width: 2, Height: 2,
			Grids: []model.Grid{{Name: "main", Width: 2, Height: 2, Filter: []string{BaseClassAmmo, "Meds"}}},
		},
		{ID: FixtureMedkit, Name: "AI-2", ParentID: "Meds", Width: 1, Height: 1, MaxResource: 100},
	}
}

// FixtureRole returns a fresh "assault" role over FixtureCatalog.
func FixtureRole() *RoleInventory {
	return &RoleInventory{
		Role:         "assault",
		RootTemplate: FixtureRoot,
		Equipment: map[string]SlotPool{
			SlotFirstPrimaryWeapon:  {{ID: FixtureRifle, Weight: 1}},
			SlotSecondPrimaryWeapon: {{ID: FixtureRifle, Weight: 1}},
			SlotHolster:             {{ID: FixturePistol, Weight: 1}, {ID: FixtureRevolver, Weight: 1}},
			SlotHeadwear:            {{ID: FixtureHelmet, Weight: 1}},
			SlotArmorVest:           {{ID: FixtureArmor, Weight: 1}},
			SlotTacticalVest:        {{ID: FixtureRig, Weight: 3}, {ID: FixturePlateRig, Weight: 1}},
			SlotBackpack:            {{ID: FixtureBackpack, Weight: 1}},
			SlotPockets:             {{ID: FixturePockets, Weight: 1}},
			SlotSecuredContainer:    {{ID: FixtureSecure, Weight: 1}},
		},
		Mods: map[string]ModPool{
			FixtureRifle: {
				ModSlotMagazine: {FixtureRifleMag},
				"mod_stock":     {FixtureStock},
				ModSlotChamber:  {FixtureRifleAmmo},
			},
			FixtureRifleMag:  {ModSlotCartridges: {FixtureRifleAmmo}},
			FixturePistol:    {ModSlotMagazine: {FixturePistolMag}, ModSlotChamber: {FixturePistolAmmo}},
			FixturePistolMag: {ModSlotCartridges: {FixturePistolAmmo}},
			FixtureRevolver:  {ModSlotMagazine: {FixtureCylinder}},
			FixtureCylinder: {
				"camora_000": {FixtureMagnum},
				"camora_001": {FixtureMagnum},
			},
			FixtureHelmet: {"mod_equipment": {FixtureHelmetLight}},
		},
		Chances: SpawnChances{
			Equipment: map[string]int{
				SlotFirstPrimaryWeapon:  60,
				SlotSecondPrimaryWeapon: 20,
				SlotHolster:             40,
				SlotHeadwear:            70,
				SlotArmorVest:           60,
				SlotTacticalVest:        90,
				SlotBackpack:            50,
			},
			Mods: map[string]int{
				"mod_stock":     80,
				"mod_equipment": 50,
			},
		},
		Limits: GenerationLimits{
			Magazines: CountRange{Min: 1, Max: 3},
			LooseAmmo: CountRange{Min: 1, Max: 2},
			Loot: []LootCategory{
				{
					Name:        "meds",
					Count:       CountRange{Min: 0, Max: 2},
					Pool:        SlotPool{{ID: FixtureMedkit, Weight: 1}},
					Containers:  []string{SlotBackpack, SlotSecuredContainer},
					FallThrough: true,
				},
			},
			ToggleOnChance: 50,
		},
		Durability: DefaultDurabilityRange(),
	}
}
