package data

// Top-level equipment slot names of the bot inventory root template.
const (
	SlotFirstPrimaryWeapon  = "FirstPrimaryWeapon"
	SlotSecondPrimaryWeapon = "SecondPrimaryWeapon"
	SlotHolster             = "Holster"
	SlotScabbard            = "Scabbard"
	SlotHeadwear            = "Headwear"
	SlotEarpiece            = "Earpiece"
	SlotFaceCover           = "FaceCover"
	SlotEyewear             = "Eyewear"
	SlotArmorVest           = "ArmorVest"
	SlotTacticalVest        = "TacticalVest"
	SlotBackpack            = "Backpack"
	SlotPockets             = "Pockets"
	SlotSecuredContainer    = "SecuredContainer"
	SlotArmBand             = "ArmBand"
)

// Mod slot names with special handling.
const (
	ModSlotMagazine   = "mod_magazine"
	ModSlotCartridges = "cartridges"
	ModSlotChamber    = "patron_in_weapon"
	ModSlotCamora     = "camora"
)

// Base class ids the engine needs to recognise.
const (
	BaseClassCylinderMagazine = "CylinderMagazine"
	BaseClassAmmo             = "Ammo"
)

// AlwaysSpawnSlots — слоты, которые спавнятся всегда, независимо от таблицы шансов.
var AlwaysSpawnSlots = map[string]bool{
	SlotPockets:          true,
	SlotSecuredContainer: true,
}
