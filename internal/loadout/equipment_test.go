package loadout

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/botloadout/internal/data"
)

func TestGenerate_WeaponGuarantee(t *testing.T) {
	gen, _ := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()

	var withoutPrimary, withSecondary int
	for seed := range uint64(300) {
		res := generate(t, gen, role, seed)

		_, primary := equippedIn(res, data.SlotFirstPrimaryWeapon)
		_, secondary := equippedIn(res, data.SlotSecondPrimaryWeapon)
		_, holster := equippedIn(res, data.SlotHolster)

		if !primary {
			withoutPrimary++
			assert.True(t, holster, "seed %d: holster forced when primary failed", seed)
			assert.False(t, secondary, "seed %d: secondary without primary", seed)
		}
		if secondary {
			withSecondary++
		}
	}

	assert.NotZero(t, withoutPrimary, "primary roll must fail for some seeds")
	assert.NotZero(t, withSecondary)
}

func TestGenerate_HolsterRollsWhenPrimarySpawned(t *testing.T) {
	gen, _ := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()
	role.Chances.Equipment[data.SlotFirstPrimaryWeapon] = 100
	role.Chances.Equipment[data.SlotHolster] = 0

	for seed := range uint64(50) {
		res := generate(t, gen, role, seed)
		_, holster := equippedIn(res, data.SlotHolster)
		assert.False(t, holster, "seed %d", seed)
	}
}

func TestGenerate_ArmorVestAfterTacticalVest(t *testing.T) {
	gen, _ := newTestGenerator(t, data.FixtureCatalog())

	// Root template lists ArmorVest before TacticalVest; the rig block must still apply.
	role := data.FixtureRole()
	role.Equipment[data.SlotTacticalVest] = data.SlotPool{{ID: data.FixturePlateRig, Weight: 1}}
	role.Chances.Equipment[data.SlotTacticalVest] = 100
	role.Chances.Equipment[data.SlotArmorVest] = 100

	for seed := range uint64(50) {
		res := generate(t, gen, role, seed)
		rig, ok := equippedIn(res, data.SlotTacticalVest)
		require.True(t, ok)
		assert.Equal(t, data.FixturePlateRig, rig.TemplateID)

		_, armor := equippedIn(res, data.SlotArmorVest)
		assert.False(t, armor, "seed %d: armor spawned under a plate carrier", seed)
		for _, is := range res.Report.Issues {
			assert.NotEqual(t, data.SlotArmorVest, is.Slot, "silent rejection is not an issue")
		}
	}

	role.Equipment[data.SlotTacticalVest] = data.SlotPool{{ID: data.FixtureRig, Weight: 1}}
	res := generate(t, gen, role, 1)
	armor, ok := equippedIn(res, data.SlotArmorVest)
	require.True(t, ok)
	assert.Equal(t, data.FixtureArmor, armor.TemplateID)
}

func TestGenerate_MissingChanceIsConfigurationIssue(t *testing.T) {
	gen, sink := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()
	delete(role.Chances.Equipment, data.SlotHeadwear)

	res := generate(t, gen, role, 9)

	_, helmet := equippedIn(res, data.SlotHeadwear)
	assert.False(t, helmet)

	var found bool
	for _, is := range res.Report.Of(IssueConfiguration) {
		if is.Slot == data.SlotHeadwear {
			found = true
		}
	}
	assert.True(t, found)
	assert.Positive(t, sink.count(slog.LevelWarn))
}

func TestGenerate_EmptyOptionalPoolIsSilent(t *testing.T) {
	gen, sink := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()
	delete(role.Equipment, data.SlotBackpack)
	delete(role.Chances.Equipment, data.SlotBackpack)
	role.Limits.Loot = nil

	res := generate(t, gen, role, 4)

	_, backpack := equippedIn(res, data.SlotBackpack)
	assert.False(t, backpack)
	for _, is := range res.Report.Issues {
		assert.NotEqual(t, data.SlotBackpack, is.Slot)
	}
	assert.Zero(t, sink.count(slog.LevelError))
}

func TestGenerate_EmptyRequiredPoolIsReported(t *testing.T) {
	gen, _ := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()
	delete(role.Equipment, data.SlotPockets)
	role.Limits.Loot = nil

	res := generate(t, gen, role, 4)

	_, pockets := equippedIn(res, data.SlotPockets)
	assert.False(t, pockets)

	var reported bool
	for _, is := range res.Report.Of(IssueConfiguration) {
		if is.Slot == data.SlotPockets {
			reported = true
		}
	}
	assert.True(t, reported)
}

func TestGenerate_Blacklist(t *testing.T) {
	gen, _ := newTestGenerator(t, data.FixtureCatalog())
	role := data.FixtureRole()
	role.Blacklist = []string{"Meds", data.FixtureRevolver}
	role.Chances.Equipment[data.SlotFirstPrimaryWeapon] = 0
	role.Limits.Loot[0].Count = data.CountRange{Min: 2, Max: 2}

	for seed := range uint64(30) {
		res := generate(t, gen, role, seed)

		assert.Zero(t, countTemplate(res.Items, data.FixtureMedkit), "seed %d: blacklisted base class", seed)

		holster, ok := equippedIn(res, data.SlotHolster)
		require.True(t, ok)
		assert.Equal(t, data.FixturePistol, holster.TemplateID, "seed %d: blacklisted template", seed)
	}
}
