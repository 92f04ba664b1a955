package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
)

type orcKit struct {
	club  *possession.Weapon
	mail  *possession.Armor
	purse *possession.Purse
}

// slainOrc returns a dead orc carrying a club, chainmail and a purse of 25 ducats.
func slainOrc(t *testing.T, reg *possession.Registry) (*entity.Entity, orcKit) {
	t.Helper()
	orc, kit := armedOrc(t, reg)
	orc.Die()
	return orc, kit
}

func armedOrc(t *testing.T, reg *possession.Registry) (*entity.Entity, orcKit) {
	t.Helper()
	orc := entity.NewMonster("Orc", 30, 10, 5, 5)
	kit := orcKit{
		club:  possession.NewWeapon(reg, 0, 1500, 8),
		mail:  possession.NewArmor(reg, 0, 8000, 4, 10, 200),
		purse: possession.NewPurse(reg, 0, 100, 100, 25),
	}
	require.NoError(t, orc.Pickup(kit.club, domain.AnchorLimbs))
	require.NoError(t, orc.Pickup(kit.mail, domain.AnchorTorso))
	require.NoError(t, orc.Pickup(kit.purse, domain.AnchorWaist))
	return orc, kit
}

func assertEmpty(t *testing.T, e *entity.Entity) {
	t.Helper()
	for _, a := range e.Anchors() {
		p, err := e.PossessionAt(a)
		require.NoError(t, err)
		assert.Nil(t, p, "anchor %s", a)
	}
}

func TestLoot_Greedy(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	r, obs := newTestResolver(Config{})

	report, err := r.Loot(hero, orc, GreedyLoot)
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, 3, report.Count(LootTaken))

	// The club has no limbs to go to, armor and purse keep their anchors
	assert.Equal(t, domain.AnchorLimbs, report.Entries[0].From)
	assert.Equal(t, domain.AnchorPrimaryHand, report.Entries[0].To)
	assert.Equal(t, domain.AnchorTorso, report.Entries[1].To)
	assert.Equal(t, domain.AnchorWaist, report.Entries[2].To)

	assert.Equal(t, possession.Holder(hero), kit.club.Holder())
	assert.Equal(t, possession.Holder(hero), kit.mail.Holder())
	assert.Equal(t, possession.Holder(hero), kit.purse.Holder())
	assert.Equal(t, 1500+8000+100+25*possession.UnitWeight, hero.TotalWeight())
	assert.Equal(t, 14, hero.Protection())
	assertEmpty(t, orc)

	assert.Equal(t, 3, obs.loot[LootTaken])
}

func TestLoot_NilChooserIsGreedy(t *testing.T) {
	reg := possession.NewRegistry()
	orc, _ := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(hero, orc, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Count(LootTaken))
}

func TestLoot_GreedySkipsWhatDoesNotFit(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	// 2 kg capacity: the club fits, the chainmail does not
	weakling := entity.NewHero("Frodo", 40, 1)
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(weakling, orc, GreedyLoot)
	require.NoError(t, err)

	assert.Equal(t, LootTaken, report.Entries[0].Outcome)
	assert.Equal(t, LootSkipped, report.Entries[1].Outcome)
	assert.Equal(t, possession.Holder(orc), kit.mail.Holder())
}

func TestLoot_AnchorMap(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	r, obs := newTestResolver(Config{})

	chooser := AnchorMap{
		domain.AnchorLimbs: domain.AnchorOffHand,
		domain.AnchorWaist: domain.AnchorTail,
	}
	report, err := r.Loot(hero, orc, chooser)
	require.NoError(t, err)
	require.Len(t, report.Entries, 3)

	assert.Equal(t, LootTaken, report.Entries[0].Outcome)
	assert.Equal(t, domain.AnchorOffHand, report.Entries[0].To)

	assert.Equal(t, LootSkipped, report.Entries[1].Outcome)
	assert.Equal(t, possession.Holder(orc), kit.mail.Holder())

	assert.Equal(t, LootRefused, report.Entries[2].Outcome)
	assert.ErrorIs(t, report.Entries[2].Err, domain.ErrUnknownAnchor)
	assert.Equal(t, possession.Holder(orc), kit.purse.Holder())

	assert.Equal(t, 1, obs.loot[LootTaken])
	assert.Equal(t, 1, obs.loot[LootSkipped])
	assert.Equal(t, 1, obs.loot[LootRefused])
}

func TestLoot_RefusedWhenTooHeavy(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	weakling := entity.NewHero("Frodo", 40, 1)
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(weakling, orc, AnchorMap{domain.AnchorTorso: domain.AnchorTorso})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(LootRefused))
	assert.Equal(t, 2, report.Count(LootSkipped))
	assert.ErrorIs(t, report.Entries[1].Err, domain.ErrInvalidPlacement)
	assert.Equal(t, possession.Holder(orc), kit.mail.Holder())
}

func TestLoot_Backpack(t *testing.T) {
	reg := possession.NewRegistry()
	troll := entity.NewMonster("Troll", 80, 20, 10, 20)
	pack := possession.NewBackpack(reg, 0, 1000, 20, 5000)
	dagger := possession.NewWeapon(reg, 0, 500, 4)
	require.NoError(t, troll.Pickup(pack, domain.AnchorBack))
	require.NoError(t, pack.Add(dagger))
	troll.Die()

	hero := entity.NewHero("Aragorn", 100, 10)
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(hero, troll, GreedyLoot)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, domain.AnchorBack, report.Entries[0].To)

	// Contents travel with the backpack
	assert.Equal(t, possession.Holder(pack), dagger.Holder())
	assert.Equal(t, possession.Holder(hero), possession.TopHolder(dagger))
	assert.Equal(t, 1500, hero.TotalWeight())
}

func TestLoot_MergePurses(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	own := possession.NewPurse(reg, 0, 100, 100, 10)
	require.NoError(t, hero.Pickup(own, domain.AnchorWaist))
	r, obs := newTestResolver(Config{})

	report, err := r.Loot(hero, orc, MergePurses(nil))
	require.NoError(t, err)
	require.Len(t, report.Entries, 3)

	merged := report.Entries[2]
	assert.Equal(t, LootMerged, merged.Outcome)
	assert.Equal(t, domain.CurrencyAnchor, merged.To)
	assert.Equal(t, 25, merged.Units)
	assert.Same(t, kit.purse, merged.Possession)

	assert.Equal(t, 35, own.Units())
	// The emptied purse falls to the ground
	assert.Equal(t, 0, kit.purse.Units())
	assert.Nil(t, kit.purse.Holder())

	// Greedy handles everything else
	assert.Equal(t, 2, report.Count(LootTaken))
	assert.Equal(t, 1, obs.loot[LootMerged])
	assertEmpty(t, orc)
}

func TestLoot_MergeFallsBackWhenPurseTooSmall(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	own := possession.NewPurse(reg, 0, 100, 30, 10)
	require.NoError(t, hero.Pickup(own, domain.AnchorWaist))
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(hero, orc, MergePurses(GreedyLoot))
	require.NoError(t, err)

	// 25 ducats would burst a purse with room for 20; the waist is taken
	assert.Equal(t, LootSkipped, report.Entries[2].Outcome)
	assert.Equal(t, 0, report.Count(LootMerged))
	assert.Equal(t, 10, own.Units())
	assert.False(t, own.IsBroken())
	assert.Equal(t, 25, kit.purse.Units())
	assert.Equal(t, possession.Holder(orc), kit.purse.Holder())
}

func TestLoot_MergeWithoutWinnerPurse(t *testing.T) {
	reg := possession.NewRegistry()
	orc, kit := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	r, _ := newTestResolver(Config{})

	report, err := r.Loot(hero, orc, MergePurses(GreedyLoot))
	require.NoError(t, err)

	assert.Equal(t, LootTaken, report.Entries[2].Outcome)
	assert.Equal(t, possession.Holder(hero), kit.purse.Holder())
}

func TestLoot_Preconditions(t *testing.T) {
	reg := possession.NewRegistry()
	orc, _ := slainOrc(t, reg)
	hero := entity.NewHero("Aragorn", 100, 10)
	living := entity.NewMonster("Goblin", 20, 5, 5, 5)
	r, obs := newTestResolver(Config{})

	_, err := r.Loot(nil, orc, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Loot(hero, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Loot(hero, hero, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Loot(hero, living, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	ghost := entity.NewHero("Ghost", 10, 10)
	ghost.Die()
	_, err = r.Loot(ghost, orc, nil)
	assert.ErrorIs(t, err, domain.ErrDeadEntity)

	assert.Empty(t, obs.loot)
}
