package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
)

func TestFight_HeroWinsFirstBlow(t *testing.T) {
	reg := possession.NewRegistry()
	hero, _ := armedHero(t, reg, 50)
	orc := entity.NewMonster("Orc", 10, 10, 5, 5)
	r, obs := newTestResolver(Config{}, 50)

	result, err := r.Fight(hero, orc, 10)
	require.NoError(t, err)

	assert.True(t, result.Decided())
	assert.Same(t, hero, result.Winner)
	assert.Same(t, orc, result.Loser)
	assert.Equal(t, 1, result.Rounds)
	assert.Len(t, result.Exchanges, 1)
	assert.Equal(t, []int{1}, obs.fights)
}

func TestFight_MonsterStrikesFirst(t *testing.T) {
	troll := entity.NewMonster("Troll", 100, 20, 10, 100)
	hero := entity.NewHero("Boromir", 50, 10)
	r, _ := newTestResolver(Config{}, 90)

	result, err := r.Fight(troll, hero, 10)
	require.NoError(t, err)

	assert.Same(t, troll, result.Winner)
	assert.True(t, hero.IsDead())
	assert.Equal(t, domain.PhaseDead, result.Exchanges[0].Phase)
}

func TestFight_SecondAttackerCanWin(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 10)
	wolf := entity.NewMonster("Wolf", 120, 10, 5, 100)
	// Hero misses, wolf rolls 90 and hits, hero misses, wolf finishes
	r, _ := newTestResolver(Config{}, 0, 90)

	result, err := r.Fight(hero, wolf, 10)
	require.NoError(t, err)

	assert.Same(t, wolf, result.Winner)
	assert.Equal(t, 2, result.Rounds)
	assert.Len(t, result.Exchanges, 4)
}

func TestFight_RoundCap(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 10)
	orc := entity.NewMonster("Orc", 30, 10, 5, 5)

	t.Run("undecided after max rounds", func(t *testing.T) {
		r, obs := newTestResolver(Config{}, 0)

		result, err := r.Fight(hero, orc, 3)
		require.NoError(t, err)

		assert.False(t, result.Decided())
		assert.Nil(t, result.Winner)
		assert.Nil(t, result.Loser)
		assert.Equal(t, 3, result.Rounds)
		assert.Len(t, result.Exchanges, 6)
		assert.Equal(t, []int{3}, obs.fights)
		assert.Equal(t, 6, obs.outcomes[OutcomeMiss])
	})

	t.Run("non-positive cap uses default", func(t *testing.T) {
		r, _ := newTestResolver(Config{}, 0)

		result, err := r.Fight(hero, orc, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxRounds, result.Rounds)
		assert.Len(t, result.Exchanges, 2*DefaultMaxRounds)
	})
}

func TestFight_DeadParticipant(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 10)
	corpse := entity.NewMonster("Skeleton", 30, 10, 5, 5)
	corpse.Die()
	r, obs := newTestResolver(Config{}, 50)

	result, err := r.Fight(hero, corpse, 5)
	assert.ErrorIs(t, err, domain.ErrDeadEntityTarget)
	require.NotNil(t, result)
	assert.False(t, result.Decided())
	assert.Empty(t, result.Exchanges)
	assert.Len(t, obs.fights, 1)
}

func TestFight_ThenLoot(t *testing.T) {
	reg := possession.NewRegistry()
	hero, sword := armedHero(t, reg, 40)
	orc, kit := armedOrc(t, reg)
	r, _ := newTestResolver(DefaultConfig(), 60)

	result, err := r.Fight(hero, orc, 5)
	require.NoError(t, err)
	require.Same(t, hero, result.Winner)

	report, err := r.Loot(result.Winner, result.Loser, MergePurses(nil))
	require.NoError(t, err)

	// The sword occupies the primary hand, so the club goes to the off hand
	assert.Equal(t, domain.AnchorOffHand, report.Entries[0].To)
	assert.Equal(t, possession.Holder(hero), kit.club.Holder())
	assert.Equal(t, possession.Holder(hero), sword.Holder())
	assert.Equal(t, 3, report.Count(LootTaken))
}
