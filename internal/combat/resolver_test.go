package combat

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
	"github.com/osse101/skirmish/internal/utils"
)

type recordingObserver struct {
	outcomes map[string]int
	damage   int
	kills    []domain.Role
	fights   []int
	loot     map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{outcomes: make(map[string]int), loot: make(map[string]int)}
}

func (o *recordingObserver) ExchangeResolved(_ domain.Role, outcome string, damage int) {
	o.outcomes[outcome]++
	o.damage += damage
}
func (o *recordingObserver) EntityKilled(victim domain.Role)         { o.kills = append(o.kills, victim) }
func (o *recordingObserver) FightFinished(rounds int)                { o.fights = append(o.fights, rounds) }
func (o *recordingObserver) LootTransferred(_ domain.Kind, out string) { o.loot[out]++ }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(cfg Config, rolls ...int) (*Resolver, *recordingObserver) {
	obs := newRecordingObserver()
	return NewResolver(utils.NewSequenceRoller(rolls...), cfg, quietLogger(), obs), obs
}

// armedHero returns a strength-10 hero holding a weapon of the given damage.
func armedHero(t *testing.T, reg *possession.Registry, damage int) (*entity.Entity, *possession.Weapon) {
	t.Helper()
	h := entity.NewHero("Aragorn", 100, 10)
	w := possession.NewWeapon(reg, 0, 1500, damage)
	require.NoError(t, h.Pickup(w, domain.AnchorPrimaryHand))
	return h, w
}

func TestAttack_HitAppliesNetDamage(t *testing.T) {
	reg := possession.NewRegistry()
	hero, _ := armedHero(t, reg, 12)
	orc := entity.NewMonster("Orc", 20, 10, 5, 0)
	r, obs := newTestResolver(Config{}, 50)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)

	assert.True(t, x.Hit())
	assert.False(t, x.Killed())
	assert.Equal(t, 50, x.Roll)
	assert.Equal(t, 12, x.RawDamage)
	assert.Equal(t, 5, x.Protection)
	assert.Equal(t, 7, x.Damage)
	assert.Equal(t, 13, orc.HP())
	assert.Equal(t, []domain.Phase{domain.PhaseIdle, domain.PhaseHitRoll, domain.PhaseHit, domain.PhaseAlive}, x.Trace)
	assert.Equal(t, 1, obs.outcomes[OutcomeHit])
	assert.Equal(t, 7, obs.damage)
}

func TestAttack_KillsAtZero(t *testing.T) {
	reg := possession.NewRegistry()
	hero, _ := armedHero(t, reg, 12)
	orc := entity.NewMonster("Orc", 7, 10, 5, 0)
	r, obs := newTestResolver(Config{}, 50)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)

	assert.True(t, x.Killed())
	assert.Equal(t, domain.PhaseDead, x.Phase)
	assert.True(t, x.Phase.IsTerminal())
	assert.Equal(t, 0, orc.HP())
	assert.True(t, orc.IsDead())
	assert.Equal(t, []domain.Role{domain.RoleMonster}, obs.kills)
	assert.Equal(t, 1, obs.outcomes[OutcomeKill])
}

func TestAttack_Miss(t *testing.T) {
	reg := possession.NewRegistry()
	hero, sword := armedHero(t, reg, 12)
	orc := entity.NewMonster("Orc", 20, 10, 5, 0)
	r, obs := newTestResolver(DefaultConfig(), 4)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)

	assert.False(t, x.Hit())
	assert.Equal(t, []domain.Phase{domain.PhaseIdle, domain.PhaseHitRoll, domain.PhaseMiss, domain.PhaseAlive}, x.Trace)
	assert.Equal(t, 20, orc.HP())
	assert.Equal(t, 12, sword.Damage())
	assert.Equal(t, 1, obs.outcomes[OutcomeMiss])
}

func TestAttack_RollEqualToProtectionHits(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 14)
	orc := entity.NewMonster("Orc", 20, 10, 5, 0)
	r, _ := newTestResolver(Config{}, 5)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)
	assert.True(t, x.Hit())
	// Strength bonus of 2 cannot get through protection 5
	assert.Equal(t, 0, x.Damage)
	assert.Equal(t, 20, orc.HP())
}

func TestAttack_MonsterRollCappedByHitPoints(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 10)

	t.Run("wounded monster misses", func(t *testing.T) {
		rat := entity.NewMonster("Rat", 4, 1, 1, 30)
		r, _ := newTestResolver(Config{}, 90)

		x, err := r.Attack(rat, hero)
		require.NoError(t, err)
		assert.Equal(t, 4, x.Roll)
		assert.False(t, x.Hit())
	})

	t.Run("healthy monster hits", func(t *testing.T) {
		wolf := entity.NewMonster("Wolf", 120, 10, 5, 30)
		r, _ := newTestResolver(Config{}, 90)

		x, err := r.Attack(wolf, hero)
		require.NoError(t, err)
		assert.Equal(t, 90, x.Roll)
		assert.True(t, x.Hit())
		assert.Equal(t, 20, x.Damage)
		assert.Equal(t, 80, hero.HP())
	})
}

func TestAttack_Preconditions(t *testing.T) {
	hero := entity.NewHero("Aragorn", 100, 10)
	orc := entity.NewMonster("Orc", 20, 10, 5, 0)
	corpse := entity.NewMonster("Skeleton", 20, 10, 5, 0)
	corpse.Die()
	r, obs := newTestResolver(Config{}, 50)

	_, err := r.Attack(hero, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Attack(nil, orc)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Attack(hero, hero)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = r.Attack(hero, corpse)
	assert.ErrorIs(t, err, domain.ErrDeadEntityTarget)
	assert.ErrorIs(t, err, domain.ErrDeadEntity)

	_, err = r.Attack(corpse, hero)
	assert.ErrorIs(t, err, domain.ErrDeadEntityTarget)

	assert.Empty(t, obs.outcomes)
}

func TestAttack_Wear(t *testing.T) {
	reg := possession.NewRegistry()
	hero, sword := armedHero(t, reg, 1)
	golem := entity.NewMonster("Golem", 50, 10, 5, 0)
	plate := possession.NewArmor(reg, 0, 8000, 3, 10, 100)
	require.NoError(t, golem.Pickup(plate, domain.AnchorTorso))
	r, obs := newTestResolver(Config{WearPerHit: 1}, 50)

	x, err := r.Attack(hero, golem)
	require.NoError(t, err)
	require.True(t, x.Hit())

	// The sword wore out, the plate lost a point
	assert.True(t, sword.IsBroken())
	assert.Nil(t, sword.Holder())
	assert.Empty(t, hero.Weapons())
	assert.Equal(t, 2, plate.Protection())
	require.Len(t, x.WornOut, 1)
	assert.Same(t, sword, x.WornOut[0])
	assert.Equal(t, 7, golem.Protection())
	assert.Equal(t, 1, obs.outcomes[OutcomeHit])
}

func TestAttack_WearDisabled(t *testing.T) {
	reg := possession.NewRegistry()
	hero, sword := armedHero(t, reg, 1)
	golem := entity.NewMonster("Golem", 50, 10, 5, 0)
	r, _ := newTestResolver(Config{WearPerHit: 0}, 50)

	_, err := r.Attack(hero, golem)
	require.NoError(t, err)
	assert.Equal(t, 1, sword.Damage())
	assert.False(t, sword.IsBroken())
}

func TestAttack_VictoryHeal(t *testing.T) {
	reg := possession.NewRegistry()

	t.Run("hero recovers", func(t *testing.T) {
		hero, _ := armedHero(t, reg, 50)
		_, err := hero.TakeDamage(30)
		require.NoError(t, err)
		orc := entity.NewMonster("Orc", 10, 10, 5, 0)
		r, _ := newTestResolver(Config{VictoryHealPercent: 10}, 50)

		x, err := r.Attack(hero, orc)
		require.NoError(t, err)
		require.True(t, x.Killed())
		assert.Equal(t, 10, x.Healed)
		assert.Equal(t, 80, hero.HP())
	})

	t.Run("heal capped at max", func(t *testing.T) {
		hero, _ := armedHero(t, reg, 50)
		_, err := hero.TakeDamage(4)
		require.NoError(t, err)
		orc := entity.NewMonster("Orc", 10, 10, 5, 0)
		r, _ := newTestResolver(Config{VictoryHealPercent: 10}, 50)

		x, err := r.Attack(hero, orc)
		require.NoError(t, err)
		assert.Equal(t, 4, x.Healed)
		assert.Equal(t, 100, hero.HP())
	})

	t.Run("monsters do not heal", func(t *testing.T) {
		troll := entity.NewMonster("Troll", 100, 10, 5, 60)
		_, err := troll.TakeDamage(50)
		require.NoError(t, err)
		victim := entity.NewHero("Boromir", 20, 10)
		r, _ := newTestResolver(Config{VictoryHealPercent: 50}, 50)

		x, err := r.Attack(troll, victim)
		require.NoError(t, err)
		require.True(t, x.Killed())
		assert.Equal(t, 0, x.Healed)
		assert.Equal(t, 50, troll.HP())
	})
}

func TestNewResolver_NilLogger(t *testing.T) {
	r := NewResolver(utils.NewSequenceRoller(100), DefaultConfig(), nil, nil)
	hero := entity.NewHero("Aragorn", 100, 40)
	orc := entity.NewMonster("Orc", 10, 10, 5, 0)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)
	assert.True(t, x.Killed())
}

func TestNewResolver_OutOfRangeConfigUsesDefaults(t *testing.T) {
	reg := possession.NewRegistry()
	hero, sword := armedHero(t, reg, 50)
	_, err := hero.TakeDamage(30)
	require.NoError(t, err)
	orc := entity.NewMonster("Orc", 10, 10, 5, 0)
	r, _ := newTestResolver(Config{WearPerHit: -3, VictoryHealPercent: 500}, 50)

	x, err := r.Attack(hero, orc)
	require.NoError(t, err)
	require.True(t, x.Killed())

	assert.Equal(t, 50-DefaultWearPerHit, sword.Damage())
	assert.Equal(t, DefaultVictoryHealPercent, x.Healed)
	assert.Equal(t, 80, hero.HP())
}
