package entity

import (
	"github.com/osse101/skirmish/internal/domain"
)

// profile holds the role-specific construction rules.
type profile struct {
	role             domain.Role
	defaultName      string
	defaultHP        int
	gramsPerStrength int
	anchors          func() []domain.Anchor
	validName        func(string) bool
}

var (
	heroProfile = profile{
		role:             domain.RoleHero,
		defaultName:      DefaultHeroName,
		defaultHP:        DefaultHeroHitPoints,
		gramsPerStrength: HeroGramsPerStrength,
		anchors:          domain.HeroAnchors,
		validName:        names.HeroName,
	}
	monsterProfile = profile{
		role:             domain.RoleMonster,
		defaultName:      DefaultMonsterName,
		defaultHP:        DefaultMonsterHitPoints,
		gramsPerStrength: MonsterGramsPerStrength,
		anchors:          domain.MonsterAnchors,
		validName:        names.MonsterName,
	}
)

// profileFor returns the profile of role. Unknown roles are treated as monsters.
func profileFor(role domain.Role) profile {
	if role == domain.RoleHero {
		return heroProfile
	}
	return monsterProfile
}

func (p profile) name(requested string) string {
	if p.validName(requested) {
		return requested
	}
	return p.defaultName
}

func (p profile) baseProtection(requested int) int {
	if p.role == domain.RoleHero {
		return HeroProtection
	}
	return inRange(requested, 1, MaxMonsterProtection, DefaultMonsterProtection)
}

func (p profile) claws(requested int) int {
	if p.role == domain.RoleHero {
		return 0
	}
	return inRange(requested, 0, MaxClaws, DefaultClaws)
}
