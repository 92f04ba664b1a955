package main

import (
	"fmt"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
)

// placement puts one possession at an anchor
type placement struct {
	anchor domain.Anchor
	item   possession.Possession
}

func equip(e *entity.Entity, items ...placement) error {
	for _, pl := range items {
		if err := e.Pickup(pl.item, pl.anchor); err != nil {
			return fmt.Errorf("equip %s with %s: %w", e.Name(), pl.item, err)
		}
	}
	return nil
}

// newHero builds the demo hero: sword, worn chainmail, a backpack with a
// spare dagger and a purse.
func newHero(reg *possession.Registry, armor possession.ArmorTypes) (*entity.Entity, error) {
	hero := entity.NewHero("Aragorn", 100, 20)

	pack := possession.NewBackpack(reg, 0, 1000, 25, 8000)
	if err := pack.Add(possession.NewWeapon(reg, 0, 400, 6)); err != nil {
		return nil, fmt.Errorf("pack dagger: %w", err)
	}

	err := equip(hero,
		placement{domain.AnchorPrimaryHand, possession.NewWeapon(reg, 0, 1500, 30)},
		placement{domain.AnchorTorso, possession.NewArmorOfType(reg, armor, "Chainmail", 0, 10000, 20, 400)},
		placement{domain.AnchorBack, pack},
		placement{domain.CurrencyAnchor, possession.NewPurse(reg, 0, 100, 200, 40)},
	)
	if err != nil {
		return nil, err
	}
	return hero, nil
}

// newMonster builds the demo monster: claws, a club, hide armor and a purse.
func newMonster(reg *possession.Registry, armor possession.ArmorTypes) (*entity.Entity, error) {
	troll := entity.NewMonster("Cave Troll", 120, 30, 8, 40)

	err := equip(troll,
		placement{domain.AnchorLimbs, possession.NewWeapon(reg, 0, 4000, 6)},
		placement{domain.AnchorTorso, possession.NewArmorOfType(reg, armor, "Hide", 0, 6000, 0, 60)},
		placement{domain.CurrencyAnchor, possession.NewPurse(reg, 0, 100, 100, 75)},
	)
	if err != nil {
		return nil, err
	}
	return troll, nil
}
