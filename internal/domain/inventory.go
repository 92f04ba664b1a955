package domain

// Anchor is a named, exclusive attachment slot on an entity.
type Anchor string

const (
	AnchorPrimaryHand Anchor = "primary_hand"
	AnchorOffHand     Anchor = "off_hand"
	AnchorTorso       Anchor = "torso"
	AnchorWaist       Anchor = "waist"
	AnchorBack        Anchor = "back"
	AnchorLimbs       Anchor = "limbs"
	AnchorHead        Anchor = "head"
	AnchorTail        Anchor = "tail"
)

// CurrencyAnchor is the only anchor that accepts currency possessions.
const CurrencyAnchor = AnchorWaist

// HeroAnchors is the fixed anchor set of a hero, in lookup order.
func HeroAnchors() []Anchor {
	return []Anchor{AnchorPrimaryHand, AnchorOffHand, AnchorTorso, AnchorWaist, AnchorBack, AnchorHead}
}

// MonsterAnchors is the fixed anchor set of a monster, in lookup order.
func MonsterAnchors() []Anchor {
	return []Anchor{AnchorLimbs, AnchorTorso, AnchorWaist, AnchorBack, AnchorHead, AnchorTail}
}

// IsWeaponAnchor reports whether a weapon at this anchor counts towards attack damage.
func (a Anchor) IsWeaponAnchor() bool {
	return a == AnchorPrimaryHand || a == AnchorOffHand || a == AnchorLimbs
}
