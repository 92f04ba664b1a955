package domain

// Kind identifies the closed set of possession variants.
type Kind string

const (
	KindWeapon   Kind = "weapon"
	KindArmor    Kind = "armor"
	KindBackpack Kind = "backpack"
	KindPurse    Kind = "purse"
)

// Kinds lists every possession kind in display order.
func Kinds() []Kind {
	return []Kind{KindWeapon, KindArmor, KindBackpack, KindPurse}
}

// IsCurrency reports whether possessions of this kind may only hang at the currency anchor.
func (k Kind) IsCurrency() bool {
	return k == KindPurse
}

// Label returns the display name of the kind
func (k Kind) Label() string {
	switch k {
	case KindWeapon:
		return "Weapon"
	case KindArmor:
		return "Armor"
	case KindBackpack:
		return "Backpack"
	case KindPurse:
		return "Purse"
	default:
		return "Possession"
	}
}
