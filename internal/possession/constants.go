package possession

// Weight defaults, in grams
const (
	DefaultWeaponWeight   = 1500
	DefaultArmorWeight    = 8000
	DefaultBackpackWeight = 1000
	DefaultPurseWeight    = 100
)

// Weapon durability axis
const (
	MinWeaponDamage     = 1
	MaxWeaponDamage     = 100
	DefaultWeaponDamage = 1
	ValuePerDamage      = 2 // ducats per damage point
)

// Armor durability axis
const (
	MaxArmorProtection        = 1000
	DefaultArmorMaxProtection = 20
	MaxArmorValue             = 1000
	DefaultArmorMaxValue      = 100
)

// Backpack limits
const (
	MaxBackpackValue        = 500
	DefaultBackpackValue    = 10
	DefaultBackpackCapacity = 10000
)

// Purse limits
const (
	UnitWeight           = 50 // grams per ducat
	DefaultPurseCapacity = 100
)

// MaxHolderDepth bounds every upward walk of the holder chain.
const MaxHolderDepth = 64

// Display formats
const (
	fmtSummary       = "%s #%d (%s, %d ducats)"
	fmtBrokenSummary = "%s #%d (broken)"
	fmtKilograms     = "%.2f kg"
)
