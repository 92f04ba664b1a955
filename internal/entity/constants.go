package entity

// ============================================================================
// Construction Bounds
// ============================================================================

// MaxHitPoints is the upper bound for any entity's maximum hit points
const MaxHitPoints = 1000

// MaxStrength is the upper bound for strength
const MaxStrength = 100

// MaxMonsterProtection bounds a monster's base protection
const MaxMonsterProtection = 100

// MaxClaws bounds a monster's natural damage
const MaxClaws = 100

// ============================================================================
// Hero Profile
// ============================================================================

// DefaultHeroName replaces malformed hero names
const DefaultHeroName = "Nameless Hero"

// DefaultHeroHitPoints is used when the requested maximum is out of bounds
const DefaultHeroHitPoints = 100

// HeroProtection is the fixed base protection of every hero
const HeroProtection = 10

// HeroGramsPerStrength converts hero strength into carry capacity
const HeroGramsPerStrength = 2000

// HeroStrengthBaseline is the strength above which heroes get a damage bonus
const HeroStrengthBaseline = 10

// ============================================================================
// Monster Profile
// ============================================================================

// DefaultMonsterName replaces malformed monster names
const DefaultMonsterName = "Nameless Monster"

// DefaultMonsterHitPoints is used when the requested maximum is out of bounds
const DefaultMonsterHitPoints = 60

// DefaultMonsterProtection is used when the requested protection is out of bounds
const DefaultMonsterProtection = 5

// DefaultClaws is used when the requested natural damage is out of bounds
const DefaultClaws = 5

// MonsterGramsPerStrength converts monster strength into carry capacity
const MonsterGramsPerStrength = 3000

// ============================================================================
// Shared Defaults
// ============================================================================

// DefaultStrength is used when the requested strength is out of bounds
const DefaultStrength = 10
