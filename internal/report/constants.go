package report

// Column headers
const (
	ColAnchor     = "ANCHOR"
	ColPossession = "POSSESSION"
	ColDetail     = "DETAIL"
	ColWeight     = "WEIGHT"
	ColValue      = "VALUE"
	ColRound      = "ROUND"
	ColAttacker   = "ATTACKER"
	ColRoll       = "ROLL"
	ColProtection = "PROT"
	ColDamage     = "DAMAGE"
	ColOutcome    = "OUTCOME"
	ColFrom       = "FROM"
	ColTo         = "TO"
)

// columnGap separates table columns
const columnGap = "  "

// indentStep prefixes backpack contents once per nesting level
const indentStep = "  "

const (
	emptyCell = "-"
	totalRow  = "TOTAL"
)

// Detail formats
const (
	fmtWeaponDetail   = "damage %d/%d"
	fmtArmorDetail    = "protection %d/%d"
	fmtBackpackDetail = "%d items, %s of %s"
	fmtPurseDetail    = "%d/%d ducats"
	fmtLabel          = "%s #%d"
	detailBroken      = "broken"
)

// Summary formats
const (
	fmtFightDecided   = "%s defeated %s in %d rounds"
	fmtFightUndecided = "No winner after %d rounds"
	fmtLootHeader     = "%s loots %s"
	fmtLootNothing    = "%s finds nothing on %s"
)
