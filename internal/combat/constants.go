package combat

// MaxRoll is the highest value of a hit roll; rolls are drawn from [0, MaxRoll].
const MaxRoll = 100

// Defaults used when no configuration is supplied
const (
	DefaultWearPerHit         = 1
	DefaultVictoryHealPercent = 10
	DefaultMaxRounds          = 50
)

// Exchange outcomes, as reported to the observer
const (
	OutcomeMiss = "miss"
	OutcomeHit  = "hit"
	OutcomeKill = "kill"
)

// Loot outcomes
const (
	LootTaken   = "taken"
	LootMerged  = "merged"
	LootSkipped = "skipped"
	LootRefused = "refused"
)

// Log messages
const (
	LogMsgExchangeResolved = "Exchange resolved"
	LogMsgEntityKilled     = "Entity killed"
	LogMsgGearWornOut      = "Gear worn out"
	LogMsgWearFailed       = "Failed to apply wear"
	LogMsgVictoryHeal      = "Victor recovered"
	LogMsgLootTransfer     = "Loot transfer"
	LogMsgFightFinished    = "Fight finished"
)
