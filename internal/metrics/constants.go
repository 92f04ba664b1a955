package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric name
const Namespace = "skirmish"

// Combat metric names
const (
	MetricNameExchanges   = "exchanges_total"
	MetricNameDamageDealt = "damage_dealt_total"
	MetricNameDeaths      = "deaths_total"
	MetricNameFightRounds = "fight_rounds"
)

// Possession metric names
const (
	MetricNamePossessionsDestroyed = "possessions_destroyed_total"
	MetricNamePurseBursts          = "purse_bursts_total"
	MetricNameLootTransfers        = "loot_transfers_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Combat metric help text
const (
	HelpTextExchanges   = "Total number of combat exchanges by attacker role and outcome"
	HelpTextDamageDealt = "Total hit points removed by combat"
	HelpTextDeaths      = "Total number of entities killed in combat"
	HelpTextFightRounds = "Number of rounds fought per fight"
)

// Possession metric help text
const (
	HelpTextPossessionsDestroyed = "Total number of possessions destroyed by kind"
	HelpTextPurseBursts          = "Total number of purses burst by overfilling"
	HelpTextLootTransfers        = "Total number of loot transfers by kind and outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelRole    = "role"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// FightRoundBuckets covers short duels up to the maximum round cap
var FightRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100, 250, 1000}
