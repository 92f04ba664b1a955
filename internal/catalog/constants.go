package catalog

// SchemaName is the name the embedded catalog schema is registered under
const SchemaName = "armor-catalog.schema.json"

// DefaultCacheSize bounds the lookup cache of normalized names
const DefaultCacheSize = 128

// Catalog file formats, by extension
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Format names accepted by Decode
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Bounds enforced on every entry, mirroring the schema
const (
	MinMaxProtection = 1
	MaxMaxProtection = 1000
)
