package catalog

// builtin is the catalog used when no file is configured.
var builtin = []ArmorType{
	{Name: "Padded", MaxProtection: 6, Description: "Quilted layers of cloth"},
	{Name: "Leather", MaxProtection: 10, Description: "Boiled and hardened hide"},
	{Name: "Hide", MaxProtection: 12, Description: "Thick untreated pelts"},
	{Name: "Studded Leather", MaxProtection: 16},
	{Name: "Chainmail", MaxProtection: 40, Description: "Interlocking iron rings"},
	{Name: "Scale", MaxProtection: 50},
	{Name: "Plate", MaxProtection: 80, Description: "Full suit of forged steel"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}
