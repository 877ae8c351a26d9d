package catalog

// File is the root of a catalog file.
type File struct {
	// Version of the catalog schema.
	Version string `toml:"version" yaml:"version"`
	// Affixes are named, reusable affix definitions.
	Affixes []AffixDef `toml:"affixes,omitempty" yaml:"affixes,omitempty"`
	// Units are units of measure that nouns can refer to by name.
	Units []UnitDef `toml:"units,omitempty" yaml:"units,omitempty"`
	// Nouns are noun descriptors.
	Nouns []NounDef `toml:"nouns,omitempty" yaml:"nouns,omitempty"`
}

// AffixDef defines one named affix.
type AffixDef struct {
	Name string `toml:"name" yaml:"name"`
	// Flavor is the flavor name, e.g. "prefix" or "circumfix".
	Flavor    string `toml:"flavor" yaml:"flavor"`
	Morpheme  string `toml:"morpheme,omitempty" yaml:"morpheme,omitempty"`
	Morpheme2 string `toml:"morpheme2,omitempty" yaml:"morpheme2,omitempty"`
	// Joiner is the literal joiner text.
	Joiner string `toml:"joiner,omitempty" yaml:"joiner,omitempty"`
	// JoinerName names a preset joiner ("hyphen", "space"...). It excludes Joiner.
	JoinerName string `toml:"joiner_name,omitempty" yaml:"joiner_name,omitempty"`
	// At is the insertion point in runes; negative values count from the end.
	// For a circumfix without Morpheme2, Morpheme is split at this point.
	At          *int64 `toml:"at,omitempty" yaml:"at,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// UnitDef defines a unit of measure.
type UnitDef struct {
	Name string `toml:"name" yaml:"name"`
	// Symbol defaults to Name.
	Symbol string `toml:"symbol,omitempty" yaml:"symbol,omitempty"`
	Joiner string `toml:"joiner,omitempty" yaml:"joiner,omitempty"`
	// Flavor is "suffix" (the default) or "prefix".
	Flavor string `toml:"flavor,omitempty" yaml:"flavor,omitempty"`
}

// NounDef defines a noun. Name or Lemma is required; everything else is
// derived when omitted.
type NounDef struct {
	Name               string `toml:"name" yaml:"name"`
	Lemma              string `toml:"lemma,omitempty" yaml:"lemma,omitempty"`
	Singular           string `toml:"singular,omitempty" yaml:"singular,omitempty"`
	Plural             string `toml:"plural,omitempty" yaml:"plural,omitempty"`
	Countability       string `toml:"countability,omitempty" yaml:"countability,omitempty"`
	Abbreviation       string `toml:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	PluralAbbreviation string `toml:"plural_abbreviation,omitempty" yaml:"plural_abbreviation,omitempty"`
	ProperNoun         bool   `toml:"proper_noun,omitempty" yaml:"proper_noun,omitempty"`
	Casing             string `toml:"casing,omitempty" yaml:"casing,omitempty"`
	NounalVerb         string `toml:"nounal_verb,omitempty" yaml:"nounal_verb,omitempty"`
	// Unit refers to a UnitDef by name.
	Unit string `toml:"unit,omitempty" yaml:"unit,omitempty"`
}

// key returns the name a noun is looked up by.
func (n *NounDef) key() string {
	if n.Name != "" {
		return n.Name
	}

	return n.Lemma
}
