package options

// PartEnum selects parts of an affixation, e.g. which parts get highlighted.
type PartEnum int

const (
	PartStem     PartEnum = 1 << iota // the stem, including both halves of a split stem
	PartMorpheme                      // bound morphemes: prefix, suffix, infix and both circumfix sides
	PartJoiner                        // joiners written between fragments

	PartAll  PartEnum = (1 << iota) - 1 // all parts combined
	PartNone PartEnum = 0               // no parts selected
)

// Has reports whether every part in q is selected in p.
func (p PartEnum) Has(q PartEnum) bool {
	return p&q == q
}

// Names returns the lowercase names of the selected parts.
func (p PartEnum) Names() []string {
	var names []string
	if p.Has(PartStem) {
		names = append(names, "stem")
	}

	if p.Has(PartMorpheme) {
		names = append(names, "morpheme")
	}

	if p.Has(PartJoiner) {
		names = append(names, "joiner")
	}

	return names
}

// ParsePart returns the part for a lowercase name accepted by Names, or "all" / "none".
func ParsePart(name string) (PartEnum, bool) {
	switch name {
	case "stem":
		return PartStem, true
	case "morpheme":
		return PartMorpheme, true
	case "joiner":
		return PartJoiner, true
	case "all":
		return PartAll, true
	case "none":
		return PartNone, true
	default:
		return PartNone, false
	}
}
