package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"conjugal/affix"
	"conjugal/casing"
	"conjugal/noun"
)

var (
	// ErrConflictingJoiner is returned when an affix sets both joiner and joiner_name.
	ErrConflictingJoiner = errors.New("catalog: joiner and joiner_name are mutually exclusive")
	// ErrIndexOutOfRange is returned when an insertion point does not fit in an int.
	ErrIndexOutOfRange = errors.New("catalog: insertion point out of range")
	// ErrUnknownUnit is returned when a noun refers to an undefined unit.
	ErrUnknownUnit = errors.New("catalog: unknown unit")
	// ErrUnknownName is returned when a catalog has no entry with the requested name.
	ErrUnknownName = errors.New("catalog: unknown name")
)

// joiner returns the literal or preset joiner text.
func (a *AffixDef) joiner() (string, error) {
	if a.JoinerName == "" {
		return a.Joiner, nil
	}

	if a.Joiner != "" {
		return "", ErrConflictingJoiner
	}

	j, err := affix.ParseJoiner(a.JoinerName)
	if err != nil {
		return "", err
	}

	return j.Text()
}

// index converts At into an affix.Index; nil means no insertion point.
func (a *AffixDef) index() (affix.Index, error) {
	if a.At == nil {
		return affix.NoIndex, nil
	}

	at, err := safecast.Conv[int](*a.At)
	if err != nil {
		return affix.NoIndex, fmt.Errorf("%w: %d: %w", ErrIndexOutOfRange, *a.At, err)
	}

	return affix.At(at), nil
}

// Affix builds the affix. A circumfix may give both morphemes, or a single
// morpheme split at its insertion point; without an insertion point the
// boundary falls between the two morphemes.
func (a *AffixDef) Affix() (affix.Affix, error) {
	flavor, err := affix.ParseFlavor(a.Flavor)
	if err != nil {
		return affix.Affix{}, err
	}

	joiner, err := a.joiner()
	if err != nil {
		return affix.Affix{}, err
	}

	at, err := a.index()
	if err != nil {
		return affix.Affix{}, err
	}

	if flavor == affix.FlavorCircumfix {
		switch {
		case a.Morpheme2 == "" && at.IsSet():
			return affix.SplitCircumfix(a.Morpheme, at, joiner)
		case !at.IsSet():
			return affix.NewCircumfix(a.Morpheme, a.Morpheme2, joiner), nil
		}
	}

	return affix.New(flavor, a.Morpheme, a.Morpheme2, joiner, at)
}

// toUnit builds the unit of measure.
func (u *UnitDef) toUnit() (noun.UnitOfMeasure, error) {
	flavor, err := affix.ParseFlavor(u.Flavor)
	if err != nil {
		return noun.UnitOfMeasure{}, err
	}

	unit := noun.UnitOfMeasure{Name: u.Name, Symbol: u.Symbol, Joiner: u.Joiner, Flavor: flavor}
	if _, err := unit.Affix(); err != nil {
		return noun.UnitOfMeasure{}, err
	}

	return unit, nil
}

// toDescriptor builds the noun descriptor, resolving the unit by name.
func (n *NounDef) toDescriptor(units map[string]noun.UnitOfMeasure) (noun.Descriptor, error) {
	countability, err := noun.ParseCountability(n.Countability)
	if err != nil {
		return noun.Descriptor{}, err
	}

	c, err := casing.ParseCasing(n.Casing)
	if err != nil {
		return noun.Descriptor{}, err
	}

	d := noun.Descriptor{
		Name:               n.Name,
		Lemma:              n.Lemma,
		Singular:           n.Singular,
		Plural:             n.Plural,
		Countability:       countability,
		Abbreviation:       n.Abbreviation,
		PluralAbbreviation: n.PluralAbbreviation,
		ProperNoun:         n.ProperNoun,
		Casing:             c,
		NounalVerb:         n.NounalVerb,
	}

	if n.Unit != "" {
		unit, ok := units[n.Unit]
		if !ok {
			return noun.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownUnit, n.Unit)
		}

		d.Unit = &unit
	}

	return d, nil
}

func flavorNames() []string {
	flavors := affix.Flavors()

	names := make([]string, len(flavors))
	for i, f := range flavors {
		names[i] = strings.ToLower(f.String())
	}

	return names
}

func casingNames() []string {
	casings := casing.Casings()

	names := make([]string, len(casings))
	for i, c := range casings {
		names[i] = strings.ToLower(c.String())
	}

	return names
}
