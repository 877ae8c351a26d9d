package affix

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Flavor -trimprefix=Flavor -output=flavor_string.go

// Flavor is the structural kind of an affix.
type Flavor int

const (
	_ Flavor = iota // zero value is not a flavor

	// FlavorPrefix appears before the stem: re + fettle = refettle.
	FlavorPrefix
	// FlavorSuffix appears after the stem: funny + ly = funnily.
	FlavorSuffix
	// FlavorInfix appears inside the stem, at an insertion point.
	FlavorInfix
	// FlavorCircumfix surrounds the stem with two distinct morphemes: em + boob + en.
	FlavorCircumfix
	// FlavorAmbifix surrounds the stem with the same morpheme on both sides: en + cold + en.
	FlavorAmbifix
	// FlavorDuplifix repeats the stem: boo + boo.
	FlavorDuplifix
	// FlavorTransfix alternates between chunks of the stem and the morpheme. Not implemented.
	FlavorTransfix
	// FlavorDisfix is removed from the stem. Not implemented.
	FlavorDisfix

	// FlavorTotal is the number of declared flavors
	FlavorTotal = int(iota) - 1
)

// flavorSpec holds the static facts of an implemented flavor.
type flavorSpec struct {
	requiresIndex bool
	joiners       int
	compose       func(a Affixation) (fragments, error)
}

var flavorTable = map[Flavor]flavorSpec{
	FlavorPrefix:    {requiresIndex: false, joiners: 1, compose: composePrefix},
	FlavorSuffix:    {requiresIndex: false, joiners: 1, compose: composeSuffix},
	FlavorInfix:     {requiresIndex: true, joiners: 2, compose: composeInfix},
	FlavorCircumfix: {requiresIndex: true, joiners: 2, compose: composeCircumfix},
	FlavorAmbifix:   {requiresIndex: false, joiners: 2, compose: composeCircumfix},
	FlavorDuplifix:  {requiresIndex: false, joiners: 1, compose: composeDuplifix},
}

// Flavors returns every declared flavor, implemented or not, in declaration order.
func Flavors() []Flavor {
	out := make([]Flavor, 0, FlavorTotal)
	for f := FlavorPrefix; f <= FlavorDisfix; f++ {
		out = append(out, f)
	}

	return out
}

// IsDeclared reports whether f is one of the declared flavors.
func (f Flavor) IsDeclared() bool {
	return f >= FlavorPrefix && f <= FlavorDisfix
}

// IsImplemented reports whether f has a rendering rule.
func (f Flavor) IsImplemented() bool {
	_, ok := flavorTable[f]
	return ok
}

// RequiresInsertionPoint reports whether affixes of this flavor must be given an insertion point.
// Only Infix and Circumfix do; Ambifix never does because both of its sides are identical.
func (f Flavor) RequiresInsertionPoint() (bool, error) {
	s, err := f.spec()
	if err != nil {
		return false, err
	}

	return s.requiresIndex, nil
}

// JoinerCount returns how many times the joiner appears in a fully formed rendering.
func (f Flavor) JoinerCount() (int, error) {
	s, err := f.spec()
	if err != nil {
		return 0, err
	}

	return s.joiners, nil
}

func (f Flavor) spec() (flavorSpec, error) {
	if s, ok := flavorTable[f]; ok {
		return s, nil
	}

	if f.IsDeclared() {
		return flavorSpec{}, fmt.Errorf("%w: %s", ErrFlavorNotImplemented, f)
	}

	return flavorSpec{}, fmt.Errorf("%w: %s", ErrUnknownFlavor, f)
}

// ParseFlavor finds a declared flavor by name, ignoring case.
// Unimplemented flavors parse successfully; using them fails later.
func ParseFlavor(name string) (Flavor, error) {
	name = strings.TrimSpace(name)
	for _, f := range Flavors() {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFlavor, name)
}
