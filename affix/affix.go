package affix

import (
	"fmt"
	"unicode/utf8"
)

// Affix is one reusable affix definition: a flavor, its bound morphemes, a
// joiner and, for Infix and Circumfix, an insertion point. It holds no stem.
//
// Affix values are immutable and comparable; two affixes built from the same
// arguments are equal.
type Affix struct {
	flavor    Flavor
	morpheme  string
	morpheme2 string
	joiner    string
	at        Index
}

// New builds an Affix and enforces the insertion point invariant:
// an insertion point must be given exactly when the flavor requires one.
//
// Morphemes and the joiner may be empty. For Ambifix, morpheme2 is ignored and
// mirrors morpheme. Prefix affixes record Start and Suffix/Duplifix affixes
// record End as their implied insertion point.
func New(flavor Flavor, morpheme, morpheme2, joiner string, at Index) (Affix, error) {
	required, err := flavor.RequiresInsertionPoint()
	if err != nil {
		return Affix{}, err
	}

	switch {
	case required && !at.IsSet():
		return Affix{}, fmt.Errorf(
			"%w: flavor %s requires an insertion point but none was given",
			ErrInsertionPointRequired, flavor,
		)
	case !required && at.IsSet():
		return Affix{}, fmt.Errorf(
			"%w: flavor %s must not have an insertion point, but %s was given",
			ErrInsertionPointForbidden, flavor, at,
		)
	}

	switch flavor {
	case FlavorPrefix:
		at = Start
	case FlavorSuffix, FlavorDuplifix:
		at = End
	case FlavorAmbifix:
		morpheme2 = morpheme
	}

	return Affix{
		flavor:    flavor,
		morpheme:  morpheme,
		morpheme2: morpheme2,
		joiner:    joiner,
		at:        at,
	}, nil
}

// NewPrefix returns a Prefix affix.
func NewPrefix(prefix, joiner string) Affix {
	return mustNew(FlavorPrefix, prefix, "", joiner, NoIndex)
}

// NewSuffix returns a Suffix affix.
func NewSuffix(suffix, joiner string) Affix {
	return mustNew(FlavorSuffix, suffix, "", joiner, NoIndex)
}

// NewInfix returns an Infix affix inserted at the given point of the stem.
func NewInfix(infix string, at Index, joiner string) (Affix, error) {
	return New(FlavorInfix, infix, "", joiner, at)
}

// NewCircumfix returns a Circumfix affix with distinct leading and trailing morphemes.
// Its insertion point marks the boundary between the two sides.
func NewCircumfix(prefix, suffix, joiner string) Affix {
	return mustNew(FlavorCircumfix, prefix, suffix, joiner, FromStart(utf8.RuneCountInString(prefix)))
}

// SplitCircumfix splits a single morpheme into the two sides of a Circumfix at
// the given point: SplitCircumfix("emen", At(2), "") surrounds stems with "em" and "en".
func SplitCircumfix(morpheme string, at Index, joiner string) (Affix, error) {
	runes := []rune(morpheme)

	pos, err := at.Resolve(len(runes))
	if err != nil {
		return Affix{}, fmt.Errorf("splitting circumfix %q: %w", morpheme, err)
	}

	return New(FlavorCircumfix, string(runes[:pos]), string(runes[pos:]), joiner, at)
}

// NewAmbifix returns an Ambifix affix, placing the same morpheme on both sides of the stem.
func NewAmbifix(ambifix, joiner string) Affix {
	return mustNew(FlavorAmbifix, ambifix, ambifix, joiner, NoIndex)
}

// NewDuplifix returns a Duplifix affix, which repeats the stem.
func NewDuplifix(joiner string) Affix {
	return mustNew(FlavorDuplifix, "", "", joiner, NoIndex)
}

// mustNew is used by constructors whose arguments cannot violate the invariant.
func mustNew(flavor Flavor, morpheme, morpheme2, joiner string, at Index) Affix {
	a, err := New(flavor, morpheme, morpheme2, joiner, at)
	if err != nil {
		panic("affix: invalid built-in constructor arguments: " + err.Error())
	}

	return a
}

// Flavor returns the affix flavor.
func (a Affix) Flavor() Flavor { return a.flavor }

// BoundMorpheme returns the primary affix text, e.g. "re" in "re-".
func (a Affix) BoundMorpheme() string { return a.morpheme }

// BoundMorpheme2 returns the trailing morpheme of a Circumfix or Ambifix.
func (a Affix) BoundMorpheme2() string { return a.morpheme2 }

// Joiner returns the text interposed between the stem and the morphemes.
func (a Affix) Joiner() string { return a.joiner }

// InsertionPoint returns the insertion point, or NoIndex for Ambifix.
func (a Affix) InsertionPoint() Index { return a.at }

// WithStem applies the affix to a stem.
func (a Affix) WithStem(stem string) Affixation {
	return Of(stem, a)
}

// Describe returns the affix fields for debugging.
func (a Affix) Describe() string {
	return fmt.Sprintf("%s: '%s', '%s', Joiner: '%s', InsertionPoint: '%s'",
		a.flavor, a.morpheme, a.morpheme2, a.joiner, a.at)
}
