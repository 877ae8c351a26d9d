package affix

import (
	"fmt"
	"strings"

	"conjugal/options"
)

// Affixation is an Affix applied to a stem: the unit of rendering.
//
// Affixations are immutable and comparable. They are cheap to build, so the
// usual pattern is to build one per stem, render it and drop it.
type Affixation struct {
	stem      string
	morpheme  string
	morpheme2 string
	joiner    string
	flavor    Flavor
	at        Index
}

// Of applies an affix to a stem.
func Of(stem string, a Affix) Affixation {
	return Affixation{
		stem:      stem,
		morpheme:  a.morpheme,
		morpheme2: a.morpheme2,
		joiner:    a.joiner,
		flavor:    a.flavor,
		at:        a.at,
	}
}

// partState tells which parts of an affixation are present.
type partState uint8

const (
	// stateNoStem: the stem is empty, so nothing is rendered.
	stateNoStem partState = iota
	// stateNoMorpheme: the stem is present but there is nothing to attach to it.
	stateNoMorpheme
	// stateFullyFormed: the flavor's fragments are assembled.
	stateFullyFormed
)

// state classifies the affixation. NoStem takes priority over NoMorpheme.
func (a Affixation) state() partState {
	switch {
	case a.stem == "":
		return stateNoStem
	case a.morpheme == "" && a.morpheme2 == "" && a.flavor != FlavorDuplifix:
		return stateNoMorpheme
	default:
		return stateFullyFormed
	}
}

func (a Affixation) compose() (fragments, flavorSpec, error) {
	s, err := a.flavor.spec()
	if err != nil {
		return fragments{}, flavorSpec{}, err
	}

	f, err := s.compose(a)
	if err != nil {
		return fragments{}, flavorSpec{}, err
	}

	return f, s, nil
}

// Len returns the byte length of the rendered affixation without rendering it.
// It always equals len(Render()) and fails exactly when Render fails.
func (a Affixation) Len() (int, error) {
	switch a.state() {
	case stateNoStem:
		return 0, nil
	case stateNoMorpheme:
		return len(a.stem), nil
	}

	f, s, err := a.compose()
	if err != nil {
		return 0, err
	}

	if f.complete() {
		return f.sum() + s.joiners*len(a.joiner), nil
	}

	return f.size(a.joiner), nil
}

// Render assembles the final string.
func (a Affixation) Render() (string, error) {
	switch a.state() {
	case stateNoStem:
		return "", nil
	case stateNoMorpheme:
		return a.stem, nil
	}

	f, _, err := a.compose()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.Grow(f.size(a.joiner))
	f.each(a.joiner, func(s string, _ options.PartEnum) { sb.WriteString(s) })

	return sb.String(), nil
}

// MustRender is like Render but panics on error. Use it only for affixations
// built from implemented flavors with known-good insertion points.
func (a Affixation) MustRender() string {
	s, err := a.Render()
	if err != nil {
		panic(err)
	}

	return s
}

// AppendTo appends the rendered affixation to dst and returns the extended
// buffer. It writes straight from the stem and morpheme strings.
func (a Affixation) AppendTo(dst []byte) ([]byte, error) {
	switch a.state() {
	case stateNoStem:
		return dst, nil
	case stateNoMorpheme:
		return append(dst, a.stem...), nil
	}

	f, _, err := a.compose()
	if err != nil {
		return dst, err
	}

	f.each(a.joiner, func(s string, _ options.PartEnum) { dst = append(dst, s...) })

	return dst, nil
}

// Stem returns the base word.
func (a Affixation) Stem() string { return a.stem }

// BoundMorpheme returns the primary affix text.
func (a Affixation) BoundMorpheme() string { return a.morpheme }

// BoundMorpheme2 returns the trailing morpheme of a Circumfix or Ambifix.
func (a Affixation) BoundMorpheme2() string { return a.morpheme2 }

// Joiner returns the joiner text.
func (a Affixation) Joiner() string { return a.joiner }

// Flavor returns the affix flavor.
func (a Affixation) Flavor() Flavor { return a.flavor }

// InsertionPoint returns the insertion point.
func (a Affixation) InsertionPoint() Index { return a.at }

// Affix returns the affix part of the affixation, without the stem.
func (a Affixation) Affix() Affix {
	return Affix{
		flavor:    a.flavor,
		morpheme:  a.morpheme,
		morpheme2: a.morpheme2,
		joiner:    a.joiner,
		at:        a.at,
	}
}

// Describe lists the fields of the affixation for debugging.
func (a Affixation) Describe() string {
	return fmt.Sprintf("Stem: '%s', %s: '%s', Joiner: '%s', InsertionPoint: '%s'",
		a.stem, a.flavor, a.morpheme, a.joiner, a.at)
}

// String returns Describe. Use Render to get the affixed word.
func (a Affixation) String() string {
	return a.Describe()
}
