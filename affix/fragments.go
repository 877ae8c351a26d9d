package affix

import (
	"fmt"
	"unicode/utf8"

	"conjugal/options"
)

// piece is one fragment of output text and the part of the affixation it came from.
type piece struct {
	text string
	part options.PartEnum
}

func stemPiece(s string) piece     { return piece{text: s, part: options.PartStem} }
func morphemePiece(s string) piece { return piece{text: s, part: options.PartMorpheme} }

// fragments is the ordered sequence of pieces a fully formed affixation is
// assembled from. Joiners go between non-empty pieces only.
type fragments struct {
	parts [3]piece
	n     int
}

func pair(a, b piece) fragments {
	return fragments{parts: [3]piece{a, b}, n: 2}
}

func triple(a, b, c piece) fragments {
	return fragments{parts: [3]piece{a, b, c}, n: 3}
}

// complete reports whether every piece is non-empty.
func (f fragments) complete() bool {
	for _, p := range f.parts[:f.n] {
		if p.text == "" {
			return false
		}
	}

	return true
}

// sum returns the byte length of all pieces, joiners excluded.
func (f fragments) sum() int {
	total := 0
	for _, p := range f.parts[:f.n] {
		total += len(p.text)
	}

	return total
}

// each calls fn with every piece and every joiner, in output order.
func (f fragments) each(joiner string, fn func(text string, part options.PartEnum)) {
	written := false
	for _, p := range f.parts[:f.n] {
		if p.text == "" {
			continue
		}

		if written && joiner != "" {
			fn(joiner, options.PartJoiner)
		}

		fn(p.text, p.part)
		written = true
	}
}

// size returns the byte length of the joined pieces.
func (f fragments) size(joiner string) int {
	total := 0
	f.each(joiner, func(s string, _ options.PartEnum) { total += len(s) })

	return total
}

func composePrefix(a Affixation) (fragments, error) {
	return pair(morphemePiece(a.morpheme), stemPiece(a.stem)), nil
}

func composeSuffix(a Affixation) (fragments, error) {
	return pair(stemPiece(a.stem), morphemePiece(a.morpheme)), nil
}

func composeInfix(a Affixation) (fragments, error) {
	head, tail, err := splitAt(a.stem, a.at)
	if err != nil {
		return fragments{}, err
	}

	return triple(stemPiece(head), morphemePiece(a.morpheme), stemPiece(tail)), nil
}

// composeCircumfix serves Ambifix as well; an Ambifix carries the same text in both morphemes.
func composeCircumfix(a Affixation) (fragments, error) {
	return triple(morphemePiece(a.morpheme), stemPiece(a.stem), morphemePiece(a.morpheme2)), nil
}

func composeDuplifix(a Affixation) (fragments, error) {
	return pair(stemPiece(a.stem), stemPiece(a.stem)), nil
}

// splitAt cuts s at a rune index resolved against the current rune count of s.
func splitAt(s string, at Index) (string, string, error) {
	pos, err := at.Resolve(utf8.RuneCountInString(s))
	if err != nil {
		return "", "", fmt.Errorf("splitting stem %q: %w", s, err)
	}

	runes := 0
	for i := range s {
		if runes == pos {
			return s[:i], s[i:], nil
		}
		runes++
	}

	return s, "", nil
}
