// Package noun describes how a type is spoken about: its lemma, its singular
// and plural forms, its abbreviation and the unit its quantities are measured in.
//
// A Descriptor holds whatever is explicitly known about a noun. Resolve fills in
// the gaps (explicit value, then inferred value, then heuristic) and returns
// a Conjugation with every form spelled out. A Registry maps Go types to
// descriptors so callers can ask for Conjugate[Rock](r).
package noun
