// Package affix applies linguistic affixes to word stems.
//
// An Affix describes one reusable attachment (its Flavor, bound morphemes,
// joiner and insertion point). Combining an Affix with a stem produces an
// Affixation, which renders the final string.
//
// Supported flavors:
//   - Prefix: re + fettle = refettle
//   - Suffix: funny + ly = funnily
//   - Infix: abso + bloody + lutely = absobloodylutely
//   - Circumfix: em + boob + en = embooben
//   - Ambifix: en + cold + en = encolden
//   - Duplifix: boo + boo = booboo
//
// Transfix and Disfix are declared but not implemented; rendering them
// returns ErrFlavorNotImplemented.
//
// # Degenerate input
//
// Every Affixation is classified before any flavor-specific logic runs:
//  1. an empty stem renders as an empty string;
//  2. a non-empty stem with no morphemes renders as the stem alone, without a joiner;
//  3. anything else is composed from the flavor's fragments.
//
// The joiner is only ever written between two non-empty fragments.
//
// # Indices
//
// Insertion points count runes, not bytes. Lengths reported by
// Affixation.Len count bytes, matching len(Render()).
package affix
