// Package match turns identifiers into words and finds near matches among names.
//
// Key functions:
//   - Humanize: turns a Go identifier into a readable phrase
//   - Levenshtein: computes the edit distance between strings, in runes
//   - Suggest: ranks known names by similarity for "did you mean" hints
package match
