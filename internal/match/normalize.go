package match

import (
	"strings"
	"unicode"
)

// Humanize turns an identifier into a phrase: words separated by single
// spaces, lowercased except for acronyms, with the first letter capitalized.
//   - "SaveData" -> "Save data"
//   - "XMLParser" -> "XML parser"
//   - "sentient_animal" -> "Sentient animal"
func Humanize(s string) string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		if !isAcronym(t) {
			tokens[i] = strings.ToLower(t)
		}
	}

	runes := []rune(strings.Join(tokens, " "))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}

	return string(runes)
}

// isAcronym reports whether t has at least two letters and no lowercase ones.
func isAcronym(t string) bool {
	letters := 0
	for _, r := range t {
		if unicode.IsLower(r) {
			return false
		}

		if unicode.IsLetter(r) {
			letters++
		}
	}

	return letters > 1
}

// NormalizeIdent folds an identifier to lowercase without separators, so
// "Circum-fix", "circum_fix" and "CircumFix" compare equal.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "TheMan" -> ["The", "Man"]
//   - "XBox" -> ["X", "Box"]
//   - "HTTPStatus" -> ["HTTP", "Status"]
//   - "save_data" -> ["save", "data"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "saveData": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
