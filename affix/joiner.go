package affix

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Joiner -trimprefix=Joiner -output=joiner_string.go

// Joiner names a common string used to join morphemes.
type Joiner int

const (
	JoinerNone Joiner = iota
	JoinerSpace
	JoinerHyphen
	JoinerApostrophe
	JoinerPeriod
	JoinerSlash
)

var joinerText = [...]string{
	JoinerNone:       "",
	JoinerSpace:      " ",
	JoinerHyphen:     "-",
	JoinerApostrophe: "'",
	JoinerPeriod:     ".",
	JoinerSlash:      "/",
}

// Text returns the joiner string.
func (j Joiner) Text() (string, error) {
	if j < 0 || int(j) >= len(joinerText) {
		return "", fmt.Errorf("%w: %s", ErrUnknownJoiner, j)
	}

	return joinerText[j], nil
}

// ParseJoiner finds a named joiner, ignoring case.
func ParseJoiner(name string) (Joiner, error) {
	name = strings.TrimSpace(name)
	for j := range joinerText {
		if strings.EqualFold(Joiner(j).String(), name) {
			return Joiner(j), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownJoiner, name)
}

// JoinerNames lists the names accepted by ParseJoiner.
func JoinerNames() []string {
	names := make([]string, len(joinerText))
	for j := range joinerText {
		names[j] = strings.ToLower(Joiner(j).String())
	}

	return names
}
