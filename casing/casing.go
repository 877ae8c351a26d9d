package casing

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:generate go tool stringer -type=Casing -trimprefix=Casing -output=casing_string.go

// ErrUnknownCasing is returned for a Casing value outside the declared set.
var ErrUnknownCasing = errors.New("casing: unknown casing")

// Casing is a letter casing. The zero value means "no preference".
type Casing int

const (
	_ Casing = iota // zero value is unset

	// CasingLower lowercases every letter: "save data".
	CasingLower
	// CasingUpper uppercases every letter: "SAVE DATA".
	CasingUpper
	// CasingTitle uppercases the first letter of every word and leaves the rest alone: "Save Data".
	CasingTitle
	// CasingSentence uppercases the first letter and leaves the rest alone: "Save data".
	CasingSentence

	// CasingTotal is the number of declared casings
	CasingTotal = int(iota) - 1
)

var tag = language.English

// IsSet reports whether c is a declared casing.
func (c Casing) IsSet() bool {
	return c >= CasingLower && c <= CasingSentence
}

// Apply returns s in this casing.
func (c Casing) Apply(s string) (string, error) {
	switch c {
	case CasingLower:
		return cases.Lower(tag).String(s), nil
	case CasingUpper:
		return cases.Upper(tag).String(s), nil
	case CasingTitle:
		return cases.Title(tag, cases.NoLower).String(s), nil
	case CasingSentence:
		return sentence(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCasing, c)
	}
}

// MustApply is like Apply but panics on an undeclared casing.
func (c Casing) MustApply(s string) string {
	out, err := c.Apply(s)
	if err != nil {
		panic(err)
	}

	return out
}

// ApplyOptional applies c to s, or returns s unchanged when c is the zero value.
func ApplyOptional(s string, c Casing) (string, error) {
	if c == 0 {
		return s, nil
	}

	return c.Apply(s)
}

func sentence(s string) string {
	if s == "" {
		return s
	}

	_, size := utf8.DecodeRuneInString(s)

	return cases.Upper(tag).String(s[:size]) + s[size:]
}

// Casings returns every declared casing in declaration order.
func Casings() []Casing {
	out := make([]Casing, 0, CasingTotal)
	for c := CasingLower; c <= CasingSentence; c++ {
		out = append(out, c)
	}

	return out
}

// ParseCasing finds a casing by name, ignoring case. An empty name parses as the zero value.
func ParseCasing(name string) (Casing, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}

	for _, c := range Casings() {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCasing, name)
}
