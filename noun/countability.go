package noun

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Countability -trimprefix=Countability -output=countability_string.go

// Countability tells whether a noun can be counted. The zero value is unset.
type Countability int

const (
	_ Countability = iota // zero value is unset

	// CountabilityCountable nouns have distinct singular and plural forms: 1 rock, 2 rocks.
	CountabilityCountable
	// CountabilityUncountable nouns use one form for every quantity: 1 sheep, 2 sheep.
	CountabilityUncountable
	// CountabilityCollective nouns name a group: a murder of crows.
	CountabilityCollective

	// CountabilityTotal is the number of declared countabilities
	CountabilityTotal = int(iota) - 1
)

// IsSet reports whether c is a declared countability.
func (c Countability) IsSet() bool {
	return c >= CountabilityCountable && c <= CountabilityCollective
}

// InferCountability guesses a countability from both forms of a noun:
// identical forms mean the noun is uncountable.
func InferCountability(singular, plural string) Countability {
	if singular == plural {
		return CountabilityUncountable
	}

	return CountabilityCountable
}

// PluralFromCountability derives the plural of singular. A nil inflector means English.
func PluralFromCountability(singular string, c Countability, infl Inflector) (string, error) {
	switch c {
	case CountabilityCountable:
		return orEnglish(infl).Plural(singular), nil
	case CountabilityUncountable:
		return singular, nil
	case CountabilityCollective:
		return "", fmt.Errorf("%w: %q", ErrCollectiveNotImplemented, singular)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCountability, c)
	}
}

// ParseCountability finds a countability by name, ignoring case. An empty name parses as the zero value.
func ParseCountability(name string) (Countability, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}

	for c := CountabilityCountable; c <= CountabilityCollective; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCountability, name)
}

// CountabilityNames lists the lowercase names accepted by ParseCountability.
func CountabilityNames() []string {
	names := make([]string, 0, CountabilityTotal)
	for c := CountabilityCountable; c <= CountabilityCollective; c++ {
		names = append(names, strings.ToLower(c.String()))
	}

	return names
}
