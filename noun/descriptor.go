package noun

import (
	"fmt"

	"conjugal/affix"
	"conjugal/casing"
	"conjugal/internal/match"
)

// Descriptor is the explicit configuration of a noun. Every field is optional
// except that either Name or Lemma must be given.
type Descriptor struct {
	// Name is an identifier such as a Go type name ("SaveData"). It is humanized
	// into a lemma when Lemma is empty.
	Name string
	// Lemma is the dictionary form ("save datum").
	Lemma              string
	Singular           string
	Plural             string
	Countability       Countability
	Abbreviation       string
	PluralAbbreviation string
	// ProperNoun nouns are title-cased by default.
	ProperNoun bool
	// Casing is applied to a lemma derived from Name.
	Casing     casing.Casing
	NounalVerb string
	Unit       *UnitOfMeasure
}

// Conjugation is a fully resolved noun.
type Conjugation struct {
	Name               string
	Lemma              string
	Singular           string
	Plural             string
	Countability       Countability
	Abbreviation       string
	PluralAbbreviation string
	ProperNoun         bool
	// PreferredCasing is the zero value when the noun has no preference.
	PreferredCasing casing.Casing
	NounalVerb      string
	Unit            *UnitOfMeasure
}

// Resolve fills every form of d that was not given explicitly.
// A nil inflector means English.
func Resolve(d Descriptor, infl Inflector) (Conjugation, error) {
	lemma, err := resolveLemma(d)
	if err != nil {
		return Conjugation{}, err
	}

	countability := d.Countability
	if countability == 0 {
		countability = CountabilityCountable
	}

	if !countability.IsSet() {
		return Conjugation{}, fmt.Errorf("%w: %s in %s", ErrUnknownCountability, countability, describeName(d))
	}

	singular := firstNonEmpty(d.Singular, lemma)

	plural := d.Plural
	if plural == "" {
		// collective nouns still have a plural form; choosing it by quantity is what fails
		if countability == CountabilityCollective {
			plural = orEnglish(infl).Plural(singular)
		} else if plural, err = PluralFromCountability(singular, countability, infl); err != nil {
			return Conjugation{}, err
		}
	}

	abbreviation := firstNonEmpty(d.Abbreviation, lemma)

	var unit *UnitOfMeasure
	if d.Unit != nil {
		u := *d.Unit
		unit = &u
	}

	return Conjugation{
		Name:               d.Name,
		Lemma:              lemma,
		Singular:           singular,
		Plural:             plural,
		Countability:       countability,
		Abbreviation:       abbreviation,
		PluralAbbreviation: firstNonEmpty(d.PluralAbbreviation, abbreviation),
		ProperNoun:         d.ProperNoun,
		PreferredCasing:    preferredCasing(d),
		NounalVerb:         firstNonEmpty(d.NounalVerb, lemma),
		Unit:               unit,
	}, nil
}

func resolveLemma(d Descriptor) (string, error) {
	if d.Lemma != "" {
		return d.Lemma, nil
	}

	if d.Name == "" {
		return "", ErrNoLemma
	}

	lemmaCasing := d.Casing
	if lemmaCasing == 0 {
		lemmaCasing = casing.CasingLower
		if d.ProperNoun {
			lemmaCasing = casing.CasingTitle
		}
	}

	lemma, err := lemmaCasing.Apply(match.Humanize(d.Name))
	if err != nil {
		return "", fmt.Errorf("lemma of %s: %w", d.Name, err)
	}

	return lemma, nil
}

func preferredCasing(d Descriptor) casing.Casing {
	switch {
	case d.Casing != 0:
		return d.Casing
	case d.ProperNoun:
		return casing.CasingTitle
	default:
		return 0
	}
}

func describeName(d Descriptor) string {
	return firstNonEmpty(d.Name, d.Lemma)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Plurable returns the singular and plural forms.
func (c Conjugation) Plurable() Plurable {
	return NewPlurableOf(c.Singular, c.Plural, c.Countability)
}

// AbbreviationPlurable returns both forms of the abbreviation.
func (c Conjugation) AbbreviationPlurable() Plurable {
	return NewPlurable(c.Abbreviation, c.PluralAbbreviation)
}

// Pluralize picks the form for quantity: uncountable nouns always use the
// singular, countable nouns use it only for exactly 1.
func (c Conjugation) Pluralize(quantity int) (string, error) {
	return c.pluralize(quantity == 1)
}

// PluralizeFloat is Pluralize for fractional quantities.
func (c Conjugation) PluralizeFloat(quantity float64) (string, error) {
	return c.pluralize(quantity == 1)
}

func (c Conjugation) pluralize(one bool) (string, error) {
	switch c.Countability {
	case CountabilityUncountable:
		return c.Singular, nil
	case CountabilityCountable:
		if one {
			return c.Singular, nil
		}

		return c.Plural, nil
	case CountabilityCollective:
		return "", fmt.Errorf("%w: %s", ErrCollectiveNotImplemented, c.Lemma)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCountability, c.Countability)
	}
}

// Abbreviate returns the singular abbreviation for exactly 1 and the plural one otherwise.
func (c Conjugation) Abbreviate(quantity int) string {
	return c.AbbreviationPlurable().Pluralize(quantity)
}

// Quantify writes quantity out with the noun's unit, or with the noun itself
// when it has none: "2kg", "2 🐑", "2 dice".
func (c Conjugation) Quantify(quantity float64) (string, error) {
	if c.Unit != nil {
		return c.Unit.Format(quantity)
	}

	word, err := c.PluralizeFloat(quantity)
	if err != nil {
		return "", err
	}

	return affix.Suffixation(formatQuantity(quantity), word, " ").Render()
}
