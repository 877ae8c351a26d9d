package noun

import "fmt"

// Plurable holds both forms of a noun and its countability.
type Plurable struct {
	Singular     string
	Plural       string
	Countability Countability
}

// NewPlurable returns a Plurable whose countability is inferred from the two forms.
func NewPlurable(singular, plural string) Plurable {
	return NewPlurableOf(singular, plural, InferCountability(singular, plural))
}

// NewPlurableOf returns a Plurable with an explicit countability.
func NewPlurableOf(singular, plural string, c Countability) Plurable {
	return Plurable{Singular: singular, Plural: plural, Countability: c}
}

// Uncountable returns a Plurable that uses word for every quantity.
func Uncountable(word string) Plurable {
	return NewPlurableOf(word, word, CountabilityUncountable)
}

// PlurableFromCountability derives the plural of singular according to c.
func PlurableFromCountability(singular string, c Countability, infl Inflector) (Plurable, error) {
	plural, err := PluralFromCountability(singular, c, infl)
	if err != nil {
		return Plurable{}, err
	}

	return NewPlurableOf(singular, plural, c), nil
}

// Humanized returns a Plurable whose plural comes from the inflector, with an inferred countability.
func Humanized(singular string, infl Inflector) Plurable {
	return NewPlurable(singular, orEnglish(infl).Plural(singular))
}

// Pluralize returns the singular form for exactly 1 and the plural form otherwise; 0 is plural.
func (p Plurable) Pluralize(quantity int) string {
	if quantity == 1 {
		return p.Singular
	}

	return p.Plural
}

// PluralizeFloat is Pluralize for fractional quantities: only 1.0 is singular.
func (p Plurable) PluralizeFloat(quantity float64) string {
	if quantity == 1 {
		return p.Singular
	}

	return p.Plural
}

// String returns "(singular, plural)".
func (p Plurable) String() string {
	return fmt.Sprintf("(%s, %s)", p.Singular, p.Plural)
}
