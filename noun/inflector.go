package noun

import "github.com/jinzhu/inflection"

// Inflector derives the plural form of a singular noun.
type Inflector interface {
	Plural(singular string) string
}

// InflectorFunc adapts a plain function to Inflector.
type InflectorFunc func(singular string) string

// Plural calls f.
func (f InflectorFunc) Plural(singular string) string {
	return f(singular)
}

// English pluralizes with the Rails-derived rules of jinzhu/inflection.
var English Inflector = InflectorFunc(inflection.Plural)

// Overrides consults a fixed table of plurals before falling back to another inflector.
type Overrides struct {
	Plurals  map[string]string
	Fallback Inflector
}

// Plural returns the overridden plural of singular, or asks the fallback.
func (o Overrides) Plural(singular string) string {
	if plural, ok := o.Plurals[singular]; ok {
		return plural
	}

	return orEnglish(o.Fallback).Plural(singular)
}

func orEnglish(infl Inflector) Inflector {
	if infl == nil {
		return English
	}

	return infl
}
