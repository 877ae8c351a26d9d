package catalog

import (
	"fmt"
	"reflect"

	"conjugal/affix"
	"conjugal/internal/match"
	"conjugal/noun"
)

// Catalog holds the built values of a validated catalog file, by name.
type Catalog struct {
	affixes     map[string]affix.Affix
	units       map[string]noun.UnitOfMeasure
	descriptors map[string]noun.Descriptor
	nouns       map[string]noun.Conjugation

	affixNames []string
	unitNames  []string
	nounNames  []string
}

// Build validates f and builds every entry. A nil inflector means English.
func Build(f *File, infl noun.Inflector) (*Catalog, error) {
	if err := Validate(f).Error(); err != nil {
		return nil, err
	}

	c := &Catalog{
		affixes:     make(map[string]affix.Affix, len(f.Affixes)),
		units:       make(map[string]noun.UnitOfMeasure, len(f.Units)),
		descriptors: make(map[string]noun.Descriptor, len(f.Nouns)),
		nouns:       make(map[string]noun.Conjugation, len(f.Nouns)),
	}

	for i := range f.Affixes {
		def := &f.Affixes[i]

		a, err := def.Affix()
		if err != nil {
			return nil, fmt.Errorf("affix %s: %w", def.Name, err)
		}

		c.affixes[def.Name] = a
		c.affixNames = append(c.affixNames, def.Name)
	}

	for i := range f.Units {
		def := &f.Units[i]

		u, err := def.toUnit()
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", def.Name, err)
		}

		c.units[def.Name] = u
		c.unitNames = append(c.unitNames, def.Name)
	}

	for i := range f.Nouns {
		def := &f.Nouns[i]

		d, err := def.toDescriptor(c.units)
		if err != nil {
			return nil, fmt.Errorf("noun %s: %w", def.key(), err)
		}

		conj, err := noun.Resolve(d, infl)
		if err != nil {
			return nil, fmt.Errorf("noun %s: %w", def.key(), err)
		}

		c.descriptors[def.key()] = d
		c.nouns[def.key()] = conj
		c.nounNames = append(c.nounNames, def.key())
	}

	return c, nil
}

// Affix returns the named affix.
func (c *Catalog) Affix(name string) (affix.Affix, error) {
	a, ok := c.affixes[name]
	if !ok {
		return affix.Affix{}, unknown("affix", name, c.affixNames)
	}

	return a, nil
}

// Apply renders the named affix on stem.
func (c *Catalog) Apply(name, stem string) (string, error) {
	a, err := c.Affix(name)
	if err != nil {
		return "", err
	}

	return a.WithStem(stem).Render()
}

// Unit returns the named unit of measure.
func (c *Catalog) Unit(name string) (noun.UnitOfMeasure, error) {
	u, ok := c.units[name]
	if !ok {
		return noun.UnitOfMeasure{}, unknown("unit", name, c.unitNames)
	}

	return u, nil
}

// Noun returns the resolved noun with the given name (or lemma, for unnamed nouns).
func (c *Catalog) Noun(name string) (noun.Conjugation, error) {
	n, ok := c.nouns[name]
	if !ok {
		return noun.Conjugation{}, unknown("noun", name, c.nounNames)
	}

	return n, nil
}

// Register binds the named noun's descriptor to t in r.
func (c *Catalog) Register(r *noun.Registry, t reflect.Type, name string) error {
	d, ok := c.descriptors[name]
	if !ok {
		return unknown("noun", name, c.nounNames)
	}

	return r.Register(t, d)
}

// AffixNames returns affix names in file order.
func (c *Catalog) AffixNames() []string { return append([]string(nil), c.affixNames...) }

// UnitNames returns unit names in file order.
func (c *Catalog) UnitNames() []string { return append([]string(nil), c.unitNames...) }

// NounNames returns noun names in file order.
func (c *Catalog) NounNames() []string { return append([]string(nil), c.nounNames...) }

func unknown(kind, name string, known []string) error {
	err := fmt.Errorf("%w: %s %q", ErrUnknownName, kind, name)

	if suggestions := match.Suggest(name, known, 1); len(suggestions) > 0 {
		err = fmt.Errorf("%w (did you mean %q?)", err, suggestions[0])
	}

	return err
}
