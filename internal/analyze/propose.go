package analyze

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"conjugal/internal/catalog"
)

// ErrDuplicateType is returned when two scanned packages export a noun with the same name.
var ErrDuplicateType = errors.New("analyze: duplicate type name")

// DefaultKinds are the kinds proposed as nouns without a directive.
var DefaultKinds = []TypeKind{TypeKindStruct}

// Nouns proposes a catalog noun for every type of the given kinds and every
// type carrying a directive, except those skipped with "//conjugal:noun -".
// Nil kinds means DefaultKinds.
func (g *TypeGraph) Nouns(kinds []TypeKind) ([]catalog.NounDef, error) {
	if kinds == nil {
		kinds = DefaultKinds
	}

	var defs []catalog.NounDef

	seen := map[string]TypeID{}

	for _, info := range g.Sorted() {
		if info.Directive != nil && info.Directive.Skip {
			continue
		}

		if info.Directive == nil && !slices.Contains(kinds, info.Kind) {
			continue
		}

		if prev, dup := seen[info.ID.Name]; dup {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateType, prev, info.ID)
		}

		seen[info.ID.Name] = info.ID

		def, err := nounDef(info)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", info.ID, err)
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// Catalog wraps Nouns into a catalog file.
func (g *TypeGraph) Catalog(kinds []TypeKind) (*catalog.File, error) {
	defs, err := g.Nouns(kinds)
	if err != nil {
		return nil, err
	}

	return &catalog.File{Version: "1", Nouns: defs}, nil
}

func nounDef(info *TypeInfo) (catalog.NounDef, error) {
	d := info.Directive

	def := catalog.NounDef{
		Name:               info.ID.Name,
		Lemma:              d.Get("lemma"),
		Singular:           d.Get("singular"),
		Plural:             d.Get("plural"),
		Countability:       d.Get("countability"),
		Abbreviation:       d.Get("abbreviation"),
		PluralAbbreviation: d.Get("plural_abbreviation"),
		Casing:             d.Get("casing"),
		NounalVerb:         d.Get("nounal_verb"),
		Unit:               d.Get("unit"),
	}

	if v, ok := d.Lookup("proper_noun"); ok {
		proper, err := strconv.ParseBool(v)
		if err != nil {
			return catalog.NounDef{}, fmt.Errorf("%w: proper_noun: %w", ErrMalformedDirective, err)
		}

		def.ProperNoun = proper
	}

	return def, nil
}

// ParseKind returns the kind for a name returned by TypeKind.String.
func ParseKind(name string) (TypeKind, error) {
	for k := TypeKindStruct; k <= TypeKindFunc; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return TypeKindUnknown, fmt.Errorf("analyze: unknown type kind %q", name)
}
