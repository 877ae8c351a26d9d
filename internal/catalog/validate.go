package catalog

import (
	"errors"
	"fmt"
	"sort"

	"conjugal/affix"
	"conjugal/casing"
	"conjugal/internal/diagnostic"
	"conjugal/internal/match"
	"conjugal/noun"
)

// Diagnostic codes reported by Validate.
const (
	CodeNilCatalog              = "catalog_is_nil"
	CodeUnsupportedVersion      = "unsupported_version"
	CodeMissingName             = "missing_name"
	CodeDuplicateName           = "duplicate_name"
	CodeUnknownFlavor           = "unknown_flavor"
	CodeFlavorNotImplemented    = "flavor_not_implemented"
	CodeUnknownJoiner           = "unknown_joiner"
	CodeConflictingJoiner       = "conflicting_joiner"
	CodeIndexOutOfRange         = "index_out_of_range"
	CodeInsertionPointRequired  = "insertion_point_required"
	CodeInsertionPointForbidden = "insertion_point_forbidden"
	CodeInvalidAffix            = "invalid_affix"
	CodeEmptyMorpheme           = "empty_morpheme"
	CodeUnsupportedUnitFlavor   = "unsupported_unit_flavor"
	CodeUnknownCountability     = "unknown_countability"
	CodeUnknownCasing           = "unknown_casing"
	CodeUnknownUnit             = "unknown_unit"
	CodeUnresolvableNoun        = "unresolvable_noun"
	CodeSummary                 = "summary"
)

const maxSuggestions = 3

// Validate checks a catalog and reports every problem it finds.
// Only files without errors can be built.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeNilCatalog, "", "catalog is nil")
		return res
	}

	if f.Version != "1" {
		res.AddWarning(CodeUnsupportedVersion, "version", fmt.Sprintf("unsupported version %q, reading as version 1", f.Version))
	}

	validateAffixes(res, f.Affixes)
	units := validateUnits(res, f.Units)
	validateNouns(res, f.Nouns, units)

	res.AddInfo(CodeSummary, "", fmt.Sprintf("%d affixes, %d units, %d nouns", len(f.Affixes), len(f.Units), len(f.Nouns)))

	return res
}

func validateAffixes(res *diagnostic.Diagnostics, defs []AffixDef) {
	seen := map[string]struct{}{}

	for i := range defs {
		def := &defs[i]
		path := fmt.Sprintf("affixes[%d]", i)

		if !checkName(res, path, def.Name, seen) {
			continue
		}

		path = fmt.Sprintf("affixes[%d](%s)", i, def.Name)

		a, err := def.Affix()
		if err != nil {
			reportAffixError(res, path, def, err)
			continue
		}

		if a.BoundMorpheme() == "" && a.BoundMorpheme2() == "" && a.Flavor() != affix.FlavorDuplifix {
			res.AddWarning(CodeEmptyMorpheme, path+".morpheme", "affix has no morpheme and renders stems unchanged")
		}
	}
}

func reportAffixError(res *diagnostic.Diagnostics, path string, def *AffixDef, err error) {
	switch {
	case errors.Is(err, affix.ErrUnknownFlavor):
		res.AddError(CodeUnknownFlavor, path+".flavor", err.Error(), match.Suggest(def.Flavor, flavorNames(), maxSuggestions)...)
	case errors.Is(err, affix.ErrFlavorNotImplemented):
		res.AddError(CodeFlavorNotImplemented, path+".flavor", err.Error())
	case errors.Is(err, affix.ErrUnknownJoiner):
		res.AddError(CodeUnknownJoiner, path+".joiner_name", err.Error(), match.Suggest(def.JoinerName, affix.JoinerNames(), maxSuggestions)...)
	case errors.Is(err, ErrConflictingJoiner):
		res.AddError(CodeConflictingJoiner, path+".joiner", err.Error())
	case errors.Is(err, ErrIndexOutOfRange), errors.Is(err, affix.ErrInsertionPointOutOfRange):
		res.AddError(CodeIndexOutOfRange, path+".at", err.Error())
	case errors.Is(err, affix.ErrInsertionPointRequired):
		res.AddError(CodeInsertionPointRequired, path+".at", err.Error())
	case errors.Is(err, affix.ErrInsertionPointForbidden):
		res.AddError(CodeInsertionPointForbidden, path+".at", err.Error())
	default:
		res.AddError(CodeInvalidAffix, path, err.Error())
	}
}

func validateUnits(res *diagnostic.Diagnostics, defs []UnitDef) map[string]noun.UnitOfMeasure {
	seen := map[string]struct{}{}
	units := map[string]noun.UnitOfMeasure{}

	for i := range defs {
		def := &defs[i]
		path := fmt.Sprintf("units[%d]", i)

		if !checkName(res, path, def.Name, seen) {
			continue
		}

		path = fmt.Sprintf("units[%d](%s)", i, def.Name)

		unit, err := def.toUnit()
		switch {
		case errors.Is(err, affix.ErrUnknownFlavor):
			res.AddError(CodeUnknownFlavor, path+".flavor", err.Error(), match.Suggest(def.Flavor, []string{"prefix", "suffix"}, maxSuggestions)...)
		case err != nil:
			res.AddError(CodeUnsupportedUnitFlavor, path+".flavor", err.Error())
		default:
			units[def.Name] = unit
		}
	}

	return units
}

func validateNouns(res *diagnostic.Diagnostics, defs []NounDef, units map[string]noun.UnitOfMeasure) {
	seen := map[string]struct{}{}

	unitNames := make([]string, 0, len(units))
	for name := range units {
		unitNames = append(unitNames, name)
	}

	sort.Strings(unitNames)

	for i := range defs {
		def := &defs[i]
		path := fmt.Sprintf("nouns[%d]", i)

		if !checkName(res, path, def.key(), seen) {
			continue
		}

		path = fmt.Sprintf("nouns[%d](%s)", i, def.key())

		d, err := def.toDescriptor(units)
		switch {
		case errors.Is(err, noun.ErrUnknownCountability):
			res.AddError(CodeUnknownCountability, path+".countability", err.Error(),
				match.Suggest(def.Countability, noun.CountabilityNames(), maxSuggestions)...)

			continue
		case errors.Is(err, casing.ErrUnknownCasing):
			res.AddError(CodeUnknownCasing, path+".casing", err.Error(), match.Suggest(def.Casing, casingNames(), maxSuggestions)...)

			continue
		case errors.Is(err, ErrUnknownUnit):
			res.AddError(CodeUnknownUnit, path+".unit", err.Error(), match.Suggest(def.Unit, unitNames, maxSuggestions)...)

			continue
		case err != nil:
			res.AddError(CodeUnresolvableNoun, path, err.Error())

			continue
		}

		if _, err := noun.Resolve(d, nil); err != nil {
			res.AddError(CodeUnresolvableNoun, path, err.Error())
		}
	}
}

// checkName reports a missing or duplicate name and records name as seen.
func checkName(res *diagnostic.Diagnostics, path, name string, seen map[string]struct{}) bool {
	if name == "" {
		res.AddError(CodeMissingName, path+".name", "entry has no name")
		return false
	}

	if _, ok := seen[name]; ok {
		res.AddError(CodeDuplicateName, path+".name", fmt.Sprintf("duplicate name %q", name))
		return false
	}

	seen[name] = struct{}{}

	return true
}
