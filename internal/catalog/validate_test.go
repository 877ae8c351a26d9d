package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conjugal/internal/diagnostic"
)

func ptr[T any](v T) *T { return &v }

func findCode(d *diagnostic.Diagnostics, code string) (diagnostic.Diagnostic, bool) {
	for _, x := range d.All() {
		if x.Code == code {
			return x, true
		}
	}

	return diagnostic.Diagnostic{}, false
}

func TestValidateTestdata(t *testing.T) {
	for _, path := range []string{"testdata/words.yaml", "testdata/words.toml"} {
		t.Run(path, func(t *testing.T) {
			f, err := LoadFile(path)
			require.NoError(t, err)

			res := Validate(f)
			require.NoError(t, res.Error())
			assert.Empty(t, res.Warnings)

			summary, ok := findCode(res, CodeSummary)
			require.True(t, ok)
			assert.Equal(t, diagnostic.SeverityInfo, summary.Severity)
		})
	}
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, CodeNilCatalog, res.Errors[0].Code)
}

func TestValidateAffixErrors(t *testing.T) {
	tests := []struct {
		name        string
		def         AffixDef
		code        string
		path        string
		suggestions []string
	}{
		{
			name:        "misspelled flavor",
			def:         AffixDef{Name: "a", Flavor: "sufix", Morpheme: "x"},
			code:        CodeUnknownFlavor,
			path:        "affixes[0](a).flavor",
			suggestions: []string{"suffix", "infix", "prefix"},
		},
		{
			name: "not implemented",
			def:  AffixDef{Name: "a", Flavor: "transfix", Morpheme: "x"},
			code: CodeFlavorNotImplemented,
			path: "affixes[0](a).flavor",
		},
		{
			name:        "misspelled joiner",
			def:         AffixDef{Name: "a", Flavor: "prefix", Morpheme: "x", JoinerName: "hyphn"},
			code:        CodeUnknownJoiner,
			path:        "affixes[0](a).joiner_name",
			suggestions: []string{"hyphen"},
		},
		{
			name: "two joiners",
			def:  AffixDef{Name: "a", Flavor: "prefix", Morpheme: "x", Joiner: "-", JoinerName: "hyphen"},
			code: CodeConflictingJoiner,
			path: "affixes[0](a).joiner",
		},
		{
			name: "infix without index",
			def:  AffixDef{Name: "a", Flavor: "infix", Morpheme: "x"},
			code: CodeInsertionPointRequired,
			path: "affixes[0](a).at",
		},
		{
			name: "prefix with index",
			def:  AffixDef{Name: "a", Flavor: "prefix", Morpheme: "x", At: ptr(int64(1))},
			code: CodeInsertionPointForbidden,
			path: "affixes[0](a).at",
		},
		{
			name: "circumfix split outside morpheme",
			def:  AffixDef{Name: "a", Flavor: "circumfix", Morpheme: "get", At: ptr(int64(9))},
			code: CodeIndexOutOfRange,
			path: "affixes[0](a).at",
		},
		{
			name: "missing name",
			def:  AffixDef{Flavor: "prefix", Morpheme: "x"},
			code: CodeMissingName,
			path: "affixes[0].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&File{Version: "1", Affixes: []AffixDef{tt.def}})
			require.Len(t, res.Errors, 1, res.Error())

			got := res.Errors[0]
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, tt.suggestions, got.Suggestions)
		})
	}
}

func TestValidateIndexOverflow(t *testing.T) {
	if math.MaxInt == math.MaxInt64 {
		t.Skip("int is 64 bits wide")
	}

	res := Validate(&File{Version: "1", Affixes: []AffixDef{
		{Name: "a", Flavor: "infix", Morpheme: "x", At: ptr(int64(math.MaxInt64))},
	}})

	d, ok := findCode(res, CodeIndexOutOfRange)
	require.True(t, ok)
	assert.Equal(t, "affixes[0](a).at", d.Path)
}

func TestValidateDuplicates(t *testing.T) {
	res := Validate(&File{
		Version: "1",
		Affixes: []AffixDef{
			{Name: "re", Flavor: "prefix", Morpheme: "re"},
			{Name: "re", Flavor: "prefix", Morpheme: "ré"},
		},
		Nouns: []NounDef{{Name: "Rock"}, {Lemma: "Rock"}},
	})

	require.Len(t, res.Errors, 2)
	assert.Equal(t, CodeDuplicateName, res.Errors[0].Code)
	assert.Equal(t, "affixes[1].name", res.Errors[0].Path)
	assert.Equal(t, "nouns[1].name", res.Errors[1].Path)
}

func TestValidateWarnings(t *testing.T) {
	res := Validate(&File{
		Version: "2",
		Affixes: []AffixDef{{Name: "nothing", Flavor: "suffix"}},
	})

	require.False(t, res.HasErrors())

	_, ok := findCode(res, CodeUnsupportedVersion)
	assert.True(t, ok)

	d, ok := findCode(res, CodeEmptyMorpheme)
	require.True(t, ok)
	assert.Equal(t, diagnostic.SeverityWarning, d.Severity)
}

func TestValidateUnits(t *testing.T) {
	res := Validate(&File{Version: "1", Units: []UnitDef{
		{Name: "a", Symbol: "a", Flavor: "sufix"},
		{Name: "b", Symbol: "b", Flavor: "infix"},
	}})

	require.Len(t, res.Errors, 2)
	assert.Equal(t, CodeUnknownFlavor, res.Errors[0].Code)
	assert.Equal(t, []string{"suffix", "prefix"}, res.Errors[0].Suggestions)
	assert.Equal(t, CodeUnsupportedUnitFlavor, res.Errors[1].Code)
}

func TestValidateNouns(t *testing.T) {
	units := []UnitDef{{Name: "kg", Symbol: "kg", Flavor: "suffix"}, {Name: "lb", Symbol: "lb", Flavor: "suffix"}}

	tests := []struct {
		name        string
		def         NounDef
		code        string
		suggestions []string
	}{
		{"countability", NounDef{Name: "A", Countability: "uncountabel"}, CodeUnknownCountability, []string{"uncountable", "countable"}},
		{"casing", NounDef{Name: "A", Casing: "titel"}, CodeUnknownCasing, []string{"title"}},
		{"unit", NounDef{Name: "A", Unit: "kgs"}, CodeUnknownUnit, []string{"kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&File{Version: "1", Units: units, Nouns: []NounDef{tt.def}})
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Equal(t, tt.suggestions, res.Errors[0].Suggestions)
		})
	}
}
