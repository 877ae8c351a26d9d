package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsertionPointInvariant(t *testing.T) {
	tests := []struct {
		name    string
		flavor  Flavor
		at      Index
		wantErr error
	}{
		{"prefix without index", FlavorPrefix, NoIndex, nil},
		{"prefix with index", FlavorPrefix, Start, ErrInsertionPointForbidden},
		{"suffix without index", FlavorSuffix, NoIndex, nil},
		{"suffix with index", FlavorSuffix, End, ErrInsertionPointForbidden},
		{"infix with index", FlavorInfix, At(2), nil},
		{"infix without index", FlavorInfix, NoIndex, ErrInsertionPointRequired},
		{"circumfix with index", FlavorCircumfix, At(1), nil},
		{"circumfix without index", FlavorCircumfix, NoIndex, ErrInsertionPointRequired},
		{"ambifix without index", FlavorAmbifix, NoIndex, nil},
		{"ambifix with index", FlavorAmbifix, At(1), ErrInsertionPointForbidden},
		{"duplifix without index", FlavorDuplifix, NoIndex, nil},
		{"duplifix with index", FlavorDuplifix, At(0), ErrInsertionPointForbidden},
		{"transfix", FlavorTransfix, NoIndex, ErrFlavorNotImplemented},
		{"disfix", FlavorDisfix, At(1), ErrFlavorNotImplemented},
		{"unknown", Flavor(77), NoIndex, ErrUnknownFlavor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.flavor, "m", "n", "-", tt.at)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Affix{}, a)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.flavor, a.Flavor())
		})
	}
}

func TestNewErrorMessages(t *testing.T) {
	_, err := New(FlavorInfix, "swag", "", "", NoIndex)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flavor Infix requires an insertion point but none was given")

	_, err = New(FlavorPrefix, "re", "", "", At(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flavor Prefix must not have an insertion point, but 1 was given")
}

func TestNewDefaults(t *testing.T) {
	prefix, err := New(FlavorPrefix, "re", "", "", NoIndex)
	require.NoError(t, err)
	assert.Equal(t, Start, prefix.InsertionPoint())

	suffix, err := New(FlavorSuffix, "ly", "", "", NoIndex)
	require.NoError(t, err)
	assert.Equal(t, End, suffix.InsertionPoint())

	duplifix, err := New(FlavorDuplifix, "", "", "-", NoIndex)
	require.NoError(t, err)
	assert.Equal(t, End, duplifix.InsertionPoint())

	ambifix, err := New(FlavorAmbifix, "en", "ignored", "", NoIndex)
	require.NoError(t, err)
	assert.Equal(t, "en", ambifix.BoundMorpheme2())
	assert.Equal(t, NoIndex, ambifix.InsertionPoint())
}

func TestNewAllowsEmptyParts(t *testing.T) {
	a, err := New(FlavorSuffix, "", "", "", NoIndex)
	require.NoError(t, err)
	assert.Equal(t, "", a.BoundMorpheme())
	assert.Equal(t, "", a.Joiner())
}

func TestNamedConstructorsMatchNew(t *testing.T) {
	viaNew := func(flavor Flavor, m, m2, j string, at Index) Affix {
		a, err := New(flavor, m, m2, j, at)
		require.NoError(t, err)

		return a
	}

	infix, err := NewInfix("swag", At(2), "-")
	require.NoError(t, err)

	assert.Equal(t, viaNew(FlavorPrefix, "re", "", "-", NoIndex), NewPrefix("re", "-"))
	assert.Equal(t, viaNew(FlavorSuffix, "ly", "", "", NoIndex), NewSuffix("ly", ""))
	assert.Equal(t, viaNew(FlavorInfix, "swag", "", "-", At(2)), infix)
	assert.Equal(t, viaNew(FlavorCircumfix, "em", "en", "", At(2)), NewCircumfix("em", "en", ""))
	assert.Equal(t, viaNew(FlavorAmbifix, "en", "en", "", NoIndex), NewAmbifix("en", ""))
	assert.Equal(t, viaNew(FlavorDuplifix, "", "", "-", NoIndex), NewDuplifix("-"))
}

func TestIdempotentConstruction(t *testing.T) {
	a1, err := New(FlavorInfix, "iz", "", "", At(1))
	require.NoError(t, err)

	a2, err := New(FlavorInfix, "iz", "", "", At(1))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.True(t, a1 == a2)
	assert.True(t, a1.WithStem("house") == a2.WithStem("house"))
}

func TestSplitCircumfix(t *testing.T) {
	a, err := SplitCircumfix("emen", At(2), "")
	require.NoError(t, err)
	assert.Equal(t, "em", a.BoundMorpheme())
	assert.Equal(t, "en", a.BoundMorpheme2())
	assert.Equal(t, NewCircumfix("em", "en", ""), a)
	assert.Equal(t, "embooben", a.WithStem("boob").MustRender())

	fromEnd, err := SplitCircumfix("emen", At(-2), "")
	require.NoError(t, err)
	assert.Equal(t, "em", fromEnd.BoundMorpheme())

	_, err = SplitCircumfix("emen", At(5), "")
	require.ErrorIs(t, err, ErrInsertionPointOutOfRange)
}

func TestAffixDescribe(t *testing.T) {
	assert.Equal(t, "Suffix: 'ly', '', Joiner: '#', InsertionPoint: '^0'", NewSuffix("ly", "#").Describe())
}
