package catalog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conjugal/affix"
	"conjugal/internal/diagnostic"
	"conjugal/noun"
)

func buildTestdata(t *testing.T, path string) *Catalog {
	t.Helper()

	f, err := LoadFile(path)
	require.NoError(t, err)

	c, err := Build(f, nil)
	require.NoError(t, err)

	return c
}

func TestBuildApply(t *testing.T) {
	c := buildTestdata(t, "testdata/words.yaml")

	tests := []struct {
		affix    string
		stem     string
		expected string
	}{
		{"re", "fettle", "refettle"},
		{"ly", "funny", "funnyly"},
		{"expletive", "absolutely", "absobloodylutely"},
		{"em-en", "boob", "embooben"},
		{"ge-t", "mach", "gemacht"},
		{"en", "cold", "encolden"},
		{"reduplicate", "bye", "bye-bye"},
		{"re", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.affix+"/"+tt.stem, func(t *testing.T) {
			out, err := c.Apply(tt.affix, tt.stem)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := c.Apply("expletive", "abs")
	require.ErrorIs(t, err, affix.ErrInsertionPointOutOfRange)
}

func TestBuildTOML(t *testing.T) {
	c := buildTestdata(t, "testdata/words.toml")

	out, err := c.Apply("back", "bamboo")
	require.NoError(t, err)
	assert.Equal(t, "bamb-oo", out)

	mario, err := c.Noun("MarioBrother")
	require.NoError(t, err)
	assert.Equal(t, "Mario brother", mario.Lemma)
	assert.Equal(t, "Mario bros.", mario.Abbreviate(3))
}

func TestBuildNouns(t *testing.T) {
	c := buildTestdata(t, "testdata/words.yaml")

	assert.Equal(t, []string{"Die", "Rock", "Sheep", "ImportantThing", "save datum"}, c.NounNames())

	tests := []struct {
		noun     string
		quantity float64
		expected string
	}{
		{"Die", 2, "2 dice"},
		{"Die", 1, "1 die"},
		{"Rock", 2.5, "2.5kg"},
		{"Sheep", 3, "3 🐑"},
		{"ImportantThing", 2, "2 Important Things"},
		{"save datum", 0, "0 save data"},
	}

	for _, tt := range tests {
		t.Run(tt.noun, func(t *testing.T) {
			n, err := c.Noun(tt.noun)
			require.NoError(t, err)

			out, err := n.Quantify(tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestBuildUnits(t *testing.T) {
	c := buildTestdata(t, "testdata/words.yaml")

	assert.Equal(t, []string{"kg", "head", "dollar"}, c.UnitNames())

	dollar, err := c.Unit("dollar")
	require.NoError(t, err)

	out, err := dollar.Format(5)
	require.NoError(t, err)
	assert.Equal(t, "$5", out)
}

func TestBuildUnknownNames(t *testing.T) {
	c := buildTestdata(t, "testdata/words.yaml")

	_, err := c.Apply("expletiv", "x")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), `did you mean "expletive"?`)

	_, err = c.Noun("Dye")
	require.ErrorIs(t, err, ErrUnknownName)

	_, err = c.Unit("zz")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestBuildRejectsInvalid(t *testing.T) {
	_, err := Build(&File{Version: "1", Affixes: []AffixDef{{Name: "a", Flavor: "sufix"}}}, nil)
	require.ErrorIs(t, err, diagnostic.ErrInvalid)
	assert.Contains(t, err.Error(), "unknown_flavor")
}

func TestBuildWithInflector(t *testing.T) {
	f := &File{Version: "1", Nouns: []NounDef{{Name: "Cactus"}}}

	c, err := Build(f, noun.Overrides{Plurals: map[string]string{"cactus": "cacti"}})
	require.NoError(t, err)

	n, err := c.Noun("Cactus")
	require.NoError(t, err)
	assert.Equal(t, "cacti", n.Plural)
}

type rock struct{}

func TestCatalogRegister(t *testing.T) {
	c := buildTestdata(t, "testdata/words.yaml")
	r := noun.NewRegistry(nil)

	require.NoError(t, c.Register(r, reflect.TypeFor[rock](), "Rock"))

	n, err := noun.Conjugate[rock](r)
	require.NoError(t, err)

	out, err := n.Quantify(4)
	require.NoError(t, err)
	assert.Equal(t, "4kg", out)

	require.ErrorIs(t, c.Register(r, reflect.TypeFor[rock](), "Pebble"), ErrUnknownName)
}
