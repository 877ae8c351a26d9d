package noun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conjugal/affix"
)

func TestUnitFormat(t *testing.T) {
	tests := []struct {
		name     string
		unit     UnitOfMeasure
		quantity float64
		expected string
	}{
		{"suffix", NewUnit("kg", ""), 2, "2kg"},
		{"fraction", NewUnit("kg", ""), 1.5, "1.5kg"},
		{"zero", NewUnit("kg", ""), 0, "0kg"},
		{"negative", NewUnit("°C", ""), -3, "-3°C"},
		{"spaced", UnitOfMeasure{Name: "head", Symbol: "🐑", Joiner: " "}, 2, "2 🐑"},
		{"prefix", UnitOfMeasure{Name: "dollar", Symbol: "$", Flavor: affix.FlavorPrefix}, 5, "$5"},
		{"empty symbol", NewUnit("", "-"), 3, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.unit.Format(tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestUnitUnsupportedFlavor(t *testing.T) {
	u := UnitOfMeasure{Name: "x", Symbol: "x", Flavor: affix.FlavorInfix}

	_, err := u.Affix()
	require.ErrorIs(t, err, ErrUnsupportedUnitFlavor)

	_, err = u.Format(1)
	require.ErrorIs(t, err, ErrUnsupportedUnitFlavor)
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "head (🐑)", UnitOfMeasure{Name: "head", Symbol: "🐑"}.String())
}
