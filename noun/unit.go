package noun

import (
	"fmt"
	"strconv"

	"conjugal/affix"
)

// UnitOfMeasure is attached to quantities when they are written out: "2kg", "3 🐑".
type UnitOfMeasure struct {
	Name   string
	Symbol string
	Joiner string
	// Flavor is FlavorSuffix or FlavorPrefix; the zero value means FlavorSuffix.
	Flavor affix.Flavor
}

// NewUnit returns a suffix unit whose name doubles as its symbol.
func NewUnit(nameAndSymbol, joiner string) UnitOfMeasure {
	return UnitOfMeasure{Name: nameAndSymbol, Symbol: nameAndSymbol, Joiner: joiner, Flavor: affix.FlavorSuffix}
}

// Affix returns the affix that attaches the symbol to a quantity.
func (u UnitOfMeasure) Affix() (affix.Affix, error) {
	switch u.Flavor {
	case 0, affix.FlavorSuffix:
		return affix.NewSuffix(u.Symbol, u.Joiner), nil
	case affix.FlavorPrefix:
		return affix.NewPrefix(u.Symbol, u.Joiner), nil
	default:
		return affix.Affix{}, fmt.Errorf("%w: %s has flavor %s", ErrUnsupportedUnitFlavor, u, u.Flavor)
	}
}

// Format writes quantity with the unit symbol attached.
func (u UnitOfMeasure) Format(quantity float64) (string, error) {
	a, err := u.Affix()
	if err != nil {
		return "", err
	}

	return a.WithStem(formatQuantity(quantity)).Render()
}

// String returns "name (symbol)".
func (u UnitOfMeasure) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Symbol)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
