// Package zoo is scanned by the analyze tests.
package zoo

// Animal is a plain struct.
type Animal struct {
	Name string
}

// Sheep never changes.
//
//conjugal:noun countability:"uncountable"
type Sheep struct{}

//conjugal:noun plural:"dice" abbreviation:"d"
type Die int

// Mood is an enum and not a noun.
type Mood int

//conjugal:noun -
type Internal struct{}

type hidden struct{}

// Feeder feeds animals.
type Feeder interface {
	Feed(a Animal) hidden
}

type (
	// MarioBrother is declared in a group.
	//
	//conjugal:noun proper_noun:"true" casing:"sentence"
	MarioBrother struct{}

	// Herd is a collection.
	Herd []Animal
)

// Beast is an alias.
type Beast = Animal
