// Package analyze loads Go packages and proposes catalog nouns for their
// exported types.
//
// It uses golang.org/x/tools/go/packages to read type declarations together
// with their doc comments. A type can refine or suppress its entry with a
// directive in its doc comment:
//
//	//conjugal:noun plural:"dice" abbreviation:"d"
//	type Die int
//
//	//conjugal:noun -
//	type Internal struct{}
//
// Directive keys are the snake_case field names of a catalog noun.
package analyze
