// Package other clashes with zoo.
package other

// Animal has the same name as zoo.Animal.
type Animal struct{}
