// Package broken has a misspelled directive key.
package broken

//conjugal:noun plurl:"dice"
type Die int
