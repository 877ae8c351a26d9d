// Command conjugal renders affixations and conjugates nouns.
//
// Affixes, units and nouns can be declared in a YAML or TOML catalog:
//
//	conjugal render infix absolutely bloody --at 4
//	conjugal --catalog words.yaml apply expletive absolutely fantastic
//	conjugal --catalog words.yaml noun Rock --count 2.5
//	conjugal check words.yaml --output words.toml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
