// Package catalog loads named affixes, units of measure and nouns from a
// static YAML or TOML file.
//
// Example YAML:
//
//	version: "1"
//	affixes:
//	  - name: re
//	    flavor: prefix
//	    morpheme: re
//	  - name: expletive
//	    flavor: infix
//	    morpheme: bloody
//	    at: 4
//	  - name: ge-t
//	    flavor: circumfix
//	    morpheme: ge
//	    morpheme2: t
//	    at: 2
//	units:
//	  - name: kg
//	  - name: head
//	    symbol: 🐑
//	    joiner: " "
//	nouns:
//	  - name: Rock
//	    unit: kg
//	  - name: Die
//	    plural: dice
//	    abbreviation: dX
//	    plural_abbreviation: dXs
//
// Files are checked with Validate, which reports every problem it finds as a
// diagnostic, and turned into ready-to-use values with Build.
package catalog
