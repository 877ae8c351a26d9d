// Package casing applies English letter casing to words and phrases.
package casing
