// Package diagnostic collects structured errors, warnings and notes found
// while validating a catalog, so that every problem is reported at once
// instead of stopping at the first.
package diagnostic
