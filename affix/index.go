package affix

import (
	"fmt"
	"strconv"
)

// Index is an insertion point inside a stem, counted in runes either from the
// start or from the end of the stem. The zero value is NoIndex.
type Index struct {
	offset  int
	fromEnd bool
	set     bool
}

var (
	// NoIndex means "no insertion point was given".
	NoIndex = Index{}
	// Start is the position before the first rune.
	Start = FromStart(0)
	// End is the position after the last rune.
	End = FromEnd(0)
)

// FromStart returns the index n runes after the start.
func FromStart(n int) Index {
	return Index{offset: n, set: true}
}

// FromEnd returns the index n runes before the end.
func FromEnd(n int) Index {
	return Index{offset: n, fromEnd: true, set: true}
}

// At returns a Python-style index: negative values count back from the end,
// so At(-1) is FromEnd(1).
func At(n int) Index {
	if n < 0 {
		return FromEnd(-n)
	}

	return FromStart(n)
}

// IsSet reports whether the index was explicitly given.
func (i Index) IsSet() bool {
	return i.set
}

// IsFromEnd reports whether the index counts back from the end.
func (i Index) IsFromEnd() bool {
	return i.fromEnd
}

// Offset returns the raw offset, relative to the start or the end.
func (i Index) Offset() int {
	return i.offset
}

// Resolve returns the absolute position for a sequence of the given length.
// The result lies in [0, length]; anything else is ErrInsertionPointOutOfRange.
func (i Index) Resolve(length int) (int, error) {
	if !i.set {
		return 0, fmt.Errorf("%w: no insertion point to resolve", ErrInsertionPointOutOfRange)
	}

	pos := i.offset
	if i.fromEnd {
		pos = length - i.offset
	}

	if i.offset < 0 || pos < 0 || pos > length {
		return 0, fmt.Errorf("%w: %s is outside a stem of length %d", ErrInsertionPointOutOfRange, i, length)
	}

	return pos, nil
}

// String returns "2" for FromStart(2), "^2" for FromEnd(2) and "∅" for NoIndex.
func (i Index) String() string {
	switch {
	case !i.set:
		return "∅"
	case i.fromEnd:
		return "^" + strconv.Itoa(i.offset)
	default:
		return strconv.Itoa(i.offset)
	}
}
