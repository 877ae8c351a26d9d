package affix

import "errors"

var (
	// ErrUnknownFlavor is returned for a Flavor value outside the declared set.
	ErrUnknownFlavor = errors.New("affix: unknown flavor")

	// ErrFlavorNotImplemented is returned for declared flavors that have no rendering rule.
	ErrFlavorNotImplemented = errors.New("affix: flavor not implemented")

	// ErrInsertionPointRequired is returned when a flavor needs an insertion point and none was given.
	ErrInsertionPointRequired = errors.New("affix: insertion point required")

	// ErrInsertionPointForbidden is returned when a flavor takes no insertion point but one was given.
	ErrInsertionPointForbidden = errors.New("affix: insertion point not allowed")

	// ErrInsertionPointOutOfRange is returned when an insertion point does not resolve inside the stem.
	ErrInsertionPointOutOfRange = errors.New("affix: insertion point out of range")

	// ErrUnknownJoiner is returned for a Joiner value outside the declared set.
	ErrUnknownJoiner = errors.New("affix: unknown joiner")
)
