package noun

import "errors"

var (
	// ErrUnknownCountability is returned for a Countability value outside the declared set.
	ErrUnknownCountability = errors.New("noun: unknown countability")

	// ErrCollectiveNotImplemented is returned when a collective noun has to be pluralized.
	ErrCollectiveNotImplemented = errors.New("noun: collective nouns are not implemented")

	// ErrUnsupportedUnitFlavor is returned when a unit of measure is attached with a flavor other than Prefix or Suffix.
	ErrUnsupportedUnitFlavor = errors.New("noun: unit of measure must be a prefix or a suffix")

	// ErrNoLemma is returned when a descriptor has neither a lemma nor a name to derive one from.
	ErrNoLemma = errors.New("noun: no lemma")

	// ErrNotRegistered is returned when a type has no descriptor in a registry.
	ErrNotRegistered = errors.New("noun: type not registered")

	// ErrNilType is returned when a nil reflect.Type is registered.
	ErrNilType = errors.New("noun: nil type")

	// ErrAlreadyRegistered is returned when a type is registered twice.
	ErrAlreadyRegistered = errors.New("noun: type already registered")
)
