package argparse

import "errors"

// Every failure surfaced by the package wraps one of these sentinels, so
// callers can dispatch with errors.Is while still seeing the offending
// token or argument in the message.
var (
	// ErrInvalidDeclaration covers malformed names, bad dash decoration
	// and duplicate names at declaration time.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	// ErrUnknownArgument is an input token that matched no declaration.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrMissingValue is an argument given fewer values than its arity.
	ErrMissingValue = errors.New("missing value")
	// ErrMissingRequired is a required argument absent from the input.
	ErrMissingRequired = errors.New("missing required argument")
	// ErrTypeMismatch is a retrieval with the wrong target type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrKeyNotFound is a retrieval of an undeclared name.
	ErrKeyNotFound = errors.New("key not found")
)
