package grammar

import (
	err "github.com/rotemdan/grammar-composer/errors"
)

// Error codes for this package are numbered from 1.
// Builder operators panic with one of these rather than returning an
// error: a malformed operator call (an empty string terminal, an anyOf
// with no branches) is a programming mistake in a grammar definition that
// is normally written once as Go source and never touches untrusted
// input, the same way regexp.MustCompile panics rather than erroring.
const (
	EmptyLiteralError = iota + 1
	EmptyChoiceError
	InvalidProductionError
)

func emptyLiteralError() *err.Error {
	return err.Format(EmptyLiteralError, "string terminal must not be empty")
}

func emptyChoiceError(exhaustive bool) *err.Error {
	name := "anyOf"
	if exhaustive {
		name = "bestOf"
	}
	return err.Format(EmptyChoiceError, "%s must have at least one member", name)
}

func invalidProductionError(p any) *err.Error {
	return err.Format(InvalidProductionError, "invalid production value of type %T", p)
}
