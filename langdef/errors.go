package langdef

import (
	"strings"

	err "github.com/rotemdan/grammar-composer/errors"
)

const (
	MissingStartError = iota + 1
	UnresolvedReferenceError
	LeftRecursionError
)

func missingStartError(name string) *err.Error {
	return err.Format(MissingStartError, "couldn't find start production %q", name)
}

func unresolvedReferenceError(names []string) *err.Error {
	return err.Format(UnresolvedReferenceError, "unresolved production references: %s", strings.Join(names, ", "))
}

func recursionError(name string) *err.Error {
	return err.Format(LeftRecursionError, "detected left recursion for nonterminal '%s'", name)
}
