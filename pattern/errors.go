package pattern

import (
	err "github.com/rotemdan/grammar-composer/errors"
)

// Error codes for this package are numbered from 1.
const (
	InvalidRegexpError = iota + 1
	MixedGroupsError
)

func invalidRegexpError(source string, cause error) *err.Error {
	return err.Format(InvalidRegexpError, "invalid pattern %q (%s)", source, cause.Error())
}

func mixedGroupsError(source string) *err.Error {
	return err.Format(MixedGroupsError, "pattern %q mixes named and unnamed capture groups", source)
}
