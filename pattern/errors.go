package pattern

import "errors"

// ErrSyntax reports an expression the grammar rejects, including explicit
// zero multiplicities.
var ErrSyntax = errors.New("pattern: invalid expression")
