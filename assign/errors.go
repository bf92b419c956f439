// errors.go — sentinel errors for the assign package.
//
// Error policy:
//   - Callers branch with errors.Is; sentinels are never pre-wrapped.
//   - ErrInfeasible is a result, not misuse: ConstrainedCosts absorbs it
//     into +Inf entries, Solve surfaces it.

package assign

import "errors"

// ErrInfeasible reports a cost matrix admitting no complete assignment of
// every row to a distinct column with finite total cost.
var ErrInfeasible = errors.New("assign: cost matrix is infeasible")

// ErrInvalidCost reports a NaN or -Inf cost entry. +Inf is legal and marks
// a forbidden pair.
var ErrInvalidCost = errors.New("assign: invalid cost entry")

// ErrBadShape reports a nil cost matrix or a constraint index outside it.
var ErrBadShape = errors.New("assign: bad shape")
