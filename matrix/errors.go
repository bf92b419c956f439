// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the matrix package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX), never string compares.
//   - Sentinels are never pre-wrapped; implementations attach context with %w.

package matrix

import "errors"

// ErrInvalidDimensions reports a negative row or column count, or a data
// slice whose length disagrees with the declared shape.
// Usage: if errors.Is(err, ErrInvalidDimensions) { /* reject shape */ }.
var ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

// ErrOutOfRange reports an index outside [0,rows) x [0,cols).
var ErrOutOfRange = errors.New("matrix: index out of range")

// ErrNaNInf reports a value the target container refuses to store:
// NaN anywhere, and +/-Inf in CSR (adjacency multiplicities must be finite).
var ErrNaNInf = errors.New("matrix: non-finite value")

// ErrShapeMismatch reports two matrices whose shapes must agree but do not
// (elementwise Add, and similar binary operations).
var ErrShapeMismatch = errors.New("matrix: shape mismatch")
