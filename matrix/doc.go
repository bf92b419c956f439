// SPDX-License-Identifier: MIT

// Package matrix provides the two numeric containers the rest of the module
// is built on: Dense, a row-major float64 matrix for assignment-solver cost
// tables, and CSR, a compressed-sparse-row float64 matrix for per-channel
// adjacency storage.
//
// Design contract (strict):
//   - Shapes are fixed at construction; only values of a Dense may change.
//   - CSR is immutable: every operation that "modifies" returns a new CSR.
//   - All public accessors are bounds-checked and return sentinel errors;
//     hot loops inside this module use the documented no-copy views instead.
//   - Deterministic everywhere: fixed loop orders, column indices sorted
//     ascending within each CSR row, no map iteration.
//   - CSR stores only finite values; duplicate construction entries
//     accumulate (multigraph multiplicities) and exact-zero sums are dropped.
//   - Dense permits +Inf (the assignment solver's "forbidden pair" marker)
//     and rejects NaN at the Set surface.
//
// Complexity quicksheet:
//   - NewDense O(r*c); At/Set O(1); Transpose/Clone O(r*c).
//   - NewCSR O(nnz log nnz); At O(log nnz_row); Transpose/Add O(nnz);
//     Submatrix O(rows' * nnz_row log nnz_row).
package matrix
