// Package assign solves rectangular linear sum assignment problems (LSAP)
// and the forced-pair variant the matching filters consume.
//
// # Solve: rectangular LSAP
//
// Solve finds a minimum-total-cost assignment of rows to distinct columns of
// a float64 cost matrix via shortest augmenting paths with dual potentials.
// +Inf entries mark forbidden pairs; a matrix admitting no complete
// assignment yields ErrInfeasible. Tie handling is fixed: candidate columns
// are scanned so that equal-cost alternatives prefer a fresh (unassigned)
// sink, and a constant matrix assigns the identity.
//
// # ConstrainedCost / ConstrainedCosts: forced pairs
//
// ConstrainedCost(i, j, costs) is the cheapest total assignment subject to
// row i taking column j, +Inf when no such assignment exists.
// ConstrainedCosts computes that value for every cell at once: one base
// solve plus cheap per-cell repairs (cheapest-column tables, a per-row
// re-optimization when the freed column can help another row, and a rare
// per-cell fallback solve), instead of r*c independent solves. The output is
// exactly the matrix of ConstrainedCost values; an infeasible base problem
// yields an all-+Inf matrix rather than an error.
//
// Costs must be free of NaN and -Inf (ErrInvalidCost). All routines are
// deterministic.
//
// Complexity: Solve O(r^2 * c); ConstrainedCosts O(r^2 * c) typical, with
// the fallback adding isolated O(r^3) solves on adversarial ties.
package assign
