// Package alldiff counts the solutions of alldifferent constraint systems:
// given one candidate set per variable, how many ways can every variable
// take a value from its set with no value used twice.
//
// Variables whose candidate sets never overlap cannot interact, so the
// counter first splits the system into connected components and multiplies
// the per-component counts. Within a component it backtracks, always
// branching on the most constrained remaining variable.
//
// CountGrouped treats a block of interchangeable variables sharing one
// candidate set as a single group: it enumerates unordered value selections
// per group and multiplies by the group-size factorials, which is the same
// number the flat counter would produce without the duplicated branches.
//
// Counts are int64 and overflow unchecked; systems large enough to overflow
// are out of reach of the backtracking search long before that.
package alldiff
