// Package linsys solves dense linear systems by Gauss-Jordan elimination.
//
// The solver is deliberately lenient: it accepts non-square and rank
// deficient systems and always returns a full-length solution vector.
// Unknowns whose column never receives a pivot are reported as 0. The
// achieved rank, the pivot columns and the leftover residual are exposed
// so callers can tell a determinate solution from an artifact of pivot
// order without the solver ever refusing to answer.
package linsys
