// Package truss computes support reactions and axial member forces of a
// statically loaded 2D pin-jointed truss.
//
// A solve runs in four steps, each exposed on its own:
//
//	dofs := Classify(m.Nodes)        // number the reaction unknowns
//	sys := Assemble(m, dofs)         // 2N equilibrium equations
//	sol := linsys.Solve(sys.A, sys.B)
//	res := Extract(dofs, sys, sol)   // reactions and member forces
//
// Solve runs all four. Each call works on its own copy of the data and
// keeps no state, so independent models can be solved concurrently.
//
// Sign convention: member forces are positive in tension. Reactions are
// the forces the supports exert on the structure, in global axes.
//
// Statically indeterminate or unstable trusses are not rejected. Unknowns
// left without a pivot are reported as 0 and the result reflects the
// pivot order of the elimination, not a physical redistribution of force.
// Diagnostics.Determinacy flags these cases.
package truss
