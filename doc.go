// Package simplex implements the two-phase simplex method for linear
// programs of the form
//
//	maximize    cᵀx
//	subject to  A x ≤ b,  x ≥ 0
//
// The solver operates on a simplex dictionary: m basic variables
// expressed as affine functions of n non-basic variables, rewritten in
// place by pivot operations until optimality, unboundedness, or
// infeasibility is detected. See Solve for the entry point.
//
// The package does not support equality constraints, variable bounds
// other than x ≥ 0, ranged constraints, sparse matrices, or integer
// constraints. All feasibility and optimality tests are exact
// floating-point comparisons against zero; there is no epsilon.
package simplex
