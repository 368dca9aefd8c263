// Package kepler solves Kepler's equation E - e·sin(E) = M for elliptic orbits.
package kepler

import "math"

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Solver runs a Newton-Raphson iteration on Kepler's equation. The zero value
// uses DefaultTolerance and DefaultMaxIterations.
type Solver struct {
	// Tolerance is the step size |ΔE| below which the iteration stops.
	Tolerance float64
	// MaxIterations caps the number of Newton steps.
	MaxIterations int
}

// Solution is the result of a single Solve call.
type Solution struct {
	E          float64 // eccentric anomaly, radians
	Iterations int
	Converged  bool
}

func Default() Solver {
	return Solver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

func (s Solver) limits() (float64, int) {
	tol, n := s.Tolerance, s.MaxIterations
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if n <= 0 {
		n = DefaultMaxIterations
	}
	return tol, n
}

// Solve returns the eccentric anomaly for mean anomaly M and eccentricity e
// (0 <= e < 1). M is not reduced to [0, 2π), so E keeps the winding of M.
//
// The iteration starts at E = M. Every iterate stays inside [M-e, M+e], which
// always contains the root; a Newton step that leaves the current bracket, or
// that does not at least halve the previous step, is replaced by bisection. If the cap is reached first, the best E is returned
// with Converged unset.
func (s Solver) Solve(M, e float64) Solution {
	tol, maxIter := s.limits()

	lo, hi := M-e, M+e
	E := M
	prev := hi - lo
	for i := 1; i <= maxIter; i++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - M
		switch {
		case f == 0:
			return Solution{E: E, Iterations: i, Converged: true}
		case f < 0:
			lo = E
		default:
			hi = E
		}

		next := E - f/(1-e*cosE)
		if next < lo || next > hi || math.Abs(next-E) > math.Abs(prev)/2 {
			next = lo + (hi-lo)/2
		}

		delta := next - E
		prev = delta
		E = next
		if math.Abs(delta) < tol {
			return Solution{E: E, Iterations: i, Converged: true}
		}
	}

	return Solution{E: E, Iterations: maxIter, Converged: false}
}

// Residual is the error of E in Kepler's equation.
func Residual(E, M, e float64) float64 {
	return E - e*math.Sin(E) - M
}
