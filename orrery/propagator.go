package orrery

import (
	"math"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"git.c3pb.de/farhaven/solarsystem/kepler"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

// State is the closed-form position and velocity of a body at one instant.
type State struct {
	Pos         vector.V3
	Vel         vector.V3
	R           float64 // distance from the central mass
	MeanAnomaly float64
	Kepler      kepler.Solution
}

// Propagator computes body states around a fixed central mass with
// gravitational parameter Mu = G*M.
type Propagator struct {
	Mu     float64
	Solver kepler.Solver

	logger  log.Logger
	metrics *Metrics
}

// NewPropagator returns a propagator. logger and m may be nil.
func NewPropagator(mu float64, s kepler.Solver, logger log.Logger, m *Metrics) *Propagator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Propagator{Mu: mu, Solver: s, logger: logger, metrics: m}
}

// Period is the orbital period 2π·√(a³/μ).
func (p *Propagator) Period(a float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/p.Mu)
}

// State returns position and velocity at simTime. It depends on nothing but
// its arguments and p, so the same inputs always give the same state.
//
// The mean anomaly is not wrapped. The orbit runs counter-clockwise in the
// x/y plane; velocity points along (-sin E, cos E).
func (p *Propagator) State(el Elements, simTime float64) (State, error) {
	if !finite(p.Mu) || p.Mu <= 0 {
		return State{}, &ConfigError{Body: el.ID, Field: `gravitational parameter`, Value: p.Mu, Reason: `must be positive`}
	}
	if err := el.Validate(); err != nil {
		return State{}, err
	}

	a, e := el.SemiMajorAxis, el.Eccentricity

	M := 2 * math.Pi * simTime / p.Period(a)
	sol := p.Solver.Solve(M, e)
	sinE, cosE := math.Sincos(sol.E)

	r := a * (1 - e*e) / (1 + e*cosE)
	if !(r > 0) {
		return State{}, &ConfigError{Body: el.ID, Field: `radius vector`, Value: r, Reason: `must be positive`}
	}

	radicand := 2/r - 1/a
	if radicand < 0 {
		return State{}, &ConfigError{Body: el.ID, Field: `vis-viva radicand`, Value: radicand, Reason: `orbit is not bound`}
	}
	v := math.Sqrt(p.Mu * radicand)

	st := State{
		Pos:         vector.V3{X: r * cosE, Y: r * sinE},
		Vel:         vector.V3{X: -v * sinE, Y: v * cosE},
		R:           r,
		MeanAnomaly: M,
		Kepler:      sol,
	}
	if !st.Pos.IsFinite() || !st.Vel.IsFinite() {
		return State{}, &ConfigError{Body: el.ID, Field: `simulated time`, Value: simTime, Reason: `state is not finite`}
	}

	return st, nil
}

// Advance moves b to simTime, turns it by one rotation step and records the
// new position in its trail. On error b is left untouched.
func (p *Propagator) Advance(b *Body, simTime float64) error {
	st, err := p.State(b.Elements, simTime)
	if err != nil {
		return err
	}

	if !st.Kepler.Converged {
		if p.metrics != nil {
			p.metrics.NonConverged.WithLabelValues(b.ID).Inc()
		}
		b.warn.Do(func() {
			level.Warn(p.logger).Log(
				"msg", "kepler solver hit iteration cap",
				"body", b.ID,
				"M", st.MeanAnomaly,
				"e", b.Eccentricity,
				"iterations", st.Kepler.Iterations,
				"residual", kepler.Residual(st.Kepler.E, st.MeanAnomaly, b.Eccentricity),
			)
		})
	}

	b.Pos, b.Vel = st.Pos, st.Vel
	b.rotate()
	b.Trail.Add(b.Pos)

	if p.metrics != nil {
		p.metrics.TrailPoints.WithLabelValues(b.ID).Set(float64(b.Trail.Len()))
	}

	return nil
}
