package orrery

import (
	"errors"
	"sort"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"git.c3pb.de/farhaven/solarsystem/kepler"
)

const DefaultSunRadius = 10

// Sun is the central mass. It sits at the origin and does not move.
type Sun struct {
	Radius  float64
	Texture string
}

type Options struct {
	Mu     float64 // G*M of the central mass
	Solver kepler.Solver
	Clock  *Clock
	Trail  TrailPolicy
	Sun    Sun
	Bodies []Elements

	Logger  log.Logger
	Metrics *Metrics
}

// Orrery owns the sun, the orbiting bodies and the simulation clock.
type Orrery struct {
	sun    Sun
	bodies []*Body
	index  map[string]*Body
	clock  *Clock
	prop   *Propagator

	logger  log.Logger
	metrics *Metrics

	l sync.Mutex
}

// New validates the element table and places every body at its position for
// the clock's current time. Invalid elements are reported for all bodies at once.
func New(opts Options) (*Orrery, error) {
	if !finite(opts.Mu) || opts.Mu <= 0 {
		return nil, &ConfigError{Field: `gravitational parameter`, Value: opts.Mu, Reason: `must be positive`}
	}
	if err := validateAll(opts.Bodies); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewClock(DefaultBaseStep, DefaultScaleStep, 1)
	}
	sun := opts.Sun
	if sun.Radius <= 0 {
		sun.Radius = DefaultSunRadius
	}

	els := append([]Elements(nil), opts.Bodies...)
	sort.SliceStable(els, func(i, j int) bool {
		if els[i].SemiMajorAxis != els[j].SemiMajorAxis {
			return els[i].SemiMajorAxis < els[j].SemiMajorAxis
		}
		return els[i].ID < els[j].ID
	})

	o := &Orrery{
		sun:     sun,
		index:   make(map[string]*Body, len(els)),
		clock:   clock,
		prop:    NewPropagator(opts.Mu, opts.Solver, logger, opts.Metrics),
		logger:  logger,
		metrics: opts.Metrics,
	}

	for _, el := range els {
		b := NewBody(el, opts.Trail)
		if err := o.place(b); err != nil {
			return nil, err
		}
		o.bodies = append(o.bodies, b)
		o.index[el.ID] = b
	}

	return o, nil
}

// place puts b at its position for the current simulated time without
// rotating it or touching its trail.
func (o *Orrery) place(b *Body) error {
	st, err := o.prop.State(b.Elements, o.clock.SimTime())
	if err != nil {
		return err
	}
	b.Pos, b.Vel = st.Pos, st.Vel
	return nil
}

func (o *Orrery) Clock() *Clock {
	return o.clock
}

func (o *Orrery) Propagator() *Propagator {
	return o.prop
}

// Tick advances simulated time by baseStep*dtScale and then propagates every
// body to the new time. A body whose elements turn out to be invalid is halted
// and the others continue; the errors of bodies halted in this tick are returned.
func (o *Orrery) Tick(dtScale float64) error {
	o.l.Lock()
	defer o.l.Unlock()

	t := o.clock.Advance(dtScale)

	var errs []error
	for _, b := range o.bodies {
		if b.Halted() {
			continue
		}
		if err := o.prop.Advance(b, t); err != nil {
			b.Err = err
			errs = append(errs, err)

			level.Error(o.logger).Log("msg", "body halted", "body", b.ID, "err", err)
			if o.metrics != nil {
				o.metrics.Halted.WithLabelValues(b.ID).Inc()
			}
		}
	}

	if o.metrics != nil {
		o.metrics.Ticks.Inc()
		o.metrics.SimTime.Set(t)
		o.metrics.TimeScale.Set(o.clock.TimeScale())
	}

	return errors.Join(errs...)
}

// Step ticks with the clock's own time scale.
func (o *Orrery) Step() error {
	return o.Tick(o.clock.TimeScale())
}

func (o *Orrery) ClearTrails() {
	o.l.Lock()
	defer o.l.Unlock()

	o.clearTrails()
}

func (o *Orrery) clearTrails() {
	for _, b := range o.bodies {
		b.Trail.Reset()
		if o.metrics != nil {
			o.metrics.TrailPoints.WithLabelValues(b.ID).Set(0)
		}
	}
}

// Reset rewinds simulated time to zero, clears all trails and moves the
// running bodies back to their starting positions.
func (o *Orrery) Reset() {
	o.l.Lock()
	defer o.l.Unlock()

	o.clock.Reset(0)
	o.clearTrails()

	for _, b := range o.bodies {
		if b.Halted() {
			continue
		}
		if err := o.place(b); err != nil {
			b.Err = err
		}
	}
}
