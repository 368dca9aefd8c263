package orrery

import "git.c3pb.de/farhaven/solarsystem/vector"

// BodyState is a copy of a body's state for the renderer.
type BodyState struct {
	ID       string
	Mass     float64
	Radius   float64
	Texture  string
	Period   float64
	Pos      vector.V3
	Vel      vector.V3
	Rotation float64
	Trail    []vector.V3
	Halted   bool
	Err      string
}

type SunState struct {
	Pos     vector.V3
	Radius  float64
	Texture string
}

// Snapshot is a read-only view of the scene. It shares no memory with the orrery.
type Snapshot struct {
	SimTime   float64
	TimeScale float64
	Sun       SunState
	Bodies    []BodyState
}

func (o *Orrery) state(b *Body) BodyState {
	s := BodyState{
		ID:       b.ID,
		Mass:     b.Mass,
		Radius:   b.Radius,
		Texture:  b.Texture,
		Period:   o.prop.Period(b.SemiMajorAxis),
		Pos:      b.Pos,
		Vel:      b.Vel,
		Rotation: b.Rotation,
		Trail:    b.Trail.Points(),
		Halted:   b.Halted(),
	}
	if b.Err != nil {
		s.Err = b.Err.Error()
	}
	return s
}

func (o *Orrery) Snapshot() Snapshot {
	o.l.Lock()
	defer o.l.Unlock()

	s := Snapshot{
		SimTime:   o.clock.SimTime(),
		TimeScale: o.clock.TimeScale(),
		Sun:       SunState{Radius: o.sun.Radius, Texture: o.sun.Texture},
		Bodies:    make([]BodyState, 0, len(o.bodies)),
	}
	for _, b := range o.bodies {
		s.Bodies = append(s.Bodies, o.state(b))
	}

	return s
}

// Body returns the state of the body with the given identifier.
func (o *Orrery) Body(id string) (BodyState, bool) {
	o.l.Lock()
	defer o.l.Unlock()

	b, ok := o.index[id]
	if !ok {
		return BodyState{}, false
	}
	return o.state(b), true
}

// IDs lists the body identifiers in iteration order.
func (o *Orrery) IDs() []string {
	o.l.Lock()
	defer o.l.Unlock()

	r := make([]string, len(o.bodies))
	for i, b := range o.bodies {
		r[i] = b.ID
	}
	return r
}
