package orrery

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

// Body is the mutable state of one orbiting body. Pos and Vel are derived
// from the elements and the simulated time only; Rotation and Trail are
// bookkeeping for the renderer.
type Body struct {
	Elements

	Pos      vector.V3
	Vel      vector.V3
	Rotation float64 // degrees in [0, 360)
	Trail    *Trail

	// Err is set once propagation failed; the body is not advanced afterwards.
	Err error

	warn rate.Sometimes
}

func NewBody(el Elements, p TrailPolicy) *Body {
	return &Body{
		Elements: el,
		Trail:    NewTrail(p),
		warn:     rate.Sometimes{First: 1, Interval: 10 * time.Second},
	}
}

func (b *Body) String() string {
	return fmt.Sprintf(`%s: a:%.2f, e:%.4f, Pos:%s, Vel:%s, Rot:%.1f`, b.ID, b.SemiMajorAxis, b.Eccentricity, b.Pos, b.Vel, b.Rotation)
}

func (b *Body) Halted() bool {
	return b.Err != nil
}

// rotate advances the self-rotation by one tick and wraps it into [0, 360).
func (b *Body) rotate() {
	b.Rotation = wrapDegrees(b.Rotation + b.RotationSpeed)
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// -tiny+360 rounds to 360
	if d >= 360 {
		d = 0
	}
	return d
}
