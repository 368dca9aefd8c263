package orrery

import "git.c3pb.de/farhaven/solarsystem/vector"

// TrailPolicy bounds the trajectory kept for drawing.
type TrailPolicy struct {
	// Length is the maximum number of points; older points are overwritten.
	// Zero keeps every point.
	Length int
	// MinSpacing drops a point closer than this to the previous one. Zero
	// records every tick.
	MinSpacing float64
}

// Trail is the visual trajectory of a body. It is not used for propagation.
type Trail struct {
	policy TrailPolicy
	points []vector.V3
	start  int
}

func NewTrail(p TrailPolicy) *Trail {
	t := &Trail{policy: p}
	if p.Length > 0 {
		t.points = make([]vector.V3, 0, p.Length)
	}
	return t
}

func (t *Trail) Len() int {
	return len(t.points)
}

// Last returns the most recently added point.
func (t *Trail) Last() (vector.V3, bool) {
	if len(t.points) == 0 {
		return vector.V3{}, false
	}
	if t.start == 0 {
		return t.points[len(t.points)-1], true
	}
	return t.points[t.start-1], true
}

// Add records p and reports whether it was kept.
func (t *Trail) Add(p vector.V3) bool {
	if last, ok := t.Last(); ok && t.policy.MinSpacing > 0 && p.Distance(last) < t.policy.MinSpacing {
		return false
	}

	if t.policy.Length == 0 || len(t.points) < t.policy.Length {
		t.points = append(t.points, p)
		return true
	}

	t.points[t.start] = p
	t.start = (t.start + 1) % t.policy.Length
	return true
}

// Points returns a copy of the trail, oldest point first.
func (t *Trail) Points() []vector.V3 {
	r := make([]vector.V3, 0, len(t.points))
	r = append(r, t.points[t.start:]...)
	return append(r, t.points[:t.start]...)
}

func (t *Trail) Reset() {
	t.points = t.points[:0]
	t.start = 0
}
