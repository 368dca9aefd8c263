package orrery

import (
	"testing"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

func TestTrailUnbounded(t *testing.T) {
	tr := NewTrail(TrailPolicy{})
	for i := 0; i < 1000; i++ {
		tr.Add(vector.V3{X: float64(i)})
	}
	if tr.Len() != 1000 {
		t.Errorf(`expected 1000 points, got %d`, tr.Len())
	}
	if last, _ := tr.Last(); last.X != 999 {
		t.Errorf(`expected last x=999, got %s`, last)
	}
}

func TestTrailRing(t *testing.T) {
	tr := NewTrail(TrailPolicy{Length: 4})
	if _, ok := tr.Last(); ok {
		t.Errorf(`empty trail has a last point`)
	}

	for i := 0; i < 10; i++ {
		tr.Add(vector.V3{X: float64(i)})
		if last, _ := tr.Last(); last.X != float64(i) {
			t.Errorf(`after adding %d: last=%s`, i, last)
		}
	}

	pts := tr.Points()
	if len(pts) != 4 {
		t.Fatalf(`expected 4 points, got %d`, len(pts))
	}
	for i, p := range pts {
		if p.X != float64(6+i) {
			t.Errorf(`point %d: expected x=%d, got %s`, i, 6+i, p)
		}
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf(`trail not empty after reset`)
	}
	tr.Add(vector.V3{X: 42})
	if pts := tr.Points(); len(pts) != 1 || pts[0].X != 42 {
		t.Errorf(`unexpected points after reset: %v`, pts)
	}
}

func TestTrailSpacing(t *testing.T) {
	tr := NewTrail(TrailPolicy{MinSpacing: 1})
	kept := 0
	for i := 0; i < 100; i++ {
		if tr.Add(vector.V3{X: float64(i) * 0.25}) {
			kept++
		}
	}
	if kept != 25 || tr.Len() != 25 {
		t.Errorf(`expected 25 points, kept %d, len %d`, kept, tr.Len())
	}
}
