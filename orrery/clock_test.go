package orrery

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestClock(t *testing.T) {
	c := NewClock(0, 0, 1)
	if c.BaseStep() != DefaultBaseStep {
		t.Errorf(`expected default base step, got %f`, c.BaseStep())
	}

	c.Advance(c.TimeScale())
	if !scalar.EqualWithinAbs(c.SimTime(), 0.1, 1e-15) {
		t.Errorf(`expected 0.1, got %f`, c.SimTime())
	}

	c.Slower()
	c.Slower()
	c.Slower()
	if !scalar.EqualWithinAbs(c.TimeScale(), -0.2, 1e-12) {
		t.Errorf(`expected time scale -0.2, got %f`, c.TimeScale())
	}
	c.Advance(c.TimeScale())
	if !scalar.EqualWithinAbs(c.SimTime(), 0.08, 1e-12) {
		t.Errorf(`expected 0.08, got %f`, c.SimTime())
	}

	c.Faster()
	c.SetTimeScale(3)
	c.Reset(10)
	if c.SimTime() != 10 || c.TimeScale() != 3 {
		t.Errorf(`unexpected clock %+v`, c)
	}
}

func TestWrapDegrees(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{
		{0, 0}, {359.5, 359.5}, {360, 0}, {725, 5}, {-10, 350}, {-1e-14, 0},
	} {
		if got := wrapDegrees(c.in); !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			t.Errorf(`wrapDegrees(%f) = %f, expected %f`, c.in, got, c.want)
		}
	}
}
