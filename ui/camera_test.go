package ui

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

func TestSphereInFrustum(t *testing.T) {
	c := NewCamera(1440, 900, vector.V3{-40, 40, 10}, 0, 0)
	c.view()

	if f := c.SphereInFrustum(vector.V3{0, 0, 0}, 30); f != INTERSECT {
		t.Errorf(`expected INTERSECT, got %s`, f.String())
	}

	if f := c.SphereInFrustum(vector.V3{0, 0, -100}, 1); f != OUTSIDE {
		t.Errorf(`expected OUTSIDE, got %s`, f.String())
	}

	if f := c.SphereInFrustum(vector.V3{60, 40, 10}, 1); f != INSIDE {
		t.Errorf(`expected INSIDE, got %s`, f.String())
	}

	if f := c.SphereInFrustum(vector.V3{-80, 40, 10}, 1); f != OUTSIDE {
		t.Errorf(`expected OUTSIDE behind the camera, got %s`, f.String())
	}
}

func TestCameraCommands(t *testing.T) {
	home := vector.V3{-350, 0, 180}
	c := NewCamera(1200, 800, home, 0, -0.5)

	c.QueueCommand(cameraCommandMove{Y: 10})
	c.QueueCommand(cameraCommandMove{X: 5})
	c.drainCommands()

	if !scalar.EqualWithinAbs(c.Pos.X, -340, 1e-9) || !scalar.EqualWithinAbs(c.Pos.Y, 5, 1e-9) {
		t.Errorf(`unexpected position after moving: %s`, c.Pos)
	}
	if want := 180 + 10*math.Sin(-0.5); !scalar.EqualWithinAbs(c.Pos.Z, want, 1e-9) {
		t.Errorf(`expected z=%f, got %f`, want, c.Pos.Z)
	}

	c.QueueCommand(cameraCommandTurn{Y: 1e6})
	c.drainCommands()
	if c.theta != -math.Pi/2 {
		t.Errorf(`pitch not clamped: %f`, c.theta)
	}

	c.QueueCommand(cameraCommandTurn{X: 600})
	c.drainCommands()
	if !scalar.EqualWithinAbs(c.alpha, math.Pi/4, 1e-12) {
		t.Errorf(`expected heading π/4, got %f`, c.alpha)
	}

	c.QueueCommand(cameraCommandReset{})
	c.drainCommands()
	if c.Pos != home || c.alpha != 0 || c.theta != -0.5 {
		t.Errorf(`camera not reset: %s α=%f θ=%f`, c.Pos, c.alpha, c.theta)
	}
}

func TestQueueCommandDoesNotBlock(t *testing.T) {
	c := NewCamera(100, 100, vector.V3{}, 0, 0)
	for i := 0; i < 1000; i++ {
		c.QueueCommand(cameraCommandMove{Y: 1})
	}
	c.drainCommands()
	if c.Pos.X != float64(cap(c.cmds)) {
		t.Errorf(`expected %d queued moves, got x=%f`, cap(c.cmds), c.Pos.X)
	}
}
