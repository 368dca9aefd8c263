package vector

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestV3Normalize(t *testing.T) {
	v := V3{1, 1, 1}.Normalized()
	if !scalar.EqualWithinAbs(v.Length(), 1, 1e-12) {
		t.Errorf(`expected length 1, got %f`, v.Length())
	}

	if z := (V3{}).Normalized(); z != (V3{}) {
		t.Errorf(`expected zero vector, got %s`, z)
	}
}

func TestPolar(t *testing.T) {
	for _, phi := range []float64{0, math.Pi / 3, math.Pi, -2.5, 17} {
		v := Polar(4, phi)
		if !scalar.EqualWithinAbs(v.Length(), 4, 1e-12) {
			t.Errorf(`phi=%f: length %f`, phi, v.Length())
		}
		if v.Z != 0 {
			t.Errorf(`phi=%f: z=%f`, phi, v.Z)
		}
		if got := math.Atan2(v.Y, v.X); !scalar.EqualWithinAbs(math.Remainder(got-phi, 2*math.Pi), 0, 1e-12) {
			t.Errorf(`phi=%f: angle %f`, phi, got)
		}
	}
}

func TestCross(t *testing.T) {
	x, y, z := V3{1, 0, 0}, V3{0, 1, 0}, V3{0, 0, 1}
	if c := x.Cross(y); c != z {
		t.Errorf(`x cross y = %s`, c)
	}
	if c := y.Cross(x); c != z.Scaled(-1) {
		t.Errorf(`y cross x = %s`, c)
	}
}

func TestIsFinite(t *testing.T) {
	if !(V3{1, 2, 3}).IsFinite() {
		t.Errorf(`finite vector reported as non-finite`)
	}
	if (V3{math.NaN(), 0, 0}).IsFinite() {
		t.Errorf(`NaN not detected`)
	}
	if (V3{0, 0, math.Inf(-1)}).IsFinite() {
		t.Errorf(`Inf not detected`)
	}
}

func TestPlaneDistance(t *testing.T) {
	norm := V3{0, 0, 1}.Normalized()

	p0 := V3{0, 0, 0}
	pl := Plane{norm, p0}

	if d := pl.Distance(V3{0, 0, 1}); d != 1 {
		t.Errorf(`d=%f`, d)
	}

	if d := pl.Distance(V3{0, 0, 0}); d != 0 {
		t.Errorf(`d=%f`, d)
	}

	if d := pl.Distance(V3{1, 1, 0}); d != 0 {
		t.Errorf(`d=%f`, d)
	}

	if d := pl.Distance(V3{3, -2, -5}); d != -5 {
		t.Errorf(`d=%f`, d)
	}
}
