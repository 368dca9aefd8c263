package ui

import "testing"

func TestBodyColorsDistinct(t *testing.T) {
	n := 8
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := bodyColor(i, n).DistanceLab(bodyColor(j, n)); d < 0.05 {
				t.Errorf(`colours %d and %d too close: %f`, i, j, d)
			}
		}
	}
	if !bodyColor(0, 0).IsValid() {
		t.Errorf(`invalid colour for empty scene`)
	}
}

func TestTrailPalette(t *testing.T) {
	c := bodyColor(2, 8)
	p := trailPalette(c)
	if len(p) != trailSteps {
		t.Fatalf(`expected %d shades, got %d`, trailSteps, len(p))
	}

	if d := p[len(p)-1].DistanceLab(c); d > 1e-6 {
		t.Errorf(`newest point should have the body colour, distance %f`, d)
	}
	if p[0].DistanceLab(background) >= p[len(p)-1].DistanceLab(background) {
		t.Errorf(`oldest point is not darker than the newest`)
	}

	if s := shade(p, 0, 1000); s != p[0] {
		t.Errorf(`first point should use the first shade`)
	}
	if s := shade(p, 999, 1000); s != p[len(p)-1] {
		t.Errorf(`last point should use the last shade`)
	}
	if s := shade(p, 0, 1); s != p[len(p)-1] {
		t.Errorf(`single point should use the last shade`)
	}
}
