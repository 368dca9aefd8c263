package ui

import (
	"github.com/lucasb-eyer/go-colorful"
)

// trailSteps is the number of shades a trail fades through.
const trailSteps = 32

var background = colorful.Color{R: 0, G: 0, B: 0}

// bodyColor spreads the bodies evenly around the hue circle.
func bodyColor(i, n int) colorful.Color {
	if n <= 0 {
		n = 1
	}
	return colorful.Hcl(float64(i)*360/float64(n), 0.45, 0.75).Clamped()
}

// trailPalette fades from almost background for the oldest point to the
// body colour for the newest one.
func trailPalette(c colorful.Color) []colorful.Color {
	p := make([]colorful.Color, trailSteps)
	for i := range p {
		t := 0.15 + 0.85*float64(i)/float64(trailSteps-1)
		p[i] = background.BlendLab(c, t).Clamped()
	}
	return p
}

// shade picks the palette entry for point k of n.
func shade(p []colorful.Color, k, n int) colorful.Color {
	if n <= 1 {
		return p[len(p)-1]
	}
	return p[k*(len(p)-1)/(n-1)]
}
