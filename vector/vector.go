package vector

import (
	"fmt"
	"math"
)

// V3 is a position or velocity in world space. Orbits lie in the z=0 plane.
type V3 struct {
	X, Y, Z float64
}

// Polar returns the planar vector of length r at angle phi (radians) from the x axis.
func Polar(r, phi float64) V3 {
	sin, cos := math.Sincos(phi)
	return V3{X: r * cos, Y: r * sin}
}

func (v V3) String() string {
	return fmt.Sprintf(`(%.2f, %.2f, %.2f)`, v.X, v.Y, v.Z)
}

// IsFinite reports whether no component is NaN or infinite.
func (v V3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v V3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v V3) Dot(o V3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v V3) Cross(o V3) V3 {
	return V3{
		v.Y*o.Z - o.Y*v.Z,
		o.X*v.Z - v.X*o.Z,
		v.X*o.Y - o.X*v.Y,
	}
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v V3) Normalized() V3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scaled(1 / l)
}

func (v V3) Sub(o V3) V3 {
	return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v V3) Scaled(n float64) V3 {
	return V3{v.X * n, v.Y * n, v.Z * n}
}

func (v V3) Distance(o V3) float64 {
	return v.Sub(o).Length()
}

// Plane is given by its normal and a point on the plane.
type Plane [2]V3

// Distance is the signed distance of px from the plane, positive on the side the normal points to.
func (p *Plane) Distance(px V3) float64 {
	n := p[0]
	p0 := p[1]

	D := n.Scaled(-1).Dot(p0)

	return n.Dot(px) + D
}
