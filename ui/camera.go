package ui

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v2.1/gl"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

type cameraCommand interface{}
type cameraCommandMove struct {
	X, Y float64
}
type cameraCommandTurn struct {
	X, Y float64
}
type cameraCommandReset struct{}

// Camera is a free flying camera with z up. Commands are queued by the input
// callbacks and applied on the next Update, both on the GL thread.
type Camera struct {
	cmds chan cameraCommand

	screenw, screenh int

	Pos vector.V3

	alpha float64 // heading around z
	theta float64 // pitch

	home struct {
		pos          vector.V3
		alpha, theta float64
	}

	frustum struct {
		zNear, zFar  float64
		nearH, nearW float64
		farH, farW   float64
		fovY, aspect float64
		planes       []vector.Plane
	}
}

func NewCamera(width, height int, pos vector.V3, alpha, theta float64) *Camera {
	c := &Camera{
		cmds:    make(chan cameraCommand, 64),
		screenw: width, screenh: height,
		Pos:   pos,
		alpha: alpha, theta: theta,
	}
	c.home.pos, c.home.alpha, c.home.theta = pos, alpha, theta

	c.frustum.zNear = 0.5
	c.frustum.zFar = 4000
	c.frustum.fovY = 45
	c.resize(width, height)

	return c
}

func (c *Camera) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.screenw, c.screenh = width, height
	c.frustum.aspect = float64(width) / float64(height)

	t := math.Tan(c.frustum.fovY / 360 * math.Pi)
	c.frustum.nearH = t * c.frustum.zNear
	c.frustum.nearW = c.frustum.nearH * c.frustum.aspect
	c.frustum.farH = t * c.frustum.zFar
	c.frustum.farW = c.frustum.farH * c.frustum.aspect
}

type FrustumCheckResult int

const (
	INSIDE = iota
	OUTSIDE
	INTERSECT
)

func (r FrustumCheckResult) String() string {
	switch r {
	case INSIDE:
		return "INSIDE"
	case OUTSIDE:
		return "OUTSIDE"
	case INTERSECT:
		return "INTERSECT"
	default:
		return fmt.Sprintf(`FrustumCheckResult(%d)`, int(r))
	}
}

func (c *Camera) SphereInFrustum(p vector.V3, r float64) FrustumCheckResult {
	rv := FrustumCheckResult(INSIDE)

	for _, pl := range c.frustum.planes {
		d := pl.Distance(p)
		if d < -r {
			return OUTSIDE
		} else if d < r {
			rv = INTERSECT
		}
	}

	return rv
}

func (c *Camera) target() vector.V3 {
	return vector.V3{
		X: math.Cos(c.alpha)*10 + c.Pos.X,
		Y: math.Sin(c.alpha)*10 + c.Pos.Y,
		Z: math.Sin(c.theta)*10 + c.Pos.Z,
	}
}

// view recomputes the frustum planes and returns the rotation part of the
// modelview matrix for looking at the current target.
func (c *Camera) view() [16]float64 {
	up := vector.V3{0, 0, 1}

	fw := c.target().Sub(c.Pos).Normalized()
	side := fw.Cross(up).Normalized()
	up = side.Cross(fw).Normalized()

	nc := c.Pos.Sub(fw.Scaled(-c.frustum.zNear))
	fc := c.Pos.Sub(fw.Scaled(-c.frustum.zFar))

	planes := []vector.Plane{
		{fw, nc},            // NEARP
		{fw.Scaled(-1), fc}, // FARP
	}

	nh, nw := c.frustum.nearH, c.frustum.nearW

	// TOP
	aux := nc.Add(up.Scaled(nh)).Sub(c.Pos).Normalized()
	normal := aux.Cross(side)
	planes = append(planes, vector.Plane{normal, nc.Add(up.Scaled(nh))})

	// BOTTOM
	aux = nc.Sub(up.Scaled(nh)).Sub(c.Pos).Normalized()
	normal = side.Cross(aux)
	planes = append(planes, vector.Plane{normal, nc.Sub(up.Scaled(nh))})

	// LEFT
	aux = nc.Sub(side.Scaled(nw)).Sub(c.Pos).Normalized()
	normal = aux.Cross(up)
	planes = append(planes, vector.Plane{normal, nc.Sub(side.Scaled(nw))})

	// RIGHT
	aux = nc.Add(side.Scaled(nw)).Sub(c.Pos).Normalized()
	normal = up.Cross(aux)
	planes = append(planes, vector.Plane{normal, nc.Add(side.Scaled(nw))})

	c.frustum.planes = planes

	return [16]float64{
		side.X, up.X, -fw.X, 0,
		side.Y, up.Y, -fw.Y, 0,
		side.Z, up.Z, -fw.Z, 0,
		0, 0, 0, 1,
	}
}

// Update applies queued commands and loads the projection and modelview
// matrices. It has to be called in the GL thread.
func (c *Camera) Update() {
	c.drainCommands()

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Frustum(-c.frustum.nearW, c.frustum.nearW, -c.frustum.nearH, c.frustum.nearH, c.frustum.zNear, c.frustum.zFar)

	m := c.view()
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&m[0])
	gl.Translated(-c.Pos.X, -c.Pos.Y, -c.Pos.Z)
}

func (c *Camera) drainCommands() {
	for {
		select {
		case cmd := <-c.cmds:
			c.apply(cmd)
		default:
			return
		}
	}
}

func (c *Camera) apply(cmd cameraCommand) {
	Pi2 := math.Pi / 2
	switch cmd := cmd.(type) {
	case cameraCommandTurn:
		if cmd.X != 0 {
			c.alpha += cmd.X / (float64(c.screenw) / Pi2)
			c.alpha = math.Remainder(c.alpha, 2*math.Pi)
		}
		if cmd.Y != 0 {
			c.theta -= cmd.Y / (float64(c.screenh) / Pi2)
			c.theta = math.Max(-Pi2, math.Min(Pi2, c.theta))
		}
	case cameraCommandMove:
		if cmd.Y != 0 {
			c.Pos.X += cmd.Y * math.Cos(c.alpha)
			c.Pos.Y += cmd.Y * math.Sin(c.alpha)
			c.Pos.Z += cmd.Y * math.Sin(c.theta)
		}

		if cmd.X != 0 {
			c.Pos.X += cmd.X * math.Cos(c.alpha+Pi2)
			c.Pos.Y += cmd.X * math.Sin(c.alpha+Pi2)
		}
	case cameraCommandReset:
		c.Pos = c.home.pos
		c.alpha = c.home.alpha
		c.theta = c.home.theta
	}
}

// QueueCommand queues cmd for the next Update. Commands are dropped while the
// queue is full.
func (c *Camera) QueueCommand(cmd cameraCommand) {
	select {
	case c.cmds <- cmd:
	default:
	}
}
