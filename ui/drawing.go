package ui

import (
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/lucasb-eyer/go-colorful"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

func setupLights() {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &[]float32{0.3, 0.3, 0.3, 1}[0])
	gl.Enable(gl.LIGHT0)
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &[]float32{0.2, 0.2, 0.2, 1}[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &[]float32{1, 1, 1, 1}[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &[]float32{1, 1, 1, 1}[0])
	gl.Lightf(gl.LIGHT0, gl.SPOT_CUTOFF, 180)
	gl.Lightf(gl.LIGHT0, gl.CONSTANT_ATTENUATION, 1)
	gl.Lightf(gl.LIGHT0, gl.LINEAR_ATTENUATION, 0)
	gl.Lightf(gl.LIGHT0, gl.QUADRATIC_ATTENUATION, 0)
}

// placeSunLight puts LIGHT0 at the origin. The position is transformed by the
// current modelview matrix, so this runs after the camera update.
func placeSunLight() {
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &[]float32{0, 0, 0, 1}[0])
}

// setMaterial gives small bodies more ambient light so they stay visible.
func setMaterial(radius float64, c colorful.Color) {
	a := float32(0.2)
	if radius < 2 {
		a = 0.5
	}
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	gl.Materialfv(gl.FRONT, gl.AMBIENT, &[]float32{a * r, a * g, a * b, 1}[0])
	gl.Materialfv(gl.FRONT, gl.DIFFUSE, &[]float32{r, g, b, 1}[0])
}

// drawUnitSphere draws a sphere of radius 1 around the origin with normals
// and texture coordinates. t=0 is the north pole.
func (ctx *DrawContext) drawUnitSphere(slices int) {
	for i := 1; i <= slices; i++ {
		lat0 := math.Pi * (-0.5 + float64(i-1)/float64(slices))
		z0 := math.Sin(lat0)
		zr0 := math.Cos(lat0)
		t0 := 1 - float64(i-1)/float64(slices)

		lat1 := math.Pi * (-0.5 + float64(i)/float64(slices))
		z1 := math.Sin(lat1)
		zr1 := math.Cos(lat1)
		t1 := 1 - float64(i)/float64(slices)

		if ctx.wireframe {
			gl.Begin(gl.LINES)
		} else {
			gl.Begin(gl.QUAD_STRIP)
		}
		for j := 0; j <= slices; j++ {
			s := float64(j) / float64(slices)
			lng := 2 * math.Pi * s
			x := math.Cos(lng)
			y := math.Sin(lng)

			gl.TexCoord2d(s, t0)
			gl.Normal3d(x*zr0, y*zr0, z0)
			gl.Vertex3d(x*zr0, y*zr0, z0)
			gl.TexCoord2d(s, t1)
			gl.Normal3d(x*zr1, y*zr1, z1)
			gl.Vertex3d(x*zr1, y*zr1, z1)
		}
		gl.End()
	}
}

func sphereSlices(r float64) int {
	return int(math.Max(16, 12*math.Log(r+1)))
}

// drawSphere draws a sphere at p rotated by rot degrees about z. Without a
// texture it is drawn in c. Lit spheres get their material from the radius.
func (ctx *DrawContext) drawSphere(p vector.V3, r, rot float64, texture string, c colorful.Color, lit bool) {
	if ctx.cam.SphereInFrustum(p, r) == OUTSIDE {
		return
	}

	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	defer gl.PopMatrix()

	gl.Translated(p.X, p.Y, p.Z)
	gl.Rotated(rot, 0, 0, 1)
	gl.Scaled(r, r, r)

	if id, ok := ctx.textures.Get(texture); ok && !ctx.wireframe {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, id)
		defer gl.Disable(gl.TEXTURE_2D)
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	if lit {
		setMaterial(r, c)
	}
	gl.Color3d(c.R, c.G, c.B)

	ctx.drawUnitSphere(sphereSlices(r))
}

func (ctx *DrawContext) drawSun(s orrery.SunState) {
	gl.Disable(gl.LIGHTING)
	defer gl.Enable(gl.LIGHTING)

	gl.TexEnvf(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.DECAL)
	ctx.drawSphere(s.Pos, s.Radius, 0, s.Texture, colorful.Color{R: 1, G: 0.85, B: 0.3}, false)
}

func (ctx *DrawContext) drawBodies(bodies []orrery.BodyState) {
	gl.Enable(gl.LIGHTING)

	gl.TexEnvf(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)
	for i, b := range bodies {
		ctx.drawSphere(b.Pos, b.Radius, b.Rotation, b.Texture, bodyColor(i, len(bodies)), true)
	}
}

func (ctx *DrawContext) drawTrails(bodies []orrery.BodyState) {
	gl.Disable(gl.LIGHTING)
	defer gl.Enable(gl.LIGHTING)

	for i, b := range bodies {
		if len(b.Trail) < 2 {
			continue
		}
		p := ctx.palette(b.ID, bodyColor(i, len(bodies)))

		gl.Begin(gl.LINE_STRIP)
		for k, pt := range b.Trail {
			c := shade(p, k, len(b.Trail))
			gl.Color3d(c.R, c.G, c.B)
			gl.Vertex3d(pt.X, pt.Y, 0)
		}
		gl.End()
	}
}

func (ctx *DrawContext) palette(id string, c colorful.Color) []colorful.Color {
	if p, ok := ctx.palettes[id]; ok {
		return p
	}
	p := trailPalette(c)
	ctx.palettes[id] = p
	return p
}

func (ctx *DrawContext) drawGrid() {
	gl.Disable(gl.LIGHTING)
	defer gl.Enable(gl.LIGHTING)

	gl.Color3f(0.08, 0.08, 0.1)
	gl.Begin(gl.LINES)
	for i := float32(-400); i <= 400; i += 20 {
		gl.Vertex3f(-400, i, -0.1)
		gl.Vertex3f(400, i, -0.1)
		gl.Vertex3f(i, -400, -0.1)
		gl.Vertex3f(i, 400, -0.1)
	}
	gl.End()
}

func (ctx *DrawContext) drawScene(s orrery.Snapshot) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	ctx.cam.Update()
	placeSunLight()

	if ctx.showGrid {
		ctx.drawGrid()
	}
	ctx.drawSun(s.Sun)
	ctx.drawTrails(s.Bodies)
	ctx.drawBodies(s.Bodies)

	if ctx.showHud {
		ctx.drawHud(s)
	}
}
