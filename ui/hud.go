package ui

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-kit/kit/log/level"

	"git.c3pb.de/farhaven/solarsystem/orrery"
)

const hudFontSize = 13

var hudHelp = []string{
	"Arrows/Mouse drag: Turn, WASD: Move, Wheel: Zoom, Space: Reset camera",
	"R/F: Faster/Slower, Backspace: Rewind, C: Clear trails",
	"1: Wireframe, G: Grid, H: HUD, Q/Esc: Quit",
}

func hudLines(s orrery.Snapshot, cam *Camera) []string {
	lines := append([]string{}, hudHelp...)
	lines = append(lines,
		fmt.Sprintf(` t: %0.1f  scale: %+0.1f`, s.SimTime, s.TimeScale),
		fmt.Sprintf(` camera: %s α: %0.2f θ: %0.2f`, cam.Pos, cam.alpha, cam.theta),
	)

	for _, b := range s.Bodies {
		if b.Halted {
			lines = append(lines, fmt.Sprintf(` %-8s halted: %s`, b.ID, b.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf(` %-8s r=%0.2f v=%0.3f T=%0.1f pos=%s`, b.ID, b.Pos.Length(), b.Vel.Length(), b.Period, b.Pos))
	}

	return lines
}

// drawHud renders the HUD text into a texture and blits it into the top left
// corner with an orthographic projection.
func (ctx *DrawContext) drawHud(s orrery.Snapshot) {
	img, err := ctx.text.RenderMultiline(hudLines(s, ctx.cam), hudFontSize, color.RGBA{0, 0, 0, 160}, color.RGBA{0, 255, 255, 255})
	if err != nil {
		level.Error(ctx.logger).Log("msg", "can't render hud", "err", err)
		ctx.showHud = false
		return
	}

	if ctx.hudTexture == 0 {
		gl.GenTextures(1, &ctx.hudTexture)
	}
	gl.BindTexture(gl.TEXTURE_2D, ctx.hudTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0.0, float64(ctx.width), float64(ctx.height), 0.0, -1.0, 1.0)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.TexEnvf(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.REPLACE)

	w, h := float32(img.Rect.Dx()), float32(img.Rect.Dy())
	gl.Color3f(1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0.0, 0.0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(w, 0.0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(w, h)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0.0, h)
	gl.End()

	gl.Disable(gl.TEXTURE_2D)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.LIGHTING)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
}
