// Package ui draws an orrery with OpenGL and turns keyboard and mouse input
// into camera and clock commands.
package ui

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/time/rate"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/ui/text"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

type Options struct {
	Width, Height int
	FPS           float64
	Assets        string // texture directory
	Font          string // TTF file for the HUD, empty for the built in font
	Logger        log.Logger
}

// Camera home: behind the sun, looking down onto the orbital plane.
var (
	homePos   = vector.V3{X: -350, Y: 0, Z: 180}
	homeAlpha = 0.0
	homeTheta = -0.48
)

type DrawContext struct {
	win           *glfw.Window
	width, height int
	fps           float64

	cam      *Camera
	textures *TextureLoader
	text     *text.Context
	palettes map[string][]colorful.Color

	hudTexture uint32
	cursor     struct{ x, y float64 }

	wireframe bool
	showHud   bool
	showGrid  bool

	logger log.Logger
}

// NewDrawContext opens the window and sets up the GL state. It has to be
// called from the main thread, which must stay locked for the lifetime of the
// context.
func NewDrawContext(opts Options) (*DrawContext, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	fnt, err := text.NewContext(opts.Font)
	if err != nil {
		return nil, fmt.Errorf(`can't load font: %w`, err)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf(`can't init glfw: %w`, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(opts.Width, opts.Height, "solarsystem", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf(`can't create window: %w`, err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf(`can't init GL: %w`, err)
	}
	level.Debug(logger).Log("msg", "GL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	fbw, fbh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(float32(background.R), float32(background.G), float32(background.B), 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.SMOOTH)
	setupLights()

	ctx := &DrawContext{
		win:   w,
		width: fbw, height: fbh,
		fps:      opts.FPS,
		cam:      NewCamera(fbw, fbh, homePos, homeAlpha, homeTheta),
		textures: NewTextureLoader(opts.Assets, logger),
		text:     fnt,
		palettes: map[string][]colorful.Color{},
		showHud:  true,
		logger:   logger,
	}
	ctx.cursor.x, ctx.cursor.y = w.GetCursorPos()

	return ctx, nil
}

// Run drives the orrery at the configured frame rate until the window is
// closed or ctx is cancelled. Every frame advances the simulation by one
// clock step.
func (ctx *DrawContext) Run(c context.Context, o *orrery.Orrery) error {
	ctx.bindEvents(o)

	limiter := rate.NewLimiter(rate.Limit(ctx.fps), 1)
	for !ctx.win.ShouldClose() {
		if err := limiter.Wait(c); err != nil {
			if c.Err() != nil {
				return nil
			}
			return err
		}

		glfw.PollEvents()

		// halted bodies are logged by the orrery and keep their last state
		_ = o.Step()

		ctx.drawScene(o.Snapshot())
		ctx.win.SwapBuffers()
	}

	level.Info(ctx.logger).Log("msg", "window closed")
	return nil
}

func (ctx *DrawContext) Close() {
	ctx.textures.Release()
	if ctx.hudTexture != 0 {
		gl.DeleteTextures(1, &ctx.hudTexture)
	}
	ctx.win.Destroy()
	glfw.Terminate()
}
