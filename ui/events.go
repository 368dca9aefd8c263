package ui

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-kit/kit/log/level"

	"git.c3pb.de/farhaven/solarsystem/orrery"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionFaster
	actionSlower
	actionClearTrails
	actionRewind
	actionToggleHud
	actionToggleWireframe
	actionToggleGrid
	actionCameraReset
	actionMoveForward
	actionMoveBack
	actionMoveLeft
	actionMoveRight
	actionTurnLeft
	actionTurnRight
	actionTurnUp
	actionTurnDown
)

var keyActions = map[glfw.Key]action{
	glfw.KeyQ:         actionQuit,
	glfw.KeyEscape:    actionQuit,
	glfw.KeyR:         actionFaster,
	glfw.KeyF:         actionSlower,
	glfw.KeyC:         actionClearTrails,
	glfw.KeyBackspace: actionRewind,
	glfw.KeyH:         actionToggleHud,
	glfw.Key1:         actionToggleWireframe,
	glfw.KeyG:         actionToggleGrid,
	glfw.KeySpace:     actionCameraReset,
	glfw.KeyW:         actionMoveForward,
	glfw.KeyS:         actionMoveBack,
	glfw.KeyA:         actionMoveLeft,
	glfw.KeyD:         actionMoveRight,
	glfw.KeyLeft:      actionTurnLeft,
	glfw.KeyRight:     actionTurnRight,
	glfw.KeyUp:        actionTurnUp,
	glfw.KeyDown:      actionTurnDown,
}

func keyAction(k glfw.Key) action {
	return keyActions[k]
}

// cameraCommandFor returns the camera command bound to a, if any.
func cameraCommandFor(a action) (cameraCommand, bool) {
	switch a {
	case actionCameraReset:
		return cameraCommandReset{}, true
	case actionMoveForward:
		return cameraCommandMove{Y: 1}, true
	case actionMoveBack:
		return cameraCommandMove{Y: -1}, true
	case actionMoveLeft:
		return cameraCommandMove{X: 1}, true
	case actionMoveRight:
		return cameraCommandMove{X: -1}, true
	case actionTurnLeft:
		return cameraCommandTurn{X: 10}, true
	case actionTurnRight:
		return cameraCommandTurn{X: -10}, true
	case actionTurnUp:
		return cameraCommandTurn{Y: -10}, true
	case actionTurnDown:
		return cameraCommandTurn{Y: 10}, true
	}
	return nil, false
}

func (ctx *DrawContext) handle(a action, o *orrery.Orrery) {
	if cmd, ok := cameraCommandFor(a); ok {
		ctx.cam.QueueCommand(cmd)
		return
	}

	switch a {
	case actionQuit:
		ctx.win.SetShouldClose(true)
	case actionFaster:
		o.Clock().Faster()
		level.Info(ctx.logger).Log("msg", "time scale changed", "scale", o.Clock().TimeScale())
	case actionSlower:
		o.Clock().Slower()
		level.Info(ctx.logger).Log("msg", "time scale changed", "scale", o.Clock().TimeScale())
	case actionClearTrails:
		o.ClearTrails()
	case actionRewind:
		o.Reset()
		level.Info(ctx.logger).Log("msg", "rewound to t=0")
	case actionToggleHud:
		ctx.showHud = !ctx.showHud
	case actionToggleWireframe:
		ctx.wireframe = !ctx.wireframe
	case actionToggleGrid:
		ctx.showGrid = !ctx.showGrid
	}
}

// bindEvents installs the input callbacks. glfw runs them from PollEvents,
// so they share the render thread with the orrery and the clock.
func (ctx *DrawContext) bindEvents(o *orrery.Orrery) {
	ctx.win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, act glfw.Action, mods glfw.ModifierKey) {
		if act == glfw.Release {
			return
		}
		a := keyAction(key)
		if a == actionNone {
			level.Debug(ctx.logger).Log("msg", "unbound key", "key", glfw.GetKeyName(key, scancode))
			return
		}
		ctx.handle(a, o)
	})

	ctx.win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		ctx.cam.QueueCommand(cameraCommandMove{Y: yoff * 10})
	})

	ctx.win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		dx, dy := x-ctx.cursor.x, y-ctx.cursor.y
		ctx.cursor.x, ctx.cursor.y = x, y
		if w.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
			return
		}
		ctx.cam.QueueCommand(cameraCommandTurn{X: -dx, Y: dy})
	})

	ctx.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ctx.width, ctx.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		ctx.cam.resize(width, height)
	})
}
