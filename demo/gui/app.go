package gui

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/camera"
	"github.com/gorustyt/gobezier/common/logger"
	"github.com/gorustyt/gobezier/config"
	"github.com/gorustyt/gobezier/demo/lib/canvas"
	"github.com/gorustyt/gobezier/demo/lib/hud"
	"github.com/gorustyt/gobezier/scene"
	"go.uber.org/zap"
)

const hudFontSize = 14

var (
	triangleColor = mgl32.Vec3{1, 1, 1}
	lineColor     = mgl32.Vec3{1, 0, 0}
	pointColor    = mgl32.Vec3{0, 0, 0}
	lightDir      = mgl32.Vec3{-0.3, -1, -0.5}
)

var moveKeys = []struct {
	key glfw.Key
	dir camera.Movement
}{
	{glfw.KeyW, camera.Forward},
	{glfw.KeyS, camera.Backward},
	{glfw.KeyA, camera.Left},
	{glfw.KeyD, camera.Right},
}

type App struct {
	cfg    *config.Config
	logger *zap.Logger
	scene  *scene.Scene
	window *glfw.Window

	meshProgram   *canvas.Program
	bezierProgram *canvas.Program
	control       *canvas.MeshBuffers
	surface       *canvas.MeshBuffers
	overlay       *canvas.Overlay
	hud           *hud.Hud

	lastFrame float64
}

// NewApp opens the window and builds the GL resources. The caller must hold
// the main OS thread and call Close when done.
func NewApp(cfg *config.Config, sc *scene.Scene, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, scene: sc, logger: logger.OrNop(log)}
	if err := InitGui(); err != nil {
		return nil, err
	}
	window, err := CreateWindow(cfg.Window, a.logger)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	a.window = window
	if err := a.initGL(); err != nil {
		a.Close()
		return nil, err
	}
	a.registerEvent()
	a.applyCursorMode()
	return a, nil
}

func (a *App) initGL() (err error) {
	if a.meshProgram, err = canvas.NewMeshProgram(); err != nil {
		return fmt.Errorf("mesh program: %w", err)
	}
	if a.bezierProgram, err = canvas.NewBezierProgram(); err != nil {
		return fmt.Errorf("bezier program: %w", err)
	}
	a.control = canvas.NewMeshBuffers()
	a.surface = canvas.NewMeshBuffers()
	if a.cfg.Render.ShowHud {
		if a.hud, err = hud.New(hudFontSize); err != nil {
			return fmt.Errorf("hud font: %w", err)
		}
		if a.overlay, err = canvas.NewOverlay(); err != nil {
			return fmt.Errorf("hud program: %w", err)
		}
	}
	bg := a.cfg.Render.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	return nil
}

func (a *App) registerEvent() {
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch {
		case key == glfw.KeyEscape && action == glfw.Press:
			w.SetShouldClose(true)
		case key == glfw.KeyE && action == glfw.Press:
			if a.scene.ToggleEditMode() {
				a.applyCursorMode()
			}
		case key == glfw.KeyB && action == glfw.Release:
			a.scene.ToggleSurfaceView()
		}
	})
	a.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		a.scene.CursorMoved(float32(xpos), float32(ypos))
	})
	a.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		a.scene.Scroll(float32(yoff))
	})
	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			a.scene.SetButton(true)
		case glfw.Release:
			a.scene.SetButton(false)
		}
	})
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	a.window.SetCloseCallback(func(w *glfw.Window) {
		a.logger.Info("window closing")
	})
}

func (a *App) applyCursorMode() {
	if a.scene.EditMode() {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (a *App) Run() {
	a.lastFrame = glfw.GetTime()
	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - a.lastFrame)
		a.lastFrame = now

		a.processInput(dt)
		a.upload()
		a.draw()

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (a *App) processInput(dt float32) {
	for _, m := range moveKeys {
		if a.window.GetKey(m.key) == glfw.Press {
			a.scene.Move(m.dir, dt)
		}
	}
}

func (a *App) upload() {
	dirty := a.scene.TakeDirty()
	if dirty.Has(scene.DirtyControl) {
		a.control.Upload(a.scene.ControlMesh())
	}
	if dirty.Has(scene.DirtySurface) {
		a.surface.Upload(a.scene.SurfaceMesh())
	}
}

func (a *App) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	view := a.scene.ViewMatrix()
	projection := a.scene.Projection()

	if a.scene.SurfaceView() {
		a.drawSurface(view, projection)
	} else {
		a.drawControl(view, projection)
	}
	a.drawHud()
}

func (a *App) drawControl(view, projection mgl32.Mat4) {
	p := a.meshProgram
	p.Use()
	p.SetMat4("model", mgl32.Ident4())
	p.SetMat4("view", view)
	p.SetMat4("projection", projection)

	// Pull the filled faces back so the wireframe and points stay visible.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	p.SetVec3("ourColor", triangleColor)
	a.control.DrawTriangles()
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	gl.LineWidth(a.cfg.Render.LineWidth)
	p.SetVec3("ourColor", lineColor)
	a.control.DrawLines()

	gl.PointSize(a.cfg.Render.PointSize)
	p.SetVec3("ourColor", pointColor)
	a.control.DrawPoints()
}

func (a *App) drawSurface(view, projection mgl32.Mat4) {
	g := a.scene.Grid()
	p := a.bezierProgram
	p.Use()
	p.SetMat4("model", mgl32.Ident4())
	p.SetMat4("view", view)
	p.SetMat4("projection", projection)
	p.SetFloat("maxX", float32(g.Cols-1))
	p.SetFloat("maxZ", float32(g.Rows-1))
	p.SetVec3("lightDir", lightDir)

	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	p.SetInt("line", 0)
	a.surface.DrawTriangles()
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	gl.LineWidth(1)
	p.SetInt("line", 1)
	a.surface.DrawLines()
}

func (a *App) drawHud() {
	if a.hud == nil {
		return
	}
	img, changed, err := a.hud.Update(a.scene.Status().Lines())
	if err != nil {
		a.logger.Warn("hud render failed", zap.Error(err))
		return
	}
	if changed {
		a.overlay.SetImage(img)
	}
	w, h := a.window.GetSize()
	a.overlay.Draw(w, h)
}

func (a *App) Close() {
	if a.overlay != nil {
		a.overlay.Delete()
	}
	if a.control != nil {
		a.control.Delete()
	}
	if a.surface != nil {
		a.surface.Delete()
	}
	if a.meshProgram != nil {
		a.meshProgram.Delete()
	}
	if a.bezierProgram != nil {
		a.bezierProgram.Delete()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}
