// Package scene owns the editor state: the control grid, the camera, the
// interaction mode flags and the meshes derived from them. Every mutation
// happens through the input methods, which the frame loop calls before it
// reads anything for drawing.
package scene

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/bezier"
	"github.com/gorustyt/gobezier/camera"
	"github.com/gorustyt/gobezier/common/logger"
	"github.com/gorustyt/gobezier/config"
	"github.com/gorustyt/gobezier/picking"
	"github.com/gorustyt/gobezier/topology"
	"go.uber.org/zap"
)

// DirtyFlags tells the presentation layer which vertex buffers to replace.
type DirtyFlags uint8

const (
	DirtyControl DirtyFlags = 1 << iota
	DirtySurface

	DirtyAll = DirtyControl | DirtySurface
)

func (d DirtyFlags) Has(f DirtyFlags) bool {
	return d&f != 0
}

// Mesh is a renderable vertex grid. The slices alias scene state and must
// be treated as read-only.
type Mesh struct {
	Rows, Cols int
	Vertices   []mgl32.Vec3
	Lines      []uint32
	Triangles  []uint32
}

type Scene struct {
	logger     *zap.Logger
	grid       *bezier.Grid
	camera     *camera.Camera
	controller *picking.Controller

	viewport   picking.Viewport
	aspect     float32
	near, far  float32
	resolution int

	editMode    bool
	surfaceView bool

	firstMouse       bool
	lastX, lastY     float32
	cursorX, cursorY float32

	controlLines     []uint32
	controlTriangles []uint32

	surfaceRes       int
	surfaceVertices  []mgl32.Vec3
	surfaceLines     []uint32
	surfaceTriangles []uint32

	dirty DirtyFlags
}

func New(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	grid, err := cfg.ControlGrid()
	if err != nil {
		return nil, fmt.Errorf("control grid: %w", err)
	}
	s := &Scene{
		logger:     logger.OrNop(log),
		grid:       grid,
		camera:     cfg.NewCamera(),
		controller: picking.NewController(cfg.Pick.Threshold),
		viewport: picking.Viewport{
			Width:  float32(cfg.Window.Width),
			Height: float32(cfg.Window.Height),
		},
		aspect:     cfg.Aspect(),
		near:       cfg.Camera.Near,
		far:        cfg.Camera.Far,
		resolution: cfg.Surface.Resolution,
		firstMouse: true,
		lastX:      float32(cfg.Window.Width) / 2,
		lastY:      float32(cfg.Window.Height) / 2,
	}
	// The control mesh triangulation follows the starting heights and is
	// kept for the whole session.
	s.controlLines = topology.GenerateLines(grid.Rows, grid.Cols)
	s.controlTriangles = topology.GenerateTriangles(grid.Points, grid.Rows, grid.Cols)
	s.RebuildSurface()
	s.dirty = DirtyAll
	return s, nil
}

// RebuildSurface tessellates the current grid. Topology is regenerated only
// when the resolution differs from the cached one.
func (s *Scene) RebuildSurface() {
	start := time.Now()
	if s.surfaceRes != s.resolution {
		s.surfaceLines = topology.GenerateLines(s.resolution, s.resolution)
		s.surfaceTriangles = topology.GenerateGridTriangles(s.resolution, s.resolution)
		s.surfaceRes = s.resolution
	}
	s.surfaceVertices = bezier.Tessellate(s.grid, s.resolution)
	s.dirty |= DirtySurface
	s.logger.Info("surface rebuilt",
		zap.Int("resolution", s.resolution),
		zap.Int("vertices", len(s.surfaceVertices)),
		zap.Duration("took", time.Since(start)))
}

// TakeDirty returns the pending dirty flags and clears them.
func (s *Scene) TakeDirty() DirtyFlags {
	d := s.dirty
	s.dirty = 0
	return d
}

func (s *Scene) ViewMatrix() mgl32.Mat4 {
	return s.camera.ViewMatrix()
}

func (s *Scene) Projection() mgl32.Mat4 {
	return s.camera.Projection(s.aspect, s.near, s.far)
}

func (s *Scene) ControlMesh() Mesh {
	return Mesh{
		Rows:      s.grid.Rows,
		Cols:      s.grid.Cols,
		Vertices:  s.grid.Points,
		Lines:     s.controlLines,
		Triangles: s.controlTriangles,
	}
}

func (s *Scene) SurfaceMesh() Mesh {
	return Mesh{
		Rows:      s.surfaceRes,
		Cols:      s.surfaceRes,
		Vertices:  s.surfaceVertices,
		Lines:     s.surfaceLines,
		Triangles: s.surfaceTriangles,
	}
}

func (s *Scene) Grid() *bezier.Grid {
	return s.grid
}

func (s *Scene) Camera() *camera.Camera {
	return s.camera
}

func (s *Scene) EditMode() bool {
	return s.editMode
}

func (s *Scene) SurfaceView() bool {
	return s.surfaceView
}

func (s *Scene) DragState() picking.State {
	return s.controller.State()
}

func (s *Scene) Selected() (i, j int, ok bool) {
	return s.controller.Selected()
}
