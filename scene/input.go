package scene

import (
	"github.com/gorustyt/gobezier/camera"
	"github.com/gorustyt/gobezier/picking"
	"go.uber.org/zap"
)

// Move translates the camera. Ignored in edit mode.
func (s *Scene) Move(dir camera.Movement, dt float32) {
	if s.editMode {
		return
	}
	s.camera.ApplyMovement(dir, dt)
}

// Scroll zooms the camera. Ignored in edit mode.
func (s *Scene) Scroll(dy float32) {
	if s.editMode {
		return
	}
	s.camera.ApplyZoom(dy)
}

// CursorMoved takes an absolute cursor position in window pixels. In fly
// mode it turns the camera, in edit mode it drives the drag controller.
func (s *Scene) CursorMoved(x, y float32) {
	s.cursorX, s.cursorY = x, y
	if s.editing() {
		s.updateDrag()
		return
	}
	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
	}
	dx := x - s.lastX
	dy := s.lastY - y
	s.lastX, s.lastY = x, y
	s.camera.ApplyLook(dx, dy, true)
}

// ToggleEditMode flips between fly and edit mode. Not allowed while the
// surface view is shown. Leaving edit mode drops any selection.
func (s *Scene) ToggleEditMode() bool {
	if s.surfaceView {
		return false
	}
	s.editMode = !s.editMode
	s.firstMouse = true
	if !s.editMode {
		s.releaseDrag()
	}
	s.logger.Info("edit mode toggled", zap.Bool("edit", s.editMode))
	return true
}

// ToggleSurfaceView flips between the control mesh and the tessellated
// surface. Not allowed in edit mode.
func (s *Scene) ToggleSurfaceView() bool {
	if s.editMode {
		return false
	}
	s.surfaceView = !s.surfaceView
	s.logger.Info("surface view toggled", zap.Bool("surface", s.surfaceView))
	return true
}

// SetButton feeds the left mouse button state. A press starts a selection at
// the last cursor position, a release ends it and rebuilds the surface if
// the grid changed.
func (s *Scene) SetButton(pressed bool) {
	if pressed {
		if !s.editing() || s.controller.State() != picking.Idle {
			return
		}
		s.controller.Press()
		s.updateDrag()
		return
	}
	s.releaseDrag()
}

func (s *Scene) editing() bool {
	return s.editMode && !s.surfaceView
}

func (s *Scene) cursorRay() (picking.Ray, bool) {
	dir, ok := picking.ScreenToWorldRay(s.cursorX, s.cursorY, s.viewport, s.ViewMatrix(), s.Projection())
	if !ok {
		return picking.Ray{}, false
	}
	return picking.Ray{Origin: s.camera.Position, Dir: dir}, true
}

func (s *Scene) updateDrag() {
	state := s.controller.State()
	if state == picking.Idle {
		return
	}
	r, ok := s.cursorRay()
	if !ok {
		s.logger.Debug("degenerate cursor ray", zap.Float32("x", s.cursorX), zap.Float32("y", s.cursorY))
		return
	}
	if s.controller.Update(r, s.grid) {
		s.dirty |= DirtyControl
		return
	}
	if state == picking.Selecting && s.controller.State() == picking.Dragging {
		i, j, _ := s.controller.Selected()
		s.logger.Debug("control point selected", zap.Int("i", i), zap.Int("j", j))
	}
}

func (s *Scene) releaseDrag() {
	if s.controller.State() == picking.Idle {
		return
	}
	i, j, _ := s.controller.Selected()
	mutated := s.controller.Release()
	s.logger.Debug("control point released", zap.Int("i", i), zap.Int("j", j), zap.Bool("moved", mutated))
	if mutated {
		s.RebuildSurface()
	}
}
